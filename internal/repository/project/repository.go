package project

import (
	"context"

	"portfolio-gallery/internal/domain"
)

// Repository stores catalogue records keyed by their catalogue position.
type Repository interface {
	ListAll(ctx context.Context) ([]domain.Project, error)
	Upsert(ctx context.Context, p domain.Project) (*domain.Project, error)
	// DeleteAfter removes every row whose position is greater than position
	// and returns how many were removed.
	DeleteAfter(ctx context.Context, position int) (int64, error)
}
