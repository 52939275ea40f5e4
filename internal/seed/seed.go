package seed

import (
	"context"
	"fmt"

	"portfolio-gallery/internal/catalogue"
	"portfolio-gallery/internal/domain"
)

// ProjectWriter is the subset of the project repository used for seeding.
type ProjectWriter interface {
	Upsert(ctx context.Context, p domain.Project) (*domain.Project, error)
	DeleteAfter(ctx context.Context, position int) (int64, error)
}

// Result reports what one seeding run changed.
type Result struct {
	Written int
	Removed int64
}

// Apply writes every catalogue record at its catalogue position, then drops
// rows past the end of the catalogue so the table mirrors it exactly.
// Re-running it is idempotent.
func Apply(ctx context.Context, repo ProjectWriter, cat *catalogue.Catalogue) (Result, error) {
	var res Result
	for _, p := range cat.Projects() {
		if _, err := repo.Upsert(ctx, p); err != nil {
			return res, fmt.Errorf("upsert project %d (%s): %w", p.ID, p.Name, err)
		}
		res.Written++
	}
	removed, err := repo.DeleteAfter(ctx, cat.Len())
	if err != nil {
		return res, fmt.Errorf("remove projects after %d: %w", cat.Len(), err)
	}
	res.Removed = removed
	return res, nil
}
