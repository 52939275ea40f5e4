package gallery

import (
	"portfolio-gallery/internal/aggregate"
	"portfolio-gallery/internal/catalogue"
	"portfolio-gallery/internal/domain"
	"portfolio-gallery/internal/query"
	"portfolio-gallery/internal/share"
)

// Service answers read-only gallery questions over one catalogue. Aggregates
// are computed once at construction.
type Service struct {
	catalogue *catalogue.Catalogue
	snapshot  aggregate.Snapshot
}

func New(cat *catalogue.Catalogue) *Service {
	return &Service{
		catalogue: cat,
		snapshot:  aggregate.Compute(cat.Projects()),
	}
}

// Catalogue exposes the underlying catalogue.
func (s *Service) Catalogue() *catalogue.Catalogue {
	return s.catalogue
}

func (s *Service) List(q query.Query) []domain.Project {
	return query.Filter(s.catalogue.Projects(), q)
}

func (s *Service) Get(id int) (*domain.Project, error) {
	p, err := s.catalogue.Get(id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Categories returns the selectable categories, starting with the "All"
// sentinel.
func (s *Service) Categories() []string {
	return append([]string{query.AllCategories}, s.catalogue.Categories()...)
}

func (s *Service) Technologies() aggregate.Distribution {
	return s.snapshot.Technologies
}

func (s *Service) CategoryCounts() aggregate.Distribution {
	return s.snapshot.Categories
}

func (s *Service) Featured() []domain.Project {
	out := make([]domain.Project, len(s.snapshot.Featured))
	copy(out, s.snapshot.Featured)
	return out
}

func (s *Service) Summary() aggregate.Summary {
	return s.snapshot.Summary
}

func (s *Service) Share(id int) (share.Links, error) {
	p, err := s.catalogue.Get(id)
	if err != nil {
		return share.Links{}, err
	}
	return share.For(p), nil
}
