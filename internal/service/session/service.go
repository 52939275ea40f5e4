package session

import (
	"portfolio-gallery/internal/aggregate"
	"portfolio-gallery/internal/catalogue"
	"portfolio-gallery/internal/domain"
	"portfolio-gallery/internal/session"
)

// Service drives visitor sessions against one catalogue.
type Service struct {
	store     *session.Store
	catalogue *catalogue.Catalogue
	featured  []domain.Project
}

func New(store *session.Store, cat *catalogue.Catalogue) *Service {
	return &Service{
		store:     store,
		catalogue: cat,
		featured:  aggregate.Featured(cat.Projects(), aggregate.FeaturedLimit),
	}
}

// QueryInput carries a partial update of the filter inputs; nil fields are
// left unchanged.
type QueryInput struct {
	SearchTerm *string `json:"searchTerm"`
	Category   *string `json:"category"`
}

// View is everything a client needs to render one session.
type View struct {
	ID string `json:"id"`
	session.Snapshot
	Results         []domain.Project `json:"results"`
	Recommendations []domain.Project `json:"recommendations"`
}

// Start opens a session in its initial state.
func (s *Service) Start() (View, error) {
	id := s.store.Create()
	return s.View(id)
}

func (s *Service) View(id string) (View, error) {
	return s.apply(id, func(*session.State) error { return nil })
}

func (s *Service) UpdateQuery(id string, in QueryInput) (View, error) {
	return s.apply(id, func(st *session.State) error {
		if in.SearchTerm != nil {
			st.SetSearchTerm(*in.SearchTerm)
		}
		if in.Category != nil {
			st.SetCategory(*in.Category)
		}
		return nil
	})
}

// Select opens the detail view for projectID.
func (s *Service) Select(id string, projectID int) (View, error) {
	p, err := s.catalogue.Get(projectID)
	if err != nil {
		return View{}, err
	}
	return s.apply(id, func(st *session.State) error {
		st.Select(p)
		return nil
	})
}

// Dismiss closes the detail view.
func (s *Service) Dismiss(id string) (View, error) {
	return s.apply(id, func(st *session.State) error {
		st.Dismiss()
		return nil
	})
}

func (s *Service) Toggle(id, name string) (View, error) {
	return s.apply(id, func(st *session.State) error {
		_, err := st.Toggle(name)
		return err
	})
}

// End discards a session.
func (s *Service) End(id string) {
	s.store.Delete(id)
}

func (s *Service) apply(id string, fn func(*session.State) error) (View, error) {
	var v View
	err := s.store.With(id, func(st *session.State) error {
		if err := fn(st); err != nil {
			return err
		}
		v = s.render(id, st)
		return nil
	})
	if err != nil {
		return View{}, err
	}
	return v, nil
}

func (s *Service) render(id string, st *session.State) View {
	v := View{
		ID:              id,
		Snapshot:        st.Snapshot(),
		Results:         st.Results(s.catalogue),
		Recommendations: []domain.Project{},
	}
	if st.ShowRecommendations() {
		v.Recommendations = append(v.Recommendations, s.featured...)
	}
	return v
}
