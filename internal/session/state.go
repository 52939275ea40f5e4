// Package session keeps the per-visitor gallery state: search inputs, the
// selected project and the display toggles.
package session

import (
	"errors"
	"fmt"

	"portfolio-gallery/internal/catalogue"
	"portfolio-gallery/internal/domain"
	"portfolio-gallery/internal/query"
)

// Toggle names accepted by State.Toggle.
const (
	ToggleDarkMode        = "darkMode"
	ToggleRecommendations = "recommendations"
)

// ErrUnknownToggle is returned for a toggle name State does not own.
var ErrUnknownToggle = errors.New("unknown toggle")

// State is the explicit owner of one visitor's gallery inputs. It is not safe
// for concurrent use; Store serialises access per session.
type State struct {
	searchTerm          string
	category            string
	selected            *domain.Project
	darkMode            bool
	showRecommendations bool

	memo memo
}

type memo struct {
	cat     *catalogue.Catalogue
	q       query.Query
	results []domain.Project
}

// Snapshot is a read-only copy of a State.
type Snapshot struct {
	SearchTerm          string          `json:"searchTerm"`
	Category            string          `json:"category"`
	Selected            *domain.Project `json:"selected"`
	DarkMode            bool            `json:"darkMode"`
	ShowRecommendations bool            `json:"showRecommendations"`
}

// NewState returns the initial state: no search, all categories, nothing
// selected, dark mode on, recommendations hidden.
func NewState() *State {
	return &State{
		category: query.AllCategories,
		darkMode: true,
	}
}

// Query returns the current filter inputs.
func (s *State) Query() query.Query {
	return query.Query{Text: s.searchTerm, Category: s.category}
}

// SetSearchTerm replaces the free-text search. The term is kept verbatim.
func (s *State) SetSearchTerm(term string) {
	s.searchTerm = term
}

// SetCategory replaces the category selection; empty resets to all.
func (s *State) SetCategory(category string) {
	if category == "" {
		category = query.AllCategories
	}
	s.category = category
}

// Select moves to the Selected state, replacing any previous selection.
func (s *State) Select(p domain.Project) {
	p = p.Clone()
	s.selected = &p
}

// Dismiss returns to the NoSelection state.
func (s *State) Dismiss() {
	s.selected = nil
}

// Selection returns the selected project, if any.
func (s *State) Selection() (domain.Project, bool) {
	if s.selected == nil {
		return domain.Project{}, false
	}
	return *s.selected, true
}

// DarkMode reports the dark mode toggle.
func (s *State) DarkMode() bool { return s.darkMode }

// ShowRecommendations reports the recommendations toggle.
func (s *State) ShowRecommendations() bool { return s.showRecommendations }

// Toggle flips the named toggle and returns its new value.
func (s *State) Toggle(name string) (bool, error) {
	switch name {
	case ToggleDarkMode:
		s.darkMode = !s.darkMode
		return s.darkMode, nil
	case ToggleRecommendations:
		s.showRecommendations = !s.showRecommendations
		return s.showRecommendations, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownToggle, name)
	}
}

// Results returns the filtered view of cat for the current inputs. The result
// is recomputed only after the catalogue or an input changes.
func (s *State) Results(cat *catalogue.Catalogue) []domain.Project {
	q := s.Query()
	if s.memo.cat != cat || s.memo.q != q || s.memo.results == nil {
		s.memo = memo{cat: cat, q: q, results: query.Filter(cat.Projects(), q)}
	}
	out := make([]domain.Project, len(s.memo.results))
	copy(out, s.memo.results)
	return out
}

// Snapshot copies the state out.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		SearchTerm:          s.searchTerm,
		Category:            s.category,
		DarkMode:            s.darkMode,
		ShowRecommendations: s.showRecommendations,
	}
	if p, ok := s.Selection(); ok {
		snap.Selected = &p
	}
	return snap
}
