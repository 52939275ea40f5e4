// Package query derives the filtered gallery view from free-text search and a
// category selection.
package query

import (
	"strings"

	"golang.org/x/text/cases"

	"portfolio-gallery/internal/domain"
)

// AllCategories is the category sentinel that disables category filtering.
const AllCategories = "All"

// Query is the pair of inputs driving the filtered view.
type Query struct {
	Text     string `json:"searchTerm"`
	Category string `json:"category"`
}

// Matcher evaluates a Query against single records. Build one per query and
// reuse it across the catalogue; it is not safe for concurrent use.
type Matcher struct {
	needle   string
	category string
	fold     cases.Caser
}

// NewMatcher prepares q for matching. An empty category behaves like
// AllCategories.
func NewMatcher(q Query) *Matcher {
	fold := cases.Fold()
	category := q.Category
	if category == "" {
		category = AllCategories
	}
	return &Matcher{
		needle:   fold.String(q.Text),
		category: category,
		fold:     fold,
	}
}

// Match reports whether p satisfies both the category and the text predicate.
func (m *Matcher) Match(p domain.Project) bool {
	return m.matchCategory(p) && m.matchText(p)
}

func (m *Matcher) matchCategory(p domain.Project) bool {
	return m.category == AllCategories || p.Category == m.category
}

func (m *Matcher) matchText(p domain.Project) bool {
	if m.needle == "" {
		return true
	}
	if m.contains(p.Name) || m.contains(p.OneLiner) {
		return true
	}
	for _, tech := range p.TechStack {
		if m.contains(tech) {
			return true
		}
	}
	return false
}

func (m *Matcher) contains(s string) bool {
	return strings.Contains(m.fold.String(s), m.needle)
}

// Filter returns the records matching q, in their original order.
func Filter(projects []domain.Project, q Query) []domain.Project {
	m := NewMatcher(q)
	out := make([]domain.Project, 0, len(projects))
	for _, p := range projects {
		if m.Match(p) {
			out = append(out, p)
		}
	}
	return out
}
