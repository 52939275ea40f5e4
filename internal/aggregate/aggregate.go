// Package aggregate computes the summary tables shown next to the gallery.
// Every function reads the full catalogue, never a filtered view.
package aggregate

import "portfolio-gallery/internal/domain"

// FeaturedLimit caps the featured selection.
const FeaturedLimit = 3

// Distribution is a count-by-label table in first-seen label order.
type Distribution struct {
	Labels []string `json:"labels"`
	Counts []int    `json:"counts"`
}

// Total sums every count.
func (d Distribution) Total() int {
	total := 0
	for _, n := range d.Counts {
		total += n
	}
	return total
}

// Summary holds the headline figures of the catalogue.
type Summary struct {
	Projects   int `json:"projects"`
	Categories int `json:"categories"`
	Featured   int `json:"featured"`
	Views      int `json:"views"`
}

// Snapshot bundles every aggregate of one catalogue.
type Snapshot struct {
	Technologies Distribution
	Categories   Distribution
	Featured     []domain.Project
	Summary      Summary
}

// Technologies counts tech stack entries. Each occurrence counts, so a record
// listing the same technology twice contributes two.
func Technologies(projects []domain.Project) Distribution {
	c := NewCounter()
	for _, p := range projects {
		for _, tech := range p.TechStack {
			c.Add(tech)
		}
	}
	return c.Distribution()
}

// Categories counts records per category.
func Categories(projects []domain.Project) Distribution {
	c := NewCounter()
	for _, p := range projects {
		c.Add(p.Category)
	}
	return c.Distribution()
}

// Featured returns up to limit featured records in catalogue order.
// A non-positive limit yields an empty result.
func Featured(projects []domain.Project, limit int) []domain.Project {
	limit = max(limit, 0)
	out := make([]domain.Project, 0, limit)
	for _, p := range projects {
		if len(out) >= limit {
			break
		}
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// Summarize computes the headline figures.
func Summarize(projects []domain.Project) Summary {
	categories := make(map[string]struct{})
	s := Summary{Projects: len(projects)}
	for _, p := range projects {
		categories[p.Category] = struct{}{}
		if p.Featured {
			s.Featured++
		}
		s.Views += p.Views
	}
	s.Categories = len(categories)
	return s
}

// Compute derives every aggregate in one pass over the catalogue.
func Compute(projects []domain.Project) Snapshot {
	return Snapshot{
		Technologies: Technologies(projects),
		Categories:   Categories(projects),
		Featured:     Featured(projects, FeaturedLimit),
		Summary:      Summarize(projects),
	}
}
