// Package catalogue holds the fixed, ordered list of portfolio projects.
//
// A Catalogue is built once and never mutated afterwards, so it can be shared
// by any number of readers without locking.
package catalogue

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"portfolio-gallery/internal/domain"
)

//go:embed data/catalogue.yaml
var embedded []byte

// Catalogue is an immutable, insertion-ordered set of projects.
type Catalogue struct {
	projects   []domain.Project
	categories []string
}

type document struct {
	Projects []domain.Project `yaml:"projects"`
}

// Lister is any store able to return every project in catalogue order.
type Lister interface {
	ListAll(ctx context.Context) ([]domain.Project, error)
}

// Embedded parses the catalogue compiled into the binary.
func Embedded() (*Catalogue, error) {
	return Parse(bytes.NewReader(embedded))
}

// Parse decodes a YAML catalogue document.
func Parse(r io.Reader) (*Catalogue, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalogue: %w", err)
	}
	return New(doc.Projects)
}

// ReadFile parses a YAML catalogue document from disk.
func ReadFile(path string) (*Catalogue, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalogue: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Load reads the catalogue from a store once.
func Load(ctx context.Context, l Lister) (*Catalogue, error) {
	projects, err := l.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return New(projects)
}

// New validates projects and freezes them into a Catalogue. Ids are reassigned
// from the 1-based position of each record.
func New(projects []domain.Project) (*Catalogue, error) {
	out := make([]domain.Project, 0, len(projects))
	seen := make(map[string]struct{})
	var categories []string
	for i, p := range projects {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("project %d: %w", i+1, err)
		}
		p = p.Clone()
		p.ID = i + 1
		out = append(out, p)
		if _, ok := seen[p.Category]; !ok {
			seen[p.Category] = struct{}{}
			categories = append(categories, p.Category)
		}
	}
	return &Catalogue{projects: out, categories: categories}, nil
}

// Len reports the number of projects.
func (c *Catalogue) Len() int {
	return len(c.projects)
}

// Projects returns the records in catalogue order. The returned slice is a
// copy; the records' own slices must be treated as read-only.
func (c *Catalogue) Projects() []domain.Project {
	out := make([]domain.Project, len(c.projects))
	copy(out, c.projects)
	return out
}

// Get returns the project with the given id.
func (c *Catalogue) Get(id int) (domain.Project, error) {
	if id < 1 || id > len(c.projects) {
		return domain.Project{}, fmt.Errorf("project %d: %w", id, domain.ErrNotFound)
	}
	return c.projects[id-1], nil
}

// Categories returns the distinct categories in first-seen order.
func (c *Catalogue) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}
