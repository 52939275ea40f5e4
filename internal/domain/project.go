package domain

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Project is one immutable catalogue entry.
type Project struct {
	ID        int      `json:"id" yaml:"-"`
	Name      string   `json:"name" yaml:"name"`
	Category  string   `json:"category" yaml:"category"`
	Thumbnail string   `json:"thumbnail,omitempty" yaml:"thumbnail"`
	OneLiner  string   `json:"oneLiner" yaml:"oneLiner"`
	Problem   string   `json:"problem" yaml:"problem"`
	Solution  string   `json:"solution" yaml:"solution"`
	TechStack []string `json:"techStack" yaml:"techStack"`
	Learnings []string `json:"learnings" yaml:"learnings"`
	Images    []string `json:"images" yaml:"images"`
	Link      string   `json:"link" yaml:"link"`
	BuiltIn   string   `json:"builtIn" yaml:"builtIn"`
	Featured  bool     `json:"featured" yaml:"featured"`
	Views     int      `json:"views" yaml:"views"`
	Rating    float64  `json:"rating" yaml:"rating"`
}

// Validate checks the record invariants enforced at catalogue load.
func (p Project) Validate() error {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return fmt.Errorf("%w: name required", ErrInvalidProject)
	case strings.TrimSpace(p.Category) == "":
		return fmt.Errorf("%w: category required for %q", ErrInvalidProject, p.Name)
	case len(p.Images) == 0:
		return fmt.Errorf("%w: at least one image required for %q", ErrInvalidProject, p.Name)
	case p.Views < 0:
		return fmt.Errorf("%w: negative views for %q", ErrInvalidProject, p.Name)
	case math.IsNaN(p.Rating) || p.Rating < 0 || p.Rating > 5:
		return fmt.Errorf("%w: rating %.1f out of range for %q", ErrInvalidProject, p.Rating, p.Name)
	}
	return nil
}

// Clone returns a copy that shares no slices with p.
func (p Project) Clone() Project {
	p.TechStack = slices.Clone(p.TechStack)
	p.Learnings = slices.Clone(p.Learnings)
	p.Images = slices.Clone(p.Images)
	return p
}
