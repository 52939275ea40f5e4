package domain

import (
	"errors"
	"math"
	"testing"
)

func validProject() Project {
	return Project{
		Name:     "Alpha",
		Category: "X",
		Images:   []string{"/images/alpha.jpg"},
		Views:    10,
		Rating:   4.5,
	}
}

func TestProjectValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Project)
		ok     bool
	}{
		{name: "valid", mutate: func(*Project) {}, ok: true},
		{name: "blank name", mutate: func(p *Project) { p.Name = "  " }},
		{name: "missing category", mutate: func(p *Project) { p.Category = "" }},
		{name: "no images", mutate: func(p *Project) { p.Images = nil }},
		{name: "negative views", mutate: func(p *Project) { p.Views = -1 }},
		{name: "rating above five", mutate: func(p *Project) { p.Rating = 5.1 }},
		{name: "rating below zero", mutate: func(p *Project) { p.Rating = -0.5 }},
		{name: "rating not a number", mutate: func(p *Project) { p.Rating = math.NaN() }},
		{name: "rating bounds inclusive", mutate: func(p *Project) { p.Rating = 5 }, ok: true},
		{name: "no tech stack", mutate: func(p *Project) { p.TechStack = nil }, ok: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProject()
			tt.mutate(&p)
			err := p.Validate()
			if tt.ok && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidProject) {
				t.Fatalf("expected ErrInvalidProject, got %v", err)
			}
		})
	}
}

func TestProjectCloneDoesNotShareSlices(t *testing.T) {
	p := validProject()
	p.TechStack = []string{"React"}
	c := p.Clone()
	c.TechStack[0] = "Vue"
	c.Images[0] = "other.jpg"
	if p.TechStack[0] != "React" || p.Images[0] != "/images/alpha.jpg" {
		t.Fatalf("clone shares slices with original: %+v", p)
	}
}
