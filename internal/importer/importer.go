package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"portfolio-gallery/internal/domain"
)

const listSeparator = ";"

type ProjectWriter interface {
	Upsert(ctx context.Context, p domain.Project) (*domain.Project, error)
}

// CSVImporter reads a project CSV export and inserts/updates catalogue rows.
type CSVImporter struct {
	reader *csv.Reader
	repo   ProjectWriter
}

func NewCSVImporter(r io.Reader, repo ProjectWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // continuation rows are often short
	return &CSVImporter{
		reader: csvr,
		repo:   repo,
	}
}

// Run parses CSV rows and upserts projects. A row with an empty name
// continues the previous project: its images and learnings are appended.
// Rows without a position take the one after the previous project.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	if _, ok := index["name"]; !ok {
		return 0, errors.New("read headers: name column required")
	}

	var (
		current  *domain.Project
		imported int
		position int
	)

	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		row, err := parseRow(record, index)
		if err != nil {
			return imported, err
		}
		if row == nil {
			continue
		}

		if row.Name != "" {
			if current != nil {
				if err := i.save(ctx, current); err != nil {
					return imported, err
				}
				imported++
			}
			if row.ID == 0 {
				row.ID = position + 1
			}
			position = row.ID
			current = row
			continue
		}

		if current != nil {
			current.Images = append(current.Images, row.Images...)
			current.Learnings = append(current.Learnings, row.Learnings...)
		}
	}

	if current != nil {
		if err := i.save(ctx, current); err != nil {
			return imported, err
		}
		imported++
	}

	return imported, nil
}

func (i *CSVImporter) save(ctx context.Context, p *domain.Project) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("row for position %d: %w", p.ID, err)
	}
	if _, err := i.repo.Upsert(ctx, *p); err != nil {
		return fmt.Errorf("upsert project %q: %w", p.Name, err)
	}
	return nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int) (*domain.Project, error) {
	p := &domain.Project{
		Name:      pick(record, index, "name"),
		Category:  pick(record, index, "category"),
		Thumbnail: pick(record, index, "thumbnail"),
		OneLiner:  pick(record, index, "oneLiner"),
		Link:      pick(record, index, "link"),
		BuiltIn:   pick(record, index, "builtIn"),
		Problem:   pick(record, index, "problem"),
		Solution:  pick(record, index, "solution"),
		TechStack: splitList(pick(record, index, "techStack")),
		Learnings: splitList(pick(record, index, "learnings")),
		Images:    splitList(pick(record, index, "images")),
	}
	if p.Name == "" && len(p.Images) == 0 && len(p.Learnings) == 0 {
		return nil, nil
	}

	var err error
	if v := pick(record, index, "position"); v != "" {
		if p.ID, err = strconv.Atoi(v); err != nil || p.ID < 1 {
			return nil, fmt.Errorf("invalid position %q for %q", v, p.Name)
		}
	}
	if v := pick(record, index, "featured"); v != "" {
		if p.Featured, err = strconv.ParseBool(v); err != nil {
			return nil, fmt.Errorf("invalid featured %q for %q", v, p.Name)
		}
	}
	if v := pick(record, index, "views"); v != "" {
		if p.Views, err = strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("invalid views %q for %q", v, p.Name)
		}
	}
	if v := pick(record, index, "rating"); v != "" {
		if p.Rating, err = strconv.ParseFloat(v, 64); err != nil {
			return nil, fmt.Errorf("invalid rating %q for %q", v, p.Name)
		}
	}
	if p.Thumbnail == "" && len(p.Images) > 0 && p.Name != "" {
		p.Thumbnail = p.Images[0]
	}
	return p, nil
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, listSeparator) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
