// Package export writes the catalogue to columnar files for offline analysis.
package export

import (
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"

	"portfolio-gallery/internal/domain"
)

// Row is the parquet layout of one project.
type Row struct {
	ID        int64    `parquet:"id"`
	Name      string   `parquet:"name"`
	Category  string   `parquet:"category"`
	OneLiner  string   `parquet:"one_liner"`
	Link      string   `parquet:"link"`
	BuiltIn   string   `parquet:"built_in"`
	TechStack []string `parquet:"tech_stack,list"`
	Learnings []string `parquet:"learnings,list"`
	Images    int32    `parquet:"image_count"`
	Featured  bool     `parquet:"featured"`
	Views     int64    `parquet:"views"`
	Rating    float64  `parquet:"rating"`
}

func toRow(p domain.Project) Row {
	return Row{
		ID:        int64(p.ID),
		Name:      p.Name,
		Category:  p.Category,
		OneLiner:  p.OneLiner,
		Link:      p.Link,
		BuiltIn:   p.BuiltIn,
		TechStack: p.TechStack,
		Learnings: p.Learnings,
		Images:    int32(len(p.Images)),
		Featured:  p.Featured,
		Views:     int64(p.Views),
		Rating:    p.Rating,
	}
}

// Write encodes projects as a single parquet file and returns the row count.
func Write(w io.Writer, projects []domain.Project) (int, error) {
	rows := make([]Row, len(projects))
	for i, p := range projects {
		rows[i] = toRow(p)
	}

	pw := parquet.NewGenericWriter[Row](w)
	n, err := pw.Write(rows)
	if err != nil {
		_ = pw.Close()
		return n, fmt.Errorf("write rows: %w", err)
	}
	if err := pw.Close(); err != nil {
		return n, fmt.Errorf("close parquet writer: %w", err)
	}
	return n, nil
}

// WriteFile creates path and writes projects to it.
func WriteFile(path string, projects []domain.Project) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}
	n, err := Write(f, projects)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("close %s: %w", path, cerr)
	}
	return n, err
}
