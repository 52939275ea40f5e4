package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-gallery/internal/catalogue"
	"portfolio-gallery/internal/domain"
)

// stubWriter keeps rows by position, like the projects table.
type stubWriter struct {
	rows      map[int]domain.Project
	order     []int
	failAt    int
	deleteErr error
}

func newStubWriter() *stubWriter {
	return &stubWriter{rows: make(map[int]domain.Project)}
}

func (s *stubWriter) Upsert(_ context.Context, p domain.Project) (*domain.Project, error) {
	if s.failAt > 0 && p.ID == s.failAt {
		return nil, errors.New("boom")
	}
	s.rows[p.ID] = p
	s.order = append(s.order, p.ID)
	return &p, nil
}

func (s *stubWriter) DeleteAfter(_ context.Context, position int) (int64, error) {
	if s.deleteErr != nil {
		return 0, s.deleteErr
	}
	var removed int64
	for id := range s.rows {
		if id > position {
			delete(s.rows, id)
			removed++
		}
	}
	return removed, nil
}

func smallCatalogue(t *testing.T, names ...string) *catalogue.Catalogue {
	t.Helper()
	projects := make([]domain.Project, len(names))
	for i, n := range names {
		projects[i] = domain.Project{Name: n, Category: "X", Images: []string{"/a.jpg"}}
	}
	cat, err := catalogue.New(projects)
	require.NoError(t, err)
	return cat
}

func TestApply_WritesCatalogueInOrder(t *testing.T) {
	cat, err := catalogue.Embedded()
	require.NoError(t, err)

	w := newStubWriter()
	res, err := Apply(context.Background(), w, cat)
	require.NoError(t, err)
	assert.Equal(t, cat.Len(), res.Written)
	assert.Zero(t, res.Removed)
	for i, id := range w.order {
		assert.Equal(t, i+1, id)
	}
}

func TestApply_RemovesRowsPastShorterCatalogue(t *testing.T) {
	w := newStubWriter()
	_, err := Apply(context.Background(), w, smallCatalogue(t, "Alpha", "Beta", "Gamma"))
	require.NoError(t, err)

	res, err := Apply(context.Background(), w, smallCatalogue(t, "Delta"))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Written)
	assert.Equal(t, int64(2), res.Removed)
	require.Len(t, w.rows, 1)
	assert.Equal(t, "Delta", w.rows[1].Name)
}

func TestApply_StopsOnError(t *testing.T) {
	cat, err := catalogue.Embedded()
	require.NoError(t, err)

	w := newStubWriter()
	w.failAt = 3
	res, err := Apply(context.Background(), w, cat)
	require.Error(t, err)
	assert.Equal(t, 2, res.Written)
	assert.Contains(t, err.Error(), "upsert project 3")
}

func TestApply_PropagatesDeleteError(t *testing.T) {
	w := newStubWriter()
	w.deleteErr = errors.New("boom")
	_, err := Apply(context.Background(), w, smallCatalogue(t, "Alpha"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "remove projects after 1")
}
