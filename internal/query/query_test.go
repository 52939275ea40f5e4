package query

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"portfolio-gallery/internal/domain"
)

func sample() []domain.Project {
	return []domain.Project{
		{ID: 1, Name: "Alpha", Category: "X", OneLiner: "first", TechStack: []string{"React"}},
		{ID: 2, Name: "Beta", Category: "Y", OneLiner: "second", TechStack: []string{"React", "Vue"}},
		{ID: 3, Name: "Gamma Portal", Category: "X", OneLiner: "public data viewer", TechStack: []string{"Go"}},
		{ID: 4, Name: "Straße", Category: "y", OneLiner: "street map", TechStack: nil},
	}
}

func ids(projects []domain.Project) []int {
	out := make([]int, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name string
		q    Query
		want []int
	}{
		{name: "empty query all categories", q: Query{Category: AllCategories}, want: []int{1, 2, 3, 4}},
		{name: "empty category means all", q: Query{}, want: []int{1, 2, 3, 4}},
		{name: "tech match is case insensitive", q: Query{Text: "react", Category: AllCategories}, want: []int{1, 2}},
		{name: "category only", q: Query{Category: "Y"}, want: []int{2}},
		{name: "category is case sensitive", q: Query{Category: "x"}, want: []int{}},
		{name: "unknown category", q: Query{Category: "Z"}, want: []int{}},
		{name: "name substring", q: Query{Text: "PORTAL", Category: AllCategories}, want: []int{3}},
		{name: "one-liner substring", q: Query{Text: "Second", Category: AllCategories}, want: []int{2}},
		{name: "text and category combined", q: Query{Text: "react", Category: "X"}, want: []int{1}},
		{name: "no match", q: Query{Text: "zzz", Category: AllCategories}, want: []int{}},
		{name: "whitespace is literal", q: Query{Text: " ", Category: AllCategories}, want: []int{3, 4}},
		{name: "case folding", q: Query{Text: "STRASSE", Category: AllCategories}, want: []int{4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter(sample(), tt.q))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Filter(%+v) mismatch (-want +got):\n%s", tt.q, diff)
			}
		})
	}
}

func TestFilter_IsOrderedSubsequence(t *testing.T) {
	all := sample()
	for _, q := range []Query{
		{Text: "a", Category: AllCategories},
		{Text: "e", Category: "X"},
		{Text: "", Category: "Y"},
	} {
		got := Filter(all, q)
		i := 0
		for _, p := range got {
			for i < len(all) && all[i].ID != p.ID {
				i++
			}
			if i == len(all) {
				t.Fatalf("Filter(%+v) is not an ordered subsequence: %v", q, ids(got))
			}
			i++
		}
	}
}

func TestFilter_Idempotent(t *testing.T) {
	q := Query{Text: "re", Category: AllCategories}
	once := Filter(sample(), q)
	twice := Filter(once, q)
	if diff := cmp.Diff(ids(once), ids(twice)); diff != "" {
		t.Fatalf("Filter not idempotent (-once +twice):\n%s", diff)
	}
}

func TestFilter_DoesNotReorder(t *testing.T) {
	all := sample()
	got := Filter(all, Query{Category: AllCategories})
	if diff := cmp.Diff(all, got); diff != "" {
		t.Fatalf("unexpected result (-want +got):\n%s", diff)
	}
}
