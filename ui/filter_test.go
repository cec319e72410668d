package ui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type piece struct {
	name     string
	category string
	designer string
}

func pieceCategory(p piece) string { return p.category }
func pieceDesigner(p piece) string { return p.designer }

func names(ps []piece) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.name
	}
	return out
}

func samplePieces() []piece {
	return []piece{
		{"Arco", "Lighting", "Castiglioni"},
		{"Wassily", "Seating", "Breuer"},
		{"Cesca", "Seating", "Breuer"},
		{"Tulip", "Tables", "Saarinen"},
		{"Atollo", "Lighting", "Magistretti"},
	}
}

func TestFilterGridThreePosts(t *testing.T) {
	items := []piece{
		{"one", "Sofas", ""},
		{"two", "Chairs", ""},
		{"three", "Sofas", ""},
	}
	g := NewFilterGrid(items, pieceCategory, pieceDesigner, nil)

	if diff := cmp.Diff([]string{"one", "two", "three"}, names(g.Visible())); diff != "" {
		t.Fatalf("initial visible mismatch (-want +got):\n%s", diff)
	}

	g.SelectSecondary("someone")
	g.SelectCategory("Chairs")
	if diff := cmp.Diff([]string{"two"}, names(g.Visible())); diff != "" {
		t.Fatalf("category filter mismatch (-want +got):\n%s", diff)
	}
	if g.ActiveSecondary() != "" {
		t.Fatalf("category selection must clear the secondary filter, got %q", g.ActiveSecondary())
	}
	if g.Len() != 3 {
		t.Fatalf("full list mutated: len %d", g.Len())
	}
}

func TestFilterGridCategories(t *testing.T) {
	items := append(samplePieces(), piece{"Shelf", "products", ""})
	g := NewFilterGrid(items, pieceCategory, nil, []string{"Products"})
	want := []string{"All", "Lighting", "Seating", "Tables"}
	if diff := cmp.Diff(want, g.Categories()); diff != "" {
		t.Fatalf("categories mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterGridSecondaryResetsCategory(t *testing.T) {
	g := NewFilterGrid(samplePieces(), pieceCategory, pieceDesigner, nil)

	g.SelectCategory("Lighting")
	g.SelectSecondary("Breuer")
	if g.ActiveCategory() != AllCategories {
		t.Fatalf("category = %q, want All", g.ActiveCategory())
	}
	if diff := cmp.Diff([]string{"Wassily", "Cesca"}, names(g.Visible())); diff != "" {
		t.Fatalf("designer filter mismatch (-want +got):\n%s", diff)
	}

	g.SelectSecondary("Breuer")
	if g.ActiveSecondary() != "" {
		t.Fatalf("second click should clear the designer filter")
	}
	if len(g.Visible()) != 5 {
		t.Fatalf("visible = %d after clearing, want 5", len(g.Visible()))
	}
}

func TestFilterGridWithoutSecondary(t *testing.T) {
	g := NewFilterGrid(samplePieces(), pieceCategory, nil, nil)
	g.SelectSecondary("Breuer")
	if g.ActiveSecondary() != "" {
		t.Fatalf("grid without a secondary facet accepted one")
	}
}

func TestFilterGridUnknownCategoryIsEmpty(t *testing.T) {
	g := NewFilterGrid(samplePieces(), pieceCategory, pieceDesigner, nil)
	g.SelectCategory("Rugs")
	if got := g.Visible(); len(got) != 0 {
		t.Fatalf("visible = %v, want none", names(got))
	}
	g.SelectCategory("")
	if g.ActiveCategory() != AllCategories {
		t.Fatalf("empty category should reset to All")
	}
}

func TestFilterGridVisibleIsACopy(t *testing.T) {
	g := NewFilterGrid(samplePieces(), pieceCategory, pieceDesigner, nil)

	all := g.Visible()
	all[0] = piece{"Replaced", "Rugs", "Nobody"}
	_ = append(all[:1], piece{"Appended", "Rugs", "Nobody"})

	want := names(samplePieces())
	if diff := cmp.Diff(want, names(g.Visible())); diff != "" {
		t.Fatalf("grid changed through Visible (-want +got):\n%s", diff)
	}
	g.SelectCategory("Rugs")
	if got := g.Visible(); len(got) != 0 {
		t.Fatalf("visible = %v, want none", names(got))
	}
}
