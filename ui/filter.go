package ui

import (
	"slices"
	"strings"
)

// AllCategories is the category that disables category filtering.
const AllCategories = "All"

// FilterGrid filters a fixed list by either a category or a secondary
// facet (a designer, for instance), never both. The full list is never
// modified; Visible derives the shown items on every call.
type FilterGrid[T any] struct {
	items     []T
	category  func(T) string
	secondary func(T) string
	exclude   []string

	activeCategory  string
	activeSecondary string
}

// NewFilterGrid builds a grid over items. secondary may be nil when the grid
// has no secondary facet. exclude lists category names that are never
// offered as filters.
func NewFilterGrid[T any](items []T, category, secondary func(T) string, exclude []string) *FilterGrid[T] {
	return &FilterGrid[T]{
		items:          items,
		category:       category,
		secondary:      secondary,
		exclude:        exclude,
		activeCategory: AllCategories,
	}
}

// Categories returns All followed by each distinct item category in
// first-seen order, minus excluded names.
func (g *FilterGrid[T]) Categories() []string {
	out := []string{AllCategories}
	seen := map[string]bool{AllCategories: true}
	for _, it := range g.items {
		c := g.category(it)
		if c == "" || seen[c] || g.excluded(c) {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

func (g *FilterGrid[T]) excluded(c string) bool {
	for _, e := range g.exclude {
		if strings.EqualFold(e, c) {
			return true
		}
	}
	return false
}

// SelectCategory makes c the active filter and clears the secondary facet.
func (g *FilterGrid[T]) SelectCategory(c string) {
	if c == "" {
		c = AllCategories
	}
	g.activeCategory = c
	g.activeSecondary = ""
}

// SelectSecondary makes v the active filter and resets the category to All.
// Selecting the facet that is already active clears it.
func (g *FilterGrid[T]) SelectSecondary(v string) {
	g.activeCategory = AllCategories
	if v == "" || v == g.activeSecondary || g.secondary == nil {
		g.activeSecondary = ""
		return
	}
	g.activeSecondary = v
}

// ActiveCategory returns the selected category; All when a secondary facet is
// active.
func (g *FilterGrid[T]) ActiveCategory() string {
	return g.activeCategory
}

// ActiveSecondary returns the selected secondary facet, or "".
func (g *FilterGrid[T]) ActiveSecondary() string {
	return g.activeSecondary
}

// Visible returns the items that pass the active filter, in original order.
// The slice is the caller's to keep.
func (g *FilterGrid[T]) Visible() []T {
	switch {
	case g.activeSecondary != "":
		return g.keep(func(it T) bool { return g.secondary(it) == g.activeSecondary })
	case g.activeCategory == AllCategories:
		return slices.Clone(g.items)
	default:
		return g.keep(func(it T) bool { return g.category(it) == g.activeCategory })
	}
}

func (g *FilterGrid[T]) keep(ok func(T) bool) []T {
	out := make([]T, 0, len(g.items))
	for _, it := range g.items {
		if ok(it) {
			out = append(out, it)
		}
	}
	return out
}

// Len returns the size of the unfiltered list.
func (g *FilterGrid[T]) Len() int {
	return len(g.items)
}
