// Package catalog maps raw CMS nodes to the flat records the pages render.
// Every function here is total: missing or malformed optional fields fall
// back to defaults instead of failing the mapping.
package catalog

import (
	"fmt"
	"strings"

	"github.com/eringen/showroom/cms"
)

const (
	// DefaultCategory is used when a node has no displayable category.
	DefaultCategory = "General"
	// Placeholder is the image shown for nodes without a featured image.
	Placeholder = "/images/placeholder.png"
	// Uncategorized is the CMS's catch-all term. It is never displayed.
	Uncategorized = "Uncategorized"
)

// URLRewriter rewrites backend URLs for the browser. *cms.Rewriter
// implements it.
type URLRewriter interface {
	URL(string) string
	HTML(string) string
}

type identity struct{}

func (identity) URL(s string) string  { return s }
func (identity) HTML(s string) string { return s }

// DisplayItem is a product or project card.
type DisplayItem struct {
	ID          string
	Name        string
	Category    string
	Collection  string
	ImageURL    string
	Designer    string
	Description string
	// Content is sanitized HTML, safe to embed as is.
	Content string
}

// Rules are the per-listing mapping rules.
type Rules struct {
	// Exclude lists container category names that are never displayed,
	// compared case-insensitively. Uncategorized is always excluded.
	Exclude []string
	// DefaultCategory replaces DefaultCategory when set.
	DefaultCategory string
	// CollectionFormat renders the collection label from the category,
	// e.g. "The %s Collection". Empty leaves the label blank.
	CollectionFormat string
	// Designer is the designer credited on every item, if any.
	Designer string
	// Description is used by Detail when the excerpt is empty.
	Description string
	Rewrite     URLRewriter
}

func (r Rules) rewriter() URLRewriter {
	if r.Rewrite == nil {
		return identity{}
	}
	return r.Rewrite
}

func (r Rules) exclusions() []string {
	return append([]string{Uncategorized}, r.Exclude...)
}

func (r Rules) defaultCategory() string {
	if r.DefaultCategory != "" {
		return r.DefaultCategory
	}
	return DefaultCategory
}

// ResolveCategory returns the first name not in exclude, or def when every
// name is excluded or names is empty. Blank names are skipped.
func ResolveCategory(names, exclude []string, def string) string {
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || contains(exclude, n) {
			continue
		}
		return n
	}
	return def
}

func contains(list []string, s string) bool {
	for _, e := range list {
		if strings.EqualFold(strings.TrimSpace(e), s) {
			return true
		}
	}
	return false
}

// Map converts nodes to display items, preserving order. A nil or empty
// input yields an empty, non-nil slice.
func Map(nodes []cms.Node, r Rules) []DisplayItem {
	out := make([]DisplayItem, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, Item(n, r))
	}
	return out
}

// Item converts a single node to a card.
func Item(n cms.Node, r Rules) DisplayItem {
	category := ResolveCategory(n.CategoryNames(), r.exclusions(), r.defaultCategory())
	item := DisplayItem{
		ID:       n.Slug,
		Name:     strings.TrimSpace(n.Title),
		Category: category,
		ImageURL: imageURL(n.FeaturedImageURL, r.rewriter()),
		Designer: r.Designer,
	}
	if r.CollectionFormat != "" {
		item.Collection = fmt.Sprintf(r.CollectionFormat, category)
	}
	return item
}

// Detail converts a node for its own page: on top of Item it carries a
// plain-text description and the sanitized body.
func Detail(n cms.Node, r Rules) DisplayItem {
	item := Item(n, r)
	item.Description = PlainText(n.Excerpt)
	if item.Description == "" {
		item.Description = r.Description
	}
	item.Content = RichContent(r.rewriter().HTML(n.Content))
	return item
}

// Related returns items without the one whose ID is current.
func Related(items []DisplayItem, current string) []DisplayItem {
	out := make([]DisplayItem, 0, len(items))
	for _, it := range items {
		if it.ID == current {
			continue
		}
		out = append(out, it)
	}
	return out
}

func imageURL(src string, rw URLRewriter) string {
	src = strings.TrimSpace(src)
	if src == "" {
		return Placeholder
	}
	return rw.URL(src)
}
