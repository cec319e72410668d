package views

import (
	"net/url"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/eringen/showroom/brand"
	"github.com/eringen/showroom/catalog"
	"github.com/eringen/showroom/ui"
)

// ListingData is a filterable grid page: the collection or the projects.
type ListingData struct {
	Chrome
	Listing   brand.Listing
	BasePath  string
	Grid      *ui.FilterGrid[catalog.DisplayItem]
	Designers []brand.Designer
}

// Listing renders a full listing page.
func Listing(d ListingData) g.Node {
	p := Printer(d.Brand.Locale)
	return page(d.Chrome,
		Section(
			Class("listing"),
			H1(g.Text(d.Listing.Title)),
			g.If(d.Listing.Intro != "", P(Class("listing-intro"), g.Text(d.Listing.Intro))),
			g.If(len(d.Designers) > 0, designerAccordion(d, p.Sprintf(MsgDesigners))),
			Grid(d),
		),
	)
}

// Grid renders the category filters and the visible items. It is also
// served on its own, with an HX-Request header and partial=grid, so the
// client can swap #grid in place.
func Grid(d ListingData) g.Node {
	p := Printer(d.Brand.Locale)
	filters := make([]g.Node, 0)
	for _, c := range d.Grid.Categories() {
		label := c
		value := c
		if c == ui.AllCategories {
			label = p.Sprintf(MsgAllCategories)
			value = ""
		}
		active := d.Grid.ActiveSecondary() == "" && d.Grid.ActiveCategory() == c
		filters = append(filters, Li(A(
			Href(filterHref(d, "category", value)),
			Class(activeClass("filter", active)),
			g.Attr("data-partial", partialHref(d, "category", value)),
			g.If(active, g.Attr("aria-current", "true")),
			g.Text(label),
		)))
	}
	items := d.Grid.Visible()
	return Div(
		ID("grid"),
		Class("grid-section"),
		Ul(Class("filters"), g.Group(filters)),
		g.If(len(items) == 0, P(Class("empty"), g.Text(p.Sprintf(MsgNoItems)))),
		Ul(Class("cards"), g.Map(items, func(it catalog.DisplayItem) g.Node {
			return Li(productCard(it, d.Brand.Locale))
		})),
	)
}

// filterHref links to the listing with a single filter applied. Category
// and designer filters never combine, so other filter parameters are
// dropped.
func filterHref(d ListingData, key, value string) string {
	return withQuery(d.BasePath, nil, key, value)
}

// partialHref is filterHref asking for the grid fragment only.
func partialHref(d ListingData, key, value string) string {
	q := url.Values{"partial": {"grid"}}
	return withQuery(d.BasePath, q, key, value)
}

func designerAccordion(d ListingData, heading string) g.Node {
	entries := make([]g.Node, 0, len(d.Designers))
	for _, des := range d.Designers {
		active := d.Grid.ActiveSecondary() == des.Name
		target := des.Name
		if active {
			// Choosing the open designer again closes it.
			target = ""
		}
		entries = append(entries, Li(
			Class(activeClass("designer", active)),
			A(
				Href(filterHref(d, "designer", target)),
				g.Attr("data-partial", partialHref(d, "designer", target)),
				image(des.Image, des.Name, "designer-portrait"),
				Span(Class("designer-name"), g.Text(des.Name)),
			),
		))
	}
	return Section(
		Class("designers"),
		H2(g.Text(heading)),
		Ul(Class("accordion"), g.Group(entries)),
	)
}

func productCard(it catalog.DisplayItem, locale string) g.Node {
	return Article(
		Class("card"),
		A(
			Href(ProductPath(it.ID)),
			image(it.ImageURL, it.Name, "card-image"),
			Div(
				Class("card-body"),
				Span(Class("card-category"), g.Text(it.Category)),
				H3(Class("card-title"), g.Text(it.Name)),
				g.If(it.Collection != "", P(Class("card-collection"), g.Text(it.Collection))),
				g.If(it.Designer != "", P(Class("card-designer"), g.Text(T(locale, MsgDesignedBy, it.Designer)))),
			),
		),
	)
}
