package views

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/eringen/showroom/catalog"
	"github.com/eringen/showroom/ui"
)

// ProductData is a product detail page.
type ProductData struct {
	Chrome
	Item    catalog.DisplayItem
	Related []catalog.DisplayItem
	// Carousel walks Related, positioned from ?i=.
	Carousel *ui.Cycle
}

// Product renders a product detail page.
func Product(d ProductData) g.Node {
	p := Printer(d.Brand.Locale)
	it := d.Item
	return page(d.Chrome,
		Article(
			Class("product"),
			Div(Class("product-media"), Img(Src(it.ImageURL), Alt(it.Name))),
			Div(
				Class("product-body"),
				Span(Class("product-category"), g.Text(it.Category)),
				H1(g.Text(it.Name)),
				g.If(it.Collection != "", P(Class("product-collection"), g.Text(it.Collection))),
				g.If(it.Designer != "", P(Class("product-designer"), g.Text(p.Sprintf(MsgDesignedBy, it.Designer)))),
				g.If(it.Description != "", P(Class("product-description"), g.Text(it.Description))),
				g.If(it.Content != "", Div(Class("prose"), g.Raw(it.Content))),
			),
		),
		related(d, p.Sprintf(MsgRelated)),
	)
}

func related(d ProductData, heading string) g.Node {
	if len(d.Related) == 0 || d.Carousel == nil {
		return nil
	}
	c := d.Carousel
	// Show a window of up to four cards starting at the current index.
	window := make([]g.Node, 0, 4)
	for k := 0; k < len(d.Related) && k < 4; k++ {
		it := d.Related[(c.Index()+k)%len(d.Related)]
		window = append(window, Li(productCard(it, d.Brand.Locale)))
	}
	return Section(
		ID("related"),
		Class("related"),
		H2(g.Text(heading)),
		Ul(Class("cards carousel"), g.Attr("data-index", strconv.Itoa(c.Index())), g.Group(window)),
		carouselControls(ProductPath(d.Item.ID), "related", c),
	)
}

// ProductNotFound explains that no product has the requested slug.
func ProductNotFound(c Chrome, slug string) g.Node {
	p := Printer(c.Brand.Locale)
	return page(c,
		Section(
			Class("notice"),
			H1(g.Text(p.Sprintf(MsgNotFoundTitle))),
			P(g.Text(p.Sprintf(MsgProductNotFound, slug))),
			A(Href("/collection/"), Class("button"), g.Text(p.Sprintf(MsgBackToCollection))),
		),
	)
}
