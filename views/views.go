// Package views renders the site's pages. Pages are built with gomponents
// and handed to the server as templ components.
package views

import (
	"context"
	"io"
	"strconv"
	"time"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/eringen/showroom/brand"
	"github.com/eringen/showroom/ui"
)

// Landing is the route that opens with the gate and the vertical nav.
const Landing = "/"

// Chrome is what every full page needs besides its own content.
type Chrome struct {
	Brand       brand.Brand
	Route       string
	Title       string
	Description string
	Timing      ui.Timing
	CSRF        string
}

// Component adapts a gomponents node to templ.
func Component(n g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return n.Render(w)
	})
}

func (c Chrome) title() string {
	if c.Title == "" || c.Title == c.Brand.Name {
		return c.Brand.Name
	}
	return c.Title + " | " + c.Brand.Name
}

func (c Chrome) lang() string {
	if c.Brand.Locale == "" {
		return "en"
	}
	return c.Brand.Locale
}

func ms(d time.Duration) string {
	return strconv.FormatInt(d.Milliseconds(), 10)
}

// page wraps body in the document shell: head, nav bar and footer.
func page(c Chrome, body ...g.Node) g.Node {
	t := c.Timing.WithDefaults()
	return Doctype(
		HTML(
			Lang(c.lang()),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(c.title())),
				g.If(c.Description != "", Meta(Name("description"), Content(c.Description))),
				Link(Rel("stylesheet"), Href("/public/styles.css")),
				Script(Src("/public/showroom.js"), Defer()),
			),
			Body(
				g.Attr("data-route", c.Route),
				g.Attr("data-landing", Landing),
				g.Attr("data-live", "/live/"),
				g.Attr("data-gate-fallback", ms(t.GateFallback)),
				g.Attr("data-gate-delay", ms(t.GateDelay)),
				g.Attr("data-gate-duration", ms(t.GateDuration)),
				g.Attr("data-slide-interval", ms(t.SlideInterval)),
				g.If(c.Route == Landing, Class("scroll-locked")),
				navBar(c),
				Main(ID("main"), g.Group(body)),
				footer(c),
			),
		),
	)
}

func navBar(c Chrome) g.Node {
	layout := ui.InitialLayout(c.Route, Landing)
	links := make([]g.Node, 0, len(c.Brand.Nav))
	mobile := make([]g.Node, 0, len(c.Brand.Nav))
	for _, item := range c.Brand.Nav {
		current := isCurrent(c.Route, item.Path)
		links = append(links, A(
			Href(item.Path),
			Class("nav-link"),
			g.If(current, g.Attr("aria-current", "page")),
			g.Text(item.Label),
		))
		mobile = append(mobile, Li(A(
			Href(item.Path),
			g.Attr("data-event", ui.EventNavSelect),
			g.Attr("data-path", item.Path),
			g.If(current, g.Attr("aria-current", "page")),
			g.Text(item.Label),
		)))
	}
	return Header(
		Class("site-header"),
		A(Href("/"), Class("brand-mark"), g.Text(c.Brand.Name)),
		Nav(
			ID("site-nav"),
			Class("nav nav-"+layout.String()),
			g.Attr("data-layout", layout.String()),
			g.Group(links),
		),
		Button(
			Type("button"),
			Class("nav-toggle"),
			g.Attr("data-event", ui.EventMenuToggle),
			g.Attr("aria-controls", "mobile-menu"),
			g.Attr("aria-expanded", "false"),
			Span(Class("sr-only"), g.Text("Menu")),
		),
		Div(
			ID("mobile-menu"),
			Class("mobile-menu"),
			g.Attr("hidden"),
			Ul(g.Group(mobile)),
		),
	)
}

func isCurrent(route, path string) bool {
	if path == Landing {
		return route == Landing
	}
	return route == path || route+"/" == path
}

func footer(c Chrome) g.Node {
	return Footer(
		Class("site-footer"),
		P(g.Text(c.Brand.Footer)),
	)
}

func sectionHeading(text string) g.Node {
	if text == "" {
		return nil
	}
	return H2(Class("section-heading"), g.Text(text))
}
