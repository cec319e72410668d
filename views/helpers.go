package views

import (
	"net/url"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/eringen/showroom/ui"
)

// PathEscape escapes a slug for use in a URL path segment.
func PathEscape(s string) string {
	return url.PathEscape(s)
}

// ProductPath is the detail page URL for a product slug.
func ProductPath(slug string) string {
	return "/product/" + PathEscape(slug) + "/"
}

// withQuery returns base with key set to value, keeping other parameters.
func withQuery(base string, q url.Values, key, value string) string {
	next := url.Values{}
	for k, v := range q {
		next[k] = v
	}
	if value == "" {
		next.Del(key)
	} else {
		next.Set(key, value)
	}
	if enc := next.Encode(); enc != "" {
		return base + "?" + enc
	}
	return base
}

// carouselControls renders prev/next links for a click carousel. The links
// carry the neighbouring index in ?i= so the carousel works without script.
func carouselControls(base, anchor string, c *ui.Cycle) g.Node {
	if c.Len() < 2 {
		return nil
	}
	link := func(i int) string {
		return base + "?i=" + strconv.Itoa(i) + "#" + anchor
	}
	return Div(
		Class("carousel-controls"),
		A(Href(link(c.PrevIndex())), Class("carousel-prev"), g.Attr("rel", "prev"), g.Attr("aria-label", "Previous"), g.Text("‹")),
		Span(Class("carousel-position"), g.Textf("%d / %d", c.Index()+1, c.Len())),
		A(Href(link(c.NextIndex())), Class("carousel-next"), g.Attr("rel", "next"), g.Attr("aria-label", "Next"), g.Text("›")),
	)
}

func activeClass(base string, active bool) string {
	if active {
		return base + " is-active"
	}
	return base
}

func image(src, alt, class string) g.Node {
	return Img(Src(src), Alt(alt), Class(class), g.Attr("loading", "lazy"))
}
