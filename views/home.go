package views

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/eringen/showroom/brand"
	"github.com/eringen/showroom/catalog"
	"github.com/eringen/showroom/markdown"
	"github.com/eringen/showroom/ui"
)

// HomeData is the landing page.
type HomeData struct {
	Chrome
	// Showcase is the product showcase carousel, positioned from ?i=.
	Showcase *ui.Cycle
	Featured []catalog.DisplayItem
	Leaders  []catalog.Member
}

// Home renders the landing page.
func Home(d HomeData) g.Node {
	b := d.Brand
	p := Printer(b.Locale)
	return page(d.Chrome,
		gate(b),
		hero(b.Slides),
		Section(
			ID("intro"),
			Class("intro"),
			H1(g.Text(b.Name)),
			g.If(b.Tagline != "", P(Class("tagline"), g.Text(b.Tagline))),
			g.Raw(inlineMarkdown(b.Intro)),
		),
		showcase(b, d.Showcase, d.Featured, p.Sprintf(MsgExplore)),
		g.If(len(d.Leaders) > 0, Section(
			ID("leadership"),
			Class("leadership-preview"),
			sectionHeading(b.Team.Heading),
			Ul(Class("member-row"), g.Map(d.Leaders, func(m catalog.Member) g.Node {
				return Li(memberCard(m, ""))
			})),
			g.If(b.HasPath("/team/"), A(Href("/team/"), Class("button-outline"), g.Text(p.Sprintf(MsgMeetTheTeam)))),
		)),
		g.Iff(b.Certificates != nil, func() g.Node { return certificateCallout(b, p.Sprintf(MsgVerify)) }),
	)
}

func gate(b brand.Brand) g.Node {
	return Div(
		ID("gate"),
		Class("gate"),
		g.Attr("data-state", ui.RevealClosed.String()),
		Div(Class("gate-panel gate-panel-left")),
		Div(Class("gate-panel gate-panel-right")),
		Img(
			Src(b.GateImage),
			Alt(b.Name),
			Class("gate-image"),
			g.Attr("data-event", ui.EventGateReady),
		),
	)
}

func hero(slides []brand.Slide) g.Node {
	if len(slides) == 0 {
		return nil
	}
	frames := make([]g.Node, 0, len(slides))
	dots := make([]g.Node, 0, len(slides))
	for i, s := range slides {
		frames = append(frames, Figure(
			Class(activeClass("hero-slide", i == 0)),
			g.Attr("data-index", strconv.Itoa(i)),
			Img(Src(s.Image), Alt(s.Title)),
			FigCaption(
				H2(g.Text(s.Title)),
				g.If(s.Subtitle != "", P(g.Text(s.Subtitle))),
			),
		))
		dots = append(dots, Button(
			Type("button"),
			Class(activeClass("hero-dot", i == 0)),
			g.Attr("data-event", ui.EventSlideSelect),
			g.Attr("data-index", strconv.Itoa(i)),
			g.Attr("aria-label", s.Title),
		))
	}
	return Section(
		ID("hero"),
		Class("hero"),
		g.Attr("data-slides", strconv.Itoa(len(slides))),
		g.Group(frames),
		Div(Class("hero-dots"), g.Group(dots)),
	)
}

func showcase(b brand.Brand, c *ui.Cycle, featured []catalog.DisplayItem, cta string) g.Node {
	if c == nil || c.Len() == 0 {
		return nil
	}
	var current g.Node
	switch {
	case c.Index() < len(featured):
		current = productCard(featured[c.Index()], b.Locale)
	case c.Index() < len(b.Showcase):
		current = image(b.Showcase[c.Index()], b.Name, "showcase-image")
	}
	return Section(
		ID("showcase"),
		Class("showcase"),
		sectionHeading(b.Collection.Title),
		Div(Class("carousel"), g.Attr("data-index", strconv.Itoa(c.Index())), current),
		carouselControls("/", "showcase", c),
		A(Href("/collection/"), Class("button-outline"), g.Text(cta)),
	)
}

func certificateCallout(b brand.Brand, cta string) g.Node {
	return Section(
		ID("certificate"),
		Class("certificate-callout"),
		sectionHeading(b.Certificates.Heading),
		P(g.Text(b.Certificates.Intro)),
		A(Href("/certificate/"), Class("button"), g.Text(cta)),
	)
}

func inlineMarkdown(s string) string {
	if s == "" {
		return ""
	}
	out, err := markdown.Inline(s)
	if err != nil {
		return ""
	}
	return out
}
