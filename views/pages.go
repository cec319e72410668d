package views

import (
	"bytes"

	"golang.org/x/text/message"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/eringen/showroom/brand"
	"github.com/eringen/showroom/catalog"
	"github.com/eringen/showroom/markdown"
	"github.com/eringen/showroom/ui"
)

// About renders the brand's about copy.
func About(c Chrome) g.Node {
	return page(c,
		Section(
			Class("about prose"),
			markdownNode(c.Brand.About),
		),
	)
}

func markdownNode(src string) g.Node {
	var buf bytes.Buffer
	if err := markdown.RenderMarkdown(&buf, src); err != nil {
		return nil
	}
	return g.Raw(buf.String())
}

// TeamData is the leadership page.
type TeamData struct {
	Chrome
	Founder catalog.Member
	Core    []catalog.Member
	// Carousel walks Core, positioned from ?i=.
	Carousel *ui.Cycle
}

// Team renders the leadership page.
func Team(d TeamData) g.Node {
	b := d.Brand
	p := Printer(b.Locale)
	var core g.Node
	if len(d.Core) > 0 && d.Carousel != nil {
		core = Section(
			ID("core-team"),
			Class("core-team"),
			Div(Class("carousel"), memberCard(d.Core[d.Carousel.Index()], b.Team.NoBio)),
			carouselControls("/team/", "core-team", d.Carousel),
			Ul(Class("member-row"), g.Map(d.Core, func(m catalog.Member) g.Node {
				return Li(Class("member-thumb"), image(m.ImageURL, m.Name, ""), Span(g.Text(m.Name)))
			})),
		)
	}
	return page(d.Chrome,
		Section(
			Class("team"),
			H1(g.Text(b.Team.Heading)),
			g.If(d.Founder.Name != "", Div(
				Class("founder"),
				Span(Class("eyebrow"), g.Text(p.Sprintf(MsgFounder))),
				memberCard(d.Founder, b.Team.NoBio),
			)),
			core,
		),
	)
}

func memberCard(m catalog.Member, noBio string) g.Node {
	bio := make([]g.Node, 0, len(m.Bio))
	for _, para := range m.Bio {
		bio = append(bio, P(g.Text(para)))
	}
	if len(bio) == 0 && noBio != "" {
		bio = append(bio, P(Class("muted"), g.Text(noBio)))
	}
	return Div(
		Class("member"),
		image(m.ImageURL, m.Name, "member-portrait"),
		H3(g.Text(m.Name)),
		g.If(m.Title != "", P(Class("member-title"), g.Text(m.Title))),
		g.Group(bio),
	)
}

// Contact renders the contact page. The form is not connected to anything.
func Contact(c Chrome) g.Node {
	p := Printer(c.Brand.Locale)
	info := c.Brand.Contact
	return page(c,
		Section(
			Class("contact"),
			H1(g.Text(info.Heading)),
			Dl(Class("contact-lines"), g.Map(info.Lines, func(l brand.ContactLine) g.Node {
				return g.Group([]g.Node{Dt(g.Text(l.Label)), Dd(g.Text(l.Value))})
			})),
			g.If(info.Form, contactForm(p.Sprintf)),
		),
	)
}

func contactForm(tr func(key message.Reference, args ...any) string) g.Node {
	field := func(name, label, kind string) g.Node {
		return Div(
			Class("field"),
			Label(For("contact-"+name), g.Text(tr(label))),
			Input(ID("contact-"+name), Name(name), Type(kind)),
		)
	}
	return Form(
		Class("contact-form"),
		g.Attr("data-unwired"),
		field("name", MsgName, "text"),
		field("email", MsgEmail, "email"),
		field("subject", MsgSubject, "text"),
		Div(
			Class("field"),
			Label(For("contact-message"), g.Text(tr(MsgMessage))),
			Textarea(ID("contact-message"), Name("message"), g.Attr("rows", "5")),
		),
		Button(Type("button"), Class("button"), g.Text(tr(MsgSend))),
	)
}
