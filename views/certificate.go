package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/eringen/showroom/catalog"
)

// CertificateData is the certificate lookup page, before or after a search.
type CertificateData struct {
	Chrome
	Number string
	// Result is set when a certificate was found.
	Result *catalog.Certificate
	// Message is a localized notice, such as "not found".
	Message string
}

// Certificate renders the lookup form and, when present, the result.
func Certificate(d CertificateData) g.Node {
	p := Printer(d.Brand.Locale)
	heading, intro := "", ""
	if c := d.Brand.Certificates; c != nil {
		heading, intro = c.Heading, c.Intro
	}
	return page(d.Chrome,
		Section(
			ID("certificate"),
			Class("certificate-lookup"),
			H1(g.Text(heading)),
			g.If(intro != "", P(Class("lead"), g.Text(intro))),
			Form(
				Method("post"),
				Action("/certificate/"),
				Class("lookup-form"),
				Input(Type("hidden"), Name("_csrf"), Value(d.CSRF)),
				Input(
					Type("text"),
					Name("number"),
					Value(d.Number),
					Placeholder(p.Sprintf(MsgCertificateNumber)),
					g.Attr("aria-label", p.Sprintf(MsgCertificateNumber)),
					g.Attr("autocomplete", "off"),
					Required(),
				),
				Input(
					Type("password"),
					Name("passcode"),
					Placeholder(p.Sprintf(MsgPasscode)),
					g.Attr("aria-label", p.Sprintf(MsgPasscode)),
					g.Attr("autocomplete", "off"),
					Required(),
				),
				Button(Type("submit"), Class("button"), g.Text(p.Sprintf(MsgSearch))),
			),
			g.If(d.Message != "", Div(Class("lookup-message"), g.Attr("role", "status"), P(g.Text(d.Message)))),
		),
		g.Iff(d.Result != nil, func() g.Node { return certificateResult(*d.Result, p.Sprintf(MsgCertificateHeading)) }),
	)
}

func certificateResult(c catalog.Certificate, eyebrow string) g.Node {
	return Article(
		ID("certificate-result"),
		Class("certificate-result"),
		g.If(c.ImageURL != "", Div(Class("certificate-media"), Img(Src(c.ImageURL), Alt(c.Title)))),
		Div(
			Class("certificate-body"),
			P(Class("eyebrow"), g.Text(eyebrow)),
			H2(g.Text(c.Title)),
			P(Class("certificate-number"), g.Text(c.Number)),
			g.If(c.Content != "", Div(Class("prose"), g.Raw(c.Content))),
		),
	)
}
