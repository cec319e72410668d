package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// NotFound is the 404 page.
func NotFound(c Chrome) g.Node {
	p := Printer(c.Brand.Locale)
	return page(c, notice(p.Sprintf(MsgNotFoundTitle), p.Sprintf(MsgNotFoundBody)))
}

// ServerError is the 5xx page.
func ServerError(c Chrome) g.Node {
	p := Printer(c.Brand.Locale)
	return page(c, notice(p.Sprintf(MsgServerErrorTitle), p.Sprintf(MsgServerErrorBody)))
}

func notice(title, body string) g.Node {
	return Section(
		Class("notice"),
		H1(g.Text(title)),
		P(g.Text(body)),
		A(Href("/"), Class("button"), g.Text("←")),
	)
}
