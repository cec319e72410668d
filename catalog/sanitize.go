package catalog

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strict = bluemonday.StrictPolicy()
	rich   = richPolicy()
)

func richPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Globally()
	p.AllowAttrs("loading", "srcset", "sizes").OnElements("img")
	return p
}

// PlainText strips every tag from s, decodes entities and collapses
// whitespace. It is used for excerpts and meta descriptions.
func PlainText(s string) string {
	if s == "" {
		return ""
	}
	text := html.UnescapeString(strict.Sanitize(s))
	return strings.Join(strings.Fields(text), " ")
}

// RichContent sanitizes CMS-authored HTML for embedding in a page.
func RichContent(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return rich.Sanitize(s)
}
