package cms

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// Rewriter turns absolute URLs that point at the CMS backend into
// path-relative ones, so browsers fetch them through the same-origin proxy.
type Rewriter struct {
	origins []string
}

// NewRewriter returns a rewriter for the given backend origins, for example
// "http://cms.internal:6124". Trailing slashes are ignored.
func NewRewriter(origins ...string) *Rewriter {
	r := &Rewriter{}
	for _, o := range origins {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o != "" {
			r.origins = append(r.origins, o)
		}
	}
	return r
}

// URL rewrites a single URL. Path-relative URLs and URLs on other hosts are
// returned unchanged.
func (r *Rewriter) URL(u string) string {
	if r == nil || u == "" || strings.HasPrefix(u, "/") {
		return u
	}
	for _, o := range r.origins {
		if !strings.HasPrefix(u, o) {
			continue
		}
		rest := u[len(o):]
		switch {
		case rest == "":
			return "/"
		case rest[0] == '/':
			return rest
		case rest[0] == '?' || rest[0] == '#':
			return "/" + rest
		}
		// Same prefix but a different host, e.g. origin:61240.
	}
	return u
}

var urlAttrs = map[string]bool{
	"src":    true,
	"href":   true,
	"poster": true,
}

// HTML rewrites backend URLs in src, href, poster and srcset attributes of
// doc. Everything else is passed through byte for byte.
func (r *Rewriter) HTML(doc string) string {
	if r == nil || len(r.origins) == 0 || doc == "" {
		return doc
	}
	var buf bytes.Buffer
	buf.Grow(len(doc))
	z := html.NewTokenizer(strings.NewReader(doc))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return buf.String()
		}
		raw := z.Raw()
		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			buf.Write(raw)
			continue
		}
		// Raw is only valid until the next call; copy before Token reuses it.
		raw = append([]byte(nil), raw...)
		tok := z.Token()
		changed := false
		for i, a := range tok.Attr {
			var v string
			switch {
			case urlAttrs[a.Key]:
				v = r.URL(a.Val)
			case a.Key == "srcset":
				v = r.srcset(a.Val)
			default:
				continue
			}
			if v != a.Val {
				tok.Attr[i].Val = v
				changed = true
			}
		}
		if changed {
			buf.WriteString(tok.String())
		} else {
			buf.Write(raw)
		}
	}
}

func (r *Rewriter) srcset(v string) string {
	parts := strings.Split(v, ",")
	changed := false
	for i, p := range parts {
		fields := strings.Fields(p)
		if len(fields) == 0 {
			continue
		}
		if u := r.URL(fields[0]); u != fields[0] {
			fields[0] = u
			changed = true
		}
		parts[i] = strings.Join(fields, " ")
	}
	if !changed {
		return v
	}
	return strings.Join(parts, ", ")
}
