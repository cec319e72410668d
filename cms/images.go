package cms

import (
	"strings"

	"golang.org/x/net/html"
)

// Image is an <img> element found in post content.
type Image struct {
	Src string
	Alt string
}

// ExtractImages returns every <img> in doc, in document order. Attribute
// order and quoting style do not matter. Images without a src are skipped.
func ExtractImages(doc string) []Image {
	var out []Image
	z := html.NewTokenizer(strings.NewReader(doc))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return out
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			if string(name) != "img" || !hasAttr {
				continue
			}
			var img Image
			for {
				key, val, more := z.TagAttr()
				switch string(key) {
				case "src":
					img.Src = strings.TrimSpace(string(val))
				case "alt":
					img.Alt = strings.TrimSpace(string(val))
				}
				if !more {
					break
				}
			}
			if img.Src != "" {
				out = append(out, img)
			}
		}
	}
}
