package showroom

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eringen/showroom/brand"
	"github.com/eringen/showroom/catalog"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// SitemapURL is one <url> entry.
type SitemapURL struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type routeHint struct {
	changeFreq string
	priority   string
}

// routeHints are the crawl hints per static route. Unlisted routes get the
// defaultHint.
var routeHints = map[string]routeHint{
	"/":             {"daily", "1.0"},
	"/collection/":  {"weekly", "0.9"},
	"/projects/":    {"monthly", "0.8"},
	"/about/":       {"monthly", "0.8"},
	"/team/":        {"monthly", "0.8"},
	"/certificate/": {"monthly", "0.6"},
	"/contact/":     {"yearly", "0.5"},
}

var (
	defaultHint = routeHint{"monthly", "0.5"}
	productHint = routeHint{"weekly", "0.8"}
)

// BuildSitemap lists the brand's static routes, in nav order with the
// landing page first, followed by one URL per product.
func BuildSitemap(base string, b brand.Brand, products []catalog.DisplayItem) []SitemapURL {
	seen := map[string]bool{}
	var urls []SitemapURL
	add := func(path string, h routeHint) {
		if seen[path] {
			return
		}
		seen[path] = true
		loc := BuildURL(base)
		if path != "/" {
			loc = BuildURL(base, strings.Trim(path, "/"))
		}
		urls = append(urls, SitemapURL{Loc: loc, ChangeFreq: h.changeFreq, Priority: h.priority})
	}

	add("/", routeHints["/"])
	for _, n := range b.Nav {
		h, ok := routeHints[n.Path]
		if !ok {
			h = defaultHint
		}
		add(n.Path, h)
	}
	for _, p := range products {
		if p.ID == "" {
			continue
		}
		add("/product/"+p.ID+"/", productHint)
	}
	return urls
}

// WriteSitemap writes the sitemap document for urls to w.
func WriteSitemap(w io.Writer, urls []SitemapURL) error {
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(sitemap); err != nil {
		return fmt.Errorf("showroom: encode sitemap: %w", err)
	}
	return nil
}

// Sitemap writes the site's sitemap to w, listing the collection's products.
func (a *App) Sitemap(ctx context.Context, w io.Writer) error {
	products := a.listing(ctx, a.Brand.Collection)
	return WriteSitemap(w, BuildSitemap(a.Config.URL, a.Brand, products))
}

func (a *App) handleSitemap(c echo.Context) error {
	var buf bytes.Buffer
	if err := a.Sitemap(c.Request().Context(), &buf); err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "application/xml; charset=utf-8", buf.Bytes())
}
