package views

import (
	"bytes"
	"context"
	"strings"
	"testing"

	g "maragu.dev/gomponents"

	"github.com/eringen/showroom/brand"
	"github.com/eringen/showroom/catalog"
	"github.com/eringen/showroom/ui"
)

func mustBrand(t *testing.T, key string) brand.Brand {
	t.Helper()
	b, ok := brand.Lookup(key)
	if !ok {
		t.Fatalf("no brand %q", key)
	}
	return b
}

func renderNode(t *testing.T, n g.Node) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Component(n).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func assertContains(t *testing.T, html string, wants ...string) {
	t.Helper()
	for _, w := range wants {
		if !strings.Contains(html, w) {
			t.Errorf("output missing %q", w)
		}
	}
}

func assertNotContains(t *testing.T, html string, unwanted ...string) {
	t.Helper()
	for _, u := range unwanted {
		if strings.Contains(html, u) {
			t.Errorf("output unexpectedly contains %q", u)
		}
	}
}

func TestHomeRendersGateHeroAndVerticalNav(t *testing.T) {
	b := mustBrand(t, brand.HCFurniture)
	items := []catalog.DisplayItem{{ID: "sofa", Name: "Sofa", Category: "Sofas", ImageURL: "/s.jpg"}}
	c := ui.NewCycle(len(items))
	html := renderNode(t, Home(HomeData{
		Chrome:   Chrome{Brand: b, Route: "/", Title: b.Name},
		Showcase: c,
		Featured: items,
	}))

	assertContains(t, html,
		"<!doctype html>",
		`<title>HC Furniture Supply</title>`,
		`id="gate"`,
		`data-state="closed"`,
		`data-layout="vertical"`,
		`data-slides="3"`,
		`data-gate-fallback="1500"`,
		`data-slide-interval="5000"`,
		`class="scroll-locked"`,
		`href="/product/sofa/"`,
		"Modern Essence",
	)
	assertNotContains(t, html, `id="certificate"`)
}

func TestInnerPagesStartHorizontal(t *testing.T) {
	b := mustBrand(t, brand.CasaItalia)
	html := renderNode(t, About(Chrome{Brand: b, Route: "/about/", Title: "About"}))
	assertContains(t, html, `data-layout="horizontal"`, `<title>About | Casa Italia</title>`, `<h2 id="casa-italia">Casa Italia</h2>`)
	assertNotContains(t, html, `id="gate"`, "scroll-locked")
}

func TestHomeCertificateCallout(t *testing.T) {
	b := mustBrand(t, brand.Foreverwell)
	html := renderNode(t, Home(HomeData{Chrome: Chrome{Brand: b, Route: "/"}, Showcase: ui.NewCycle(0)}))
	assertContains(t, html, `lang="zh-Hans"`, `href="/certificate/"`, "鉴定证书查询", "证书查询")
}

func listing(t *testing.T, items []catalog.DisplayItem) ListingData {
	b := mustBrand(t, brand.CasaItalia)
	return ListingData{
		Chrome:    Chrome{Brand: b, Route: "/collection/"},
		Listing:   b.Collection,
		BasePath:  "/collection/",
		Grid:      ui.NewFilterGrid(items, func(it catalog.DisplayItem) string { return it.Category }, func(it catalog.DisplayItem) string { return it.Designer }, nil),
		Designers: b.Designers,
	}
}

func TestGridFilters(t *testing.T) {
	items := []catalog.DisplayItem{
		{ID: "a", Name: "Alpha", Category: "Sofas"},
		{ID: "b", Name: "Beta", Category: "Chairs"},
		{ID: "c", Name: "Gamma", Category: "Sofas"},
	}
	d := listing(t, items)
	d.Grid.SelectCategory("Chairs")
	html := renderNode(t, Grid(d))

	assertContains(t, html,
		`id="grid"`,
		`href="/collection/?category=Sofas"`,
		`data-partial="/collection/?category=Sofas&amp;partial=grid"`,
		`href="/collection/"`,
		"Beta",
	)
	assertNotContains(t, html, "Alpha", "Gamma", "<html")
}

func TestListingDesignerToggleLinks(t *testing.T) {
	d := listing(t, []catalog.DisplayItem{{ID: "a", Name: "Alpha", Category: "Sofas", Designer: "Piero Lissoni"}})
	d.Grid.SelectSecondary("Piero Lissoni")
	html := renderNode(t, Listing(d))

	// The open designer links back to the unfiltered grid.
	assertContains(t, html,
		`class="designer is-active"`,
		`href="/collection/?designer=Patricia+Urquiola"`,
		"Designed by Piero Lissoni",
	)
	assertNotContains(t, html, `href="/collection/?designer=Piero+Lissoni"`)
}

func TestGridEmptyState(t *testing.T) {
	d := listing(t, nil)
	html := renderNode(t, Grid(d))
	assertContains(t, html, MsgNoItems)
}

func TestProductRelatedCarousel(t *testing.T) {
	b := mustBrand(t, brand.CasaItalia)
	related := []catalog.DisplayItem{{ID: "r1", Name: "R1"}, {ID: "r2", Name: "R2"}, {ID: "r3", Name: "R3"}}
	c := ui.NewCycle(len(related))
	c.Select(2)
	html := renderNode(t, Product(ProductData{
		Chrome:   Chrome{Brand: b, Route: "/product/arco/"},
		Item:     catalog.DisplayItem{ID: "arco", Name: "Arco", Content: "<p>Body</p>", Designer: "Casa Italia"},
		Related:  related,
		Carousel: c,
	}))
	assertContains(t, html,
		"<p>Body</p>",
		`href="/product/arco/?i=1#related"`,
		`href="/product/arco/?i=0#related"`,
		"3 / 3",
	)
}

func TestProductNotFoundNamesSlug(t *testing.T) {
	b := mustBrand(t, brand.HCFurniture)
	html := renderNode(t, ProductNotFound(Chrome{Brand: b, Route: "/product/x/"}, "chaise-longue"))
	assertContains(t, html, "chaise-longue", `href="/collection/"`)
}

func TestCertificateLocalizedMessage(t *testing.T) {
	b := mustBrand(t, brand.Foreverwell)
	html := renderNode(t, Certificate(CertificateData{
		Chrome:  Chrome{Brand: b, Route: "/certificate/", CSRF: "tok"},
		Number:  "AB-1",
		Message: T(b.Locale, MsgCertificateNotFound),
	}))
	assertContains(t, html,
		"未找到相关证书信息，请核对证书编号。",
		`name="_csrf" value="tok"`,
		`value="AB-1"`,
		`placeholder="请输入防伪密码"`,
	)
	assertNotContains(t, html, `id="certificate-result"`)
}

func TestCertificateResult(t *testing.T) {
	b := mustBrand(t, brand.Foreverwell)
	html := renderNode(t, Certificate(CertificateData{
		Chrome: Chrome{Brand: b, Route: "/certificate/"},
		Result: &catalog.Certificate{Number: "AB-1", Title: "Vase", Content: "<p>Ming</p>"},
	}))
	assertContains(t, html, `id="certificate-result"`, "Vase", "<p>Ming</p>", "鉴定证书")
}

func TestTeamFallsBackToNoBio(t *testing.T) {
	b := mustBrand(t, brand.CasaItalia)
	core := []catalog.Member{{Name: "B"}, {Name: "C"}}
	html := renderNode(t, Team(TeamData{
		Chrome:   Chrome{Brand: b, Route: "/team/"},
		Founder:  catalog.Member{Name: "A", Bio: []string{"Founded it."}},
		Core:     core,
		Carousel: ui.NewCycle(len(core)),
	}))
	assertContains(t, html, "Founded it.", b.Team.NoBio, `href="/team/?i=1#core-team"`)
}

func TestContactFormIsUnwired(t *testing.T) {
	b := mustBrand(t, brand.HCFurniture)
	html := renderNode(t, Contact(Chrome{Brand: b, Route: "/contact/"}))
	assertContains(t, html, "data-unwired", `type="button"`, "info@hcfurniture.example")
	assertNotContains(t, html, `action=`)
}

func TestErrorPages(t *testing.T) {
	b := mustBrand(t, brand.HCFurniture)
	assertContains(t, renderNode(t, NotFound(Chrome{Brand: b})), MsgNotFoundTitle)
	assertContains(t, renderNode(t, ServerError(Chrome{Brand: b})), MsgServerErrorTitle)
}

func TestPrinterFallsBackToEnglish(t *testing.T) {
	if got := T("fr", MsgSearch); got != MsgSearch {
		t.Errorf("fr = %q, want English", got)
	}
	if got := T("not a tag!", MsgSearch); got != MsgSearch {
		t.Errorf("invalid tag = %q, want English", got)
	}
	if got := T("zh-CN", MsgSearch); got != "立即查询" {
		t.Errorf("zh-CN = %q", got)
	}
	if got := T("zh-Hans", MsgProductNotFound, "x"); got != `未找到名为 "x" 的藏品。` {
		t.Errorf("zh-Hans formatted = %q", got)
	}
}
