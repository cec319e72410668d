package showroom

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/eringen/showroom/brand"
	"github.com/eringen/showroom/catalog"
	"github.com/eringen/showroom/cms"
	"github.com/eringen/showroom/ui"
	"github.com/eringen/showroom/views"
)

const (
	// leadersOnHome is how many team members the landing page previews.
	leadersOnHome = 3
	// showcaseSize caps the featured products for brands without showcase images.
	showcaseSize = 12
)

func (a *App) chrome(c echo.Context, title string) views.Chrome {
	return views.Chrome{
		Brand:  a.Brand,
		Route:  c.Request().URL.Path,
		Title:  title,
		Timing: a.Config.Timing,
		CSRF:   CsrfToken(c),
	}
}

func isPartial(c echo.Context, name string) bool {
	return c.Request().Header.Get("HX-Request") == "true" && c.QueryParam("partial") == name
}

// cycle positions a click carousel over n items from the ?i= query.
// Missing or out-of-range indexes leave it at the first item.
func cycle(c echo.Context, n int) *ui.Cycle {
	cy := ui.NewCycle(n)
	if i, err := strconv.Atoi(c.QueryParam("i")); err == nil {
		cy.Select(i)
	}
	return cy
}

// listing returns the items of l. A failed fetch is logged and yields an
// empty list so the page still renders.
func (a *App) listing(ctx context.Context, l brand.Listing) []catalog.DisplayItem {
	nodes, err := a.Cache.Posts(ctx, l.Category, l.Count)
	if err != nil {
		a.Logger.Warn("fetch listing failed", zap.String("category", l.Category), zap.Error(err))
	}
	return catalog.Map(nodes, l.Rules(a.rewriter))
}

// members returns the leadership team: the gallery post's images when the
// brand has one and it yields anybody, the brand's fallback otherwise.
func (a *App) members(ctx context.Context) []catalog.Member {
	t := a.Brand.Team
	if t.GallerySlug != "" {
		doc, err := a.Cache.Gallery(ctx, t.GallerySlug)
		switch {
		case err != nil:
			a.Logger.Warn("fetch gallery failed", zap.String("slug", t.GallerySlug), zap.Error(err))
		default:
			if m := catalog.Members(cms.ExtractImages(doc), t.MemberTitle, a.rewriter); len(m) > 0 {
				return m
			}
		}
	}
	return t.Fallback
}

func (a *App) handleHome(c echo.Context) error {
	var (
		featured []catalog.DisplayItem
		leaders  []catalog.Member
	)
	g, ctx := errgroup.WithContext(c.Request().Context())
	g.Go(func() error {
		featured = a.listing(ctx, a.Brand.Collection)
		return nil
	})
	g.Go(func() error {
		leaders = a.members(ctx)
		return nil
	})
	_ = g.Wait()

	if len(leaders) > leadersOnHome {
		leaders = leaders[:leadersOnHome]
	}
	limit := len(a.Brand.Showcase)
	if limit == 0 {
		limit = showcaseSize
	}
	if len(featured) > limit {
		featured = featured[:limit]
	}
	n := max(len(a.Brand.Showcase), len(featured))
	return Render(c, a.Views.Home(views.HomeData{
		Chrome:   a.chrome(c, a.Brand.Name),
		Showcase: cycle(c, n),
		Featured: featured,
		Leaders:  leaders,
	}))
}

func (a *App) handleListing(base string, l brand.Listing, withDesigners bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		items := a.listing(c.Request().Context(), l)

		var designer func(catalog.DisplayItem) string
		var designers []brand.Designer
		if withDesigners && len(a.Brand.Designers) > 0 {
			designer = func(it catalog.DisplayItem) string { return it.Designer }
			designers = a.Brand.Designers
		}
		grid := ui.NewFilterGrid(items, func(it catalog.DisplayItem) string { return it.Category }, designer, l.Exclude)
		if d := c.QueryParam("designer"); d != "" && designer != nil {
			grid.SelectSecondary(d)
		} else {
			grid.SelectCategory(c.QueryParam("category"))
		}

		data := views.ListingData{
			Chrome:    a.chrome(c, l.Title),
			Listing:   l,
			BasePath:  base,
			Grid:      grid,
			Designers: designers,
		}
		if isPartial(c, "grid") {
			return Render(c, a.Views.Grid(data))
		}
		return Render(c, a.Views.Listing(data))
	}
}

// productSlug decodes the :slug parameter. Echo leaves it escaped when the
// request path carried escapes it had to preserve.
func productSlug(c echo.Context) string {
	raw := c.Param("slug")
	if s, err := url.PathUnescape(raw); err == nil {
		return s
	}
	return raw
}

func (a *App) handleProduct(c echo.Context) error {
	slug := productSlug(c)
	ctx := c.Request().Context()
	l := a.Brand.Collection

	var (
		node    cms.Node
		nodeErr error
		items   []catalog.DisplayItem
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		node, nodeErr = a.Cache.Post(gctx, slug)
		return nil
	})
	g.Go(func() error {
		items = a.listing(gctx, l)
		return nil
	})
	_ = g.Wait()

	if nodeErr != nil {
		if !errors.Is(nodeErr, cms.ErrNotFound) {
			a.Logger.Warn("fetch product failed", zap.String("slug", slug), zap.Error(nodeErr))
		}
		return RenderStatus(c, http.StatusNotFound, a.Views.ProductNotFound(a.chrome(c, l.Title), slug))
	}

	item := catalog.Detail(node, l.Rules(a.rewriter))
	related := catalog.Related(items, item.ID)
	return Render(c, a.Views.Product(views.ProductData{
		Chrome:   a.chrome(c, item.Name),
		Item:     item,
		Related:  related,
		Carousel: cycle(c, len(related)),
	}))
}

func (a *App) handleAbout(c echo.Context) error {
	return Render(c, a.Views.About(a.chrome(c, navLabel(a.Brand, "/about/"))))
}

func (a *App) handleTeam(c echo.Context) error {
	members := a.members(c.Request().Context())
	founder, core, _ := catalog.SplitTeam(members)
	return Render(c, a.Views.Team(views.TeamData{
		Chrome:   a.chrome(c, a.Brand.Team.Heading),
		Founder:  founder,
		Core:     core,
		Carousel: cycle(c, len(core)),
	}))
}

func (a *App) handleContact(c echo.Context) error {
	return Render(c, a.Views.Contact(a.chrome(c, a.Brand.Contact.Heading)))
}

func (a *App) handleCertificate(c echo.Context) error {
	return Render(c, a.Views.Certificate(views.CertificateData{
		Chrome: a.chrome(c, a.Brand.Certificates.Heading),
	}))
}

// handleCertificateLookup finds a certificate by number. The passcode is
// required but not checked: the CMS exposes nothing to check it against.
func (a *App) handleCertificateLookup(c echo.Context) error {
	locale := a.Brand.Locale
	number := strings.TrimSpace(c.FormValue("number"))
	passcode := strings.TrimSpace(c.FormValue("passcode"))
	data := views.CertificateData{
		Chrome: a.chrome(c, a.Brand.Certificates.Heading),
		Number: number,
	}

	if number == "" || passcode == "" {
		data.Message = views.T(locale, views.MsgCertificateRequired)
		return RenderStatus(c, http.StatusBadRequest, a.Views.Certificate(data))
	}

	// The attempt is claimed up front and given back unless the number turns
	// out not to exist; only misses count against the IP.
	refund, ok := a.limiter.Reserve(c.RealIP())
	if !ok {
		data.Message = views.T(locale, views.MsgTooManyLookups)
		return RenderStatus(c, http.StatusTooManyRequests, a.Views.Certificate(data))
	}

	node, err := a.Cache.Certificate(c.Request().Context(), a.Brand.Certificates.Category, number)
	if !errors.Is(err, cms.ErrNotFound) {
		refund()
	}
	switch {
	case errors.Is(err, cms.ErrNotFound):
		data.Message = views.T(locale, views.MsgCertificateNotFound)
		return RenderStatus(c, http.StatusNotFound, a.Views.Certificate(data))
	case err != nil:
		a.Logger.Warn("certificate lookup failed", zap.String("number", number), zap.Error(err))
		data.Message = views.T(locale, views.MsgCertificateError)
		return RenderStatus(c, http.StatusBadGateway, a.Views.Certificate(data))
	}

	cert := catalog.NewCertificate(number, node, a.rewriter)
	data.Result = &cert
	return Render(c, a.Views.Certificate(data))
}

func (a *App) handleRobots(c echo.Context) error {
	body := "User-agent: *\nAllow: /\n\nSitemap: " + BuildURL(a.Config.URL) + "sitemap.xml\n"
	return c.String(http.StatusOK, body)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.chrome(c, "")))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Logger.Error("server error", zap.String("uri", c.Request().RequestURI), zap.Error(err))
		_ = RenderStatus(c, code, a.Views.ServerError(a.chrome(c, "")))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

func navLabel(b brand.Brand, path string) string {
	for _, n := range b.Nav {
		if n.Path == path {
			return n.Label
		}
	}
	return b.Name
}
