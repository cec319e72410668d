// Package showroom serves brochure websites for furniture and collectibles
// brands, built with Go, Echo, and templ. Content comes from a headless CMS
// over GraphQL; each site is a brand profile rendered by the same server.
//
// Pages are rendered through the ViewFuncs struct, so a site can replace
// any of them while showroom keeps the handler logic, middleware, content
// cache, and live page sessions.
package showroom

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eringen/showroom/brand"
	"github.com/eringen/showroom/cms"
	"github.com/eringen/showroom/views"
)

// ViewFuncs holds the components the framework calls when rendering pages.
type ViewFuncs struct {
	Home            func(d views.HomeData) templ.Component
	Listing         func(d views.ListingData) templ.Component
	Grid            func(d views.ListingData) templ.Component
	Product         func(d views.ProductData) templ.Component
	ProductNotFound func(c views.Chrome, slug string) templ.Component
	About           func(c views.Chrome) templ.Component
	Team            func(d views.TeamData) templ.Component
	Contact         func(c views.Chrome) templ.Component
	Certificate     func(d views.CertificateData) templ.Component
	NotFound        func(c views.Chrome) templ.Component
	ServerError     func(c views.Chrome) templ.Component
}

// DefaultViews returns the built-in pages.
func DefaultViews() ViewFuncs {
	return ViewFuncs{
		Home:    func(d views.HomeData) templ.Component { return views.Component(views.Home(d)) },
		Listing: func(d views.ListingData) templ.Component { return views.Component(views.Listing(d)) },
		Grid:    func(d views.ListingData) templ.Component { return views.Component(views.Grid(d)) },
		Product: func(d views.ProductData) templ.Component { return views.Component(views.Product(d)) },
		ProductNotFound: func(c views.Chrome, slug string) templ.Component {
			return views.Component(views.ProductNotFound(c, slug))
		},
		About:       func(c views.Chrome) templ.Component { return views.Component(views.About(c)) },
		Team:        func(d views.TeamData) templ.Component { return views.Component(views.Team(d)) },
		Contact:     func(c views.Chrome) templ.Component { return views.Component(views.Contact(c)) },
		Certificate: func(d views.CertificateData) templ.Component { return views.Component(views.Certificate(d)) },
		NotFound:    func(c views.Chrome) templ.Component { return views.Component(views.NotFound(c)) },
		ServerError: func(c views.Chrome) templ.Component { return views.Component(views.ServerError(c)) },
	}
}

// App is the central showroom application. It wires together the CMS
// client, content cache, handlers, middleware, and views.
type App struct {
	Config Config
	Brand  brand.Brand
	Echo   *echo.Echo
	CMS    *cms.Client
	Cache  *ContentCache
	Views  ViewFuncs
	Logger *zap.Logger

	rewriter     *cms.Rewriter
	limiter      *LookupLimiter
	live         *liveSessions
	httpClient   *http.Client
	customRoutes []func(*App)
}

// New creates an App serving cfg's brand with the given views. The returned
// App is fully routed; use Handler for tests or Start to listen.
func New(cfg Config, v ViewFuncs, opts ...Option) (*App, error) {
	cfg.setDefaults()
	site, ok := brand.Lookup(cfg.Brand)
	if !ok {
		return nil, fmt.Errorf("showroom: unknown brand %q", cfg.Brand)
	}
	if cfg.Name != "" {
		site.Name = cfg.Name
	}

	a := &App{
		Config: cfg,
		Brand:  site,
		Echo:   echo.New(),
		Views:  v,
		Logger: zap.NewNop(),
	}
	a.Echo.HideBanner = true
	a.Echo.HidePort = true

	for _, opt := range opts {
		opt(a)
	}
	if a.httpClient == nil {
		a.httpClient = &http.Client{Timeout: 2 * cfg.CMS.Timeout}
	}

	a.CMS = cms.New(cms.Options{
		Endpoint:   cfg.CMS.Endpoint,
		HTTPClient: a.httpClient,
		Logger:     a.Logger.Named("cms"),
		Timeout:    cfg.CMS.Timeout,
	})
	a.Cache = NewContentCache(a.CMS, cfg.ContentTTL)
	a.rewriter = cms.NewRewriter(cfg.CMS.Origin)
	a.limiter = NewLookupLimiter(cfg.Lookup.MaxAttempts, cfg.Lookup.Window)
	a.live = newLiveSessions()

	a.setupMiddleware()
	if err := a.setupRoutes(); err != nil {
		a.limiter.Close()
		return nil, err
	}
	for _, fn := range a.customRoutes {
		fn(a)
	}
	return a, nil
}

// Handler returns the App as an http.Handler.
func (a *App) Handler() http.Handler {
	return a.Echo
}

// Start listens on Config.Addr and blocks until the server stops.
func (a *App) Start() error {
	a.Logger.Info("listening",
		zap.String("addr", a.Config.Addr),
		zap.String("brand", a.Brand.Key),
		zap.String("cms", a.CMS.Endpoint()),
	)
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections, ends live sessions, and waits for
// in-flight requests until ctx is done.
func (a *App) Shutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	a.Close()
	return err
}

// Close releases background resources. Shutdown calls it.
func (a *App) Close() {
	a.live.closeAll()
	a.limiter.Close()
}

func (a *App) setupRoutes() error {
	e := a.Echo

	embeddedFS, err := fs.Sub(EmbeddedAssets, "embedded")
	if err != nil {
		return fmt.Errorf("showroom: embedded assets: %w", err)
	}
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/showroom.js", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))

	e.Static("/public", a.Config.StaticDir)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)

	e.GET("/", a.handleHome)
	e.GET("/collection/", a.handleListing("/collection/", a.Brand.Collection, true))
	if a.Brand.Projects != nil {
		e.GET("/projects/", a.handleListing("/projects/", *a.Brand.Projects, false))
	}
	e.GET("/product/:slug/", a.handleProduct)
	e.GET("/about/", a.handleAbout)
	e.GET("/team/", a.handleTeam)
	e.GET("/contact/", a.handleContact)
	if a.Brand.Certificates != nil {
		e.GET("/certificate/", a.handleCertificate)
		e.POST("/certificate/", a.handleCertificateLookup)
	}

	e.GET("/live/", a.handleLive)

	if err := a.setupProxy(); err != nil {
		return err
	}
	return nil
}
