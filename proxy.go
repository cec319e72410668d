package showroom

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// setupProxy forwards backend uploads and the GraphQL endpoint to the CMS
// origin so pages only reference their own host.
func (a *App) setupProxy() error {
	origin := a.Config.CMS.Origin
	if origin == "" {
		return nil
	}
	target, err := url.Parse(origin)
	if err != nil || target.Scheme == "" || target.Host == "" {
		return fmt.Errorf("showroom: cms origin %q must be absolute", origin)
	}

	cfg := middleware.ProxyConfig{
		Balancer: middleware.NewRoundRobinBalancer([]*middleware.ProxyTarget{{URL: target}}),
	}
	if a.httpClient != nil && a.httpClient.Transport != nil {
		cfg.Transport = a.httpClient.Transport
	}
	proxy := middleware.ProxyWithConfig(cfg)

	// Virtual-hosted backends route on Host.
	setHost := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Request().Host = target.Host
			return next(c)
		}
	}

	e := a.Echo
	e.Match([]string{http.MethodGet, http.MethodHead}, "/wp-content/*", echo.NotFoundHandler, setHost, proxy)
	e.POST("/graphql", echo.NotFoundHandler, setHost, proxy)
	e.GET("/img/", a.handleImage)
	return nil
}
