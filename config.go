package showroom

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/eringen/showroom/brand"
	"github.com/eringen/showroom/ui"
)

// EnvPrefix prefixes every environment override. A double underscore
// separates nested keys: SHOWROOM_CMS__ENDPOINT sets cms.endpoint.
const EnvPrefix = "SHOWROOM_"

// Config holds all configuration for a showroom site.
type Config struct {
	// Name overrides the brand's display name when set.
	Name  string `koanf:"name"`
	Brand string `koanf:"brand"` // brand preset key (default "hc-furniture")
	URL   string `koanf:"url"`   // canonical URL (default "http://localhost:3000")

	Addr         string `koanf:"addr"`       // listen address (default ":3000")
	StaticDir    string `koanf:"static_dir"` // user-owned assets under /public (default "public")
	CookieSecure bool   `koanf:"cookie_secure"`

	// ContentTTL is how long CMS listings are reused. Zero disables the cache.
	ContentTTL time.Duration `koanf:"content_ttl"`

	CMS    CMSConfig    `koanf:"cms"`
	Timing ui.Timing    `koanf:"timing"`
	Lookup LookupConfig `koanf:"lookup"`
	Log    LogConfig    `koanf:"log"`
}

// CMSConfig locates the headless CMS.
type CMSConfig struct {
	Endpoint string `koanf:"endpoint"` // GraphQL endpoint
	// Origin is the backend origin proxied under /wp-content and /graphql,
	// and stripped from content URLs. Derived from Endpoint when empty.
	Origin  string        `koanf:"origin"`
	Timeout time.Duration `koanf:"timeout"`
}

// LookupConfig rate-limits failed certificate lookups per client IP.
type LookupConfig struct {
	MaxAttempts int           `koanf:"max_attempts"`
	Window      time.Duration `koanf:"window"`
}

// LogConfig selects the logger.
type LogConfig struct {
	Level  string `koanf:"level"`  // debug, info, warn, error
	Format string `koanf:"format"` // json or console
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() Config {
	cfg := Config{ContentTTL: 60 * time.Second}
	cfg.setDefaults()
	return cfg
}

func (c *Config) setDefaults() {
	if c.Brand == "" {
		c.Brand = brand.HCFurniture
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.CMS.Timeout == 0 {
		c.CMS.Timeout = 10 * time.Second
	}
	if c.CMS.Origin == "" && c.CMS.Endpoint != "" {
		if u, err := url.Parse(c.CMS.Endpoint); err == nil && u.Host != "" {
			c.CMS.Origin = u.Scheme + "://" + u.Host
		}
	}
	c.Timing = c.Timing.WithDefaults()
	if c.Lookup.MaxAttempts == 0 {
		c.Lookup.MaxAttempts = 10
	}
	if c.Lookup.Window == 0 {
		c.Lookup.Window = time.Minute
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "json"
	}
}

// Load reads configuration from the YAML file at path, when it exists, and
// then from SHOWROOM_* environment variables. Environment wins.
func Load(path string) (Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return cfg, fmt.Errorf("showroom: load config file %s: %w", path, err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("showroom: stat config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return cfg, fmt.Errorf("showroom: load env: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("showroom: unmarshal config: %w", err)
	}
	cfg.setDefaults()
	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Validate reports the first configuration problem.
func (c Config) Validate() error {
	if _, ok := brand.Lookup(c.Brand); !ok {
		return fmt.Errorf("showroom: unknown brand %q (have %s)", c.Brand, strings.Join(brand.Keys(), ", "))
	}
	if u, err := url.Parse(c.URL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("showroom: url %q must be absolute", c.URL)
	}
	if c.CMS.Endpoint == "" {
		return fmt.Errorf("showroom: cms.endpoint is required")
	}
	if u, err := url.Parse(c.CMS.Endpoint); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("showroom: cms.endpoint %q must be absolute", c.CMS.Endpoint)
	}
	if c.ContentTTL < 0 {
		return fmt.Errorf("showroom: content_ttl must not be negative")
	}
	if c.Lookup.MaxAttempts < 1 {
		return fmt.Errorf("showroom: lookup.max_attempts must be at least 1")
	}
	if c.Lookup.Window <= 0 {
		return fmt.Errorf("showroom: lookup.window must be positive")
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("showroom: log.format %q must be json or console", c.Log.Format)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("showroom: log.level: %w", err)
	}
	return nil
}

// Site returns the configured brand, with Name applied.
func (c Config) Site() brand.Brand {
	b, _ := brand.Lookup(c.Brand)
	if c.Name != "" {
		b.Name = c.Name
	}
	return b
}

// NewLogger builds the zap logger described by c.
func NewLogger(c LogConfig) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if c.Format == "console" {
		zc = zap.NewDevelopmentConfig()
	}
	if c.Level != "" {
		lvl, err := zap.ParseAtomicLevel(c.Level)
		if err != nil {
			return nil, fmt.Errorf("showroom: log level: %w", err)
		}
		zc.Level = lvl
	}
	return zc.Build()
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets.
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.Config.StaticDir = dir
	}
}

// WithLogger replaces the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		a.Logger = l
	}
}

// WithHTTPClient sets the client used for CMS queries and image fetches.
func WithHTTPClient(c *http.Client) Option {
	return func(a *App) {
		a.httpClient = c
	}
}
