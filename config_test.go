package showroom

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/showroom/brand"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, brand.HCFurniture, cfg.Brand)
	assert.Equal(t, ":3000", cfg.Addr)
	assert.Equal(t, 60*time.Second, cfg.ContentTTL)
	assert.Equal(t, 10*time.Second, cfg.CMS.Timeout)
	assert.Equal(t, 1500*time.Millisecond, cfg.Timing.GateFallback)
	assert.Equal(t, 10, cfg.Lookup.MaxAttempts)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "showroom.yaml")
	yaml := `brand: foreverwell
url: https://foreverwell.example
content_ttl: 0s
cms:
  endpoint: https://cms.example/graphql
timing:
  slide_interval: 8s
lookup:
  max_attempts: 3
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	t.Setenv("SHOWROOM_CMS__ENDPOINT", "https://backend.example:8443/graphql")
	t.Setenv("SHOWROOM_LOG__FORMAT", "console")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, brand.Foreverwell, cfg.Brand)
	assert.Equal(t, "https://foreverwell.example", cfg.URL)
	assert.Zero(t, cfg.ContentTTL, "an explicit zero disables the cache")
	assert.Equal(t, "https://backend.example:8443/graphql", cfg.CMS.Endpoint, "environment wins over the file")
	assert.Equal(t, "https://backend.example:8443", cfg.CMS.Origin)
	assert.Equal(t, 8*time.Second, cfg.Timing.SlideInterval)
	assert.Equal(t, 500*time.Millisecond, cfg.Timing.GateDelay, "unset timings keep their defaults")
	assert.Equal(t, 3, cfg.Lookup.MaxAttempts)
	assert.Equal(t, time.Minute, cfg.Lookup.Window)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, brand.HCFurniture, cfg.Brand)
	assert.Equal(t, 60*time.Second, cfg.ContentTTL)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "showroom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("brand: [unterminated"), 0o644))
	_, err := Load(path)
	require.Error(t, err)
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"SHOWROOM_URL":                    "url",
		"SHOWROOM_CONTENT_TTL":            "content_ttl",
		"SHOWROOM_CMS__ENDPOINT":          "cms.endpoint",
		"SHOWROOM_TIMING__SLIDE_INTERVAL": "timing.slide_interval",
	}
	for in, want := range tests {
		if got := envKey(in); got != want {
			t.Fatalf("envKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		cfg := DefaultConfig()
		cfg.CMS.Endpoint = "https://cms.example/graphql"
		return cfg
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown brand", func(c *Config) { c.Brand = "acme" }},
		{"relative url", func(c *Config) { c.URL = "/site" }},
		{"missing endpoint", func(c *Config) { c.CMS.Endpoint = "" }},
		{"relative endpoint", func(c *Config) { c.CMS.Endpoint = "/graphql" }},
		{"negative ttl", func(c *Config) { c.ContentTTL = -time.Second }},
		{"no lookup attempts", func(c *Config) { c.Lookup.MaxAttempts = 0 }},
		{"negative lookup window", func(c *Config) { c.Lookup.Window = -time.Minute }},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("Validate() = nil, want error")
			}
		})
	}
}

func TestSiteAppliesName(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Name = "HC Outlet"
	assert.Equal(t, "HC Outlet", cfg.Site().Name)
	assert.Equal(t, brand.HCFurniture, cfg.Site().Key)
}

func TestNewLogger(t *testing.T) {
	l, err := NewLogger(LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(-1))

	_, err = NewLogger(LogConfig{Level: "nope"})
	require.Error(t, err)
}
