package server

import (
	"fmt"
	"strings"

	"github.com/ulule/limiter/v3"
)

const (
	DefaultAddr         = "127.0.0.1:8080"
	DefaultAPIRateLimit = "120-M"
	DefaultSiteName     = "Kumo Bot"
)

type Config struct {
	HTTP HTTPConfig `mapstructure:"http"`
	CORS CORSConfig `mapstructure:"cors"`
	Site SiteConfig `mapstructure:"site"`
	API  APIConfig  `mapstructure:"api"`
}

type HTTPConfig struct {
	Addr     string `mapstructure:"addr"`
	CertFile string `mapstructure:"cert_file"`
	KeyFile  string `mapstructure:"key_file"`

	// TrustedProxies may set X-Forwarded-For / X-Real-IP. Empty trusts none.
	TrustedProxies []string `mapstructure:"trusted_proxies"`
}

// TLSEnabled reports whether both cert and key are configured
func (c *HTTPConfig) TLSEnabled() bool {
	return c.CertFile != "" && c.KeyFile != ""
}

// Proxies returns the trusted proxies trimmed and without blanks
func (c *HTTPConfig) Proxies() []string {
	proxies := make([]string, 0, len(c.TrustedProxies))
	for _, p := range c.TrustedProxies {
		if p = strings.TrimSpace(p); p != "" {
			proxies = append(proxies, p)
		}
	}
	return proxies
}

type CORSConfig struct {
	// Origins allowed to make cross-origin requests. Entries may still carry
	// whitespace or be empty when they come from a comma separated env var.
	Origins []string `mapstructure:"origins"`
}

// AllowedOrigins returns the configured origins trimmed, without blanks or trailing slashes.
func (c *CORSConfig) AllowedOrigins() []string {
	origins := make([]string, 0, len(c.Origins))
	for _, entry := range c.Origins {
		// a single entry may still hold a comma separated list when set programmatically
		for _, o := range strings.Split(entry, ",") {
			o = strings.TrimRight(strings.TrimSpace(o), "/")
			if o == "" {
				continue
			}
			origins = append(origins, o)
		}
	}
	return origins
}

type SiteConfig struct {
	// Dir overrides the embedded templates and static files. Empty uses the embedded ones.
	Dir  string `mapstructure:"dir"`
	Name string `mapstructure:"name"`
}

type APIConfig struct {
	// RateLimit in limiter's formatted notation, e.g. `120-M`. Empty disables limiting.
	RateLimit string `mapstructure:"rate_limit"`
}

func (c *Config) Validate() error {
	if c.HTTP.Addr == "" {
		return fmt.Errorf("http `addr` is required")
	}

	if (c.HTTP.CertFile == "") != (c.HTTP.KeyFile == "") {
		return fmt.Errorf("http `cert_file` and `key_file` must be set together")
	}

	for _, origin := range c.CORS.AllowedOrigins() {
		if origin == "*" {
			continue
		}
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("cors origin %q must start with http:// or https://", origin)
		}
	}

	if c.API.RateLimit != "" {
		if _, err := limiter.NewRateFromFormatted(c.API.RateLimit); err != nil {
			return fmt.Errorf("api `rate_limit`: %w", err)
		}
	}

	return nil
}
