// Package config loads dashboard settings from environment variables and an
// optional config file, with hot reloading of the file when present.
package config

import (
	"fmt"
	"strings"
	"time"
)

type Config struct {
	// ListenAddr is the address the dashboard serves on.
	ListenAddr string `mapstructure:"listen_addr"`
	// APIBaseURL is the base URL of the remote catalog API.
	APIBaseURL string `mapstructure:"api_base_url"`

	// PageSize is the number of products per dashboard page.
	PageSize int `mapstructure:"page_size"`
	// MaxPageButtons bounds the pagination button window.
	MaxPageButtons int `mapstructure:"max_page_buttons"`
	// DefaultTheme seeds the theme preference when none is stored.
	DefaultTheme string `mapstructure:"default_theme"`

	// CookieSecret signs the browser session cookie.
	CookieSecret string `mapstructure:"cookie_secret"`
	// CookieTTL bounds how long a browser session cookie stays valid.
	CookieTTL time.Duration `mapstructure:"cookie_ttl"`

	// StateFile persists the token and theme between restarts. Ignored when
	// RedisAddr is set.
	StateFile string `mapstructure:"state_file"`
	// RedisAddr, when non-empty, backs the state store with Redis.
	RedisAddr string `mapstructure:"redis_addr"`

	// LoginRatePerSecond and LoginBurst throttle login attempts per client IP.
	LoginRatePerSecond float64 `mapstructure:"login_rate_per_second"`
	LoginBurst         int     `mapstructure:"login_burst"`
}

func Default() *Config {
	return &Config{
		ListenAddr:         ":8080",
		PageSize:           5,
		MaxPageButtons:     5,
		DefaultTheme:       "light",
		CookieSecret:       "super-secret-key", // move to env in prod
		CookieTTL:          12 * time.Hour,
		LoginRatePerSecond: 1,
		LoginBurst:         3,
	}
}

func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("api_base_url is required")
	}
	if c.ListenAddr == "" {
		return fmt.Errorf("listen_addr is required")
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("page_size must be greater than zero")
	}
	if c.MaxPageButtons <= 0 {
		return fmt.Errorf("max_page_buttons must be greater than zero")
	}
	if c.DefaultTheme != "light" && c.DefaultTheme != "dark" {
		return fmt.Errorf("default_theme must be %q or %q", "light", "dark")
	}
	if c.CookieSecret == "" {
		return fmt.Errorf("cookie_secret is required")
	}
	if c.CookieTTL <= 0 {
		return fmt.Errorf("cookie_ttl must be greater than zero")
	}
	if c.LoginRatePerSecond <= 0 || c.LoginBurst <= 0 {
		return fmt.Errorf("login rate limit settings must be greater than zero")
	}
	if c.RedisAddr != "" && c.StateFile != "" {
		return fmt.Errorf("redis_addr and state_file are mutually exclusive")
	}
	c.APIBaseURL = strings.TrimRight(c.APIBaseURL, "/")
	return nil
}
