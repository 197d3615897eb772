package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_RequiresAPIBaseURL(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Fatal("expected an error without api_base_url")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DASHBOARD_API_BASE_URL", "http://api.example.com")

	loader, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg := loader.Current()
	if cfg.ListenAddr != ":8080" {
		t.Errorf("expected default listen addr :8080, got %q", cfg.ListenAddr)
	}
	if cfg.PageSize != 5 {
		t.Errorf("expected default page size 5, got %d", cfg.PageSize)
	}
	if cfg.MaxPageButtons != 5 {
		t.Errorf("expected default max page buttons 5, got %d", cfg.MaxPageButtons)
	}
	if cfg.DefaultTheme != "light" {
		t.Errorf("expected default theme light, got %q", cfg.DefaultTheme)
	}
	if cfg.CookieTTL != 12*time.Hour {
		t.Errorf("expected default cookie ttl 12h, got %v", cfg.CookieTTL)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DASHBOARD_API_BASE_URL", "http://api.example.com/")
	t.Setenv("DASHBOARD_LISTEN_ADDR", ":9090")
	t.Setenv("DASHBOARD_PAGE_SIZE", "10")
	t.Setenv("DASHBOARD_DEFAULT_THEME", "dark")

	loader, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg := loader.Current()
	if cfg.ListenAddr != ":9090" {
		t.Errorf("expected :9090, got %q", cfg.ListenAddr)
	}
	if cfg.PageSize != 10 {
		t.Errorf("expected page size 10, got %d", cfg.PageSize)
	}
	if cfg.DefaultTheme != "dark" {
		t.Errorf("expected dark theme, got %q", cfg.DefaultTheme)
	}
	if cfg.APIBaseURL != "http://api.example.com" {
		t.Errorf("expected trailing slash trimmed, got %q", cfg.APIBaseURL)
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown theme", "DASHBOARD_DEFAULT_THEME", "blue"},
		{"zero page size", "DASHBOARD_PAGE_SIZE", "0"},
		{"zero login burst", "DASHBOARD_LOGIN_BURST", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DASHBOARD_API_BASE_URL", "http://api.example.com")
			t.Setenv(tt.key, tt.value)

			if _, err := Load(""); err == nil {
				t.Fatal("expected a validation error")
			}
		})
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.yaml")
	content := "api_base_url: http://files.example.com\npage_size: 7\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loader, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg := loader.Current()
	if cfg.APIBaseURL != "http://files.example.com" {
		t.Errorf("expected file value, got %q", cfg.APIBaseURL)
	}
	if cfg.PageSize != 7 {
		t.Errorf("expected page size 7, got %d", cfg.PageSize)
	}
}

func TestValidate_RedisAndFileAreExclusive(t *testing.T) {
	cfg := Default()
	cfg.APIBaseURL = "http://api.example.com"
	cfg.RedisAddr = "localhost:6379"
	cfg.StateFile = "/tmp/state.json"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected a validation error")
	}
}
