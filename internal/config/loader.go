package config

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Loader wraps a Config with viper so the settings can come from environment
// variables (DASHBOARD_ prefix) and optionally a config file, and so file
// changes can be picked up without a restart.
type Loader struct {
	viper       *viper.Viper
	configFile  string
	mu          sync.RWMutex
	current     *Config
	subscribers []func(*Config)
}

// Load reads configuration. configFile may be empty, in which case only
// defaults and environment variables apply.
func Load(configFile string) (*Loader, error) {
	v := viper.New()
	v.SetEnvPrefix("DASHBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := Default()
	v.SetDefault("listen_addr", defaults.ListenAddr)
	v.SetDefault("api_base_url", defaults.APIBaseURL)
	v.SetDefault("page_size", defaults.PageSize)
	v.SetDefault("max_page_buttons", defaults.MaxPageButtons)
	v.SetDefault("default_theme", defaults.DefaultTheme)
	v.SetDefault("cookie_secret", defaults.CookieSecret)
	v.SetDefault("cookie_ttl", defaults.CookieTTL)
	v.SetDefault("state_file", defaults.StateFile)
	v.SetDefault("redis_addr", defaults.RedisAddr)
	v.SetDefault("login_rate_per_second", defaults.LoginRatePerSecond)
	v.SetDefault("login_burst", defaults.LoginBurst)

	if configFile != "" {
		v.SetConfigFile(configFile)
		ext := filepath.Ext(configFile)
		v.SetConfigType(strings.TrimPrefix(ext, "."))
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &Loader{viper: v, configFile: configFile, current: cfg}, nil
}

// Current returns the active configuration.
func (l *Loader) Current() *Config {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current
}

// Subscribe registers fn to be called after every successful reload.
func (l *Loader) Subscribe(fn func(*Config)) {
	l.mu.Lock()
	l.subscribers = append(l.subscribers, fn)
	l.mu.Unlock()
}

// EnableHotReload watches the config file and swaps in valid updates,
// notifying subscribers. No-op when no config file is in use.
func (l *Loader) EnableHotReload() {
	if l.configFile == "" {
		return
	}
	l.viper.WatchConfig()
	l.viper.OnConfigChange(func(e fsnotify.Event) {
		log.Printf("Config file changed: %s", e.Name)

		cfg := Default()
		if err := l.viper.Unmarshal(cfg); err != nil {
			log.Printf("Failed to unmarshal config: %v", err)
			return
		}
		if err := cfg.Validate(); err != nil {
			log.Printf("Invalid configuration: %v", err)
			return
		}

		l.mu.Lock()
		l.current = cfg
		subscribers := make([]func(*Config), len(l.subscribers))
		copy(subscribers, l.subscribers)
		l.mu.Unlock()

		for _, fn := range subscribers {
			fn(cfg)
		}
	})
}
