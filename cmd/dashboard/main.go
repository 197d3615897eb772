package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/rogerio-castellano/catalog-dashboard/internal/apiclient"
	"github.com/rogerio-castellano/catalog-dashboard/internal/config"
	"github.com/rogerio-castellano/catalog-dashboard/internal/products"
	"github.com/rogerio-castellano/catalog-dashboard/internal/session"
	"github.com/rogerio-castellano/catalog-dashboard/internal/store"
	"github.com/rogerio-castellano/catalog-dashboard/internal/web"
	"github.com/rogerio-castellano/catalog-dashboard/internal/web/ratelimit"
)

var ctx = context.Background()

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env found in project root; using environment defaults.")
	}

	loader, err := config.Load(os.Getenv("DASHBOARD_CONFIG"))
	if err != nil {
		log.Fatal("❌ Could not load configuration:", err)
	}
	loader.EnableHotReload()
	loader.Subscribe(func(cfg *config.Config) {
		log.Println("Configuration reloaded; listen address changes require a restart")
	})
	cfg := loader.Current()

	prefs, closeStore, err := buildStore(cfg)
	if err != nil {
		log.Fatal("❌ Could not initialize state store:", err)
	}
	defer closeStore()

	if prefs.Get(store.ThemeKey) == "" {
		prefs.Set(store.ThemeKey, cfg.DefaultTheme)
	}

	client := apiclient.New(cfg.APIBaseURL, prefs)
	sessions := session.NewManager(client, prefs)
	controller := products.NewController(client, cfg.PageSize)

	limiter := ratelimit.New(rate.Limit(cfg.LoginRatePerSecond), cfg.LoginBurst)
	go limiter.StartCleanupLoop(time.Minute)

	srv, err := web.NewServer(cfg, client, sessions, controller, prefs, limiter)
	if err != nil {
		log.Fatal("❌ Could not build server:", err)
	}

	// Resolve any persisted token before the first request arrives.
	startupCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	sessions.CheckSession(startupCtx)
	cancel()

	log.Println("✅ Dashboard running on", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, srv.Router()); err != nil {
		log.Fatal(err)
	}
}

func buildStore(cfg *config.Config) (store.Store, func(), error) {
	switch {
	case cfg.RedisAddr != "":
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, nil, err
		}
		return store.NewRedisStore(rdb, ctx), func() { rdb.Close() }, nil
	case cfg.StateFile != "":
		s, err := store.NewFileStore(cfg.StateFile)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {}, nil
	default:
		return store.NewMemoryStore(), func() {}, nil
	}
}
