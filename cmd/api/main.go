package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/iwager/app"
	"github.com/joefazee/iwager/app/api"
	"github.com/joefazee/iwager/app/casts"
	"github.com/joefazee/iwager/app/database"
	"github.com/joefazee/iwager/app/frames"
	"github.com/joefazee/iwager/app/markets"
	"github.com/joefazee/iwager/internal/cache"
	"github.com/joefazee/iwager/internal/llm"
	"github.com/joefazee/iwager/internal/logger"
	"github.com/joefazee/iwager/internal/neynar"
	"github.com/joefazee/iwager/internal/sanitizer"
)

func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	l := logger.NewZeroLogger(os.Stdout, logger.LevelInfo, logger.Fields{
		"service": "iwager",
		"env":     cfg.Env,
	})

	db, err := database.New(&cfg.DB)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	HTMLSanitizer := sanitizer.NewHTMLStripper()
	cacheService := newCache(cfg)
	completer := newCompleter(cfg, l)
	publisher := newPublisher(cfg, l)

	r := gin.Default()
	r.Use(api.CorsMiddleware())
	r.GET("/healthz", api.HealthCheck)

	apiV1 := r.Group("/api/v1")

	marketSvc := markets.Init(apiV1, markets.Dependencies{
		DB:        db,
		Config:    &cfg.Markets,
		Sanitizer: HTMLSanitizer,
	})

	casts.Init(apiV1, casts.Dependencies{
		Config:     &cfg.Casts,
		MarketsCfg: &cfg.Markets,
		Markets:    marketSvc,
		Completer:  completer,
		Publisher:  publisher,
		Logger:     l,
	})

	frames.Init(apiV1, frames.Dependencies{
		Markets: marketSvc,
		Cache:   cacheService,
		Config:  &cfg.Frames,
		Logger:  l,
	})

	l.Info("starting iwager API server", logger.Fields{
		"host": cfg.AppHost,
		"port": cfg.AppPort,
	})
	if err := r.Run(fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func newCache(cfg *app.Config) cache.Cache[string] {
	if cfg.CacheBackend == cache.RedisBackend {
		return cache.NewCache[string](cache.RedisBackend, &cache.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	}
	return cache.NewCache[string](cache.MemoryBackend)
}

// newCompleter returns nil when no model credential is configured; the
// pipeline then creates markets in degraded mode instead of failing.
func newCompleter(cfg *app.Config, l logger.Logger) llm.Completer {
	if !cfg.LLM.Configured() {
		l.Info("no model credential configured, semantic validation disabled", nil)
		return nil
	}

	completer, err := llm.NewGeminiCompleter(context.Background(), cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.Temperature)
	if err != nil {
		l.Error(err, logger.Fields{"component": "llm"})
		return nil
	}
	return completer
}

// newPublisher returns nil when the Neynar credentials are absent; replies
// are then logged and dropped rather than published.
func newPublisher(cfg *app.Config, l logger.Logger) neynar.Publisher {
	if err := cfg.Neynar.Validate(); err != nil {
		l.Error(err, logger.Fields{"component": "neynar"})
		return nil
	}

	client, err := neynar.NewClient(&cfg.Neynar)
	if err != nil {
		l.Error(err, logger.Fields{"component": "neynar"})
		return nil
	}
	return client
}
