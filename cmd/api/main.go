// ABOUTME: Main entry point for the News Summarizer API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"news-summarizer-api/api"
	"news-summarizer-api/api/handlers"
	"news-summarizer-api/core/history"
	"news-summarizer-api/core/interfaces"
	"news-summarizer-api/core/workers"
	"news-summarizer-api/infrastructure/cache/memory"
	"news-summarizer-api/infrastructure/cache/redis"
	"news-summarizer-api/infrastructure/cache/sqlite"
	stdhttp "news-summarizer-api/infrastructure/http/standard"
	"news-summarizer-api/infrastructure/logger/structured"
	"news-summarizer-api/infrastructure/storage/sqlstore"
	"news-summarizer-api/newscheck"
	"news-summarizer-api/pkg/config"
	"news-summarizer-api/pkg/featureflags"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := structured.NewLogger(structured.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})

	flags := featureflags.NewEnvManager("FEATURE_").WithDefaults(featureflags.Defaults)

	logger.Info("Starting News Summarizer API", map[string]interface{}{
		"port":          cfg.Server.Port,
		"cache_type":    cfg.Cache.Type,
		"inference_url": cfg.Inference.BaseURL,
		"has_token":     cfg.Inference.Token != "",
		"flags":         flags.GetAllFlags(),
	})

	checks := map[string]handlers.Pinger{}
	cache, closeCache := newCache(cfg, logger, checks)
	defer closeCache()

	driver, dsn, err := cfg.Database.DatabaseDriver()
	if err != nil {
		log.Fatalf("Invalid database configuration: %v", err)
	}
	startCtx, cancelStart := context.WithTimeout(context.Background(), 15*time.Second)
	store, err := sqlstore.Open(startCtx, driver, dsn)
	cancelStart()
	if err != nil {
		logger.Error("Failed to open database", map[string]interface{}{
			"driver": driver,
			"error":  err.Error(),
		})
		os.Exit(1)
	}
	defer store.Close()
	checks["database"] = store

	httpClient := stdhttp.NewStandardHTTPClient(cfg.Fetch.Timeout)

	client, err := newscheck.NewClient(
		newscheck.WithHTTPClient(httpClient),
		// Inference calls are bounded per call by the inference timeout, not the fetch timeout
		newscheck.WithInferenceHTTPClient(stdhttp.NewStandardHTTPClient(0)),
		newscheck.WithCache(cache),
		newscheck.WithCacheTTL(cfg.Cache.TTL),
		newscheck.WithLogger(logger),
		newscheck.WithFlags(flags),
		newscheck.WithAPIToken(cfg.Inference.Token),
		newscheck.WithInferenceEndpoint(cfg.Inference.BaseURL),
		newscheck.WithModels(cfg.Inference.SummarizationModel, cfg.Inference.ClassificationModel),
		newscheck.WithInferenceTimeout(cfg.Inference.Timeout),
		newscheck.WithRequestsPerSecond(cfg.Inference.RequestsPerSecond),
		newscheck.WithHistoryStore(store, workers.WorkerConfig{
			MaxWorkers: cfg.History.Workers,
			QueueSize:  cfg.History.QueueSize,
		}),
	)
	if err != nil {
		logger.Error("Failed to build analysis pipeline", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}

	humaAPI, router := api.NewAPI(api.APIConfig{
		Logger:         logger,
		Flags:          flags,
		RateLimit:      cfg.Server.RateLimit,
		RateWindow:     cfg.Server.RateWindow,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	handlers.NewAnalyzeHandler(client).RegisterRoutes(humaAPI)
	handlers.NewRecordsHandler(
		history.NewFeedbackService(store),
		history.NewHistoryService(store),
		cfg.Server.AdminToken,
	).RegisterRoutes(humaAPI)
	handlers.NewHealthHandler(api.Version, checks).RegisterRoutes(humaAPI)

	if cfg.Server.AdminToken == "" {
		logger.Warn("ADMIN_TOKEN is not set; history and feedback listings are disabled", nil)
	}

	// One analysis can spend a fetch plus two inference timeouts
	writeTimeout := cfg.Fetch.Timeout + 2*cfg.Inference.Timeout + 10*time.Second

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: writeTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// In-flight requests are done; flush their history rows before the store closes
	if err := client.Close(ctx); err != nil {
		logger.Warn("History queue not fully drained", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Server stopped", nil)
}

// newCache builds the configured article cache. A backend that fails to
// start falls back to memory so the API still serves.
func newCache(cfg *config.Config, logger interfaces.Logger, checks map[string]handlers.Pinger) (interfaces.Cache, func()) {
	noop := func() {}

	switch cfg.Cache.Type {
	case "none":
		logger.Info("Article cache disabled", nil)
		return nil, noop
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryCache(), noop
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		checks["cache"] = redisCache
		return redisCache, closer(redisCache, logger)
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLitePath)
		if err != nil {
			logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryCache(), noop
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.Cache.SQLitePath,
		})
		return sqliteCache, closer(sqliteCache, logger)
	default:
		logger.Info("Using memory cache", nil)
		return memory.NewMemoryCache(), noop
	}
}

func closer(c io.Closer, logger interfaces.Logger) func() {
	return func() {
		if err := c.Close(); err != nil {
			logger.Warn("Failed to close cache", map[string]interface{}{"error": err.Error()})
		}
	}
}
