// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation, CORS, and the request middleware chain

package api

import (
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"news-summarizer-api/api/middleware"
	"news-summarizer-api/core/interfaces"
	"news-summarizer-api/pkg/featureflags"
)

const (
	// Title is the OpenAPI title
	Title = "News Summarizer API"
	// Version is reported by OpenAPI and the health check
	Version = "1.0.0"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger         interfaces.Logger
	Flags          featureflags.Manager
	RateLimit      int           // requests per window
	RateWindow     time.Duration // rate limit window
	AllowedOrigins []string
}

// NewAPI creates the chi router with middleware and a Huma API on top of it
func NewAPI(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	// CORS must run before anything that can reject a preflight
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader, "Retry-After"},
		MaxAge:         300,
	}))

	if cfg.Flags != nil {
		router.Use(middleware.FeatureFlagsMiddleware(cfg.Flags))
	}

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.RateLimit > 0 && cfg.RateWindow > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	config := huma.DefaultConfig(Title, Version)
	config.Info.Description = "Summarizes news articles and classifies them as real news, fake news, opinion or satire"
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		middleware.AdminSecurityScheme: {
			Type:   "http",
			Scheme: "bearer",
		},
	}

	// The OpenAPI spec is served at /openapi.json and the docs UI at /docs
	api := humachi.New(router, config)

	return api, router
}
