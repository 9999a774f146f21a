// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Loads an optional .env file, then builds nested config structs from the environment

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Database  DatabaseConfig
	Cache     CacheConfig
	Inference InferenceConfig
	Fetch     FetchConfig
	History   HistoryConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port string

	// RateLimit is the number of requests allowed per client IP per window
	RateLimit int

	// RateWindow is the rate limiting window
	RateWindow time.Duration

	// AdminToken guards the history and feedback listings; empty disables them
	AdminToken string

	// AllowedOrigins lists CORS origins; "*" allows any
	AllowedOrigins []string
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string
	Format string
	File   string
}

// DatabaseConfig holds the history/feedback store location
type DatabaseConfig struct {
	// URL is sqlite://path or postgres://...
	URL string
}

// CacheConfig holds article cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite/none)
	Type string

	TTL time.Duration

	Redis RedisConfig

	// SQLitePath is the cache database file for the sqlite backend
	SQLitePath string
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

// InferenceConfig holds the hosted inference API settings
type InferenceConfig struct {
	Token               string
	BaseURL             string
	SummarizationModel  string
	ClassificationModel string
	Timeout             time.Duration
	// RequestsPerSecond throttles outbound inference calls; 0 disables throttling
	RequestsPerSecond float64
}

// FetchConfig holds article download settings
type FetchConfig struct {
	Timeout time.Duration
}

// HistoryConfig sizes the asynchronous history recorder
type HistoryConfig struct {
	Workers   int
	QueueSize int
}

// LoadFromEnv loads configuration from environment variables. A .env file in
// the working directory is read first if present; real environment wins.
func LoadFromEnv() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvOrDefault("PORT", "8000"),
			RateLimit:      getEnvAsIntOrDefault("RATE_LIMIT", 30),
			RateWindow:     time.Duration(getEnvAsIntOrDefault("RATE_WINDOW_SECONDS", 60)) * time.Second,
			AdminToken:     os.Getenv("ADMIN_TOKEN"),
			AllowedOrigins: getEnvAsListOrDefault("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "json"),
			File:   os.Getenv("LOG_FILE"),
		},
		Database: DatabaseConfig{
			URL: getEnvOrDefault("DATABASE_URL", "sqlite://news.db"),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			TTL:  time.Duration(getEnvAsIntOrDefault("CACHE_TTL_SECONDS", 3600)) * time.Second,
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			SQLitePath: getEnvOrDefault("SQLITE_CACHE_PATH", "cache.db"),
		},
		Inference: InferenceConfig{
			Token:               os.Getenv("HF_API_TOKEN"),
			BaseURL:             getEnvOrDefault("HF_BASE_URL", "https://router.huggingface.co/hf-inference/models"),
			SummarizationModel:  getEnvOrDefault("HF_SUMMARIZATION_MODEL", "facebook/bart-large-cnn"),
			ClassificationModel: getEnvOrDefault("HF_CLASSIFICATION_MODEL", "facebook/bart-large-mnli"),
			Timeout:             time.Duration(getEnvAsIntOrDefault("INFERENCE_TIMEOUT_SECONDS", 30)) * time.Second,
			RequestsPerSecond:   getEnvAsFloatOrDefault("INFERENCE_RPS", 0),
		},
		Fetch: FetchConfig{
			Timeout: time.Duration(getEnvAsIntOrDefault("FETCH_TIMEOUT_SECONDS", 20)) * time.Second,
		},
		History: HistoryConfig{
			Workers:   getEnvAsIntOrDefault("HISTORY_WORKERS", 2),
			QueueSize: getEnvAsIntOrDefault("HISTORY_QUEUE_SIZE", 256),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// getEnvAsListOrDefault splits a comma-separated variable, dropping blanks
func getEnvAsListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

// DatabaseDriver splits DATABASE_URL into a database/sql driver name and DSN
func (d DatabaseConfig) DatabaseDriver() (driver, dsn string, err error) {
	switch {
	case strings.HasPrefix(d.URL, "sqlite://"):
		return "sqlite3", strings.TrimPrefix(d.URL, "sqlite://"), nil
	case strings.HasPrefix(d.URL, "postgres://"), strings.HasPrefix(d.URL, "postgresql://"):
		return "postgres", d.URL, nil
	default:
		return "", "", fmt.Errorf("unsupported DATABASE_URL scheme: %q", d.URL)
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.RateLimit < 1 {
		return errors.New("rate limit must be at least 1")
	}

	if c.Server.RateWindow < time.Second {
		return errors.New("rate window must be at least 1 second")
	}

	switch c.Cache.Type {
	case "memory", "redis", "sqlite", "none":
	default:
		return errors.New("cache type must be 'memory', 'redis', 'sqlite' or 'none'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if _, _, err := c.Database.DatabaseDriver(); err != nil {
		return err
	}

	if c.Inference.Timeout <= 0 {
		return errors.New("inference timeout must be positive")
	}

	if c.Fetch.Timeout <= 0 {
		return errors.New("fetch timeout must be positive")
	}

	if c.History.Workers < 1 || c.History.QueueSize < 1 {
		return errors.New("history workers and queue size must be at least 1")
	}

	return nil
}
