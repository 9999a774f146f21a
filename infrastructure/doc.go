// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, inference, persistence and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: in-process cache on patrickmn/go-cache
// - cache/redis: Redis-backed cache
// - cache/sqlite: file-backed cache on SQLite
// - http/standard: net/http client with retry and backoff
// - inference/huggingface: hosted summarization and zero-shot adapters
// - logger/structured: logrus logger with optional lumberjack file rotation
// - storage/sqlstore: history and feedback tables on SQLite or Postgres
//
// # Cache Implementations
//
//	cache := memory.NewMemoryCache()
//	err := cache.Set(ctx, "key", []byte("value"), time.Hour)
//	value, err := cache.Get(ctx, "key")
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{Address: "localhost:6379"})
//
// # Storage
//
//	store, err := sqlstore.Open(ctx, "sqlite3", "news.db")
//	defer store.Close()
//
// # Logger
//
//	logger := structured.NewLogger(structured.Options{Level: "info", Format: "json"})
//	logger.Info("Analysis finished", map[string]interface{}{
//	    "input_type":  "url",
//	    "duration_ms": 812,
//	})
package infrastructure
