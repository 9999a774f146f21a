// ABOUTME: Redis cache implementation using go-redis client
// ABOUTME: Shares fetched articles across API instances with TTL support

package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"news-summarizer-api/core/interfaces"
	"news-summarizer-api/pkg/config"
)

// keyPrefix namespaces every key this service writes
const keyPrefix = "newscheck:"

// RedisCache implements the Cache interface using Redis
type RedisCache struct {
	client *redis.Client
}

var _ interfaces.Cache = (*RedisCache)(nil)

// NewRedisCache connects to Redis and verifies the connection with a ping
func NewRedisCache(cfg config.RedisConfig) (*RedisCache, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return &RedisCache{client: client}, nil
}

// Get retrieves a value from Redis
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, interfaces.ErrCacheMiss
		}
		return nil, err
	}
	return val, nil
}

// Set stores a value in Redis with the given TTL; 0 means no expiration
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, keyPrefix+key, value, ttl).Err()
}

// Delete removes a key from Redis
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, keyPrefix+key).Err()
}

// Ping reports whether Redis is reachable, used by the health check
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}
