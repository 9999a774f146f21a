// Package interfaces defines the ports the core depends on.
// Infrastructure packages implement them; tests substitute fakes.
package interfaces

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Cache.Get when the key is absent or expired
var ErrCacheMiss = errors.New("cache: key not found")

// Cache stores opaque byte values with a TTL.
// Implementations can be Redis, in-memory, SQLite or anything else.
//
// Example usage:
//
//	data, err := cache.Get(ctx, "article:https://example.com/story")
//	if errors.Is(err, interfaces.ErrCacheMiss) {
//		// fetch and store
//		err = cache.Set(ctx, "article:https://example.com/story", payload, time.Hour)
//	}
type Cache interface {
	// Get retrieves a value by key, or ErrCacheMiss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the given TTL. A ttl of 0 means no expiration.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
