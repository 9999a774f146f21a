// ABOUTME: SQLite-based cache implementation for persistent caching
// ABOUTME: Keeps fetched articles across restarts; queries are built with squirrel

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"news-summarizer-api/core/interfaces"
)

const (
	tableName       = "cache"
	maxKeyLength    = 2048
	maxValueLength  = 4 * 1024 * 1024
	cleanupInterval = 5 * time.Minute
)

// Client implements the Cache interface using SQLite
type Client struct {
	db       *sql.DB
	filePath string
	stop     chan struct{}
	once     sync.Once
}

var _ interfaces.Cache = (*Client)(nil)

// NewSQLiteCache opens (or creates) the cache database at filePath
func NewSQLiteCache(filePath string) (*Client, error) {
	if filePath == "" {
		filePath = "cache.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	client := &Client{
		db:       db,
		filePath: filePath,
		stop:     make(chan struct{}),
	}

	if err := client.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	go client.cleanupRoutine()

	return client, nil
}

// initSchema creates the cache table if it doesn't exist
func (c *Client) initSchema() error {
	_, err := c.db.Exec(`
		CREATE TABLE IF NOT EXISTS cache (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			expiry INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_expiry ON cache(expiry);
	`)
	return err
}

func validateKey(key string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}
	if len(key) > maxKeyLength {
		return fmt.Errorf("key too long (max %d bytes)", maxKeyLength)
	}
	return nil
}

// expiryFor converts a TTL to a unix expiry; 0 means far future
func expiryFor(ttl time.Duration) int64 {
	if ttl <= 0 {
		return time.Now().AddDate(100, 0, 0).Unix()
	}
	return time.Now().Add(ttl).Unix()
}

// Get retrieves a value from the cache
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	query, args, err := sq.Select("value").
		From(tableName).
		Where(sq.Eq{"key": key}).
		Where(sq.Gt{"expiry": time.Now().Unix()}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var value []byte
	err = c.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, interfaces.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get value: %w", err)
	}

	return value, nil
}

// Set stores a value in the cache with TTL
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if len(value) == 0 {
		return errors.New("value cannot be empty")
	}
	if len(value) > maxValueLength {
		return fmt.Errorf("value too large (max %d bytes)", maxValueLength)
	}

	query, args, err := sq.Insert(tableName).
		Options("OR REPLACE").
		Columns("key", "value", "expiry").
		Values(key, value, expiryFor(ttl)).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := c.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}
	return nil
}

// Delete removes a value from the cache
func (c *Client) Delete(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	query, args, err := sq.Delete(tableName).Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return err
	}

	if _, err := c.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete value: %w", err)
	}
	return nil
}

// cleanupRoutine periodically removes expired entries until Close
func (c *Client) cleanupRoutine() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stop:
			return
		}
	}
}

// cleanup removes expired entries
func (c *Client) cleanup() {
	query, args, err := sq.Delete(tableName).Where(sq.LtOrEq{"expiry": time.Now().Unix()}).ToSql()
	if err != nil {
		return
	}
	_, _ = c.db.Exec(query, args...)
}

// Close stops the cleanup routine and closes the database
func (c *Client) Close() error {
	c.once.Do(func() { close(c.stop) })
	return c.db.Close()
}

// Stats returns entry counts for diagnostics
func (c *Client) Stats() (map[string]interface{}, error) {
	stats := map[string]interface{}{"file_path": c.filePath}

	var total, expired int
	if err := c.db.QueryRow("SELECT COUNT(*) FROM cache").Scan(&total); err != nil {
		return nil, err
	}
	if err := c.db.QueryRow("SELECT COUNT(*) FROM cache WHERE expiry <= ?", time.Now().Unix()).Scan(&expired); err != nil {
		return nil, err
	}
	stats["total_entries"] = total
	stats["expired_entries"] = expired

	return stats, nil
}
