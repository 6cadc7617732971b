// Package cache defines the cache interface used for response caching.
package cache

import (
	"context"
	"time"
)

// Type represents the kind of cache backing the service.
type Type string

const (
	// TypeRedis represents a Redis cache.
	TypeRedis Type = "redis"
)

// Cache defines the operations the service performs against its cache.
type Cache interface {
	// Get retrieves a value by key. Returns nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with a TTL. A zero ttl means the default TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key. Returns true when the key existed.
	Delete(ctx context.Context, key string) (bool, error)

	// DeletePattern removes all keys matching the glob pattern and returns
	// the number deleted.
	DeletePattern(ctx context.Context, pattern string) (int64, error)

	// Ping checks that the cache connection is alive.
	Ping(ctx context.Context) error

	// Close closes the cache connection.
	Close() error
}
