// Package cache provides an in-memory TTL cache used to memoize annotation
// results for repeated uploads of identical image bytes.
package cache

import (
	"context"
	"time"
)

// Cache is the interface for annotation caching
type Cache interface {
	// Get retrieves a value from the cache
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores a value in the cache with a TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache
	Delete(ctx context.Context, key string) error

	// Stats returns cache statistics
	Stats() Stats
}

// Stats represents cache statistics
type Stats struct {
	Hits   uint64
	Misses uint64
	Items  uint64
}

// Config holds cache configuration
type Config struct {
	// MaxItems is the maximum number of items (default: 1000)
	MaxItems int

	// DefaultTTL is the default TTL for cached items (default: 1 hour)
	DefaultTTL time.Duration

	// Enabled indicates whether caching is enabled
	Enabled bool
}

// DefaultConfig returns a default cache configuration
func DefaultConfig() *Config {
	return &Config{
		MaxItems:   1000,
		DefaultTTL: 1 * time.Hour,
		Enabled:    true,
	}
}
