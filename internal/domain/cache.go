package domain

import (
	"context"
	"time"
)

// CacheError represents an error originating from the cache.
type CacheError string

func (e CacheError) Error() string {
	return string(e)
}

// ErrCacheMiss is returned when a key is not found in the cache.
const ErrCacheMiss = CacheError("cache: key not found")

// Cache is the key/value port the generation record store writes through.
type Cache interface {
	// Get returns ErrCacheMiss if the key is not found.
	Get(ctx context.Context, key string) (string, error)

	// SetIfAbsent stores value only when key does not exist yet and reports
	// whether it was stored.
	SetIfAbsent(ctx context.Context, key string, value string, expiration time.Duration) (bool, error)

	// Ping reports whether the cache is reachable.
	Ping(ctx context.Context) error
}
