package cache

import (
	"context"
	"time"
)

// NullCache is a no-op cache. Every Get is a miss and every Set is
// discarded; it lets call sites run uncached without branching.
type NullCache struct{}

// NewNullCache creates a cache that stores nothing.
func NewNullCache() Cache { return NullCache{} }

// Get always misses.
func (NullCache) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, ErrCacheMiss
}

// Set discards the document.
func (NullCache) Set(ctx context.Context, key string, doc []byte, ttl time.Duration) error {
	return nil
}

// Delete does nothing.
func (NullCache) Delete(ctx context.Context, key string) error { return nil }

// Close does nothing.
func (NullCache) Close() error { return nil }

var _ Cache = NullCache{}
