// Package cache provides pluggable caching for serialized grid documents.
//
// Building a grid is cheap, but rendered artifacts and large serialized
// boards are not; the CLI and the HTTP server both reuse results for
// repeated parameter sets through this package. Three backends exist:
//
//   - [FileCache]: file-based, for CLI usage
//   - [RedisCache]: Redis-backed, for multi-instance server deployments
//   - [NullCache]: disables caching without branching at call sites
//
// Keys are derived from build parameters via [GridKey], so identical
// parameter sets share an entry regardless of entry point.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss reports that a key is absent or its entry has expired.
// Every backend returns it from Get for missing entries; check with
// [IsMiss] rather than comparing directly, since backends may wrap it
// with context.
var ErrCacheMiss = errors.New("cache miss")

// IsMiss reports whether err is a cache miss.
func IsMiss(err error) bool {
	return errors.Is(err, ErrCacheMiss)
}

// Cache stores serialized grid documents with optional expiry.
type Cache interface {
	// Get retrieves the document stored under key. A missing or expired
	// entry yields [ErrCacheMiss].
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a document. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, doc []byte, ttl time.Duration) error

	// Delete removes an entry. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
