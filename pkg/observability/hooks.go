// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about grid builds and cache operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This avoids import cycles (hooks are registered by main, not by
// libraries) and keeps the core library free of observability frameworks;
// any backend can be adapted behind the interfaces.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetBuildHooks(&myBuildHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Build().OnBuildStart(ctx, shape, width, height)
//	// ... assemble grid ...
//	observability.Build().OnBuildComplete(ctx, shape, count, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// BuildHooks receives events from grid assembly.
type BuildHooks interface {
	// OnBuildStart records the beginning of a grid build.
	OnBuildStart(ctx context.Context, shape string, width, height int)

	// OnBuildComplete records a finished build with the hexagon count.
	OnBuildComplete(ctx context.Context, shape string, hexCount int, duration time.Duration, err error)
}

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// NoopBuildHooks is a no-op implementation of BuildHooks.
type NoopBuildHooks struct{}

func (NoopBuildHooks) OnBuildStart(context.Context, string, int, int)                     {}
func (NoopBuildHooks) OnBuildComplete(context.Context, string, int, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

var (
	buildHooks BuildHooks = NoopBuildHooks{}
	cacheHooks CacheHooks = NoopCacheHooks{}
	hooksMu    sync.RWMutex
)

// SetBuildHooks registers custom build hooks.
// Call once at application startup before any builds.
func SetBuildHooks(h BuildHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		buildHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// Call once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Build returns the registered build hooks.
func Build() BuildHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return buildHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	buildHooks = NoopBuildHooks{}
	cacheHooks = NoopCacheHooks{}
}
