// Package observability provides hooks for instrumenting layout computation
// and the panel's layout cache.
//
// The package uses a simple hooks pattern: hook interfaces with no-op
// defaults and a global registry populated by the application at startup.
// Libraries emit events unconditionally; without registration the calls cost
// an interface dispatch and nothing else. This keeps the layout engine free
// of any dependency on a metrics or tracing backend while still letting a
// host wire one in.
//
// # Usage
//
// Register hooks once at startup:
//
//	observability.SetLayoutHooks(&myLayoutHooks{})
//	observability.SetCacheHooks(&myCacheHooks{})
package observability

import (
	"sync"
	"time"
)

// LayoutHooks receives events from layout builds.
type LayoutHooks interface {
	// OnBuildStart records the start of a layout build.
	OnBuildStart(nodes, edges int)

	// OnBuildComplete records a finished build, successful or not.
	OnBuildComplete(nodes, edges int, duration time.Duration, err error)
}

// CacheHooks receives events from the panel's layout cache.
type CacheHooks interface {
	// OnHit records a structural-hash cache hit.
	OnHit(hash string)

	// OnMiss records a structural-hash cache miss.
	OnMiss(hash string)
}

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnBuildStart(int, int)                          {}
func (NoopLayoutHooks) OnBuildComplete(int, int, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnHit(string)  {}
func (NoopCacheHooks) OnMiss(string) {}

var (
	layoutHooks LayoutHooks = NoopLayoutHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
	hooksMu     sync.RWMutex
)

// SetLayoutHooks registers custom layout hooks.
// Call once at application startup before any layout is built.
func SetLayoutHooks(h LayoutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		layoutHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// Call once at application startup before any panel runs a frame.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return layoutHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores the no-op defaults. Primarily useful in tests.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	layoutHooks = NoopLayoutHooks{}
	cacheHooks = NoopCacheHooks{}
}
