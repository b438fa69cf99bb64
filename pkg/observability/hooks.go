// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can register
// hooks at startup to receive events about graph loading, levelization, and
// layout optimization.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the graph core dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGraphHooks(&myGraphHooks{})
//	    // ... run application
//	}
//
// The pipeline calls hooks to emit events:
//
//	observability.Graph().OnLevelizeStart(ctx, nodes, edges)
//	// ... levelize ...
//	observability.Graph().OnLevelizeComplete(ctx, levels, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// GraphHooks receives events from graph construction and analysis stages.
type GraphHooks interface {
	// Load events
	OnLoadStart(ctx context.Context, source string)
	OnLoadComplete(ctx context.Context, source string, nodes, edges int, duration time.Duration, err error)

	// Levelization events
	OnLevelizeStart(ctx context.Context, nodes, edges int)
	OnLevelizeComplete(ctx context.Context, levels int, duration time.Duration, err error)

	// Layout optimization events; kind is "node" or "edge".
	OnOptimizeStart(ctx context.Context, kind string)
	OnOptimizeComplete(ctx context.Context, kind string, duration time.Duration, err error)
}

// NoopGraphHooks is a no-op implementation of GraphHooks.
type NoopGraphHooks struct{}

func (NoopGraphHooks) OnLoadStart(context.Context, string)                                    {}
func (NoopGraphHooks) OnLoadComplete(context.Context, string, int, int, time.Duration, error) {}
func (NoopGraphHooks) OnLevelizeStart(context.Context, int, int)                              {}
func (NoopGraphHooks) OnLevelizeComplete(context.Context, int, time.Duration, error)          {}
func (NoopGraphHooks) OnOptimizeStart(context.Context, string)                                {}
func (NoopGraphHooks) OnOptimizeComplete(context.Context, string, time.Duration, error)       {}

var (
	graphHooks GraphHooks = NoopGraphHooks{}
	hooksMu    sync.RWMutex
)

// SetGraphHooks registers custom graph hooks.
// This should be called once at application startup before any pipeline
// operations.
func SetGraphHooks(h GraphHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		graphHooks = h
	}
}

// Graph returns the registered graph hooks.
func Graph() GraphHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return graphHooks
}

// Reset restores the no-op default hooks.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	graphHooks = NoopGraphHooks{}
}
