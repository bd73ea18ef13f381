// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about each phase of a conversion run.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define a hook interface for pipeline events
//   - Provide a no-op default implementation
//   - Allow registration of a custom implementation at startup
//
// Hooks are registered by main, not by libraries, so the pipeline package
// never imports a metrics backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnParseStart(ctx, path)
//	// ... parse the save ...
//	observability.Pipeline().OnParseComplete(ctx, path, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from the conversion pipeline.
type PipelineHooks interface {
	// Parse events
	OnParseStart(ctx context.Context, path string)
	OnParseComplete(ctx context.Context, path string, duration time.Duration, err error)

	// Extraction events
	OnExtractStart(ctx context.Context)
	OnExtractComplete(ctx context.Context, factions, persons int, duration time.Duration, err error)

	// Visibility events
	OnFilterStart(ctx context.Context, drawMode, namedMode string)
	OnFilterComplete(ctx context.Context, drawn, named int, duration time.Duration, err error)

	// Output events
	OnWriteStart(ctx context.Context, path, format string)
	OnWriteComplete(ctx context.Context, path, format string, size int, duration time.Duration, err error)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnParseStart(context.Context, string)                                  {}
func (NoopPipelineHooks) OnParseComplete(context.Context, string, time.Duration, error)         {}
func (NoopPipelineHooks) OnExtractStart(context.Context)                                        {}
func (NoopPipelineHooks) OnExtractComplete(context.Context, int, int, time.Duration, error)     {}
func (NoopPipelineHooks) OnFilterStart(context.Context, string, string)                         {}
func (NoopPipelineHooks) OnFilterComplete(context.Context, int, int, time.Duration, error)      {}
func (NoopPipelineHooks) OnWriteStart(context.Context, string, string)                          {}
func (NoopPipelineHooks) OnWriteComplete(context.Context, string, string, int, time.Duration, error) {
}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Reset restores the hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
