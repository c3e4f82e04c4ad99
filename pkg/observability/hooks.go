// Package observability provides hooks for warnings, metrics, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about figure assembly, pipeline execution, cache operations,
// and HTTP requests.
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
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, plain loggers, etc.)
//
// # Warnings
//
// Figure assembly degrades gracefully on data/content anomalies: overlapping
// grid cells, unsupported plottables, widened user bounds and unknown config
// keys all emit a typed Warning and continue. Warning hooks carry no context
// since assembly is synchronous and never blocks.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetWarningHooks(observability.WarningFunc(func(w observability.Warning) {
//	        log.Warn(w.Message, "code", w.Code)
//	    }))
//	    // ... run application
//	}
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Warning Hooks
// =============================================================================

// WarningCode classifies a recoverable figure-assembly anomaly.
type WarningCode string

const (
	// WarnOverlap: a grid cell was claimed by more than one plot region.
	WarnOverlap WarningCode = "overlap"

	// WarnBoundsAdjusted: a user-specified axis bound conflicted with the
	// data extent or the axis scale and was adjusted.
	WarnBoundsAdjusted WarningCode = "bounds_adjusted"

	// WarnUnsupportedObject: an object of an unrecognized kind was skipped.
	WarnUnsupportedObject WarningCode = "unsupported_object"

	// WarnUnknownAttribute: an axis/legend/style key was not recognized
	// and ignored.
	WarnUnknownAttribute WarningCode = "unknown_attribute"

	// WarnNoCurrentPlot: a figure proxy call had no current region to
	// forward to.
	WarnNoCurrentPlot WarningCode = "no_current_plot"
)

// Warning is a recoverable anomaly emitted during figure assembly.
type Warning struct {
	Code    WarningCode
	Message string
}

// WarningHooks receives figure-assembly warnings.
type WarningHooks interface {
	OnWarning(w Warning)
}

// WarningFunc adapts a plain function to the WarningHooks interface.
type WarningFunc func(Warning)

func (f WarningFunc) OnWarning(w Warning) { f(w) }

// Recorder is a WarningHooks implementation that collects warnings in order.
// It is intended for tests and for surfacing warnings in API responses.
type Recorder struct {
	mu       sync.Mutex
	warnings []Warning
}

func (r *Recorder) OnWarning(w Warning) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warnings = append(r.warnings, w)
}

// Warnings returns a copy of the recorded warnings.
func (r *Recorder) Warnings() []Warning {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Warning, len(r.warnings))
	copy(out, r.warnings)
	return out
}

// Count returns how many recorded warnings carry the given code.
func (r *Recorder) Count(code WarningCode) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, w := range r.warnings {
		if w.Code == code {
			n++
		}
	}
	return n
}

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the figure pipeline.
type PipelineHooks interface {
	// Parse events (figure definition decoding)
	OnParseStart(ctx context.Context, source string)
	OnParseComplete(ctx context.Context, source string, regionCount int, duration time.Duration, err error)

	// Solve events (layout + boundary resolution)
	OnSolveStart(ctx context.Context, figure string, regionCount int)
	OnSolveComplete(ctx context.Context, figure string, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the render service.
type HTTPHooks interface {
	// OnRequest records an incoming HTTP request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records an HTTP response.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopWarningHooks is a no-op implementation of WarningHooks.
type NoopWarningHooks struct{}

func (NoopWarningHooks) OnWarning(Warning) {}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnParseStart(context.Context, string)                                  {}
func (NoopPipelineHooks) OnParseComplete(context.Context, string, int, time.Duration, error)    {}
func (NoopPipelineHooks) OnSolveStart(context.Context, string, int)                             {}
func (NoopPipelineHooks) OnSolveComplete(context.Context, string, time.Duration, error)         {}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                               {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error)      {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	warningHooks  WarningHooks  = NoopWarningHooks{}
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	httpHooks     HTTPHooks     = NoopHTTPHooks{}
	hooksMu       sync.RWMutex
)

// SetWarningHooks registers custom warning hooks.
// This should be called once at application startup before figures are built.
func SetWarningHooks(h WarningHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		warningHooks = h
	}
}

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before the server starts.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Warnings returns the registered warning hooks.
func Warnings() WarningHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return warningHooks
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	warningHooks = NoopWarningHooks{}
	pipelineHooks = NoopPipelineHooks{}
	cacheHooks = NoopCacheHooks{}
	httpHooks = NoopHTTPHooks{}
}
