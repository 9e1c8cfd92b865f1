// Package observability provides hooks for metrics, tracing, and logging.
//
// The pipeline reports generation and rendering events through the
// registered [PipelineHooks]. The default is a no-op; the CLI registers
// [LogHooks] in verbose mode, and embedding programs can register their own
// implementation (OpenTelemetry, Prometheus, ...) at startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnGenerateStart(ctx, keyboard.NumKeys)
//	// ... generate ...
//	observability.Pipeline().OnGenerateComplete(ctx, len(l.Keys), duration, err)
package observability

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the layout pipeline.
type PipelineHooks interface {
	// Generate events
	OnGenerateStart(ctx context.Context, keys int)
	OnGenerateComplete(ctx context.Context, keys int, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, formats []string)
	OnArtifact(ctx context.Context, format string, size int, duration time.Duration)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// =============================================================================
// Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnGenerateStart(context.Context, int)                             {}
func (NoopPipelineHooks) OnGenerateComplete(context.Context, int, time.Duration, error)    {}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                          {}
func (NoopPipelineHooks) OnArtifact(context.Context, string, int, time.Duration)           {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}

// LogHooks writes every pipeline event to a logger at debug level.
type LogHooks struct {
	Logger *log.Logger
}

func (h LogHooks) OnGenerateStart(_ context.Context, keys int) {
	h.Logger.Debug("generate start", "keys", keys)
}

func (h LogHooks) OnGenerateComplete(_ context.Context, keys int, d time.Duration, err error) {
	h.Logger.Debug("generate complete", "keys", keys, "duration", d, "err", err)
}

func (h LogHooks) OnRenderStart(_ context.Context, formats []string) {
	h.Logger.Debug("render start", "formats", formats)
}

func (h LogHooks) OnArtifact(_ context.Context, format string, size int, d time.Duration) {
	h.Logger.Debug("artifact", "format", format, "bytes", size, "duration", d)
}

func (h LogHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	h.Logger.Debug("render complete", "formats", formats, "duration", d, "err", err)
}

// =============================================================================
// Global Hook Registry
// =============================================================================

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

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
