package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pianolayout/pkg/keyboard"
	"github.com/matzehuels/pianolayout/pkg/observability"
)

// Runner executes the pipeline.
//
// The Runner holds only its logger; it doesn't store results. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete generate → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	// Stage 1: Generate
	generateStart := time.Now()
	layout, err := r.Generate(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	result.Layout = layout
	result.Stats.GenerateTime = time.Since(generateStart)
	result.Stats.WhiteKeys = len(layout.Whites())
	result.Stats.BlackKeys = len(layout.Blacks())

	r.Logger.Info("generated layout",
		"keys", len(layout.Keys),
		"white", result.Stats.WhiteKeys,
		"black", result.Stats.BlackKeys,
		"duration", result.Stats.GenerateTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, err := Render(ctx, layout, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Generate computes the keyboard layout with the options' tuning.
func (r *Runner) Generate(ctx context.Context, opts Options) (keyboard.Layout, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return keyboard.Layout{}, err
	}

	hooks := observability.Pipeline()
	hooks.OnGenerateStart(ctx, keyboard.NumKeys)
	start := time.Now()

	layout, err := keyboard.Generate(keyboard.WithTuning(opts.Tuning))

	hooks.OnGenerateComplete(ctx, len(layout.Keys), time.Since(start), err)
	return layout, err
}

// applyLogger sets the runner's logger on opts when opts has none.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
