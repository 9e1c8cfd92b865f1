// Package pipeline provides the generate → render pipeline for pianolayout.
//
// Both the CLI and embedding programs go through this package so that
// defaults, validation and logging behave the same everywhere.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Generate: compute the keyboard layout ([keyboard.Generate])
//  2. Render: serialize it in every requested format (XML, JSON, SVG, PNG)
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Formats:     []string{"xml", "svg"},
//	    Orientation: "horizontal",
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	xml := result.Artifacts["xml"]
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pianolayout/pkg/config"
	errs "github.com/matzehuels/pianolayout/pkg/errors"
	"github.com/matzehuels/pianolayout/pkg/keyboard"
	"github.com/matzehuels/pianolayout/pkg/render/sink"
)

// =============================================================================
// Default Values
// =============================================================================

// Format constants for output formats.
const (
	FormatXML  = "xml"
	FormatJSON = "json"
	FormatSVG  = "svg"
	FormatPNG  = "png"
)

// DefaultFormat is rendered when no format is requested.
const DefaultFormat = FormatXML

// DefaultScale is the PNG scale factor.
const DefaultScale = 1.0

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatXML:  true,
	FormatJSON: true,
	FormatSVG:  true,
	FormatPNG:  true,
}

// TextFormats are the formats that may be printed to a terminal.
var TextFormats = map[string]bool{
	FormatXML:  true,
	FormatJSON: true,
	FormatSVG:  true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
type Options struct {
	Formats     []string        `json:"formats,omitempty"`
	Orientation string          `json:"orientation,omitempty"`
	Width       float64         `json:"width,omitempty"`  // pixel width for svg/png
	Height      float64         `json:"height,omitempty"` // pixel height for svg/png
	Scale       float64         `json:"scale,omitempty"`  // png only
	Labels      bool            `json:"labels,omitempty"`
	Tuning      keyboard.Tuning `json:"tuning"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// FromConfig builds options from a decoded config file. Formats are
// normalized the same way as [ParseFormats].
func FromConfig(cfg config.Config) Options {
	return Options{
		Formats:     ParseFormats(strings.Join(cfg.Render.Formats, ",")),
		Orientation: cfg.Render.Orientation,
		Width:       cfg.Render.Width,
		Height:      cfg.Render.Height,
		Labels:      cfg.Render.Labels,
		Tuning:      cfg.Tuning,
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Layout is the generated keyboard.
	Layout keyboard.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	WhiteKeys    int
	BlackKeys    int
	GenerateTime time.Duration
	RenderTime   time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errs.New(errs.ErrCodeInvalidFormat, "invalid format: %q (must be one of: xml, json, svg, png)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateOrientation checks that an orientation is valid.
func ValidateOrientation(o string) error {
	if _, err := sink.ParseOrientation(o); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidOrientation, err, "invalid orientation")
	}
	return nil
}

// ParseFormats splits a comma-separated format list, trimming blanks and
// dropping duplicates. An empty string yields nil.
func ParseFormats(s string) []string {
	var formats []string
	seen := make(map[string]bool)
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		formats = append(formats, f)
	}
	return formats
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults applies defaults and validates every field.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateOrientation(o.Orientation); err != nil {
		return err
	}
	if o.Width < 0 || o.Height < 0 || o.Scale < 0 {
		return errs.New(errs.ErrCodeInvalidInput, "size and scale must not be negative")
	}
	if err := keyboard.ValidateTuning(o.Tuning); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetDefaults fills zero values. A zero Tuning means the default tuning.
func (o *Options) SetDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if o.Orientation == "" {
		o.Orientation = string(sink.Vertical)
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Tuning == (keyboard.Tuning{}) {
		o.Tuning = keyboard.DefaultTuning()
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// orientation returns the parsed orientation; call after validation.
func (o *Options) orientation() sink.Orientation {
	or, _ := sink.ParseOrientation(o.Orientation)
	return or
}
