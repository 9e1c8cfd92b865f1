package keyboard

import (
	errs "github.com/matzehuels/pianolayout/pkg/errors"
)

// Fixed keyboard dimensions.
const (
	NumKeys      = 88
	NumWhiteKeys = 52
	TopOctave    = 8
)

// Tuning holds the visual tuning values of the placer. They are empirical
// and have no derivation from the keyboard itself.
type Tuning struct {
	// SpanCorrection widens the span shared by white keys 2..52.
	SpanCorrection float64 `toml:"span_correction" json:"span_correction"`

	// WidthOverlap is added to the span when sizing white keys, so
	// neighbouring white keys overlap a little.
	WidthOverlap float64 `toml:"width_overlap" json:"width_overlap"`

	// BlackCrossExtent is the cross-axis size of a black key relative to a
	// white key.
	BlackCrossExtent float64 `toml:"black_cross_extent" json:"black_cross_extent"`
}

// DefaultTuning returns the tuning that existing Layout XML files were
// generated with.
func DefaultTuning() Tuning {
	return Tuning{
		SpanCorrection:   0.006,
		WidthOverlap:     0.05,
		BlackCrossExtent: 0.6,
	}
}

// Validate checks that every tuning value is finite and in range.
func (t Tuning) Validate() error {
	if err := errs.ValidateRange("span_correction", t.SpanCorrection, -1, 1); err != nil {
		return err
	}
	if err := errs.ValidateRange("width_overlap", t.WidthOverlap, -1, 1); err != nil {
		return err
	}
	if err := errs.ValidateRange("black_cross_extent", t.BlackCrossExtent, 0, 1); err != nil {
		return err
	}
	if t.BlackCrossExtent == 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "black_cross_extent must be greater than 0")
	}
	return nil
}

// placer computes long-axis and cross-axis geometry for a walked pitch.
type placer struct {
	keys   float64
	whites float64
	tuning Tuning
	span   float64 // long-axis distance shared by all but the first white key
}

func newPlacer(keys, whites int, t Tuning) placer {
	k := float64(keys)
	return placer{
		keys:   k,
		whites: float64(whites),
		tuning: t,
		span:   1.0 - (1 / k) + t.SpanCorrection,
	}
}

// whiteOffset places the nth white key (0-based among white keys).
func (p placer) whiteOffset(nth int) float64 {
	if nth == 0 {
		return 0
	}
	return 1/p.keys + float64(nth-1)*p.span/(p.whites-1)
}

// whiteExtent sizes a white key at chromatic index i. Only the very first
// key is a boundary key.
func (p placer) whiteExtent(i int) float64 {
	if i == 0 {
		return 1 / p.keys
	}
	return (p.span + p.tuning.WidthOverlap) / (p.whites - 1)
}

func (p placer) blackOffset(i int) float64 { return float64(i) / p.keys }

func (p placer) blackExtent() float64 { return 1 / p.keys }

func (p placer) crossExtent(c Color) float64 {
	if c == Black {
		return p.tuning.BlackCrossExtent
	}
	return 1.0
}
