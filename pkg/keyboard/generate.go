package keyboard

import (
	errs "github.com/matzehuels/pianolayout/pkg/errors"
)

// Options configures [Generate]. The zero value is not useful; Generate
// starts from the 88-key defaults and applies [Option] values on top.
type Options struct {
	Keys      int
	WhiteKeys int
	TopOctave int
	Tuning    Tuning
}

// Option customizes layout generation.
type Option func(*Options)

// WithTuning replaces the default visual tuning.
func WithTuning(t Tuning) Option {
	return func(o *Options) { o.Tuning = t }
}

// WithGeometry overrides the key counts and the starting octave. The walker
// must produce exactly whiteKeys white keys out of keys positions, otherwise
// Generate fails.
func WithGeometry(keys, whiteKeys, topOctave int) Option {
	return func(o *Options) {
		o.Keys = keys
		o.WhiteKeys = whiteKeys
		o.TopOctave = topOctave
	}
}

// DefaultOptions returns the options of a standard 88-key keyboard.
func DefaultOptions() Options {
	return Options{
		Keys:      NumKeys,
		WhiteKeys: NumWhiteKeys,
		TopOctave: TopOctave,
		Tuning:    DefaultTuning(),
	}
}

// Validate guards the divisions done by the placer.
func (o Options) Validate() error {
	if o.Keys <= 0 {
		return errs.New(errs.ErrCodeInvalidGeometry, "key count must be positive, got %d", o.Keys)
	}
	if o.WhiteKeys <= 1 {
		return errs.New(errs.ErrCodeInvalidGeometry, "white key count must be greater than 1, got %d", o.WhiteKeys)
	}
	if o.WhiteKeys > o.Keys {
		return errs.New(errs.ErrCodeInvalidGeometry, "white key count %d exceeds key count %d", o.WhiteKeys, o.Keys)
	}
	if o.TopOctave < 0 || o.TopOctave > 9 {
		return errs.New(errs.ErrCodeInvalidGeometry, "top octave must be in [0, 9], got %d", o.TopOctave)
	}
	if err := o.Tuning.Validate(); err != nil {
		return err
	}

	// White offsets must increase and white extents stay positive.
	p := newPlacer(o.Keys, o.WhiteKeys, o.Tuning)
	if p.span <= 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "span_correction %v leaves no room for white keys (span %v)", o.Tuning.SpanCorrection, p.span)
	}
	if p.span+o.Tuning.WidthOverlap <= 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "width_overlap %v makes white keys non-positive (span %v)", o.Tuning.WidthOverlap, p.span)
	}
	return nil
}

// ValidateTuning checks t against the standard 88-key geometry.
func ValidateTuning(t Tuning) error {
	o := DefaultOptions()
	o.Tuning = t
	return o.Validate()
}

// Generate computes the keyboard layout. With no options it returns the
// standard 88-key layout, which never fails.
//
// Generate is pure: calling it twice with the same options returns equal
// layouts.
func Generate(opts ...Option) (Layout, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Validate(); err != nil {
		return Layout{}, err
	}

	pitches := walk(o.Keys, o.TopOctave)
	if whites := countWhites(pitches); whites != o.WhiteKeys {
		return Layout{}, errs.New(errs.ErrCodeInvalidGeometry,
			"%d keys from c%d contain %d white keys, want %d", o.Keys, o.TopOctave, whites, o.WhiteKeys)
	}
	if low := pitches[len(pitches)-1]; low.midi() < 0 {
		return Layout{}, errs.New(errs.ErrCodeInvalidGeometry, "lowest key %s is below MIDI note 0", low.name())
	}

	p := newPlacer(o.Keys, o.WhiteKeys, o.Tuning)
	keys := make([]Key, len(pitches))
	nthWhite := 0
	for i, pt := range pitches {
		k := Key{
			Index:       i,
			Name:        pt.name(),
			Degree:      pt.degree,
			Octave:      pt.octave,
			Color:       pt.color,
			MIDI:        pt.midi(),
			CrossExtent: p.crossExtent(pt.color),
		}
		if pt.color == White {
			k.Offset = p.whiteOffset(nthWhite)
			k.Extent = p.whiteExtent(i)
			nthWhite++
		} else {
			k.Offset = p.blackOffset(i)
			k.Extent = p.blackExtent()
		}
		keys[i] = k
	}

	return Layout{Keys: keys, Tuning: o.Tuning}, nil
}

func countWhites(pitches []pitch) int {
	n := 0
	for _, p := range pitches {
		if p.color == White {
			n++
		}
	}
	return n
}
