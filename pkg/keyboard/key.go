package keyboard

import (
	"fmt"
	"strings"

	"gitlab.com/gomidi/midi/v2"
)

// Color classifies a key as white (natural) or black (flat).
type Color int

const (
	White Color = iota
	Black
)

// String returns "white" or "black".
func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// ParseColor parses "white" or "black" (case-insensitive).
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(s) {
	case "white":
		return White, nil
	case "black":
		return Black, nil
	default:
		return White, fmt.Errorf("unknown key color %q", s)
	}
}

// Key is one physical key and its normalized rectangle.
//
// Offset and Extent run along the long axis (the direction keys are laid
// side by side). CrossOffset and CrossExtent run along the orthogonal axis;
// CrossOffset is always 0.
type Key struct {
	Index  int    // emission order, 0 is the top key
	Name   string // e.g. "c8", "bb7", "a0"
	Degree int    // 0=c .. 6=b
	Octave int
	Color  Color
	MIDI   int // MIDI note number, 108 for c8 down to 21 for a0

	Offset      float64
	Extent      float64
	CrossOffset float64
	CrossExtent float64
}

// IsWhite reports whether k is a natural key.
func (k Key) IsWhite() bool { return k.Color == White }

// End returns the far edge of the key on the long axis.
func (k Key) End() float64 { return k.Offset + k.Extent }

// Pitch returns the key as a MIDI note.
func (k Key) Pitch() midi.Note { return midi.Note(k.MIDI) }

// Layout is the ordered set of keys produced by [Generate].
// It spans the unit square anchored at (0,0).
type Layout struct {
	Keys   []Key
	Tuning Tuning
}

// Whites returns the white keys in emission order.
func (l Layout) Whites() []Key { return l.filter(White) }

// Blacks returns the black keys in emission order.
func (l Layout) Blacks() []Key { return l.filter(Black) }

// Key looks up a key by name.
func (l Layout) Key(name string) (Key, bool) {
	for _, k := range l.Keys {
		if k.Name == name {
			return k, true
		}
	}
	return Key{}, false
}

func (l Layout) filter(c Color) []Key {
	var keys []Key
	for _, k := range l.Keys {
		if k.Color == c {
			keys = append(keys, k)
		}
	}
	return keys
}
