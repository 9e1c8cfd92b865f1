package sink

import (
	"fmt"
	"strings"

	"github.com/matzehuels/pianolayout/pkg/keyboard"
)

// Orientation selects which output axis carries the keyboard's long axis.
type Orientation string

const (
	Vertical   Orientation = "vertical"
	Horizontal Orientation = "horizontal"
)

// Default pixel frames for the drawing sinks.
const (
	defaultCross = 240.0
	defaultLong  = 1600.0
)

// ParseOrientation parses "vertical" or "horizontal". An empty string
// yields [Vertical].
func ParseOrientation(s string) (Orientation, error) {
	switch Orientation(strings.ToLower(s)) {
	case "", Vertical:
		return Vertical, nil
	case Horizontal:
		return Horizontal, nil
	default:
		return "", fmt.Errorf("unknown orientation %q (must be 'vertical' or 'horizontal')", s)
	}
}

// DefaultSize returns the default pixel frame for o.
func DefaultSize(o Orientation) (w, h float64) {
	if o == Horizontal {
		return defaultLong, defaultCross
	}
	return defaultCross, defaultLong
}

type rect struct {
	X, Y, W, H float64
}

func (r rect) centerX() float64 { return r.X + r.W/2 }
func (r rect) centerY() float64 { return r.Y + r.H/2 }

// project maps a key into a w×h frame.
func project(k keyboard.Key, o Orientation, w, h float64) rect {
	if o == Horizontal {
		return rect{X: k.Offset * w, Y: k.CrossOffset * h, W: k.Extent * w, H: k.CrossExtent * h}
	}
	return rect{X: k.CrossOffset * w, Y: k.Offset * h, W: k.CrossExtent * w, H: k.Extent * h}
}

// paintOrder returns white keys first so black keys are drawn on top.
func paintOrder(l keyboard.Layout) []keyboard.Key {
	keys := make([]keyboard.Key, 0, len(l.Keys))
	keys = append(keys, l.Whites()...)
	return append(keys, l.Blacks()...)
}

// Key colors shared by the drawing sinks.
const (
	colorWhiteKey = "#fdfdf8"
	colorBlackKey = "#1e1e1e"
	colorOutline  = "#333333"
	colorLabel    = "#6b6b6b"
)
