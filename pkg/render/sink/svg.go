package sink

import (
	"bytes"
	"fmt"
	"math"

	"github.com/matzehuels/pianolayout/pkg/keyboard"
)

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	orientation Orientation
	width       float64
	height      float64
	labels      bool
}

// WithSize sets the pixel frame. Zero values fall back to [DefaultSize].
func WithSize(w, h float64) SVGOption {
	return func(r *svgRenderer) { r.width, r.height = w, h }
}
func WithOrientation(o Orientation) SVGOption { return func(r *svgRenderer) { r.orientation = o } }
func WithLabels() SVGOption                   { return func(r *svgRenderer) { r.labels = true } }

// RenderSVG draws the keyboard. White keys are painted first so that black
// keys overlap them; labels, when enabled, are drawn on the C keys.
func RenderSVG(l keyboard.Layout, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		r.width, r.height, r.width, r.height)
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="%s"/>`+"\n", r.width, r.height, colorOutline)

	for _, k := range paintOrder(l) {
		r.renderKey(&buf, k)
	}
	if r.labels {
		for _, k := range l.Keys {
			if isLabelled(k) {
				r.renderLabel(&buf, k)
			}
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{orientation: Vertical}
	for _, opt := range opts {
		opt(&r)
	}
	dw, dh := DefaultSize(r.orientation)
	if r.width <= 0 {
		r.width = dw
	}
	if r.height <= 0 {
		r.height = dh
	}
	return r
}

func (r svgRenderer) renderKey(buf *bytes.Buffer, k keyboard.Key) {
	rc := project(k, r.orientation, r.width, r.height)
	fill := colorWhiteKey
	if !k.IsWhite() {
		fill = colorBlackKey
	}
	fmt.Fprintf(buf, `  <rect id="key-%s" class="key %s" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
		k.Name, k.Color, rc.X, rc.Y, rc.W, rc.H, fill, colorOutline)
}

func (r svgRenderer) renderLabel(buf *bytes.Buffer, k keyboard.Key) {
	rc := project(k, r.orientation, r.width, r.height)
	size := labelSize(rc, r.orientation)

	// Labels sit at the free end of the white key, past the black keys.
	x, y := rc.X+rc.W-size, rc.centerY()
	anchor := "end"
	if r.orientation == Horizontal {
		x, y = rc.centerX(), rc.Y+rc.H-size/2
		anchor = "middle"
	}
	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-family="sans-serif" font-size="%.1f" fill="%s" text-anchor="%s" dominant-baseline="middle">%s</text>`+"\n",
		x, y, size, colorLabel, anchor, labelText(k))
}

// isLabelled reports whether k gets a label: every C plus a0 (MIDI 21).
func isLabelled(k keyboard.Key) bool {
	return k.IsWhite() && (k.Degree == 0 || k.MIDI == 21)
}

func labelText(k keyboard.Key) string {
	return fmt.Sprintf("%c%d", k.Name[0]-'a'+'A', k.Octave)
}

// labelSize scales the font with the key's long-axis extent.
func labelSize(rc rect, o Orientation) float64 {
	long := rc.H
	if o == Horizontal {
		long = rc.W
	}
	return math.Max(6, math.Round(long*0.6))
}
