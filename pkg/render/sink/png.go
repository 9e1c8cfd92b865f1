package sink

import (
	"bytes"
	"fmt"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/matzehuels/pianolayout/pkg/keyboard"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	orientation Orientation
	width       float64
	height      float64
	scale       float64
	labels      bool
}

// WithPNGSize sets the frame in logical pixels. Zero values fall back to
// [DefaultSize].
func WithPNGSize(w, h float64) PNGOption {
	return func(r *pngRenderer) { r.width, r.height = w, h }
}

// WithPNGOrientation selects the axis mapping. Default is [Vertical].
func WithPNGOrientation(o Orientation) PNGOption {
	return func(r *pngRenderer) { r.orientation = o }
}

// WithPNGLabels draws octave labels on the C keys.
func WithPNGLabels() PNGOption { return func(r *pngRenderer) { r.labels = true } }

// WithScale sets the PNG scale factor (default 1.0).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG rasterizes the keyboard with the same geometry and colors as
// [RenderSVG].
func RenderPNG(l keyboard.Layout, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{orientation: Vertical, scale: 1.0}
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
	if r.scale <= 0 {
		return nil, fmt.Errorf("invalid PNG scale %v", r.scale)
	}

	w, h := r.width*r.scale, r.height*r.scale
	dc := gg.NewContext(int(math.Ceil(w)), int(math.Ceil(h)))

	dc.SetHexColor(colorOutline)
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()

	for _, k := range paintOrder(l) {
		drawKey(dc, project(k, r.orientation, w, h), k)
	}

	if r.labels {
		if err := r.drawLabels(dc, l, w, h); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func drawKey(dc *gg.Context, rc rect, k keyboard.Key) {
	dc.DrawRectangle(rc.X, rc.Y, rc.W, rc.H)
	if k.IsWhite() {
		dc.SetHexColor(colorWhiteKey)
	} else {
		dc.SetHexColor(colorBlackKey)
	}
	dc.FillPreserve()
	dc.SetHexColor(colorOutline)
	dc.SetLineWidth(1)
	dc.Stroke()
}

func (r pngRenderer) drawLabels(dc *gg.Context, l keyboard.Layout, w, h float64) error {
	font, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("parse font: %w", err)
	}

	dc.SetHexColor(colorLabel)
	for _, k := range l.Keys {
		if !isLabelled(k) {
			continue
		}
		rc := project(k, r.orientation, w, h)
		size := labelSize(rc, r.orientation)
		dc.SetFontFace(truetype.NewFace(font, &truetype.Options{Size: size}))

		if r.orientation == Horizontal {
			dc.DrawStringAnchored(labelText(k), rc.centerX(), rc.Y+rc.H-size/2, 0.5, 0.5)
		} else {
			dc.DrawStringAnchored(labelText(k), rc.X+rc.W-size, rc.centerY(), 1, 0.5)
		}
	}
	return nil
}
