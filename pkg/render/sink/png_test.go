package sink

import (
	"bytes"
	"image/png"
	"testing"
)

func TestRenderPNG(t *testing.T) {
	l := testLayout(t)

	data, err := RenderPNG(l, WithPNGSize(100, 880), WithScale(2))
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 200 || b.Dy() != 1760 {
		t.Errorf("image size = %dx%d, want 200x1760", b.Dx(), b.Dy())
	}

	// a7 past the black keys is light; bb7 covers y 40..60 at 2x
	if r, _, _, _ := img.At(190, 60).RGBA(); r < 0xc000 {
		t.Errorf("white key pixel too dark: %#x", r)
	}
	if r, _, _, _ := img.At(40, 50).RGBA(); r > 0x4000 {
		t.Errorf("black key pixel too light: %#x", r)
	}
}

func TestRenderPNGLabels(t *testing.T) {
	l := testLayout(t)

	data, err := RenderPNG(l, WithPNGOrientation(Horizontal), WithPNGLabels())
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 1600 || b.Dy() != 240 {
		t.Errorf("image size = %dx%d, want 1600x240", b.Dx(), b.Dy())
	}
}

func TestRenderPNGInvalidScale(t *testing.T) {
	if _, err := RenderPNG(testLayout(t), WithScale(-1)); err == nil {
		t.Error("RenderPNG() with negative scale: want error")
	}
}
