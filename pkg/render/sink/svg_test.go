package sink

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderSVG(t *testing.T) {
	l := testLayout(t)
	out := string(RenderSVG(l))

	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 240.0 1600.0" width="240" height="1600">`) {
		t.Errorf("unexpected svg header: %s", out[:100])
	}
	if got := strings.Count(out, `class="key white"`); got != 52 {
		t.Errorf("white rects = %d, want 52", got)
	}
	if got := strings.Count(out, `class="key black"`); got != 36 {
		t.Errorf("black rects = %d, want 36", got)
	}
	if strings.Contains(out, "<text") {
		t.Error("labels rendered without WithLabels")
	}

	// black keys are painted after every white key
	lastWhite := strings.LastIndex(out, `class="key white"`)
	firstBlack := strings.Index(out, `class="key black"`)
	if firstBlack < lastWhite {
		t.Error("black key painted before a white key")
	}
}

func TestRenderSVGOptions(t *testing.T) {
	l := testLayout(t)
	out := string(RenderSVG(l, WithOrientation(Horizontal), WithSize(880, 100), WithLabels()))

	if !strings.Contains(out, `viewBox="0 0 880.0 100.0"`) {
		t.Error("custom size not applied")
	}
	// bb7 sits at 2/88 of the long axis: 20px
	if !strings.Contains(out, `id="key-bb7" class="key black" x="20.00" y="0.00" width="10.00" height="60.00"`) {
		t.Error("bb7 not projected horizontally")
	}
	// C1..C8 plus A0
	if got := strings.Count(out, "<text"); got != 9 {
		t.Errorf("labels = %d, want 9", got)
	}
	if !strings.Contains(out, ">C4</text>") || !strings.Contains(out, ">A0</text>") {
		t.Error("missing C4 or A0 label")
	}
}

func TestRenderSVGDeterministic(t *testing.T) {
	l := testLayout(t)
	if !bytes.Equal(RenderSVG(l, WithLabels()), RenderSVG(l, WithLabels())) {
		t.Error("RenderSVG() output differs between runs")
	}
}
