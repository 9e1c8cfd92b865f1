package sink

import (
	"encoding/json"

	"github.com/matzehuels/pianolayout/pkg/keyboard"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	orientation Orientation
	tuning      bool
}

// WithJSONOrientation selects the axis mapping used for the x/y/w/h fields.
// Default is [Vertical].
func WithJSONOrientation(o Orientation) JSONOption {
	return func(r *jsonRenderer) { r.orientation = o }
}

// WithJSONTuning records the tuning values the layout was generated with.
func WithJSONTuning() JSONOption { return func(r *jsonRenderer) { r.tuning = true } }

type jsonOutput struct {
	Orientation string           `json:"orientation"`
	Width       float64          `json:"width"`
	Height      float64          `json:"height"`
	WhiteKeys   int              `json:"white_keys"`
	BlackKeys   int              `json:"black_keys"`
	Tuning      *keyboard.Tuning `json:"tuning,omitempty"`
	Keys        []jsonKey        `json:"keys"`
}

type jsonKey struct {
	Index       int     `json:"index"`
	Name        string  `json:"name"`
	Color       string  `json:"color"`
	MIDI        int     `json:"midi"`
	Offset      float64 `json:"offset"`
	Extent      float64 `json:"extent"`
	CrossOffset float64 `json:"cross_offset"`
	CrossExtent float64 `json:"cross_extent"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	W           float64 `json:"w"`
	H           float64 `json:"h"`
}

// RenderJSON exports the layout as a pretty-printed JSON document. The root
// is the unit square; every key carries both its axis-neutral geometry
// (offset/extent) and its x/y/w/h in the selected orientation.
func RenderJSON(l keyboard.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{orientation: Vertical}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Orientation: string(r.orientation),
		Width:       1,
		Height:      1,
		WhiteKeys:   len(l.Whites()),
		BlackKeys:   len(l.Blacks()),
		Keys:        buildJSONKeys(l, r.orientation),
	}
	if r.tuning {
		t := l.Tuning
		out.Tuning = &t
	}

	return json.MarshalIndent(out, "", "  ")
}

func buildJSONKeys(l keyboard.Layout, o Orientation) []jsonKey {
	keys := make([]jsonKey, 0, len(l.Keys))
	for _, k := range l.Keys {
		rc := project(k, o, 1, 1)
		keys = append(keys, jsonKey{
			Index:       k.Index,
			Name:        k.Name,
			Color:       k.Color.String(),
			MIDI:        k.MIDI,
			Offset:      k.Offset,
			Extent:      k.Extent,
			CrossOffset: k.CrossOffset,
			CrossExtent: k.CrossExtent,
			X:           rc.X,
			Y:           rc.Y,
			W:           rc.W,
			H:           rc.H,
		})
	}
	return keys
}
