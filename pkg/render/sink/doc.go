// Package sink serializes a keyboard [keyboard.Layout] into output formats.
//
// # Overview
//
// A "sink" turns the 88 normalized key rectangles into bytes. This package
// provides:
//
//   - XML: the Layout DSL consumed by the UI layout engine ([RenderXML])
//   - JSON: layout data for external tools ([RenderJSON])
//   - SVG: a vector drawing of the keyboard ([RenderSVG])
//   - PNG: a raster drawing of the keyboard ([RenderPNG])
//
// Every sink receives the keys in ascending index order and is
// deterministic: the same layout and options always produce the same bytes.
// Sinks never modify the layout and are safe to call concurrently.
//
// # Orientation
//
// The layout has a long axis (keys side by side) and a cross axis (key
// depth). [Vertical], the default, maps the long axis to y/height, matching
// the piano-roll sidebar the XML format was written for. [Horizontal] maps it
// to x/width.
//
//	xml := sink.RenderXML(l)
//	svg := sink.RenderSVG(l, sink.WithOrientation(sink.Horizontal), sink.WithLabels())
//	png, err := sink.RenderPNG(l, sink.WithPNGSize(1600, 240), sink.WithPNGOrientation(sink.Horizontal))
//
// # Adding New Formats
//
//  1. Create a renderer function: func RenderFoo(l keyboard.Layout, opts ...FooOption) ([]byte, error)
//  2. Define option types for configuration
//  3. Map keys into the output frame with project (frame.go)
//  4. Register the format in pkg/pipeline
package sink
