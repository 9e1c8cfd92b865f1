// Package pkg provides the libraries behind pianolayout, a generator for
// 88-key piano keyboard layouts.
//
// # Overview
//
// The keyboard is emitted top-down from c8 to a0 as normalized rectangles in
// the unit square. White keys tile the long axis; black keys sit on top of
// the white keys at fixed 1/88 steps and cover 60% of the cross axis.
//
// # Architecture
//
// The typical data flow:
//
//	[config] (optional pianolayout.toml)
//	         ↓
//	[keyboard] (walk the chromatic scale, place every key)
//	         ↓
//	[render/sink] (XML layout description, JSON, SVG, PNG)
//
// [pipeline] ties the stages together for the CLI and embedding programs,
// reporting through [observability] hooks. [errors] carries machine-readable
// error codes across all packages.
//
// # Quick Start
//
//	l, err := keyboard.Generate()
//	if err != nil {
//	    return err
//	}
//	xml := sink.RenderXML(l)
//	svg := sink.RenderSVG(l, sink.WithLabels())
package pkg
