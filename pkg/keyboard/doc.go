// Package keyboard computes the geometry of an 88-key piano keyboard.
//
// # Overview
//
// [Generate] walks the chromatic scale from the top C (c8) down to the bottom
// A (a0), classifies every position as a white or black key and places it on
// the keyboard's long axis. The result is a [Layout]: 88 [Key] records with
// normalized offsets and extents in [0, 1], ordered by emission index.
//
//	l, err := keyboard.Generate()
//	if err != nil {
//	    return err
//	}
//	for _, k := range l.Keys {
//	    fmt.Printf("%-4s %.4f %.4f\n", k.Name, k.Offset, k.Extent)
//	}
//
// # Geometry
//
// White keys share the long axis: the first one is a narrow boundary key of
// width 1/88, the remaining 51 are evenly spaced across
//
//	span = 1 - 1/88 + SpanCorrection
//
// and drawn (span+WidthOverlap)/51 wide so that neighbours overlap slightly.
// Black keys sit at their absolute chromatic position index/88 with extent
// 1/88 and only cover [Tuning.BlackCrossExtent] of the cross axis.
//
// The tuning values in [DefaultTuning] are empirical; they are kept so that
// layouts stay pixel-compatible with existing Layout XML files.
//
// # Naming
//
// Keys are named by pitch class letter, an optional "b" (flat) marker and the
// octave: c8, b7, bb7, a7, ab7, ... c1, b0, bb0, a0. Black keys carry the
// letter of the white key directly above them, so there is never a "cb" or
// "fb" key.
package keyboard
