// Package marker renders and lays out timeline markers.
//
// # Overview
//
// A Marker annotates a point in time on a timeline: a generic mark, a tempo
// or meter change, or the boundary of a session, range, loop or punch region.
// Each marker owns a small scene graph subtree:
//   - a type-specific glyph (see ShapeFor)
//   - a single-line label, clamped to the space its neighbours leave
//   - a tinted label background
//   - an optional "MIDI" badge in front of the label
//   - an optional vertical extension line down through the track area
//
// The marker keeps these consistent as the zoom level, selection, color,
// label text, available space and badge state change. Every mutator re-runs
// only the sub-layout it affects and returns with the visual state fully
// derived.
//
// # Quick Start
//
//	root := canvas.NewGroup(nil, canvas.Point{})
//	ruler := timeline.NewRuler(root, timeline.Zoom{SamplesPerPixel: 4})
//
//	m := marker.New(ruler, ruler.MarkerGroup(), marker.Mark, 1000,
//	    canvas.FromUint32(0xff0000ff), "Verse")
//	m.Show()
//	m.SetSelected(true) // extension line appears in the edit point color
//
// # Display Profiles
//
// Standard draws glyphs and shows the extension line while a marker is
// selected or forced. Alternate suppresses glyphs, pads labels on both sides,
// keeps the line of plain marks always on, and leaves the bottom edge of the
// label background open. See Profile.
//
// # Coordinates
//
// Time is mapped to pixels by the Host. A marker's group sits at
// TimeToPixel(t) - Shift so that the glyph's logical anchor lands exactly on
// the mapped pixel.
//
// # Threading
//
// Markers are not safe for concurrent use. All calls are expected on the
// rendering goroutine; every method runs to completion synchronously.
package marker
