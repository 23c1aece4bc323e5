package marker

import (
	"fmt"
	"slices"

	"github.com/gogpu/marker/canvas"
)

// MarkerHeight is the height of every glyph and of the label background
// (which extends one pixel further).
const MarkerHeight = 17.0

// Shape is the geometry of a marker archetype.
type Shape struct {
	// Outline is the closed glyph polygon in glyph space.
	Outline []canvas.Point

	// Shift is the horizontal distance from the glyph origin to its logical
	// anchor. The glyph is placed at pixel - Shift.
	Shift float64

	// LabelOffset is the default label x position relative to the glyph origin.
	LabelOffset float64
}

const glyphH = MarkerHeight

var catalogue = [numTypes]Shape{
	// hexagonal pin
	Mark: {
		Outline:     []canvas.Point{{X: 0, Y: 0}, {X: 6, Y: 0}, {X: 6, Y: 5}, {X: 3, Y: glyphH}, {X: 0, Y: 5}, {X: 0, Y: 0}},
		Shift:       3,
		LabelOffset: 8,
	},
	// chevron
	Tempo: {
		Outline:     []canvas.Point{{X: 3, Y: 0}, {X: 6, Y: 5}, {X: 6, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 5}, {X: 3, Y: 0}},
		Shift:       3,
		LabelOffset: 8,
	},
	Meter: {
		Outline:     []canvas.Point{{X: 3, Y: 0}, {X: 6, Y: 5}, {X: 6, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 5}, {X: 3, Y: 0}},
		Shift:       3,
		LabelOffset: 8,
	},
	SessionStart: {
		Outline:     []canvas.Point{{X: 0, Y: 0}, {X: 6.5, Y: 6.5}, {X: 0, Y: glyphH}, {X: 0, Y: 0}},
		Shift:       0,
		LabelOffset: glyphH,
	},
	RangeStart: {
		Outline:     []canvas.Point{{X: 0, Y: 0}, {X: 6.5, Y: 6.5}, {X: 0, Y: glyphH}, {X: 0, Y: 0}},
		Shift:       0,
		LabelOffset: glyphH,
	},
	SessionEnd: {
		Outline:     []canvas.Point{{X: 6.5, Y: 6.5}, {X: glyphH, Y: 0}, {X: glyphH, Y: glyphH}, {X: 6.5, Y: 6.5}},
		Shift:       glyphH,
		LabelOffset: 6,
	},
	RangeEnd: {
		Outline:     []canvas.Point{{X: 6.5, Y: 6.5}, {X: glyphH, Y: 0}, {X: glyphH, Y: glyphH}, {X: 6.5, Y: 6.5}},
		Shift:       glyphH,
		LabelOffset: 6,
	},
	LoopStart: {
		Outline:     []canvas.Point{{X: 0, Y: 0}, {X: glyphH, Y: glyphH}, {X: 0, Y: glyphH}, {X: 0, Y: 0}},
		Shift:       0,
		LabelOffset: 12,
	},
	LoopEnd: {
		Outline:     []canvas.Point{{X: glyphH, Y: 0}, {X: glyphH, Y: glyphH}, {X: 0, Y: glyphH}, {X: glyphH, Y: 0}},
		Shift:       glyphH,
		LabelOffset: 0,
	},
	PunchIn: {
		Outline:     []canvas.Point{{X: 0, Y: 0}, {X: glyphH, Y: 0}, {X: 0, Y: glyphH}, {X: 0, Y: 0}},
		Shift:       0,
		LabelOffset: glyphH,
	},
	// fixed 12 unit triangle
	PunchOut: {
		Outline:     []canvas.Point{{X: 0, Y: 0}, {X: 12, Y: 0}, {X: 12, Y: 12}, {X: 0, Y: 0}},
		Shift:       glyphH,
		LabelOffset: 0,
	},
}

// ShapeFor returns the geometry of t. The outline is a fresh copy.
//
// ShapeFor panics if t is not a declared Type.
func ShapeFor(t Type) Shape {
	if !t.Valid() {
		panic(fmt.Sprintf("marker: no shape for %v", t))
	}
	s := catalogue[t]
	s.Outline = slices.Clone(s.Outline)
	return s
}
