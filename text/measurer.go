package text

import "golang.org/x/image/math/fixed"

// Measurer computes text extents in pixels.
type Measurer interface {
	// Size returns the advance width and the ink height of s.
	// Both are zero for an empty string.
	Size(s string) (w, h float64)
}

// MeasurerFunc adapts a function to the Measurer interface.
type MeasurerFunc func(s string) (w, h float64)

// Size implements Measurer.
func (f MeasurerFunc) Size(s string) (w, h float64) { return f(s) }

// Zero is a Measurer that reports zero extents for every string.
// It stands in when no font metrics are available.
type Zero struct{}

// Size implements Measurer.
func (Zero) Size(string) (w, h float64) { return 0, 0 }

// fixedToFloat converts a 26.6 fixed-point value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// floatToFixed converts a float64 size to fixed.Int26_6.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}
