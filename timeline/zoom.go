package timeline

import "github.com/gogpu/marker"

// Zoom maps timeline samples to pixels.
type Zoom struct {
	// SamplesPerPixel is the number of samples covered by one pixel.
	SamplesPerPixel float64
}

// TimeToPixel returns the x coordinate of t.
func (z Zoom) TimeToPixel(t marker.Time) float64 {
	return float64(t) / z.SamplesPerPixel
}

// PixelToTime returns the sample under x, rounded down.
func (z Zoom) PixelToTime(x float64) marker.Time {
	return marker.Time(x * z.SamplesPerPixel)
}

// Valid reports whether the zoom maps time monotonically.
func (z Zoom) Valid() bool {
	return z.SamplesPerPixel > 0
}
