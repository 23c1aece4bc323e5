package text

import (
	"sync"

	"golang.org/x/image/font"
)

// XImageMeasurer measures text by summing hinted glyph advances and kerning
// from golang.org/x/image/font.
//
// XImageMeasurer is safe for concurrent use.
type XImageMeasurer struct {
	mu   sync.Mutex
	face font.Face
	size float64
}

// NewXImageMeasurer creates a measurer for src at the given pixel size.
func NewXImageMeasurer(src *FontSource, size float64) (*XImageMeasurer, error) {
	face, err := src.Face(size)
	if err != nil {
		return nil, err
	}
	return &XImageMeasurer{face: face, size: size}, nil
}

// Size implements Measurer. The height is the ink extent of s.
func (m *XImageMeasurer) Size(s string) (w, h float64) {
	if s == "" {
		return 0, 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	bounds, advance := font.BoundString(m.face, s)
	return fixedToFloat(advance), fixedToFloat(bounds.Max.Y - bounds.Min.Y)
}

// Metrics returns the ascent and descent of the face in pixels.
// Descent is positive.
func (m *XImageMeasurer) Metrics() (ascent, descent float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fm := m.face.Metrics()
	return fixedToFloat(fm.Ascent), fixedToFloat(fm.Descent)
}

// PixelSize returns the face size in pixels.
func (m *XImageMeasurer) PixelSize() float64 {
	return m.size
}
