package text

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontSource represents a loaded font file.
// One FontSource can create faces and measurers at any number of sizes.
// FontSource is read-only after creation and safe for concurrent use.
type FontSource struct {
	data []byte
	font *opentype.Font
	name string
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	s := &FontSource{data: dataCopy, font: f}
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil {
		s.name = name
	}
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	data, err := os.ReadFile(path) //nolint:gosec // caller-provided font path
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data)
}

// Name returns the font family name, or "" when the font has none.
func (s *FontSource) Name() string {
	return s.name
}

// Face creates an x/image font.Face at the given pixel size.
// The returned face is not safe for concurrent use.
func (s *FontSource) Face(size float64) (font.Face, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	face, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("text: failed to create face: %w", err)
	}
	return face, nil
}
