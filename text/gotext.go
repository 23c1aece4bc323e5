package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// GoTextMeasurer measures text by shaping it with go-text/typesetting's
// HarfBuzz implementation, so kerning, ligatures and complex scripts are
// reflected in the reported width.
//
// GoTextMeasurer is safe for concurrent use. The parsed font.Font is shared;
// faces and shapers are not concurrent-safe and are created per call or
// pooled.
type GoTextMeasurer struct {
	font       *font.Font
	size       float64
	shaperPool sync.Pool
}

// NewGoTextMeasurer creates a HarfBuzz-backed measurer for src at the given
// pixel size.
func NewGoTextMeasurer(src *FontSource, size float64) (*GoTextMeasurer, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	face, err := font.ParseTTF(bytes.NewReader(src.data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font for shaping: %w", err)
	}
	return &GoTextMeasurer{
		font: face.Font,
		size: size,
		shaperPool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
	}, nil
}

// Size implements Measurer. The height is the ink extent of the shaped run.
func (m *GoTextMeasurer) Size(s string) (w, h float64) {
	if s == "" {
		return 0, 0
	}
	runes := []rune(s)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(m.font),
		Size:      floatToFixed(m.size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := m.shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	m.shaperPool.Put(hb)

	return fixedToFloat(out.Advance), fixedToFloat(out.GlyphBounds.Ascent - out.GlyphBounds.Descent)
}

// detectScript returns the script of the first non-space rune.
// Labels are single runs; mixed-script labels are measured as the first script.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
