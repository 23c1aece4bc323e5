package text

import (
	"unicode"

	"golang.org/x/text/width"
)

// Monospace measures text on a fixed cell grid.
//
// Every rune advances by Advance, except East Asian wide and fullwidth runes,
// which take two cells, and non-spacing marks, which take none. The height is
// Height for any non-empty string.
type Monospace struct {
	Advance float64
	Height  float64
}

// Size implements Measurer.
func (m Monospace) Size(s string) (w, h float64) {
	if s == "" {
		return 0, 0
	}
	cells := 0
	for _, r := range s {
		cells += runeCells(r)
	}
	return float64(cells) * m.Advance, m.Height
}

func runeCells(r rune) int {
	if unicode.Is(unicode.Mn, r) {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}
