package text

import (
	"fmt"

	"github.com/flopp/go-findfont"
)

// FindFontSource loads an installed system font by file name or base name,
// e.g. "DejaVuSans.ttf" or "DejaVuSans".
func FindFontSource(name string) (*FontSource, error) {
	path, err := findfont.Find(name)
	if err != nil {
		return nil, fmt.Errorf("text: find font %q: %w", name, err)
	}
	return NewFontSourceFromFile(path)
}
