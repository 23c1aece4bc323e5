package text

import (
	"sync"

	"golang.org/x/image/font/gofont/goregular"
)

// DefaultSize is the pixel size of the default label font.
const DefaultSize = 11.0

var (
	defaultOnce     sync.Once
	defaultSource   *FontSource
	defaultMeasurer Measurer
	defaultErr      error
)

func loadDefault() {
	defaultSource, defaultErr = NewFontSource(goregular.TTF)
	if defaultErr != nil {
		defaultMeasurer = Zero{}
		return
	}
	m, err := NewXImageMeasurer(defaultSource, DefaultSize)
	if err != nil {
		defaultErr = err
		defaultMeasurer = Zero{}
		return
	}
	defaultMeasurer = m
}

// DefaultSource returns the embedded Go Regular font.
func DefaultSource() (*FontSource, error) {
	defaultOnce.Do(loadDefault)
	return defaultSource, defaultErr
}

// Default returns a shared measurer for Go Regular at DefaultSize.
// If the embedded font cannot be loaded, Default returns Zero so labels
// degrade to hidden rather than failing.
func Default() Measurer {
	defaultOnce.Do(loadDefault)
	return defaultMeasurer
}
