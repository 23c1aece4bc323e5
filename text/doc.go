// Package text provides the font metrics service used to size marker labels.
//
// # Measurers
//
// A Measurer reports the width and ink height of a string in pixels.
// Three implementations are provided:
//   - XImageMeasurer: advances from golang.org/x/image/font/opentype
//   - GoTextMeasurer: HarfBuzz shaping via github.com/go-text/typesetting,
//     which accounts for kerning and ligatures
//   - Monospace: fixed cell advance with East Asian width classes, useful
//     for deterministic layout in tests and terminal-like displays
//
// # Fonts
//
// FontSource wraps parsed TrueType/OpenType data and is shared between
// measurers and renderers. Default returns a measurer backed by the embedded
// Go Regular font at DefaultSize.
//
//	src, err := text.NewFontSource(goregular.TTF)
//	if err != nil {
//	    return err
//	}
//	m, err := text.NewXImageMeasurer(src, 11)
//	w, h := m.Size("Verse")
package text
