package marker

import (
	"sync"

	"github.com/gogpu/marker/canvas"
	"github.com/gogpu/marker/text"
)

// Option configures a Marker during creation.
//
// Example:
//
//	m := marker.New(host, parent, marker.RangeEnd, 48000, color, "Outro",
//	    marker.WithProfile(marker.Alternate),
//	    marker.WithMeasurer(measurer))
type Option func(*options)

// options holds optional configuration for Marker creation.
type options struct {
	profile   Profile
	editPoint canvas.RGBA
	measurer  text.Measurer
	badgeText string
	handler   EventHandler
	showLine  *bool
}

// DefaultEditPointColor is the extension line color of selected markers.
var DefaultEditPointColor = canvas.Hex("#4a5fd8ff")

// DefaultBadgeText is the text of the auxiliary event badge.
const DefaultBadgeText = "MIDI"

// defaultOptions returns the default marker options.
func defaultOptions() options {
	return options{
		profile:   Standard,
		editPoint: DefaultEditPointColor,
		badgeText: DefaultBadgeText,
	}
}

// WithProfile selects the display profile. The default is Standard.
func WithProfile(p Profile) Option {
	return func(o *options) {
		o.profile = p
	}
}

// WithEditPointColor sets the line color used for selected markers in the
// Standard profile.
func WithEditPointColor(c canvas.RGBA) Option {
	return func(o *options) {
		o.editPoint = c
	}
}

// WithMeasurer sets the font metrics used for the label and badge.
// The default is text.Default().
func WithMeasurer(m text.Measurer) Option {
	return func(o *options) {
		o.measurer = m
	}
}

// WithBadgeText replaces the badge text.
func WithBadgeText(s string) Option {
	return func(o *options) {
		o.badgeText = s
	}
}

// WithEventHandler routes pointer events on the marker group and extension
// line to h. Without it the marker does not handle events itself.
func WithEventHandler(h EventHandler) Option {
	return func(o *options) {
		o.handler = h
	}
}

// WithShowLine sets the forced-line state at creation, as SetShowLine.
// Without it the line is forced on for Mark and off for every other type.
func WithShowLine(yn bool) Option {
	return func(o *options) {
		o.showLine = &yn
	}
}

var warnFontOnce sync.Once

// defaultMeasurer returns text.Default and warns once if the embedded font
// could not be loaded, which leaves every label hidden.
func defaultMeasurer() text.Measurer {
	if _, err := text.DefaultSource(); err != nil {
		warnFontOnce.Do(func() {
			Logger().Warn("marker: default font unavailable, labels will be hidden", "err", err)
		})
	}
	return text.Default()
}
