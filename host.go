package marker

import (
	"github.com/gogpu/marker/canvas"
	"github.com/gogpu/marker/signal"
)

// Time is a position on the timeline in samples.
type Time int64

// Host is the editor-side collaborator a marker is created against.
//
// TimeToPixel must be monotonic. The host emits ZoomChanged whenever the
// time-to-pixel mapping changes; every live marker repositions in response.
type Host interface {
	// TimeToPixel maps a timeline position to a canvas x coordinate.
	TimeToPixel(t Time) float64

	// LineGroup returns the group that holds extension lines. It usually
	// scrolls horizontally with the markers but spans the track area.
	LineGroup() *canvas.Group

	// ZoomChanged returns the signal emitted after the mapping changes.
	ZoomChanged() *signal.Signal[struct{}]
}

// EventHandler receives pointer events delivered to a marker's items.
// item is the canvas item the handler was attached to: the marker group or
// the extension line.
type EventHandler interface {
	MarkerEvent(ev canvas.Event, item canvas.Item, m *Marker)
}

// EventHandlerFunc adapts a function to the EventHandler interface.
type EventHandlerFunc func(ev canvas.Event, item canvas.Item, m *Marker)

// MarkerEvent implements EventHandler.
func (f EventHandlerFunc) MarkerEvent(ev canvas.Event, item canvas.Item, m *Marker) {
	f(ev, item, m)
}

// DataKey is the canvas item data key under which a marker stores itself on
// its group and glyph, so hit-tested items resolve back to their marker.
const DataKey = "marker"

// FromItem returns the marker that owns item, or nil.
func FromItem(item canvas.Item) *Marker {
	if item == nil {
		return nil
	}
	m, _ := item.Data(DataKey).(*Marker)
	return m
}
