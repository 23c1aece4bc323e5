package marker

import (
	"github.com/gogpu/marker/canvas"
	"github.com/gogpu/marker/signal"
)

// Section is a domain object with a position on the timeline.
type Section interface {
	Position() Time
}

// TempoSection is a tempo change.
type TempoSection interface {
	Section
	BeatsPerMinute() float64
}

// MeterSection is a meter change.
type MeterSection interface {
	Section
	DivisionsPerBar() float64
	NoteDivisor() float64
}

// sectionMarker binds a marker to a section whose time it mirrors.
type sectionMarker struct {
	*Marker
	section Section
	follow  signal.Connection
}

// Resync moves the marker to the section's current position. Call it after
// the section moved; markers do not observe their sections on their own.
func (s *sectionMarker) Resync() {
	s.SetPosition(s.section.Position())
}

// Follow calls Resync on every emission of changed until the marker is
// closed. A previous Follow subscription is replaced.
func (s *sectionMarker) Follow(changed *signal.Signal[struct{}]) {
	if s.closed {
		return
	}
	s.follow.Disconnect()
	s.follow = changed.Connect(func(struct{}) { s.Resync() })
}

// bind ties the follow subscription to the marker's lifetime, so closing
// the embedded *Marker directly also stops following.
func (s *sectionMarker) bind() {
	s.onClose = append(s.onClose, func() { s.follow.Disconnect() })
	s.Resync()
}

// TempoMarker is a Tempo marker bound to a TempoSection.
type TempoMarker struct {
	sectionMarker
	tempo TempoSection
}

// NewTempoMarker creates a Tempo marker at the position of tempo.
func NewTempoMarker(host Host, parent *canvas.Group, color canvas.RGBA, label string, tempo TempoSection, opts ...Option) *TempoMarker {
	m := New(host, parent, Tempo, 0, color, label, opts...)
	tm := &TempoMarker{
		sectionMarker: sectionMarker{Marker: m, section: tempo},
		tempo:         tempo,
	}
	tm.bind()
	return tm
}

// Tempo returns the bound tempo section.
func (tm *TempoMarker) Tempo() TempoSection { return tm.tempo }

// MeterMarker is a Meter marker bound to a MeterSection.
type MeterMarker struct {
	sectionMarker
	meter MeterSection
}

// NewMeterMarker creates a Meter marker at the position of meter.
func NewMeterMarker(host Host, parent *canvas.Group, color canvas.RGBA, label string, meter MeterSection, opts ...Option) *MeterMarker {
	m := New(host, parent, Meter, 0, color, label, opts...)
	mm := &MeterMarker{
		sectionMarker: sectionMarker{Marker: m, section: meter},
		meter:         meter,
	}
	mm.bind()
	return mm
}

// Meter returns the bound meter section.
func (mm *MeterMarker) Meter() MeterSection { return mm.meter }
