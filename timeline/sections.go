package timeline

import "github.com/gogpu/marker"

// TempoSection is a tempo change at a fixed position.
type TempoSection struct {
	At  marker.Time
	BPM float64
}

// Position implements marker.Section.
func (s *TempoSection) Position() marker.Time { return s.At }

// BeatsPerMinute implements marker.TempoSection.
func (s *TempoSection) BeatsPerMinute() float64 { return s.BPM }

// MeterSection is a meter change at a fixed position.
type MeterSection struct {
	At        marker.Time
	Divisions float64
	Divisor   float64
}

// Position implements marker.Section.
func (s *MeterSection) Position() marker.Time { return s.At }

// DivisionsPerBar implements marker.MeterSection.
func (s *MeterSection) DivisionsPerBar() float64 { return s.Divisions }

// NoteDivisor implements marker.MeterSection.
func (s *MeterSection) NoteDivisor() float64 { return s.Divisor }
