package timeline

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/marker"
	"github.com/gogpu/marker/canvas"
)

var (
	// ErrNoMarkers is returned by Validate for a document without markers.
	ErrNoMarkers = errors.New("timeline: document has no markers")

	// ErrInvalidZoom is returned by Validate for a non-positive zoom.
	ErrInvalidZoom = errors.New("timeline: samples_per_pixel must be > 0")

	// ErrInvalidColor is returned by Validate for a malformed hex color.
	ErrInvalidColor = errors.New("timeline: invalid color")

	// ErrInvalidSection is returned by Validate for a tempo or meter marker
	// whose section data is unusable.
	ErrInvalidSection = errors.New("timeline: invalid section")
)

// Document describes a ruler and its markers.
type Document struct {
	Profile         marker.Profile `yaml:"profile"`
	SamplesPerPixel float64        `yaml:"samples_per_pixel"`
	EditPointColor  string         `yaml:"edit_point_color"`
	BadgeText       string         `yaml:"badge_text"`

	// Width and Height size the rendered image in pixels.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Scroll is the timeline pixel shown at the left edge.
	Scroll float64 `yaml:"scroll"`

	Markers []MarkerSpec `yaml:"markers"`
}

// MarkerSpec describes one marker. ShowLine defaults to true for marks and
// false otherwise. BPM applies to tempo markers, Divisions and Divisor to
// meter markers.
type MarkerSpec struct {
	Type     marker.Type `yaml:"type"`
	At       marker.Time `yaml:"at"`
	Color    string      `yaml:"color"`
	Label    string      `yaml:"label"`
	Badge    bool        `yaml:"badge"`
	Selected bool        `yaml:"selected"`
	ShowLine *bool       `yaml:"show_line"`

	BPM       float64 `yaml:"bpm"`
	Divisions float64 `yaml:"divisions"`
	Divisor   float64 `yaml:"divisor"`
}

// DefaultMarkerColor is used for markers without a color.
const DefaultMarkerColor = "#c0c0c0"

// DefaultDocument returns a document with every default set and no markers.
func DefaultDocument() Document {
	return Document{
		Profile:         marker.Standard,
		SamplesPerPixel: 64,
		EditPointColor:  "#4a5fd8",
		BadgeText:       marker.DefaultBadgeText,
		Width:           960,
		Height:          120,
	}
}

// LoadDocument reads and validates a YAML document from path.
func LoadDocument(path string) (Document, error) {
	b, err := os.ReadFile(path) //nolint:gosec // caller-provided document path
	if err != nil {
		return Document{}, fmt.Errorf("read timeline %s: %w", path, err)
	}
	doc, err := ParseDocument(b)
	if err != nil {
		return Document{}, fmt.Errorf("timeline %s: %w", path, err)
	}
	return doc, nil
}

// ParseDocument decodes a single YAML document over DefaultDocument and
// validates it. Unknown fields are errors.
func ParseDocument(b []byte) (Document, error) {
	doc := DefaultDocument()

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Document{}, fmt.Errorf("decode timeline yaml: %w", err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return Document{}, errors.New("decode timeline yaml: multiple documents are not supported")
	}

	if err := doc.Validate(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Validate checks the document for values Build cannot use.
func (d *Document) Validate() error {
	if !(Zoom{SamplesPerPixel: d.SamplesPerPixel}).Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidZoom, d.SamplesPerPixel)
	}
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("timeline: invalid size %dx%d", d.Width, d.Height)
	}
	if _, err := ParseColor(d.EditPointColor); err != nil {
		return fmt.Errorf("edit_point_color: %w", err)
	}
	if len(d.Markers) == 0 {
		return ErrNoMarkers
	}
	for i := range d.Markers {
		if err := d.Markers[i].validate(); err != nil {
			return fmt.Errorf("markers[%d]: %w", i, err)
		}
	}
	return nil
}

func (s *MarkerSpec) validate() error {
	if !s.Type.Valid() {
		return fmt.Errorf("%w: %d", marker.ErrUnknownType, uint8(s.Type))
	}
	if s.Color != "" {
		if _, err := ParseColor(s.Color); err != nil {
			return err
		}
	}
	switch s.Type {
	case marker.Tempo:
		if s.BPM <= 0 {
			return fmt.Errorf("%w: bpm %v", ErrInvalidSection, s.BPM)
		}
	case marker.Meter:
		if s.Divisions <= 0 || s.Divisor <= 0 {
			return fmt.Errorf("%w: meter %v/%v", ErrInvalidSection, s.Divisions, s.Divisor)
		}
	}
	return nil
}

// label returns the marker label, deriving one from section data when empty.
func (s *MarkerSpec) label() string {
	if s.Label != "" {
		return s.Label
	}
	switch s.Type {
	case marker.Tempo:
		return strconv.FormatFloat(s.BPM, 'f', -1, 64)
	case marker.Meter:
		return strconv.FormatFloat(s.Divisions, 'f', -1, 64) + "/" + strconv.FormatFloat(s.Divisor, 'f', -1, 64)
	}
	return ""
}

// ParseColor parses #rgb, #rgba, #rrggbb or #rrggbbaa, with or without the
// leading '#'.
func ParseColor(s string) (canvas.RGBA, error) {
	h := strings.TrimPrefix(s, "#")
	switch len(h) {
	case 3, 4, 6, 8:
	default:
		return canvas.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	if _, err := strconv.ParseUint(h, 16, 32); err != nil {
		return canvas.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return canvas.Hex(h), nil
}

// Build creates a ruler below root holding every marker of the document.
// The document must be valid.
func (d *Document) Build(root *canvas.Group, opts ...marker.Option) *Ruler {
	edit, _ := ParseColor(d.EditPointColor)
	base := []marker.Option{
		marker.WithProfile(d.Profile),
		marker.WithEditPointColor(edit),
		marker.WithBadgeText(d.BadgeText),
	}
	r := NewRuler(root, Zoom{SamplesPerPixel: d.SamplesPerPixel}, append(base, opts...)...)

	for i := range d.Markers {
		s := &d.Markers[i]
		color := s.Color
		if color == "" {
			color = DefaultMarkerColor
		}
		c, _ := ParseColor(color)
		var extra []marker.Option
		if s.ShowLine != nil {
			extra = append(extra, marker.WithShowLine(*s.ShowLine))
		}

		var m *marker.Marker
		switch s.Type {
		case marker.Tempo:
			m = r.AddTempo(c, s.label(), &TempoSection{At: s.At, BPM: s.BPM}, extra...).Marker
		case marker.Meter:
			m = r.AddMeter(c, s.label(), &MeterSection{At: s.At, Divisions: s.Divisions, Divisor: s.Divisor}, extra...).Marker
		default:
			m = r.Add(s.Type, s.At, c, s.label(), extra...)
		}
		m.SetHasBadge(s.Badge)
		if s.Selected {
			m.SetSelected(true)
		}
	}
	r.ScrollTo(d.Scroll)
	return r
}
