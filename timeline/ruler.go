package timeline

import (
	"math"
	"slices"

	"github.com/gogpu/marker"
	"github.com/gogpu/marker/canvas"
	"github.com/gogpu/marker/signal"
)

// labelGap is the space kept free next to each neighbour's glyph.
const labelGap = marker.MarkerHeight

// Ruler owns a row of markers and acts as their marker.Host.
//
// The ruler scroll group holds the marker group and, above it, the line
// group. Scrolling moves both, so lines stay attached to their markers.
type Ruler struct {
	hscroll *canvas.Group
	markers *canvas.Group
	lines   *canvas.Group

	zoom        Zoom
	zoomChanged signal.Signal[struct{}]
	timeChanged signal.Signal[struct{}]

	opts     []marker.Option
	owned    []*marker.Marker
	deletion signal.Connection
}

// NewRuler creates a ruler below root. opts are applied to every marker the
// ruler creates.
func NewRuler(root *canvas.Group, z Zoom, opts ...marker.Option) *Ruler {
	r := &Ruler{
		zoom: z,
		opts: opts,
	}
	r.hscroll = canvas.NewGroup(root, canvas.Point{})
	r.hscroll.SetName("ruler hscroll")
	r.markers = canvas.NewGroup(r.hscroll, canvas.Point{})
	r.markers.SetName("ruler markers")
	r.lines = canvas.NewGroup(r.hscroll, canvas.Point{})
	r.lines.SetName("ruler lines")

	r.deletion = marker.OnDelete(r.forget)
	return r
}

// TimeToPixel implements marker.Host.
func (r *Ruler) TimeToPixel(t marker.Time) float64 { return r.zoom.TimeToPixel(t) }

// LineGroup implements marker.Host.
func (r *Ruler) LineGroup() *canvas.Group { return r.lines }

// ZoomChanged implements marker.Host.
func (r *Ruler) ZoomChanged() *signal.Signal[struct{}] { return &r.zoomChanged }

// MarkerGroup returns the group markers are created in.
func (r *Ruler) MarkerGroup() *canvas.Group { return r.markers }

// Zoom returns the current zoom.
func (r *Ruler) Zoom() Zoom { return r.zoom }

// Add creates, shows and lays out a marker.
func (r *Ruler) Add(typ marker.Type, at marker.Time, color canvas.RGBA, label string, opts ...marker.Option) *marker.Marker {
	m := marker.New(r, r.markers, typ, at, color, label, r.options(opts)...)
	r.track(m)
	return m
}

// AddTempo creates a tempo marker that follows TimeChanged.
func (r *Ruler) AddTempo(color canvas.RGBA, label string, sec marker.TempoSection, opts ...marker.Option) *marker.TempoMarker {
	tm := marker.NewTempoMarker(r, r.markers, color, label, sec, r.options(opts)...)
	tm.Follow(&r.timeChanged)
	r.track(tm.Marker)
	return tm
}

// AddMeter creates a meter marker that follows TimeChanged.
func (r *Ruler) AddMeter(color canvas.RGBA, label string, sec marker.MeterSection, opts ...marker.Option) *marker.MeterMarker {
	mm := marker.NewMeterMarker(r, r.markers, color, label, sec, r.options(opts)...)
	mm.Follow(&r.timeChanged)
	r.track(mm.Marker)
	return mm
}

func (r *Ruler) options(extra []marker.Option) []marker.Option {
	return append(slices.Clone(r.opts), extra...)
}

// track takes ownership of m. Closing a section marker's embedded Marker
// also ends its Follow subscription, so one close path serves every kind.
func (r *Ruler) track(m *marker.Marker) {
	r.owned = append(r.owned, m)
	m.Show()
	r.UpdateLabelLimits()
	marker.Logger().Debug("ruler: marker added", "marker", m.String(), "count", len(r.owned))
}

// forget drops a closed marker and gives its neighbours the space; it runs
// as a deletion observer.
func (r *Ruler) forget(m *marker.Marker) {
	i := slices.Index(r.owned, m)
	if i < 0 {
		return
	}
	r.owned = slices.Delete(r.owned, i, i+1)
	r.UpdateLabelLimits()
}

// Remove closes m if the ruler owns it and gives its neighbours the space.
func (r *Ruler) Remove(m *marker.Marker) {
	if slices.Contains(r.owned, m) {
		m.Close()
	}
}

// Markers returns the owned markers ordered by anchor position.
func (r *Ruler) Markers() []*marker.Marker {
	ms := slices.Clone(r.owned)
	slices.SortStableFunc(ms, func(a, b *marker.Marker) int {
		return compareFloat(anchor(a), anchor(b))
	})
	return ms
}

// Select selects m and deselects every other marker. A nil m clears the
// selection.
func (r *Ruler) Select(m *marker.Marker) {
	for _, o := range r.owned {
		o.SetSelected(o == m)
	}
}

// SetZoom changes the mapping, repositions every marker and recomputes the
// label space.
func (r *Ruler) SetZoom(z Zoom) {
	r.zoom = z
	r.zoomChanged.Emit(struct{}{})
	r.UpdateLabelLimits()
}

// ScrollTo scrolls so that canvas x 0 shows timeline pixel x.
func (r *Ruler) ScrollTo(x float64) {
	r.hscroll.SetXPosition(-x)
}

// TimeChanged announces that tempo or meter sections moved. Section-bound
// markers resync and the label space is recomputed.
func (r *Ruler) TimeChanged() {
	r.timeChanged.Emit(struct{}{})
	r.UpdateLabelLimits()
}

// UpdateLabelLimits gives each marker the distance to its neighbours, less
// the neighbour's glyph, as label space. The outermost markers are unbounded
// on their outer side.
func (r *Ruler) UpdateLabelLimits() {
	ms := r.Markers()
	for i, m := range ms {
		left, right := math.Inf(1), math.Inf(1)
		if i > 0 {
			left = anchor(m) - anchor(ms[i-1]) - labelGap
		}
		if i < len(ms)-1 {
			right = anchor(ms[i+1]) - anchor(m) - labelGap
		}
		m.SetLeftSpaceLimit(left)
		m.SetRightSpaceLimit(right)
	}
}

// Close closes every marker and stops observing deletions.
func (r *Ruler) Close() {
	for _, m := range slices.Clone(r.owned) {
		m.Close()
	}
	r.deletion.Disconnect()
}

// anchor returns the pixel the marker's glyph points at.
func anchor(m *marker.Marker) float64 {
	return m.PixelPosition() + m.Shift()
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
