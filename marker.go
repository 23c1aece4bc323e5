package marker

import (
	"fmt"
	"math"

	"github.com/gogpu/marker/canvas"
	"github.com/gogpu/marker/signal"
	"github.com/gogpu/marker/text"
)

var (
	// labelTextColor is white at 95% opacity.
	labelTextColor = canvas.RGBA2(1, 1, 1, 0.95)

	// backgroundOutlineColor is white at 20% opacity.
	backgroundOutlineColor = canvas.RGBA2(1, 1, 1, 0.20)
)

// backgroundAlpha is the alpha of the label background tint.
const backgroundAlpha = 0x70

// Marker is a visual annotation at a point in time.
//
// A Marker exclusively owns its canvas items. It is created hidden; call
// Show to display it. Close releases it.
type Marker struct {
	host   Host
	parent *canvas.Group
	opts   options

	typ    Type
	shape  Shape
	at     Time
	pixel  float64
	color  canvas.RGBA
	label  string
	closed bool

	selected  bool
	lineShown bool
	shown     bool

	leftLimit  float64
	rightLimit float64

	baseOffset   float64
	hasBadge     bool
	badgeWidth   float64
	nameHeight   float64
	displayWidth float64

	measurer text.Measurer

	group      *canvas.Group
	mark       *canvas.Polygon
	name       *canvas.Text
	background *canvas.Rectangle
	badgeRect  *canvas.Rectangle
	badgeText  *canvas.Text
	line       *canvas.Line

	// onClose runs during Close, after OnDelete observers.
	onClose []func()

	zoomConn      signal.Connection
	eventConn     signal.Connection
	lineEventConn signal.Connection
}

// New creates a marker of type typ at time at inside parent.
//
// The marker subscribes to host.ZoomChanged and repositions itself on every
// emission until Close. New panics if typ is not a declared Type.
func New(host Host, parent *canvas.Group, typ Type, at Time, color canvas.RGBA, label string, opts ...Option) *Marker {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.measurer == nil {
		o.measurer = defaultMeasurer()
	}

	m := &Marker{
		host:       host,
		parent:     parent,
		opts:       o,
		typ:        typ,
		shape:      ShapeFor(typ),
		at:         at,
		lineShown:  typ == Mark,
		leftLimit:  math.Inf(1),
		rightLimit: math.Inf(1),
		measurer:   o.measurer,
	}
	if o.showLine != nil {
		m.lineShown = *o.showLine
	}
	m.pixel = host.TimeToPixel(at) - m.shape.Shift

	m.group = canvas.NewGroup(parent, canvas.Pt(m.pixel, 0))
	m.group.SetName(fmt.Sprintf("marker group for %s", label))
	m.group.Hide()

	m.background = canvas.NewRectangle(m.group)
	m.background.SetName(fmt.Sprintf("marker background for %s", label))

	if o.profile == Alternate {
		m.baseOffset = NamePadding
	} else {
		m.mark = canvas.NewPolygon(m.group)
		m.mark.SetName(fmt.Sprintf("marker glyph for %s", label))
		m.mark.Set(m.shape.Outline)
		m.baseOffset = m.shape.LabelOffset
	}

	m.SetColor(color)

	// ascender + descender
	_, m.nameHeight = m.measurer.Size("Hg")

	m.name = canvas.NewText(m.group, m.measurer)
	m.name.SetName(fmt.Sprintf("marker label for %s", label))
	m.name.SetColor(labelTextColor)
	m.name.SetPosition(canvas.Pt(m.baseOffset, m.labelY()))

	m.SetName(label)

	m.zoomConn = host.ZoomChanged().Connect(func(struct{}) { m.Reposition() })

	m.group.SetData(DataKey, m)
	if m.mark != nil {
		m.mark.SetData(DataKey, m)
	}
	if o.handler != nil {
		m.eventConn = m.group.Events().Connect(func(ev canvas.Event) {
			o.handler.MarkerEvent(ev, m.group, m)
		})
	}

	Logger().Debug("marker created", "type", typ, "label", label, "at", int64(at), "profile", o.profile)
	return m
}

// Close announces the marker's deletion to OnDelete observers and then
// releases every item it owns. Observers run before any item is destroyed.
// Close is idempotent. Mutators of a closed marker do nothing.
func (m *Marker) Close() {
	if m.closed {
		return
	}
	m.closed = true

	deletions.Emit(m)

	for _, fn := range m.onClose {
		fn()
	}
	m.onClose = nil
	m.shown = false

	m.zoomConn.Disconnect()
	m.eventConn.Disconnect()
	m.lineEventConn.Disconnect()

	m.group.Destroy()
	if m.line != nil {
		m.line.Destroy()
	}

	Logger().Debug("marker closed", "type", m.typ, "label", m.label)
}

// Closed reports whether Close has been called.
func (m *Marker) Closed() bool { return m.closed }

// SetPosition moves the marker to time t.
func (m *Marker) SetPosition(t Time) {
	if m.closed {
		return
	}
	m.pixel = m.host.TimeToPixel(t) - m.shape.Shift
	m.group.SetXPosition(m.pixel)
	m.setupLine()
	m.at = t
}

// Reposition re-maps the current time after the time-to-pixel mapping
// changed. The label is not laid out again.
func (m *Marker) Reposition() {
	m.SetPosition(m.at)
}

// Show displays the marker.
func (m *Marker) Show() {
	if m.closed {
		return
	}
	m.shown = true
	m.group.Show()
	m.setupLine()
}

// Hide hides the marker and, unless the profile keeps it on, its line.
func (m *Marker) Hide() {
	if m.closed {
		return
	}
	m.shown = false
	m.group.Hide()
	m.setupLine()
}

// Reparent moves the marker's group under g.
func (m *Marker) Reparent(g *canvas.Group) {
	if m.closed {
		return
	}
	m.group.Reparent(g)
	m.parent = g
	m.setupLine()
}

// SetColor sets the marker color. It tints the glyph, the label background
// and, unless selection overrides it, the extension line.
func (m *Marker) SetColor(c canvas.RGBA) {
	if m.closed {
		return
	}
	m.color = c

	if m.mark != nil {
		m.mark.SetFillColor(c)
		m.mark.SetOutlineColor(c)
	}

	m.background.SetFill(true)
	m.background.SetFillColor(c.WithAlpha8(backgroundAlpha))
	m.background.SetOutlineColor(backgroundOutlineColor)
	if m.opts.profile == Alternate {
		m.background.SetOutlineWhat(canvas.EdgeTop | canvas.EdgeLeft | canvas.EdgeRight)
	}

	m.setupLine()
}

// TheItem returns the root item of the marker.
func (m *Marker) TheItem() *canvas.Group { return m.group }

// Type returns the marker type.
func (m *Marker) Type() Type { return m.typ }

// Profile returns the display profile.
func (m *Marker) Profile() Profile { return m.opts.profile }

// Position returns the marker time.
func (m *Marker) Position() Time { return m.at }

// PixelPosition returns the x position of the marker group, which is the
// mapped time minus Shift.
func (m *Marker) PixelPosition() float64 { return m.pixel }

// Shift returns the offset from the group origin to the glyph anchor.
func (m *Marker) Shift() float64 { return m.shape.Shift }

// Color returns the marker color.
func (m *Marker) Color() canvas.RGBA { return m.color }

// Visible reports whether Show was called more recently than Hide.
func (m *Marker) Visible() bool { return m.shown }

// Parent returns the group the marker lives in.
func (m *Marker) Parent() *canvas.Group { return m.parent }

// Glyph returns the glyph polygon, or nil in the Alternate profile.
func (m *Marker) Glyph() *canvas.Polygon { return m.mark }

// String returns a short description for logs.
func (m *Marker) String() string {
	return fmt.Sprintf("%v %q @%d", m.typ, m.label, int64(m.at))
}
