package canvas

import (
	"math"
	"slices"

	"github.com/gogpu/marker/text"
)

// Polygon is a closed shape given by its vertices in item space.
type Polygon struct {
	item
	points  []Point
	fill    RGBA
	outline RGBA
}

// NewPolygon creates an empty polygon inside parent.
func NewPolygon(parent *Group) *Polygon {
	p := &Polygon{}
	p.init(p, parent, Point{})
	return p
}

// Set replaces the vertices. The slice is copied.
func (p *Polygon) Set(pts []Point) { p.points = slices.Clone(pts) }

// Points returns a copy of the vertices.
func (p *Polygon) Points() []Point { return slices.Clone(p.points) }

// SetFillColor sets the interior color.
func (p *Polygon) SetFillColor(c RGBA) { p.fill = c }

// FillColor returns the interior color.
func (p *Polygon) FillColor() RGBA { return p.fill }

// SetOutlineColor sets the stroke color.
func (p *Polygon) SetOutlineColor(c RGBA) { p.outline = c }

// OutlineColor returns the stroke color.
func (p *Polygon) OutlineColor() RGBA { return p.outline }

// BoundingBox implements Item.
func (p *Polygon) BoundingBox() Rect { return boundsOf(p.points) }

// Edges selects which sides of a Rectangle are outlined.
type Edges uint8

// Rectangle edges.
const (
	EdgeLeft Edges = 1 << iota
	EdgeRight
	EdgeTop
	EdgeBottom

	EdgeNone Edges = 0
	EdgeAll        = EdgeLeft | EdgeRight | EdgeTop | EdgeBottom
)

// Rectangle is an axis-aligned box in item space.
type Rectangle struct {
	item
	rect    Rect
	fill    bool
	fillC   RGBA
	outline bool
	outC    RGBA
	what    Edges
}

// NewRectangle creates an empty, filled and fully outlined rectangle.
func NewRectangle(parent *Group) *Rectangle {
	r := &Rectangle{fill: true, outline: true, what: EdgeAll}
	r.init(r, parent, Point{})
	return r
}

// Set replaces the geometry.
func (r *Rectangle) Set(rc Rect) { r.rect = rc }

// Get returns the geometry.
func (r *Rectangle) Get() Rect { return r.rect }

// SetX0 sets the left coordinate.
func (r *Rectangle) SetX0(v float64) { r.rect.X0 = v }

// SetX1 sets the right coordinate.
func (r *Rectangle) SetX1(v float64) { r.rect.X1 = v }

// SetY0 sets the top coordinate.
func (r *Rectangle) SetY0(v float64) { r.rect.Y0 = v }

// SetY1 sets the bottom coordinate.
func (r *Rectangle) SetY1(v float64) { r.rect.Y1 = v }

// SetFill enables or disables the interior fill.
func (r *Rectangle) SetFill(yn bool) { r.fill = yn }

// Filled reports whether the interior is painted.
func (r *Rectangle) Filled() bool { return r.fill }

// SetFillColor sets the interior color.
func (r *Rectangle) SetFillColor(c RGBA) { r.fillC = c }

// FillColor returns the interior color.
func (r *Rectangle) FillColor() RGBA { return r.fillC }

// SetOutline enables or disables the outline.
func (r *Rectangle) SetOutline(yn bool) { r.outline = yn }

// Outlined reports whether any outline is painted.
func (r *Rectangle) Outlined() bool { return r.outline && r.what != EdgeNone }

// SetOutlineColor sets the outline color.
func (r *Rectangle) SetOutlineColor(c RGBA) { r.outC = c }

// OutlineColor returns the outline color.
func (r *Rectangle) OutlineColor() RGBA { return r.outC }

// SetOutlineWhat selects the outlined edges.
func (r *Rectangle) SetOutlineWhat(e Edges) { r.what = e }

// OutlineWhat returns the outlined edges.
func (r *Rectangle) OutlineWhat() Edges { return r.what }

// BoundingBox implements Item.
func (r *Rectangle) BoundingBox() Rect { return r.rect.Normalize() }

// Line is a straight segment in item space.
type Line struct {
	item
	p0, p1 Point
	color  RGBA
	width  float64
}

// NewLine creates a zero-length one pixel wide line inside parent.
func NewLine(parent *Group) *Line {
	l := &Line{width: 1}
	l.init(l, parent, Point{})
	return l
}

// SetX0 sets the x coordinate of the first end.
func (l *Line) SetX0(v float64) { l.p0.X = v }

// SetX1 sets the x coordinate of the second end.
func (l *Line) SetX1(v float64) { l.p1.X = v }

// SetY0 sets the y coordinate of the first end.
func (l *Line) SetY0(v float64) { l.p0.Y = v }

// SetY1 sets the y coordinate of the second end.
func (l *Line) SetY1(v float64) { l.p1.Y = v }

// Ends returns both end points.
func (l *Line) Ends() (Point, Point) { return l.p0, l.p1 }

// SetOutlineColor sets the stroke color.
func (l *Line) SetOutlineColor(c RGBA) { l.color = c }

// OutlineColor returns the stroke color.
func (l *Line) OutlineColor() RGBA { return l.color }

// SetOutlineWidth sets the stroke width.
func (l *Line) SetOutlineWidth(w float64) { l.width = w }

// OutlineWidth returns the stroke width.
func (l *Line) OutlineWidth() float64 { return l.width }

// BoundingBox implements Item. The box is widened by half the stroke width.
func (l *Line) BoundingBox() Rect {
	return boundsOf([]Point{l.p0, l.p1}).Expand(l.width / 2)
}

// Text is a single line of text. Its position is the top-left corner of the
// text box. When a clamp width is set, anything beyond it is not drawn.
type Text struct {
	item
	text     string
	color    RGBA
	measurer text.Measurer
	clamp    float64
}

// NewText creates an empty text item measured with m.
func NewText(parent *Group, m text.Measurer) *Text {
	t := &Text{measurer: m, clamp: math.Inf(1)}
	t.init(t, parent, Point{})
	return t
}

// Set replaces the text.
func (t *Text) Set(s string) { t.text = s }

// Text returns the text.
func (t *Text) Text() string { return t.text }

// SetColor sets the text color.
func (t *Text) SetColor(c RGBA) { t.color = c }

// Color returns the text color.
func (t *Text) Color() RGBA { return t.color }

// SetMeasurer replaces the font metrics used to size the text.
func (t *Text) SetMeasurer(m text.Measurer) { t.measurer = m }

// Measurer returns the font metrics used to size the text.
func (t *Text) Measurer() text.Measurer { return t.measurer }

// ClampWidth limits the drawn width. Non-positive values clamp to zero.
func (t *Text) ClampWidth(w float64) { t.clamp = max(w, 0) }

// Clamp returns the clamp width, +Inf when unclamped.
func (t *Text) Clamp() float64 { return t.clamp }

// NaturalWidth returns the unclamped text width.
func (t *Text) NaturalWidth() float64 {
	if t.measurer == nil || t.text == "" {
		return 0
	}
	w, _ := t.measurer.Size(t.text)
	return w
}

// Width returns the drawn width.
func (t *Text) Width() float64 {
	return math.Min(t.NaturalWidth(), t.clamp)
}

// Height returns the text box height.
func (t *Text) Height() float64 {
	if t.measurer == nil || t.text == "" {
		return 0
	}
	_, h := t.measurer.Size(t.text)
	return h
}

// BoundingBox implements Item.
func (t *Text) BoundingBox() Rect {
	return Rect{X0: 0, Y0: 0, X1: t.Width(), Y1: t.Height()}
}
