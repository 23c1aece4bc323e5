package raster

import (
	"fmt"
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/marker/canvas"
	"github.com/gogpu/marker/text"
)

// Renderer draws canvas trees. A Renderer is not safe for concurrent use.
type Renderer struct {
	face       font.Face
	background canvas.RGBA
	clear      bool

	z *vector.Rasterizer
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithFace sets the face used for every Text item.
func WithFace(f font.Face) Option {
	return func(r *Renderer) {
		r.face = f
	}
}

// WithBackground clears the destination to c before drawing.
func WithBackground(c canvas.RGBA) Option {
	return func(r *Renderer) {
		r.background = c
		r.clear = true
	}
}

// New creates a renderer. Without WithFace it draws text with the embedded
// Go Regular font at text.DefaultSize.
func New(opts ...Option) (*Renderer, error) {
	r := &Renderer{z: vector.NewRasterizer(0, 0)}
	for _, opt := range opts {
		opt(r)
	}
	if r.face == nil {
		src, err := text.DefaultSource()
		if err != nil {
			return nil, fmt.Errorf("raster: default font: %w", err)
		}
		face, err := src.Face(text.DefaultSize)
		if err != nil {
			return nil, fmt.Errorf("raster: default face: %w", err)
		}
		r.face = face
	}
	return r, nil
}

// Render draws root and its visible descendants into dst.
func (r *Renderer) Render(dst *image.RGBA, root *canvas.Group) {
	if r.clear {
		xdraw.Draw(dst, dst.Bounds(), image.NewUniform(r.background.NRGBA()), image.Point{}, xdraw.Src)
	}
	if root == nil || !root.Visible() {
		return
	}
	var origin canvas.Point
	if p := root.Parent(); p != nil {
		origin = p.CanvasOrigin()
	}
	r.drawItem(dst, root, origin)
}

// drawItem draws it whose parent's canvas origin is origin.
func (r *Renderer) drawItem(dst *image.RGBA, it canvas.Item, origin canvas.Point) {
	if !it.Visible() {
		return
	}
	o := origin.Add(it.Position())

	switch v := it.(type) {
	case *canvas.Group:
		for _, c := range v.Children() {
			r.drawItem(dst, c, o)
		}
	case *canvas.Polygon:
		pts := translate(v.Points(), o)
		r.fill(dst, pts, v.FillColor())
		for i := 0; i+1 < len(pts); i++ {
			r.stroke(dst, pts[i], pts[i+1], 1, v.OutlineColor())
		}
	case *canvas.Rectangle:
		r.drawRectangle(dst, v, o)
	case *canvas.Line:
		p0, p1 := v.Ends()
		r.stroke(dst, p0.Add(o), p1.Add(o), v.OutlineWidth(), v.OutlineColor())
	case *canvas.Text:
		r.drawText(dst, v, o)
	}
}

func (r *Renderer) drawRectangle(dst *image.RGBA, v *canvas.Rectangle, o canvas.Point) {
	rc := v.Get().Normalize().Translate(o)
	if v.Filled() {
		r.fill(dst, []canvas.Point{
			{X: rc.X0, Y: rc.Y0}, {X: rc.X1, Y: rc.Y0},
			{X: rc.X1, Y: rc.Y1}, {X: rc.X0, Y: rc.Y1},
		}, v.FillColor())
	}
	if !v.Outlined() {
		return
	}
	what, c := v.OutlineWhat(), v.OutlineColor()
	// Edges run along pixel centres just inside the rectangle.
	x0, y0, x1, y1 := rc.X0+0.5, rc.Y0+0.5, rc.X1-0.5, rc.Y1-0.5
	if what&canvas.EdgeTop != 0 {
		r.stroke(dst, canvas.Pt(x0-0.5, y0), canvas.Pt(x1+0.5, y0), 1, c)
	}
	if what&canvas.EdgeBottom != 0 {
		r.stroke(dst, canvas.Pt(x0-0.5, y1), canvas.Pt(x1+0.5, y1), 1, c)
	}
	if what&canvas.EdgeLeft != 0 {
		r.stroke(dst, canvas.Pt(x0, y0-0.5), canvas.Pt(x0, y1+0.5), 1, c)
	}
	if what&canvas.EdgeRight != 0 {
		r.stroke(dst, canvas.Pt(x1, y0-0.5), canvas.Pt(x1, y1+0.5), 1, c)
	}
}

func (r *Renderer) drawText(dst *image.RGBA, v *canvas.Text, o canvas.Point) {
	w := v.Width()
	if v.Text() == "" || w <= 0 || v.Color().A == 0 {
		return
	}
	m := r.face.Metrics()
	top := int(math.Floor(o.Y))
	clip := image.Rect(
		int(math.Floor(o.X)), top,
		int(math.Ceil(o.X+w)), top+(m.Ascent+m.Descent).Ceil(),
	).Intersect(dst.Bounds())
	if clip.Empty() {
		return
	}

	d := font.Drawer{
		Dst:  dst.SubImage(clip).(*image.RGBA),
		Src:  image.NewUniform(v.Color().NRGBA()),
		Face: r.face,
		Dot:  fixed.Point26_6{X: floatToFixed(o.X), Y: floatToFixed(o.Y) + m.Ascent},
	}
	d.DrawString(v.Text())
}

// fill fills the closed polygon pts with c.
func (r *Renderer) fill(dst *image.RGBA, pts []canvas.Point, c canvas.RGBA) {
	if c.A == 0 || len(pts) < 3 {
		return
	}
	b := dst.Bounds()
	pts = clipPolygon(pts, canvas.Rect{
		X0: float64(b.Min.X), Y0: float64(b.Min.Y),
		X1: float64(b.Max.X), Y1: float64(b.Max.Y),
	})
	if len(pts) < 3 {
		return
	}

	r.z.Reset(b.Dx(), b.Dy())
	ox, oy := float64(b.Min.X), float64(b.Min.Y)
	r.z.MoveTo(float32(pts[0].X-ox), float32(pts[0].Y-oy))
	for _, p := range pts[1:] {
		r.z.LineTo(float32(p.X-ox), float32(p.Y-oy))
	}
	r.z.ClosePath()
	r.z.Draw(dst, b, image.NewUniform(c.NRGBA()), image.Point{})
}

// stroke fills the quad covering the segment p0-p1 at width w.
func (r *Renderer) stroke(dst *image.RGBA, p0, p1 canvas.Point, w float64, c canvas.RGBA) {
	d := p1.Sub(p0)
	n := math.Hypot(d.X, d.Y)
	if n == 0 || w <= 0 {
		return
	}
	hw := w / 2
	nx, ny := -d.Y/n*hw, d.X/n*hw
	r.fill(dst, []canvas.Point{
		{X: p0.X + nx, Y: p0.Y + ny},
		{X: p1.X + nx, Y: p1.Y + ny},
		{X: p1.X - nx, Y: p1.Y - ny},
		{X: p0.X - nx, Y: p0.Y - ny},
	}, c)
}

func translate(pts []canvas.Point, o canvas.Point) []canvas.Point {
	for i := range pts {
		pts[i] = pts[i].Add(o)
	}
	return pts
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
