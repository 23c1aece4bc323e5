package raster

import "github.com/gogpu/marker/canvas"

// clipPolygon clips a closed polygon to r (Sutherland-Hodgman). Extension
// lines reach canvas.CoordMax, so every shape is clipped before it reaches
// the rasterizer.
func clipPolygon(pts []canvas.Point, r canvas.Rect) []canvas.Point {
	type edge struct {
		inside    func(canvas.Point) bool
		intersect func(a, b canvas.Point) canvas.Point
	}
	atX := func(a, b canvas.Point, x float64) canvas.Point {
		t := (x - a.X) / (b.X - a.X)
		return canvas.Pt(x, a.Y+t*(b.Y-a.Y))
	}
	atY := func(a, b canvas.Point, y float64) canvas.Point {
		t := (y - a.Y) / (b.Y - a.Y)
		return canvas.Pt(a.X+t*(b.X-a.X), y)
	}
	edges := [4]edge{
		{func(p canvas.Point) bool { return p.X >= r.X0 }, func(a, b canvas.Point) canvas.Point { return atX(a, b, r.X0) }},
		{func(p canvas.Point) bool { return p.X <= r.X1 }, func(a, b canvas.Point) canvas.Point { return atX(a, b, r.X1) }},
		{func(p canvas.Point) bool { return p.Y >= r.Y0 }, func(a, b canvas.Point) canvas.Point { return atY(a, b, r.Y0) }},
		{func(p canvas.Point) bool { return p.Y <= r.Y1 }, func(a, b canvas.Point) canvas.Point { return atY(a, b, r.Y1) }},
	}

	out := pts
	for _, e := range edges {
		if len(out) == 0 {
			break
		}
		in := out
		out = make([]canvas.Point, 0, len(in)+2)
		prev := in[len(in)-1]
		for _, cur := range in {
			switch {
			case e.inside(cur):
				if !e.inside(prev) {
					out = append(out, e.intersect(prev, cur))
				}
				out = append(out, cur)
			case e.inside(prev):
				out = append(out, e.intersect(prev, cur))
			}
			prev = cur
		}
	}
	return out
}
