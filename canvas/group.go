package canvas

import "slices"

// Group is a container item. Its children are positioned relative to it and
// drawn in slice order, so the last child is on top.
type Group struct {
	item
	children []Item
}

// NewGroup creates a group at pos inside parent.
// A nil parent creates a root group.
func NewGroup(parent *Group, pos Point) *Group {
	g := &Group{}
	g.init(g, parent, pos)
	return g
}

// Children returns the children in z-order, bottom first.
func (g *Group) Children() []Item {
	return slices.Clone(g.children)
}

// Len returns the number of children.
func (g *Group) Len() int {
	return len(g.children)
}

// BoundingBox returns the union of the children's boxes in group space.
func (g *Group) BoundingBox() Rect {
	r := EmptyRect()
	for _, c := range g.children {
		b := c.BoundingBox()
		if b.X0 > b.X1 || b.Y0 > b.Y1 {
			continue
		}
		r = r.Union(b.Translate(c.Position()))
	}
	return r
}

// Walk calls fn for g and every descendant in depth-first z-order.
// Returning false from fn skips the subtree of that item.
func (g *Group) Walk(fn func(Item) bool) {
	if !fn(g) {
		return
	}
	for _, c := range g.children {
		if cg, ok := c.(*Group); ok {
			cg.Walk(fn)
			continue
		}
		fn(c)
	}
}

func (g *Group) add(c Item) {
	g.children = append(g.children, c)
	c.base().parent = g
}

func (g *Group) remove(c Item) {
	if i := slices.Index(g.children, c); i >= 0 {
		g.children = slices.Delete(g.children, i, i+1)
	}
	c.base().parent = nil
}
