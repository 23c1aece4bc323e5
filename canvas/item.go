package canvas

import (
	"slices"

	"github.com/gogpu/marker/signal"
)

// Item is a node of the scene graph.
//
// All items embed the same base state; the interface cannot be implemented
// outside this package.
type Item interface {
	// Parent returns the containing group, or nil for a root.
	Parent() *Group

	// Position returns the item offset within its parent.
	Position() Point

	// SetPosition moves the item within its parent.
	SetPosition(p Point)

	// SetXPosition changes only the horizontal offset.
	SetXPosition(x float64)

	// Visible reports the item's own visibility flag.
	Visible() bool

	// Show makes the item visible.
	Show()

	// Hide makes the item invisible. Children of a hidden group are not drawn.
	Hide()

	// BoundingBox returns the item extent in its own coordinate space.
	// Empty items return an empty rectangle.
	BoundingBox() Rect

	// CanvasOrigin returns the item's (0,0) in canvas coordinates.
	CanvasOrigin() Point

	// ItemToCanvas converts a point from item space to canvas space.
	ItemToCanvas(p Point) Point

	// CanvasToItem converts a point from canvas space to item space.
	CanvasToItem(p Point) Point

	// Reparent moves the item to the top of another group.
	Reparent(g *Group)

	// RaiseToTop moves the item above all its siblings.
	RaiseToTop()

	// LowerToBottom moves the item below all its siblings.
	LowerToBottom()

	// SetData attaches a value under key. A nil value removes the key.
	SetData(key string, v any)

	// Data returns the value attached under key.
	Data(key string) any

	// Events returns the signal on which delivered events are emitted.
	Events() *signal.Signal[Event]

	// Name returns the debug name.
	Name() string

	// SetName sets the debug name.
	SetName(name string)

	// Destroy detaches the item from its parent and releases it.
	// Destroying a group destroys all its children. Destroy is idempotent.
	Destroy()

	// Destroyed reports whether Destroy has been called.
	Destroyed() bool

	base() *item
}

// item holds the state shared by every concrete Item.
type item struct {
	self      Item
	parent    *Group
	pos       Point
	hidden    bool
	destroyed bool
	name      string
	data      map[string]any
	events    signal.Signal[Event]
}

func (it *item) base() *item { return it }

func (it *item) init(self Item, parent *Group, pos Point) {
	it.self = self
	it.pos = pos
	if parent != nil {
		parent.add(self)
	}
}

func (it *item) Parent() *Group         { return it.parent }
func (it *item) Position() Point        { return it.pos }
func (it *item) SetPosition(p Point)    { it.pos = p }
func (it *item) SetXPosition(x float64) { it.pos.X = x }
func (it *item) Visible() bool          { return !it.hidden }
func (it *item) Show()                  { it.hidden = false }
func (it *item) Hide()                  { it.hidden = true }
func (it *item) Name() string           { return it.name }
func (it *item) SetName(name string)    { it.name = name }
func (it *item) Destroyed() bool        { return it.destroyed }

func (it *item) Events() *signal.Signal[Event] { return &it.events }

func (it *item) SetData(key string, v any) {
	if v == nil {
		delete(it.data, key)
		return
	}
	if it.data == nil {
		it.data = make(map[string]any)
	}
	it.data[key] = v
}

func (it *item) Data(key string) any {
	return it.data[key]
}

func (it *item) CanvasOrigin() Point {
	o := it.pos
	for p := it.parent; p != nil; p = p.parent {
		o = o.Add(p.pos)
	}
	return o
}

func (it *item) ItemToCanvas(p Point) Point {
	return p.Add(it.CanvasOrigin())
}

func (it *item) CanvasToItem(p Point) Point {
	return p.Sub(it.CanvasOrigin())
}

// VisibleInCanvas reports whether the item and all its ancestors are visible.
func VisibleInCanvas(i Item) bool {
	for it := i.base(); it != nil; {
		if it.hidden {
			return false
		}
		if it.parent == nil {
			return true
		}
		it = it.parent.base()
	}
	return true
}

func (it *item) Reparent(g *Group) {
	if it.destroyed || g == it.parent {
		return
	}
	if it.parent != nil {
		it.parent.remove(it.self)
	}
	if g != nil {
		g.add(it.self)
	}
}

func (it *item) RaiseToTop() {
	if it.parent == nil {
		return
	}
	p := it.parent
	p.remove(it.self)
	p.add(it.self)
}

func (it *item) LowerToBottom() {
	if it.parent == nil {
		return
	}
	p := it.parent
	p.remove(it.self)
	p.children = slices.Insert(p.children, 0, it.self)
	it.parent = p
}

func (it *item) Destroy() {
	if it.destroyed {
		return
	}
	if g, ok := it.self.(*Group); ok {
		for _, c := range slices.Clone(g.children) {
			c.Destroy()
		}
	}
	if it.parent != nil {
		it.parent.remove(it.self)
	}
	it.destroyed = true
	it.data = nil
}
