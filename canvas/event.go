package canvas

import "slices"

// EventType identifies the kind of pointer event.
type EventType uint8

// Event types.
const (
	ButtonPress EventType = iota
	ButtonRelease
	Motion
	Enter
	Leave
)

// String returns the event type name.
func (t EventType) String() string {
	switch t {
	case ButtonPress:
		return "ButtonPress"
	case ButtonRelease:
		return "ButtonRelease"
	case Motion:
		return "Motion"
	case Enter:
		return "Enter"
	case Leave:
		return "Leave"
	default:
		return "Unknown"
	}
}

// Event is a pointer event in canvas coordinates.
type Event struct {
	Type   EventType
	Pos    Point
	Button int
}

// ItemAt returns the topmost visible non-group item under p, or nil.
// p is in canvas coordinates.
func ItemAt(root *Group, p Point) Item {
	if root == nil || !root.Visible() {
		return nil
	}
	local := root.CanvasToItem(p)
	return itemAt(root, local)
}

// itemAt searches g's children; p is in g's space.
func itemAt(g *Group, p Point) Item {
	for _, c := range slices.Backward(g.children) {
		if !c.Visible() {
			continue
		}
		cp := p.Sub(c.Position())
		if cg, ok := c.(*Group); ok {
			if hit := itemAt(cg, cp); hit != nil {
				return hit
			}
			continue
		}
		if c.BoundingBox().Contains(cp) {
			return c
		}
	}
	return nil
}

// Deliver hit tests ev.Pos below root and emits ev on the hit item and then
// on each of its ancestors up to the root. It returns the hit item, or nil
// when nothing was hit.
func Deliver(root *Group, ev Event) Item {
	hit := ItemAt(root, ev.Pos)
	if hit == nil {
		return nil
	}
	var it Item = hit
	for it != nil {
		it.Events().Emit(ev)
		p := it.Parent()
		if p == nil {
			break
		}
		it = p
	}
	return hit
}
