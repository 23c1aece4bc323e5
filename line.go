package marker

import (
	"fmt"

	"github.com/gogpu/marker/canvas"
)

// SetSelected changes the selection state and re-evaluates the line.
func (m *Marker) SetSelected(yn bool) {
	if m.closed {
		return
	}
	m.selected = yn
	m.setupLine()
}

// Selected reports the selection state.
func (m *Marker) Selected() bool { return m.selected }

// SetShowLine forces the extension line on or releases it.
func (m *Marker) SetShowLine(yn bool) {
	if m.closed {
		return
	}
	m.lineShown = yn
	m.setupLine()
}

// ShowLine reports whether the line is forced on.
func (m *Marker) ShowLine() bool { return m.lineShown }

// Line returns the extension line, or nil if it was never needed.
// Once created the line is only ever hidden, never released before Close.
func (m *Marker) Line() *canvas.Line { return m.line }

// LineActive reports whether the extension line should currently be shown.
//
//	Standard:  visible && (selected || forced)
//	Alternate: type == Mark || (visible && (selected || forced))
func (m *Marker) LineActive() bool {
	active := m.shown && (m.selected || m.lineShown)
	if m.opts.profile == Alternate {
		return m.typ == Mark || active
	}
	return active
}

// lineColor returns the extension line color for the current state.
func (m *Marker) lineColor() canvas.RGBA {
	if m.opts.profile == Standard && m.selected {
		return m.opts.editPoint
	}
	return m.color
}

// setupLine shows, places and colors the extension line, creating it on
// first need, or hides it.
func (m *Marker) setupLine() {
	if !m.LineActive() {
		if m.line != nil {
			m.line.Hide()
		}
		return
	}

	if m.line == nil {
		m.line = canvas.NewLine(m.host.LineGroup())
		m.line.SetName(fmt.Sprintf("marker line for %s", m.label))
		m.line.SetData(DataKey, m)
		if h := m.opts.handler; h != nil {
			m.lineEventConn = m.line.Events().Connect(func(ev canvas.Event) {
				h.MarkerEvent(ev, m.group, m)
			})
		}
	}

	g := m.group.CanvasOrigin()
	d := m.line.CanvasToItem(canvas.Pt(g.X+m.shape.Shift, 0))

	m.line.SetX0(d.X)
	m.line.SetX1(d.X)
	m.line.SetY0(MarkerHeight)
	m.line.SetY1(canvas.CoordMax)
	m.line.SetOutlineColor(m.lineColor())
	m.line.RaiseToTop()
	m.line.Show()
}
