package marker

import (
	"math"

	"github.com/gogpu/marker/canvas"
)

const (
	// labelMargin is added to the measured label width in the Standard profile.
	labelMargin = 2.0

	// badgeMargin is added to the measured badge text width.
	badgeMargin = 7.0

	// badgeTextX is the badge text offset from the group origin.
	badgeTextX = 4.0

	// badgeRectX0 is the left edge of the badge frame.
	badgeRectX0 = 2.0
)

// badgeColor is white at 95% opacity.
var badgeColor = canvas.RGBA2(1, 1, 1, 0.95)

// SetName replaces the label text.
func (m *Marker) SetName(s string) {
	if m.closed {
		return
	}
	m.label = s
	m.layoutLabel()
}

// Name returns the label text.
func (m *Marker) Name() string { return m.label }

// LabelOnLeft reports whether the label grows leftward from the glyph.
// This holds for SessionEnd, RangeEnd, LoopEnd and PunchOut.
func (m *Marker) LabelOnLeft() bool {
	return m.typ.labelOnLeft()
}

// SetLeftSpaceLimit sets the pixel width available to a label on the left
// of the marker. Negative values are treated as zero. The label is laid out
// again only when it is on the left.
func (m *Marker) SetLeftSpaceLimit(p float64) {
	if m.closed {
		return
	}
	m.leftLimit = max(p, 0)
	if m.LabelOnLeft() {
		m.layoutLabel()
	}
}

// SetRightSpaceLimit sets the pixel width available to a label on the right
// of the marker. Negative values are treated as zero. The label is laid out
// again only when it is on the right.
func (m *Marker) SetRightSpaceLimit(p float64) {
	if m.closed {
		return
	}
	m.rightLimit = max(p, 0)
	if !m.LabelOnLeft() {
		m.layoutLabel()
	}
}

// LeftSpaceLimit returns the left space limit, +Inf when unbounded.
func (m *Marker) LeftSpaceLimit() float64 { return m.leftLimit }

// RightSpaceLimit returns the right space limit, +Inf when unbounded.
func (m *Marker) RightSpaceLimit() float64 { return m.rightLimit }

// SetHasBadge adds or removes the auxiliary event badge. Calls that do not
// change the state do nothing.
func (m *Marker) SetHasBadge(yn bool) {
	if m.closed || yn == m.hasBadge {
		return
	}
	m.hasBadge = yn
	m.layoutLabel()
	Logger().Debug("marker badge toggled", "marker", m.String(), "badge", yn)
}

// HasBadge reports whether the badge is present.
func (m *Marker) HasBadge() bool { return m.hasBadge }

// LabelOffset returns the label x position used by right-anchored labels,
// including the badge width while the badge is present.
func (m *Marker) LabelOffset() float64 { return m.baseOffset + m.badgeWidth }

// DisplayWidth returns the label width after clamping; zero when the label
// is hidden.
func (m *Marker) DisplayWidth() float64 { return m.displayWidth }

// Label returns the label text item.
func (m *Marker) Label() *canvas.Text { return m.name }

// LabelBackground returns the label background rectangle.
func (m *Marker) LabelBackground() *canvas.Rectangle { return m.background }

// Badge returns the badge frame and text, or nils when there is no badge.
func (m *Marker) Badge() (*canvas.Rectangle, *canvas.Text) { return m.badgeRect, m.badgeText }

// labelY centers a line of text vertically on the glyph.
func (m *Marker) labelY() float64 {
	return MarkerHeight/2 - m.nameHeight/2
}

// spaceLimit returns the limit of the side the label is anchored on.
func (m *Marker) spaceLimit() float64 {
	if m.LabelOnLeft() {
		return m.leftLimit
	}
	return m.rightLimit
}

// labelWidth returns the unclamped width of the label including margins,
// or zero when the text measures nothing.
func (m *Marker) labelWidth() float64 {
	w, _ := m.measurer.Size(m.label)
	if w <= 0 {
		return 0
	}
	if m.opts.profile == Alternate {
		return w + 2*NamePadding
	}
	return w + labelMargin
}

// layoutLabel positions and clamps the label and sizes its background.
func (m *Marker) layoutLabel() {
	m.layoutBadge()

	w := math.Min(m.labelWidth(), m.spaceLimit())
	m.displayWidth = w
	m.name.Set(m.label)
	m.name.ClampWidth(w)

	if w == 0 {
		m.name.Hide()
	} else {
		m.name.Show()

		x := m.LabelOffset()
		if m.opts.profile == Standard && m.LabelOnLeft() {
			x = -w
		}
		m.name.SetPosition(canvas.Pt(x, m.labelY()))

		x0, x1 := m.backgroundSpan(x, w)
		m.background.SetX0(x0)
		m.background.SetX1(x1)
	}

	m.background.SetY0(0)
	m.background.SetY1(MarkerHeight + 1)
}

// backgroundSpan returns the horizontal extent of the label background for
// a label drawn at x with width w.
func (m *Marker) backgroundSpan(x, w float64) (x0, x1 float64) {
	offset := m.LabelOffset()
	switch {
	case m.opts.profile == Alternate:
		x0 = x - offset
		return x0, x0 + w + m.badgeWidth
	case m.LabelOnLeft():
		return x - 2, x + w + m.shape.Shift + m.badgeWidth
	default:
		return x - offset + 2, x + w
	}
}

// layoutBadge creates, updates or destroys the badge to match hasBadge.
// The badge width is measured once per badge lifetime.
func (m *Marker) layoutBadge() {
	if !m.hasBadge {
		if m.badgeText != nil {
			m.badgeText.Destroy()
			m.badgeRect.Destroy()
			m.badgeText = nil
			m.badgeRect = nil
			m.badgeWidth = 0
		}
		return
	}

	if m.badgeText == nil {
		tw, _ := m.measurer.Size(m.opts.badgeText)
		m.badgeWidth = tw + badgeMargin
		m.badgeRect = canvas.NewRectangle(m.group)
		m.badgeText = canvas.NewText(m.group, m.measurer)
	}

	m.badgeRect.SetOutlineColor(badgeColor)
	m.badgeRect.SetFill(false)

	m.badgeText.SetColor(badgeColor)
	m.badgeText.Set(m.opts.badgeText)
	m.badgeText.SetPosition(canvas.Pt(badgeTextX, m.labelY()))

	y0 := m.labelY() - 2
	m.badgeRect.Set(canvas.Rect{X0: badgeRectX0, Y0: y0, X1: m.badgeWidth, Y1: y0 + m.nameHeight + 4})
}
