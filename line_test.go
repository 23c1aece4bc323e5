package marker

import (
	"testing"

	"github.com/gogpu/marker/canvas"
)

func lineShown(m *Marker) bool {
	return m.Line() != nil && m.Line().Visible()
}

func TestLineTruthTableStandard(t *testing.T) {
	tests := []struct {
		visible, selected, forced bool
		want                      bool
	}{
		{false, false, false, false},
		{false, true, false, false},
		{false, false, true, false},
		{false, true, true, false},
		{true, false, false, false},
		{true, true, false, true},
		{true, false, true, true},
		{true, true, true, true},
	}
	for _, typ := range []Type{Mark, RangeStart, PunchOut} {
		for _, tt := range tests {
			m := newTestMarker(t, typ, 1000, "x")
			if tt.visible {
				m.Show()
			}
			m.SetSelected(tt.selected)
			m.SetShowLine(tt.forced)

			if got := m.LineActive(); got != tt.want {
				t.Errorf("%v visible=%v selected=%v forced=%v: LineActive() = %v, want %v",
					typ, tt.visible, tt.selected, tt.forced, got, tt.want)
			}
			if got := lineShown(m); got != tt.want {
				t.Errorf("%v visible=%v selected=%v forced=%v: line shown = %v, want %v",
					typ, tt.visible, tt.selected, tt.forced, got, tt.want)
			}
		}
	}
}

func TestLineTruthTableAlternate(t *testing.T) {
	tests := []struct {
		typ                       Type
		visible, selected, forced bool
		want                      bool
	}{
		{Mark, false, false, false, true},
		{Mark, true, false, false, true},
		{Tempo, false, true, true, false},
		{Tempo, true, false, false, false},
		{Tempo, true, true, false, true},
		{LoopEnd, true, false, true, true},
	}
	for _, tt := range tests {
		m := newTestMarker(t, tt.typ, 1000, "x", WithProfile(Alternate))
		if tt.visible {
			m.Show()
		}
		m.SetSelected(tt.selected)
		m.SetShowLine(tt.forced)

		if got := lineShown(m); got != tt.want {
			t.Errorf("%v visible=%v selected=%v forced=%v: line shown = %v, want %v",
				tt.typ, tt.visible, tt.selected, tt.forced, got, tt.want)
		}
	}
}

func TestSelectShowsLineInEditPointColor(t *testing.T) {
	edit := canvas.FromUint32(0x00ff00ff)
	m := newTestMarker(t, Mark, 1000, "Verse", WithEditPointColor(edit), WithShowLine(false))
	m.Show()

	if lineShown(m) {
		t.Fatal("line shown before selection")
	}

	m.SetSelected(true)
	if !lineShown(m) {
		t.Fatal("line hidden after SetSelected(true)")
	}
	if got := m.Line().OutlineColor(); got != edit {
		t.Errorf("selected line color = %v, want edit point %v", got, edit)
	}
	line := m.Line()

	m.SetSelected(false)
	if m.Line() != line {
		t.Error("line was released on deselect")
	}
	if line.Visible() || line.Destroyed() {
		t.Errorf("deselected line: visible=%v destroyed=%v, want hidden", line.Visible(), line.Destroyed())
	}

	m.SetSelected(true)
	if m.Line() != line {
		t.Error("line recreated on reselect")
	}
	if m.host.LineGroup().Len() != 1 {
		t.Errorf("line group has %d items, want 1", m.host.LineGroup().Len())
	}
}

func TestLineGeometry(t *testing.T) {
	host := newTestHost()
	m := newTestMarkerOn(t, host, Mark, 1000, "Verse")
	m.Show()
	m.SetShowLine(true)

	p0, p1 := m.Line().Ends()
	if p0.X != 250 || p1.X != 250 {
		t.Errorf("line x = %v..%v, want 250", p0.X, p1.X)
	}
	if p0.Y != MarkerHeight || p1.Y != canvas.CoordMax {
		t.Errorf("line y = %v..%v, want %v..CoordMax", p0.Y, p1.Y, MarkerHeight)
	}
	if m.Line().Parent() != host.LineGroup() {
		t.Error("line not created in the host line group")
	}

	m.SetPosition(2000)
	p0, _ = m.Line().Ends()
	if p0.X != 500 {
		t.Errorf("line x after SetPosition = %v, want 500", p0.X)
	}

	host.setScale(1)
	p0, _ = m.Line().Ends()
	if p0.X != 2000 {
		t.Errorf("line x after zoom = %v, want 2000", p0.X)
	}
}

func TestLineInScrolledGroup(t *testing.T) {
	host := newTestHost()
	host.lines.SetPosition(canvas.Pt(-40, 0))
	m := newTestMarkerOn(t, host, SessionEnd, 1000, "Outro")
	m.Show()
	m.SetShowLine(true)

	p0, _ := m.Line().Ends()
	if got := m.Line().ItemToCanvas(p0).X; got != 250 {
		t.Errorf("line canvas x = %v, want 250", got)
	}
}

func TestLineColorFollowsMarker(t *testing.T) {
	m := newTestMarker(t, Mark, 0, "Verse")
	m.Show()
	m.SetShowLine(true)

	c := canvas.FromUint32(0x123456ff)
	m.SetColor(c)
	if got := m.Line().OutlineColor(); got != c {
		t.Errorf("unselected line color = %v, want %v", got, c)
	}

	m.SetSelected(true)
	m.SetColor(canvas.White)
	if got := m.Line().OutlineColor(); got != DefaultEditPointColor {
		t.Errorf("selected line color after SetColor = %v, want edit point", got)
	}
}

func TestAlternateLineColor(t *testing.T) {
	m := newTestMarker(t, Tempo, 0, "120", WithProfile(Alternate))
	m.Show()
	m.SetSelected(true)
	if got := m.Line().OutlineColor(); got != m.Color() {
		t.Errorf("Alternate selected line color = %v, want marker color %v", got, m.Color())
	}
}

func TestHideHidesLine(t *testing.T) {
	m := newTestMarker(t, Mark, 0, "Verse")
	m.Show()
	m.SetSelected(true)
	m.Hide()
	if lineShown(m) {
		t.Error("line still shown after Hide()")
	}
	m.Show()
	if !lineShown(m) {
		t.Error("line not restored after Show()")
	}
}

func TestLineRaisedToTop(t *testing.T) {
	host := newTestHost()
	a := newTestMarkerOn(t, host, Mark, 0, "a")
	b := newTestMarkerOn(t, host, Mark, 4000, "b")
	a.Show()
	b.Show()
	a.SetSelected(true)
	b.SetSelected(true)

	a.SetSelected(true)
	children := host.LineGroup().Children()
	if children[len(children)-1] != a.Line() {
		t.Error("re-shown line is not on top")
	}
}

func TestDefaultForcedLine(t *testing.T) {
	tests := []struct {
		name string
		typ  Type
		opts []Option
		want bool
	}{
		{"mark", Mark, nil, true},
		{"mark opted out", Mark, []Option{WithShowLine(false)}, false},
		{"tempo", Tempo, nil, false},
		{"range start forced", RangeStart, []Option{WithShowLine(true)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMarker(t, tt.typ, 1000, "x", tt.opts...)
			if got := m.ShowLine(); got != tt.want {
				t.Errorf("ShowLine() = %v, want %v", got, tt.want)
			}
			if lineShown(m) {
				t.Error("line shown before the marker is shown")
			}

			m.Show()
			if got := m.LineActive(); got != tt.want {
				t.Errorf("LineActive() = %v, want %v", got, tt.want)
			}
			if got := lineShown(m); got != tt.want {
				t.Errorf("line shown = %v, want %v", got, tt.want)
			}
			if tt.want && m.Line().OutlineColor() != m.Color() {
				t.Errorf("unselected line color = %v, want marker color", m.Line().OutlineColor())
			}
		})
	}
}
