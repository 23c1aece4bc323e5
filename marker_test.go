package marker

import (
	"math"
	"testing"

	"github.com/gogpu/marker/canvas"
	"github.com/gogpu/marker/signal"
	"github.com/gogpu/marker/text"
)

// testMeasurer gives every rune a 6px cell and every string a 10px height.
var testMeasurer = text.Monospace{Advance: 6, Height: 10}

// testHost maps samples to pixels with a fixed scale.
type testHost struct {
	root  *canvas.Group
	lines *canvas.Group
	zoom  signal.Signal[struct{}]
	scale float64
}

func newTestHost() *testHost {
	root := canvas.NewGroup(nil, canvas.Point{})
	return &testHost{
		root:  root,
		lines: canvas.NewGroup(root, canvas.Point{}),
		scale: 0.25,
	}
}

func (h *testHost) TimeToPixel(t Time) float64             { return float64(t) * h.scale }
func (h *testHost) LineGroup() *canvas.Group              { return h.lines }
func (h *testHost) ZoomChanged() *signal.Signal[struct{}] { return &h.zoom }

func (h *testHost) setScale(s float64) {
	h.scale = s
	h.zoom.Emit(struct{}{})
}

func newTestMarkerOn(t *testing.T, host *testHost, typ Type, at Time, label string, opts ...Option) *Marker {
	t.Helper()
	opts = append([]Option{WithMeasurer(testMeasurer)}, opts...)
	m := New(host, host.root, typ, at, canvas.FromUint32(0xff0000ff), label, opts...)
	t.Cleanup(m.Close)
	return m
}

func newTestMarker(t *testing.T, typ Type, at Time, label string, opts ...Option) *Marker {
	t.Helper()
	return newTestMarkerOn(t, newTestHost(), typ, at, label, opts...)
}

// labelGeometry captures everything label layout derives.
type labelGeometry struct {
	offset, width float64
	visible       bool
	pos           canvas.Point
	clamp         float64
	background    canvas.Rect
}

func geometryOf(m *Marker) labelGeometry {
	return labelGeometry{
		offset:     m.LabelOffset(),
		width:      m.DisplayWidth(),
		visible:    m.Label().Visible(),
		pos:        m.Label().Position(),
		clamp:      m.Label().Clamp(),
		background: m.LabelBackground().Get(),
	}
}

func TestScenarioVerse(t *testing.T) {
	m := newTestMarker(t, Mark, 1000, "Verse")

	if got := m.PixelPosition(); got != 247 {
		t.Errorf("PixelPosition() = %v, want 247", got)
	}
	if got := m.TheItem().Position().X; got != 247 {
		t.Errorf("group x = %v, want 247", got)
	}
	if m.DisplayWidth() != 32 {
		t.Fatalf("DisplayWidth() = %v, want 32", m.DisplayWidth())
	}

	m.SetLeftSpaceLimit(5)
	if m.DisplayWidth() != 32 {
		t.Errorf("left limit changed right-anchored label: DisplayWidth() = %v", m.DisplayWidth())
	}

	m.SetRightSpaceLimit(5)
	if m.DisplayWidth() != 5 {
		t.Errorf("DisplayWidth() = %v, want 5", m.DisplayWidth())
	}
	if m.Label().Width() != 5 {
		t.Errorf("drawn label width = %v, want 5", m.Label().Width())
	}
}

func TestSetPositionInvariant(t *testing.T) {
	for _, typ := range Types() {
		t.Run(typ.String(), func(t *testing.T) {
			host := newTestHost()
			m := newTestMarkerOn(t, host, typ, 0, "x")
			for _, at := range []Time{0, 48000, 123457} {
				m.SetPosition(at)
				want := host.TimeToPixel(at) - ShapeFor(typ).Shift
				if m.PixelPosition() != want {
					t.Errorf("SetPosition(%d): PixelPosition() = %v, want %v", at, m.PixelPosition(), want)
				}
				if m.TheItem().Position().X != want {
					t.Errorf("SetPosition(%d): group x = %v, want %v", at, m.TheItem().Position().X, want)
				}
				if m.Position() != at {
					t.Errorf("Position() = %d, want %d", m.Position(), at)
				}
			}
		})
	}
}

func TestRepositionOnZoom(t *testing.T) {
	host := newTestHost()
	m := newTestMarkerOn(t, host, RangeEnd, 1000, "Outro")
	before := geometryOf(m)

	host.setScale(0.5)

	if got, want := m.PixelPosition(), 500-MarkerHeight; got != want {
		t.Errorf("PixelPosition() after zoom = %v, want %v", got, want)
	}
	if got := geometryOf(m); got != before {
		t.Errorf("zoom changed label geometry: %+v -> %+v", before, got)
	}

	m.Reposition()
	m.Reposition()
	if got, want := m.PixelPosition(), 500-MarkerHeight; got != want {
		t.Errorf("Reposition() not idempotent: %v, want %v", got, want)
	}
}

func TestLabelOnLeft(t *testing.T) {
	left := map[Type]bool{SessionEnd: true, RangeEnd: true, LoopEnd: true, PunchOut: true}
	for _, typ := range Types() {
		m := newTestMarker(t, typ, 0, "x")
		if got := m.LabelOnLeft(); got != left[typ] {
			t.Errorf("%v: LabelOnLeft() = %v, want %v", typ, got, left[typ])
		}
	}
}

func TestSessionEndLabel(t *testing.T) {
	m := newTestMarker(t, SessionEnd, 2000, "Outro")

	if !m.LabelOnLeft() {
		t.Fatal("LabelOnLeft() = false for SessionEnd")
	}
	w := m.DisplayWidth()
	if w != 32 {
		t.Fatalf("DisplayWidth() = %v, want 32", w)
	}
	if got := m.Label().Position().X; got != -w {
		t.Errorf("label x = %v, want %v", got, -w)
	}
	bg := m.LabelBackground().Get()
	if bg.X0 != -34 || bg.X1 != MarkerHeight {
		t.Errorf("background x = [%v, %v], want [-34, %v]", bg.X0, bg.X1, MarkerHeight)
	}

	m.SetRightSpaceLimit(3)
	if m.DisplayWidth() != 32 {
		t.Errorf("right limit changed left-anchored label: %v", m.DisplayWidth())
	}
	m.SetLeftSpaceLimit(20)
	if m.DisplayWidth() != 20 || m.Label().Position().X != -20 {
		t.Errorf("left limit 20: width=%v x=%v, want 20 and -20", m.DisplayWidth(), m.Label().Position().X)
	}
}

func TestRightAnchoredLabelGeometry(t *testing.T) {
	m := newTestMarker(t, Mark, 0, "Verse")

	if got, want := m.Label().Position(), canvas.Pt(8, 3.5); got != want {
		t.Errorf("label position = %v, want %v", got, want)
	}
	if got, want := m.LabelBackground().Get(), (canvas.Rect{X0: 2, Y0: 0, X1: 40, Y1: 18}); got != want {
		t.Errorf("background = %v, want %v", got, want)
	}
}

func TestLayoutIdempotent(t *testing.T) {
	for _, typ := range Types() {
		m := newTestMarker(t, typ, 100, "Bridge")
		m.SetHasBadge(true)
		m.SetRightSpaceLimit(40)
		m.SetLeftSpaceLimit(25)

		first := geometryOf(m)
		m.layoutLabel()
		m.layoutLabel()
		if got := geometryOf(m); got != first {
			t.Errorf("%v: layoutLabel not idempotent: %+v -> %+v", typ, first, got)
		}
	}
}

func TestSpaceLimitClampLaw(t *testing.T) {
	labels := []string{"", "a", "Verse", "A much longer marker label"}
	limits := []float64{0, 1, 5, 31.5, 100, 1000}

	for _, typ := range []Type{Mark, SessionEnd} {
		for _, label := range labels {
			for _, limit := range limits {
				m := newTestMarker(t, typ, 0, label)
				m.SetLeftSpaceLimit(limit)
				m.SetRightSpaceLimit(limit)

				if m.DisplayWidth() > limit {
					t.Errorf("%v %q limit %v: DisplayWidth() = %v", typ, label, limit, m.DisplayWidth())
				}
				if m.Label().Width() > limit {
					t.Errorf("%v %q limit %v: drawn width = %v", typ, label, limit, m.Label().Width())
				}
				if limit == 0 && m.Label().Visible() {
					t.Errorf("%v %q: label visible with zero limit", typ, label)
				}
			}
		}
	}
}

func TestNegativeLimitClampsToZero(t *testing.T) {
	m := newTestMarker(t, Mark, 0, "Verse")
	m.SetRightSpaceLimit(-10)
	if m.RightSpaceLimit() != 0 {
		t.Errorf("RightSpaceLimit() = %v, want 0", m.RightSpaceLimit())
	}
	if m.DisplayWidth() != 0 || m.Label().Visible() {
		t.Errorf("label should be hidden: width=%v visible=%v", m.DisplayWidth(), m.Label().Visible())
	}

	m.SetRightSpaceLimit(math.Inf(1))
	if !m.Label().Visible() || m.DisplayWidth() != 32 {
		t.Errorf("label not restored: width=%v visible=%v", m.DisplayWidth(), m.Label().Visible())
	}
}

func TestZeroMetricsHideLabel(t *testing.T) {
	m := newTestMarker(t, Mark, 0, "Verse", WithMeasurer(text.Zero{}))
	if m.DisplayWidth() != 0 || m.Label().Visible() {
		t.Errorf("zero metrics: width=%v visible=%v, want hidden", m.DisplayWidth(), m.Label().Visible())
	}
}

func TestEmptyNameHidesLabel(t *testing.T) {
	m := newTestMarker(t, Mark, 0, "Verse")
	m.SetName("")
	if m.Label().Visible() {
		t.Error("empty name left the label visible")
	}
	m.SetName("Chorus")
	if !m.Label().Visible() || m.Name() != "Chorus" || m.Label().Text() != "Chorus" {
		t.Errorf("SetName(Chorus): visible=%v name=%q text=%q", m.Label().Visible(), m.Name(), m.Label().Text())
	}
	if m.DisplayWidth() != 38 {
		t.Errorf("DisplayWidth() = %v, want 38", m.DisplayWidth())
	}
}

func TestBackgroundVerticalExtent(t *testing.T) {
	tall := text.Monospace{Advance: 6, Height: 40}
	for _, typ := range Types() {
		m := newTestMarker(t, typ, 0, "x", WithMeasurer(tall))
		bg := m.LabelBackground().Get()
		if bg.Y0 != 0 || bg.Y1 != MarkerHeight+1 {
			t.Errorf("%v: background y = [%v, %v], want [0, %v]", typ, bg.Y0, bg.Y1, MarkerHeight+1)
		}
	}
}

func TestBadgeRoundTrip(t *testing.T) {
	for _, typ := range []Type{Mark, SessionEnd, LoopStart} {
		t.Run(typ.String(), func(t *testing.T) {
			m := newTestMarker(t, typ, 0, "Verse")
			before := geometryOf(m)
			items := m.TheItem().Len()

			m.SetHasBadge(true)
			if !m.HasBadge() {
				t.Fatal("HasBadge() = false")
			}
			rect, txt := m.Badge()
			if rect == nil || txt == nil {
				t.Fatal("badge items not created")
			}
			if got, want := m.LabelOffset(), before.offset+31; got != want {
				t.Errorf("LabelOffset() with badge = %v, want %v", got, want)
			}
			if m.TheItem().Len() != items+2 {
				t.Errorf("group has %d items, want %d", m.TheItem().Len(), items+2)
			}

			m.SetHasBadge(true)
			r2, t2 := m.Badge()
			if r2 != rect || t2 != txt || m.TheItem().Len() != items+2 {
				t.Error("redundant SetHasBadge(true) recreated badge items")
			}
			if got, want := m.LabelOffset(), before.offset+31; got != want {
				t.Errorf("LabelOffset() drifted to %v, want %v", got, want)
			}

			m.SetHasBadge(false)
			if got := geometryOf(m); got != before {
				t.Errorf("badge round trip: %+v -> %+v", before, got)
			}
			if r, tx := m.Badge(); r != nil || tx != nil {
				t.Error("badge items not released")
			}
			if !rect.Destroyed() || !txt.Destroyed() {
				t.Error("badge items not destroyed")
			}
			if m.TheItem().Len() != items {
				t.Errorf("group has %d items, want %d", m.TheItem().Len(), items)
			}
		})
	}
}

func TestBadgeGeometry(t *testing.T) {
	m := newTestMarker(t, Mark, 0, "Verse")
	m.SetHasBadge(true)

	rect, txt := m.Badge()
	if got, want := rect.Get(), (canvas.Rect{X0: 2, Y0: 1.5, X1: 31, Y1: 15.5}); got != want {
		t.Errorf("badge rect = %v, want %v", got, want)
	}
	if rect.Filled() {
		t.Error("badge rect should not be filled")
	}
	if txt.Text() != DefaultBadgeText {
		t.Errorf("badge text = %q, want %q", txt.Text(), DefaultBadgeText)
	}
	if got, want := txt.Position(), canvas.Pt(4, 3.5); got != want {
		t.Errorf("badge text position = %v, want %v", got, want)
	}
	if got := m.Label().Position().X; got != 39 {
		t.Errorf("label x with badge = %v, want 39", got)
	}
	if got, want := m.LabelBackground().Get(), (canvas.Rect{X0: 2, Y0: 0, X1: 71, Y1: 18}); got != want {
		t.Errorf("background = %v, want %v", got, want)
	}
}

func TestBadgeText(t *testing.T) {
	m := newTestMarker(t, Mark, 0, "Verse", WithBadgeText("OSC"))
	m.SetHasBadge(true)
	_, txt := m.Badge()
	if txt.Text() != "OSC" {
		t.Errorf("badge text = %q, want OSC", txt.Text())
	}
	if got := m.LabelOffset(); got != 8+18+7 {
		t.Errorf("LabelOffset() = %v, want 33", got)
	}
}

func TestSetColor(t *testing.T) {
	m := newTestMarker(t, Mark, 0, "Verse")
	c := canvas.FromUint32(0x336699ff)
	m.SetColor(c)

	if m.Color() != c {
		t.Errorf("Color() = %v, want %v", m.Color(), c)
	}
	if m.Glyph().FillColor() != c || m.Glyph().OutlineColor() != c {
		t.Error("glyph not recolored")
	}
	bg := m.LabelBackground()
	if got := bg.FillColor().Uint32(); got != 0x33669970 {
		t.Errorf("background fill = %#08x, want 0x33669970", got)
	}
	if !bg.Filled() {
		t.Error("background not filled")
	}
	if bg.OutlineColor() != canvas.RGBA2(1, 1, 1, 0.2) {
		t.Errorf("background outline = %v", bg.OutlineColor())
	}
	if bg.OutlineWhat() != canvas.EdgeAll {
		t.Errorf("Standard background edges = %v, want all", bg.OutlineWhat())
	}
}

func TestAlternateProfile(t *testing.T) {
	m := newTestMarker(t, SessionEnd, 0, "Outro", WithProfile(Alternate))

	if m.Glyph() != nil {
		t.Error("Alternate profile created a glyph")
	}
	if m.Profile() != Alternate {
		t.Errorf("Profile() = %v", m.Profile())
	}
	if m.LabelOffset() != NamePadding {
		t.Errorf("LabelOffset() = %v, want %v", m.LabelOffset(), NamePadding)
	}
	if m.DisplayWidth() != 30+2*NamePadding {
		t.Errorf("DisplayWidth() = %v, want %v", m.DisplayWidth(), 30+2*NamePadding)
	}
	if got := m.Label().Position().X; got != NamePadding {
		t.Errorf("label x = %v, want %v", got, NamePadding)
	}
	bg := m.LabelBackground()
	if got, want := bg.Get(), (canvas.Rect{X0: 0, Y0: 0, X1: 50, Y1: 18}); got != want {
		t.Errorf("background = %v, want %v", got, want)
	}
	if bg.OutlineWhat() != canvas.EdgeTop|canvas.EdgeLeft|canvas.EdgeRight {
		t.Errorf("background edges = %v, want top|left|right", bg.OutlineWhat())
	}
	if got, want := m.PixelPosition(), -MarkerHeight; got != want {
		t.Errorf("PixelPosition() = %v, want %v", got, want)
	}
}

func TestShowHide(t *testing.T) {
	m := newTestMarker(t, Mark, 0, "Verse")
	if m.Visible() || m.TheItem().Visible() {
		t.Error("new marker should start hidden")
	}
	m.Show()
	if !m.Visible() || !m.TheItem().Visible() {
		t.Error("Show() did not show the group")
	}
	m.Hide()
	if m.Visible() || m.TheItem().Visible() {
		t.Error("Hide() did not hide the group")
	}
}

func TestReparent(t *testing.T) {
	host := newTestHost()
	m := newTestMarkerOn(t, host, Mark, 1000, "Verse")
	m.Show()
	m.SetShowLine(true)

	other := canvas.NewGroup(host.root, canvas.Pt(100, 0))
	m.Reparent(other)

	if m.TheItem().Parent() != other || m.Parent() != other {
		t.Error("Reparent() did not move the group")
	}
	x0, _ := m.Line().Ends()
	if x0.X != 100+247+3 {
		t.Errorf("line x after reparent = %v, want %v", x0.X, 100+247+3)
	}
}

func TestEventHandler(t *testing.T) {
	host := newTestHost()
	var got []*Marker
	h := EventHandlerFunc(func(ev canvas.Event, item canvas.Item, m *Marker) {
		got = append(got, m)
		if item != m.TheItem() {
			t.Errorf("handler item = %v, want marker group", item)
		}
	})
	m := newTestMarkerOn(t, host, Mark, 1000, "Verse", WithEventHandler(h))
	m.Show()

	hit := canvas.Deliver(host.root, canvas.Event{Type: canvas.ButtonPress, Pos: canvas.Pt(250, 2)})
	if FromItem(hit) != m {
		t.Errorf("FromItem(hit) = %v, want marker", FromItem(hit))
	}
	if len(got) != 1 || got[0] != m {
		t.Errorf("handler calls = %v, want [marker]", got)
	}

	if FromItem(nil) != nil {
		t.Error("FromItem(nil) != nil")
	}
}

func TestNoEventHandler(t *testing.T) {
	m := newTestMarker(t, Mark, 0, "Verse")
	if m.TheItem().Events().Len() != 0 {
		t.Errorf("marker without handler subscribed %d times", m.TheItem().Events().Len())
	}
}

func TestUnknownTypePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New() with invalid type did not panic")
		}
	}()
	New(newTestHost(), nil, Type(200), 0, canvas.White, "x", WithMeasurer(testMeasurer))
}

func TestString(t *testing.T) {
	m := newTestMarker(t, LoopStart, 42, "Loop")
	if got, want := m.String(), `loop-start "Loop" @42`; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func BenchmarkReposition(b *testing.B) {
	host := newTestHost()
	m := New(host, host.root, Mark, 1000, canvas.Red, "Verse", WithMeasurer(testMeasurer))
	m.Show()
	m.SetSelected(true)
	b.ReportAllocs()
	for b.Loop() {
		m.Reposition()
	}
}

func BenchmarkLayoutLabel(b *testing.B) {
	host := newTestHost()
	m := New(host, host.root, Mark, 1000, canvas.Red, "Verse", WithMeasurer(testMeasurer))
	b.ReportAllocs()
	for b.Loop() {
		m.layoutLabel()
	}
}

func TestMutatorsAfterCloseDoNothing(t *testing.T) {
	host := newTestHost()
	m := New(host, host.root, Mark, 1000, canvas.Red, "Verse", WithMeasurer(testMeasurer))
	m.Show()
	m.SetSelected(true)
	p0, _ := m.Line().Ends()

	m.Close()
	if m.Visible() {
		t.Error("Visible() = true after Close")
	}

	m.SetPosition(4000)
	host.setScale(1)
	m.Show()
	m.SetSelected(false)
	m.SetShowLine(true)
	m.SetColor(canvas.Blue)
	m.SetName("Chorus")
	m.SetHasBadge(true)
	m.SetLeftSpaceLimit(1)
	m.SetRightSpaceLimit(1)
	m.Reparent(host.lines)

	if got := m.Position(); got != 1000 {
		t.Errorf("Position() = %d, want 1000", got)
	}
	if m.Visible() || !m.Selected() {
		t.Errorf("Visible() = %v, Selected() = %v after close", m.Visible(), m.Selected())
	}
	if m.Color() != canvas.Red || m.Name() != "Verse" || m.HasBadge() {
		t.Errorf("closed marker changed: color=%v name=%q badge=%v", m.Color(), m.Name(), m.HasBadge())
	}
	if got, _ := m.Line().Ends(); got != p0 {
		t.Errorf("destroyed line moved from %v to %v", p0, got)
	}
	if got := host.LineGroup().Len(); got != 0 {
		t.Errorf("line group holds %d items after close, want 0", got)
	}
	if m.TheItem().Parent() != nil {
		t.Error("Reparent after close attached the destroyed group")
	}
}
