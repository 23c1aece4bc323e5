package marker

import (
	"testing"

	"github.com/gogpu/marker/canvas"
)

func TestOnDeleteFiresOnceBeforeTeardown(t *testing.T) {
	host := newTestHost()
	m := New(host, host.root, Mark, 1000, canvas.Red, "Verse", WithMeasurer(testMeasurer))
	m.Show()
	m.SetSelected(true)
	line := m.Line()

	calls := 0
	conn := OnDelete(func(d *Marker) {
		if d != m {
			return
		}
		calls++
		g := d.TheItem()
		if g == nil || g.Destroyed() {
			t.Error("group destroyed before deletion observers ran")
		}
		if g.Parent() != host.root {
			t.Error("group detached before deletion observers ran")
		}
		if d.Line().Destroyed() {
			t.Error("line destroyed before deletion observers ran")
		}
	})
	defer conn.Disconnect()

	m.Close()
	m.Close()

	if calls != 1 {
		t.Errorf("OnDelete observer called %d times, want 1", calls)
	}
	if !m.Closed() {
		t.Error("Closed() = false after Close")
	}
	if !m.TheItem().Destroyed() || !line.Destroyed() {
		t.Error("owned items not destroyed")
	}
	if host.root.Len() != 1 {
		t.Errorf("root has %d children after Close, want only the line group", host.root.Len())
	}
	if host.lines.Len() != 0 {
		t.Errorf("line group has %d children after Close, want 0", host.lines.Len())
	}
	if host.zoom.Len() != 0 {
		t.Errorf("zoom signal has %d subscribers after Close, want 0", host.zoom.Len())
	}
}

func TestOnDeleteDisconnect(t *testing.T) {
	calls := 0
	conn := OnDelete(func(*Marker) { calls++ })
	conn.Disconnect()

	m := newTestMarker(t, Mark, 0, "x")
	m.Close()

	if calls != 0 {
		t.Errorf("disconnected observer called %d times", calls)
	}
}

func TestOnDeleteObserverDropsReference(t *testing.T) {
	host := newTestHost()
	tracked := map[*Marker]bool{}
	for i := range 3 {
		m := New(host, host.root, Mark, Time(i*1000), canvas.Red, "m", WithMeasurer(testMeasurer))
		tracked[m] = true
	}
	conn := OnDelete(func(m *Marker) { delete(tracked, m) })
	defer conn.Disconnect()

	for m := range tracked {
		m.Close()
	}
	if len(tracked) != 0 {
		t.Errorf("%d markers still tracked after Close", len(tracked))
	}
}
