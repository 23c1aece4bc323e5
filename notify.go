package marker

import "github.com/gogpu/marker/signal"

// deletions carries every marker being closed.
var deletions signal.Signal[*Marker]

// OnDelete registers fn to be called synchronously from Close, once per
// marker, before any of the marker's items are destroyed. Inside fn the
// marker and TheItem are still intact.
//
// Observers must Disconnect the returned connection in their own teardown.
func OnDelete(fn func(*Marker)) signal.Connection {
	return deletions.Connect(fn)
}
