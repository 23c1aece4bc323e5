package marker

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record and reports every level disabled, so marker
// code never formats attributes unless a logger was installed.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (d discard) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discard) WithGroup(string) slog.Handler           { return d }

var silent = slog.New(discard{})

var logger atomic.Pointer[slog.Logger]

// SetLogger installs l for marker, timeline and cmd/markerdemo. A nil l
// silences logging again, which is the default.
//
// Records emitted:
//   - Debug "marker created", "marker closed", "marker badge toggled" with
//     type, label and position
//   - Debug "ruler: marker added" with the ruler's marker count
//   - Warn when the embedded label font cannot be loaded and labels are
//     hidden
//
// Example:
//
//	marker.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	logger.Store(l)
}

// Logger returns the installed logger, never nil.
func Logger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return silent
}
