package simpleplot

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/jack-dinsmore/SimplePlots/window"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any render
// goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the logger for simpleplot and its sub-packages.
// By default, simpleplot produces no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use: it stores the new logger
// atomically. Pass nil to disable logging (restore default silent
// behavior).
//
// Log levels used by simpleplot:
//   - [slog.LevelDebug]: per-frame diagnostics (paint timing, event pump)
//   - [slog.LevelInfo]: canvas lifecycle events (window opened, canvas torn down)
//   - [slog.LevelWarn]: non-fatal issues (failed frame, resource release errors)
//
// Example:
//
//	simpleplot.SetLogger(slog.Default())
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	// The window driver packages keep their own logger so they stay
	// importable without a cycle back into this package.
	window.SetLogger(l)
}

// Logger returns the current logger used by simpleplot.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
