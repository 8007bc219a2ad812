package window

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards all log records; Enabled returns false so disabled
// logging costs nothing.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures logging for the window drivers. The root package
// propagates its logger here, so hosts normally call simpleplot.SetLogger
// instead. Pass nil to silence output.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current driver logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
