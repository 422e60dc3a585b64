package pixproc

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
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
// SetLogger can be called concurrently with filters running on any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for pixproc.
// By default, pixproc produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by pixproc:
//   - [slog.LevelDebug]: one record per operation (op, size, parameters,
//     elapsed time) and engine lifecycle events
//
// Example:
//
//	pixproc.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by pixproc.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// trace logs one completed operation at debug level. It is meant to be
// deferred with start = time.Now() so the elapsed time covers the call.
func trace(op string, width, height int, start time.Time, attrs ...slog.Attr) {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	base := []slog.Attr{
		slog.String("op", op),
		slog.Int("width", width),
		slog.Int("height", height),
		slog.Duration("elapsed", time.Since(start)),
	}
	l.LogAttrs(context.Background(), slog.LevelDebug, "pixproc: "+op, append(base, attrs...)...)
}
