package board

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/board/canvas"
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
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the logger for board and its sub-packages.
// By default, board produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by board:
//   - [slog.LevelDebug]: internal diagnostics (registry overwrites, cull counts)
//   - [slog.LevelWarn]: non-fatal issues (listener panics, rejected scene
//     imports, per-entity render failures)
//
// Example:
//
//	// Enable info-level logging to stderr:
//	board.SetLogger(slog.Default())
//
//	// Enable debug-level logging for full diagnostics:
//	board.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	// The canvas package sits below board in the import graph, so the
	// logger is pushed down rather than pulled up.
	canvas.SetLogger(l)
}

// Logger returns the current logger used by board.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
