package fna3d

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Native log callbacks may fire from
// any thread FNA3D uses, so access is atomic.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for fna3d and its sub-packages. By
// default nothing is logged. Pass nil to restore the silent default.
//
// Log levels used by fna3d:
//   - [slog.LevelDebug]: values crossing the native boundary (binding
//     counts, buffer ranges)
//   - [slog.LevelInfo]: device lifecycle and FNA3D info messages
//   - [slog.LevelWarn]: failed resource creation and FNA3D warnings
//   - [slog.LevelError]: FNA3D error messages
//
// Example:
//
//	fna3d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. It is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// HookLogFunctions routes FNA3D's info, warning and error output into
// Logger. The hook reads the logger on every message, so later SetLogger
// calls take effect immediately. Without the hook FNA3D prints to stdout.
func HookLogFunctions() {
	info, warn, err := nativeLogFuncs()
	lib.HookLogFunctions(info, warn, err)
}

func nativeLogFuncs() (info, warn, err func(string)) {
	emit := func(level slog.Level) func(string) {
		return func(msg string) {
			Logger().Log(context.Background(), level, msg, "source", "FNA3D")
		}
	}
	return emit(slog.LevelInfo), emit(slog.LevelWarn), emit(slog.LevelError)
}
