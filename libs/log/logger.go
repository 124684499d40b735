package log

import (
	"io"

	kitlog "github.com/go-kit/log"
)

// Logger is what any verusrpc component should take.
type Logger interface {
	// Debug logs a message at level DEBUG.
	Debug(msg string, keyvals ...any)
	// Info logs a message at level INFO.
	Info(msg string, keyvals ...any)
	// Warn logs a message at level WARN.
	Warn(msg string, keyvals ...any)
	// Error logs a message at level ERROR.
	Error(msg string, keyvals ...any)

	// With returns a new contextual logger with keyvals prepended to those
	// passed to calls to Debug, Info, Warn or Error.
	With(keyvals ...any) Logger
}

// NewSyncWriter returns a new writer that is safe for concurrent use by
// multiple goroutines. Writes to the returned writer are passed on to w. If
// another write is already in progress, the calling goroutine blocks until
// the writer is available.
//
// If w implements the following interface, so does the returned writer.
//
//	interface {
//	    Fd() uintptr
//	}
func NewSyncWriter(w io.Writer) io.Writer {
	return kitlog.NewSyncWriter(w)
}
