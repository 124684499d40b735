package log

import (
	"io"

	kitlog "github.com/go-kit/log"
	kitlevel "github.com/go-kit/log/level"
)

const msgKey = "_msg" // "_" prefixed to avoid collisions

type tmLogger struct {
	srcLogger kitlog.Logger
}

// Interface assertions.
var _ Logger = (*tmLogger)(nil)

// NewLogger returns a logger that encodes msg and keyvals to the Writer as
// logfmt, prefixed by a UTC timestamp. Note that the underlying logger could
// be swapped with something else.
func NewLogger(w io.Writer) Logger {
	l := kitlog.NewLogfmtLogger(NewSyncWriter(w))
	return &tmLogger{kitlog.With(l, "ts", kitlog.DefaultTimestampUTC)}
}

// NewLoggerNoTS is the same as NewLogger, but without the timestamp.
// Used for testing purposes.
func NewLoggerNoTS(w io.Writer) Logger {
	return &tmLogger{kitlog.NewLogfmtLogger(NewSyncWriter(w))}
}

// NewJSONLogger returns a Logger that encodes keyvals to the Writer as a
// single JSON object. Each log event produces no more than one call to
// w.Write.
func NewJSONLogger(w io.Writer) Logger {
	l := kitlog.NewJSONLogger(NewSyncWriter(w))
	return &tmLogger{kitlog.With(l, "ts", kitlog.DefaultTimestampUTC)}
}

// NewJSONLoggerNoTS is the same as NewJSONLogger, but without the timestamp.
// Used for testing purposes.
func NewJSONLoggerNoTS(w io.Writer) Logger {
	return &tmLogger{kitlog.NewJSONLogger(NewSyncWriter(w))}
}

// Debug logs a message at level Debug.
func (l *tmLogger) Debug(msg string, keyvals ...any) {
	l.log(kitlevel.Debug(l.srcLogger), msg, keyvals...)
}

// Info logs a message at level Info.
func (l *tmLogger) Info(msg string, keyvals ...any) {
	l.log(kitlevel.Info(l.srcLogger), msg, keyvals...)
}

// Warn logs a message at level Warn.
func (l *tmLogger) Warn(msg string, keyvals ...any) {
	l.log(kitlevel.Warn(l.srcLogger), msg, keyvals...)
}

// Error logs a message at level Error.
func (l *tmLogger) Error(msg string, keyvals ...any) {
	l.log(kitlevel.Error(l.srcLogger), msg, keyvals...)
}

// With returns a new contextual logger with keyvals prepended to those passed
// to calls to Debug, Info, Warn or Error.
func (l *tmLogger) With(keyvals ...any) Logger {
	return &tmLogger{kitlog.With(l.srcLogger, keyvals...)}
}

func (l *tmLogger) log(lWithLevel kitlog.Logger, msg string, keyvals ...any) {
	if err := kitlog.With(lWithLevel, msgKey, msg).Log(keyvals...); err != nil {
		errLogger := kitlevel.Error(l.srcLogger)
		kitlog.With(errLogger, msgKey, "Orig err").Log("err", err) //nolint:errcheck // no need to check error again
	}
}
