package log_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/go-logfmt/logfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verus-go/verusrpc/libs/log"
)

// decodeRecord parses a single logfmt line into a key/value map.
func decodeRecord(t *testing.T, line string) map[string]string {
	t.Helper()
	dec := logfmt.NewDecoder(strings.NewReader(line))
	require.True(t, dec.ScanRecord(), "expected one logfmt record")
	record := make(map[string]string)
	for dec.ScanKeyval() {
		record[string(dec.Key())] = string(dec.Value())
	}
	require.NoError(t, dec.Err())
	return record
}

func TestLoggerLogsItsMessage(t *testing.T) {
	var buf bytes.Buffer

	logger := log.NewLogger(&buf)
	logger.Info("foo", "baz baz", "bar")
	msg := strings.TrimSpace(buf.String())
	if !strings.Contains(msg, "foo") {
		t.Errorf("expected logger msg to contain foo, got %s", msg)
	}
}

func TestLogfmtLevels(t *testing.T) {
	testCases := []struct {
		level string
		emit  func(log.Logger)
	}{
		{"debug", func(l log.Logger) { l.Debug("calling daemon", "method", "getinfo", "id", 1) }},
		{"info", func(l log.Logger) { l.Info("calling daemon", "method", "getinfo", "id", 1) }},
		{"warn", func(l log.Logger) { l.Warn("calling daemon", "method", "getinfo", "id", 1) }},
		{"error", func(l log.Logger) { l.Error("calling daemon", "method", "getinfo", "id", 1) }},
	}

	for _, tc := range testCases {
		t.Run(tc.level, func(t *testing.T) {
			var buf bytes.Buffer
			tc.emit(log.NewLoggerNoTS(&buf))

			record := decodeRecord(t, buf.String())
			assert.Equal(t, tc.level, record["level"])
			assert.Equal(t, "calling daemon", record["_msg"])
			assert.Equal(t, "getinfo", record["method"])
			assert.Equal(t, "1", record["id"])
			assert.NotContains(t, record, "ts")
		})
	}
}

func TestLoggerWithTimestamp(t *testing.T) {
	var buf bytes.Buffer

	log.NewLogger(&buf).With("module", "rpc-client").Info("connected")

	record := decodeRecord(t, buf.String())
	assert.NotEmpty(t, record["ts"])
	assert.Equal(t, "rpc-client", record["module"])
	assert.Equal(t, "info", record["level"])
}

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer

	log.NewJSONLoggerNoTS(&buf).With("network", "testnet").Error("call failed", "code", -32601)

	assert.Equal(t,
		`{"_msg":"call failed","code":-32601,"level":"error","network":"testnet"}`,
		strings.TrimSpace(buf.String()))
}

func TestNopLogger(t *testing.T) {
	logger := log.NewNopLogger()
	logger.Info("nothing")
	assert.Same(t, logger, logger.With("a", "b"))
}

func TestLazy(t *testing.T) {
	assert.Equal(t, "height 42", log.NewLazySprintf("height %d", 42).String())
	assert.Equal(t, `{"a":1}`, log.NewLazyBlock([]byte(`{"a":1}`), 0).String())
	assert.Equal(t, `{"a"...(3 more bytes)`, log.NewLazyBlock([]byte(`{"a":1}`), 4).String())
}

func BenchmarkLoggerSimple(b *testing.B) {
	benchmarkRunner(b, log.NewLogger(io.Discard), baseInfoMessage)
}

func BenchmarkLoggerContextual(b *testing.B) {
	benchmarkRunner(b, log.NewLogger(io.Discard), withInfoMessage)
}

func benchmarkRunner(b *testing.B, logger log.Logger, f func(log.Logger)) {
	b.Helper()
	lc := logger.With("common_key", "common_value")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f(lc)
	}
}

var (
	baseInfoMessage = func(logger log.Logger) { logger.Info("foo_message", "foo_key", "foo_value") }
	withInfoMessage = func(logger log.Logger) { logger.With("a", "b").Info("c", "d", "f") }
)
