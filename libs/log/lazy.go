package log

import (
	"fmt"
)

type LazySprintf struct {
	format string
	args   []any
}

// NewLazySprintf defers fmt.Sprintf until the Stringer interface is invoked.
// This is particularly useful for avoiding calling Sprintf when debugging is not
// active.
func NewLazySprintf(format string, args ...any) *LazySprintf {
	return &LazySprintf{format, args}
}

func (l *LazySprintf) String() string {
	return fmt.Sprintf(l.format, l.args...)
}

// LazyBlock is a wrapper around a raw JSON payload that defers rendering it
// until the Stringer interface is invoked. Payloads longer than limit bytes
// are cut and suffixed with the number of elided bytes.
type LazyBlock struct {
	raw   []byte
	limit int
}

// NewLazyBlock defers rendering raw until it is actually logged.
func NewLazyBlock(raw []byte, limit int) *LazyBlock {
	return &LazyBlock{raw: raw, limit: limit}
}

func (l *LazyBlock) String() string {
	if l.limit <= 0 || len(l.raw) <= l.limit {
		return string(l.raw)
	}
	return fmt.Sprintf("%s...(%d more bytes)", l.raw[:l.limit], len(l.raw)-l.limit)
}
