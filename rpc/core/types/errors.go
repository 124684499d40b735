package coretypes

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyNotFound is returned by Value.Get for a key the object lacks.
	ErrKeyNotFound = errors.New("key not found")
	// ErrIndexOutOfRange is returned by Value.Index past the end of an array.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// ErrTypeMismatch is returned when an accessor does not match the kind of
// the value.
type ErrTypeMismatch struct {
	Want Kind
	Got  Kind
}

func (e ErrTypeMismatch) Error() string {
	return fmt.Sprintf("type mismatch: want %s, got %s", e.Want, e.Got)
}

// ErrInvalidValue is returned when raw bytes are not a single JSON value.
type ErrInvalidValue struct {
	Source error
}

func (e ErrInvalidValue) Error() string {
	return fmt.Sprintf("invalid JSON value: %v", e.Source)
}

func (e ErrInvalidValue) Unwrap() error {
	return e.Source
}
