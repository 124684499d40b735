package coretypes

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// Kind is the JSON type of a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a daemon result whose shape is only known at run time. It keeps
// the raw JSON and decodes on access, so numbers are never rounded through
// float64 unless Float64 is asked for.
//
// The zero Value is null.
type Value struct {
	raw  json.RawMessage
	kind Kind
}

var null = []byte("null")

// NewValue wraps raw, which must hold exactly one JSON value.
func NewValue(raw json.RawMessage) (Value, error) {
	trimmed := bytes.TrimSpace(raw)
	if !json.Valid(trimmed) {
		return Value{}, ErrInvalidValue{Source: fmt.Errorf("%q", truncate(trimmed, 64))}
	}
	return Value{raw: append(json.RawMessage(nil), trimmed...), kind: kindOf(trimmed)}, nil
}

// MustValue is like NewValue but panics on invalid input. For tests and
// literals.
func MustValue(raw string) Value {
	v, err := NewValue(json.RawMessage(raw))
	if err != nil {
		panic(err)
	}
	return v
}

func kindOf(raw []byte) Kind {
	switch raw[0] {
	case 'n':
		return KindNull
	case 't', 'f':
		return KindBool
	case '"':
		return KindString
	case '[':
		return KindArray
	case '{':
		return KindObject
	default:
		return KindNumber
	}
}

func truncate(b []byte, n int) []byte {
	if len(b) > n {
		return b[:n]
	}
	return b
}

// Kind returns the JSON type of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is JSON null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Raw returns the JSON encoding of v.
func (v Value) Raw() json.RawMessage {
	if len(v.raw) == 0 {
		return json.RawMessage(null)
	}
	return v.raw
}

func (v Value) mismatch(want Kind) error {
	return ErrTypeMismatch{Want: want, Got: v.kind}
}

// Bool returns the value of a JSON boolean.
func (v Value) Bool() (bool, error) {
	if v.kind != KindBool {
		return false, v.mismatch(KindBool)
	}
	return v.raw[0] == 't', nil
}

// String returns the JSON encoding of v.
func (v Value) String() string { return string(v.Raw()) }

// Str returns the value of a JSON string.
func (v Value) Str() (string, error) {
	if v.kind != KindString {
		return "", v.mismatch(KindString)
	}
	var s string
	if err := json.Unmarshal(v.raw, &s); err != nil {
		return "", err
	}
	return s, nil
}

// Number returns a JSON number verbatim.
func (v Value) Number() (json.Number, error) {
	if v.kind != KindNumber {
		return "", v.mismatch(KindNumber)
	}
	return json.Number(v.raw), nil
}

// Int64 returns a JSON number that is an integer.
func (v Value) Int64() (int64, error) {
	n, err := v.Number()
	if err != nil {
		return 0, err
	}
	return n.Int64()
}

// Float64 returns a JSON number as a float64.
func (v Value) Float64() (float64, error) {
	n, err := v.Number()
	if err != nil {
		return 0, err
	}
	return n.Float64()
}

// Array returns the elements of a JSON array.
func (v Value) Array() ([]Value, error) {
	if v.kind != KindArray {
		return nil, v.mismatch(KindArray)
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(v.raw, &elems); err != nil {
		return nil, err
	}
	out := make([]Value, len(elems))
	for i, e := range elems {
		out[i] = Value{raw: e, kind: kindOf(e)}
	}
	return out, nil
}

// Object returns the members of a JSON object.
func (v Value) Object() (map[string]Value, error) {
	if v.kind != KindObject {
		return nil, v.mismatch(KindObject)
	}
	var members map[string]json.RawMessage
	if err := json.Unmarshal(v.raw, &members); err != nil {
		return nil, err
	}
	out := make(map[string]Value, len(members))
	for k, m := range members {
		out[k] = Value{raw: m, kind: kindOf(m)}
	}
	return out, nil
}

// Keys returns the member names of a JSON object in the order the daemon
// sent them.
func (v Value) Keys() ([]string, error) {
	if v.kind != KindObject {
		return nil, v.mismatch(KindObject)
	}
	dec := json.NewDecoder(bytes.NewReader(v.raw))
	if _, err := dec.Token(); err != nil { // {
		return nil, err
	}
	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", tok)
		}
		keys = append(keys, key)
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
	}
	return keys, nil
}

// Get returns the member key of a JSON object.
func (v Value) Get(key string) (Value, error) {
	members, err := v.Object()
	if err != nil {
		return Value{}, err
	}
	m, ok := members[key]
	if !ok {
		return Value{}, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	return m, nil
}

// Index returns element i of a JSON array.
func (v Value) Index(i int) (Value, error) {
	elems, err := v.Array()
	if err != nil {
		return Value{}, err
	}
	if i < 0 || i >= len(elems) {
		return Value{}, fmt.Errorf("%w: %d (length %d)", ErrIndexOutOfRange, i, len(elems))
	}
	return elems[i], nil
}

// Decode unmarshals v into the value pointed to by into. Numbers decoded
// into interface values are json.Number.
func (v Value) Decode(into any) error {
	dec := json.NewDecoder(bytes.NewReader(v.Raw()))
	dec.UseNumber()
	return dec.Decode(into)
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return v.Raw(), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	nv, err := NewValue(data)
	if err != nil {
		return err
	}
	*v = nv
	return nil
}

// IsTypeMismatch reports whether err is an ErrTypeMismatch.
func IsTypeMismatch(err error) bool {
	var target ErrTypeMismatch
	return errors.As(err, &target)
}
