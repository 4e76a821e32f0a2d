// Package optional distinguishes a JSON field that was omitted from one that
// was sent, including one sent as null.
package optional

import (
	"bytes"
	"encoding/json"
)

type Value[T any] struct {
	Set  bool
	Null bool
	V    T
}

func (v *Value[T]) UnmarshalJSON(data []byte) error {
	v.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		v.Null = true
		return nil
	}
	return json.Unmarshal(data, &v.V)
}

// Present reports a non-null value.
func (v Value[T]) Present() bool {
	return v.Set && !v.Null
}

// Of builds a Value as if it had been decoded from JSON.
func Of[T any](value T) Value[T] {
	return Value[T]{Set: true, V: value}
}

// Null builds an explicitly null Value.
func Null[T any]() Value[T] {
	return Value[T]{Set: true, Null: true}
}
