package service

import (
	"bytes"
	"encoding/json"
)

// Optional is a PATCH field. Set is true when the key was present in the
// request body; Value is nil when it was present as null.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some returns a set Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null returns a set Optional holding null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// OrZero returns the value, or T's zero value for null or unset.
func (o Optional[T]) OrZero() T {
	var zero T
	if o.Value == nil {
		return zero
	}
	return *o.Value
}
