package models

import "encoding/json"

// Optional is a JSON field that distinguishes an absent key from an
// explicit null. Decoding a present key sets Set; a null value leaves
// Value nil. The zero Optional means the key was not sent at all.
//
// With an `omitzero` struct tag an unset Optional is dropped from the
// encoded output, so a round trip preserves the absent/null distinction.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Opt wraps a concrete value in a set Optional.
func Opt[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// OptNull returns an Optional that was explicitly set to null.
func OptNull[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// Null reports whether the field was sent as an explicit null.
func (o Optional[T]) Null() bool {
	return o.Set && o.Value == nil
}

// IsZero reports whether the field was absent. Consulted by
// encoding/json for the `omitzero` tag.
func (o Optional[T]) IsZero() bool {
	return !o.Set
}

// UnmarshalJSON implements json.Unmarshaler. It only runs when the key
// is present, which is what makes presence observable.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// MarshalJSON implements json.Marshaler.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
