package mcuschema

import (
	"fmt"

	"github.com/reoring/mcuschema/source/gojson"
)

// Optional holds a single-valued record field that may be absent from the
// source document.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns a present Optional.
func Some[T any](v T) Optional[T] { return Optional[T]{value: v, set: true} }

// None returns an absent Optional.
func None[T any]() Optional[T] { return Optional[T]{} }

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) { return o.value, o.set }

// IsSet reports whether the field was present.
func (o Optional[T]) IsSet() bool { return o.set }

// OrZero returns the value, or T's zero value when absent.
func (o Optional[T]) OrZero() T { return o.value }

// Or returns the value, or def when absent.
func (o Optional[T]) Or(def T) T {
	if !o.set {
		return def
	}
	return o.value
}

// IsZero lets YAML omitempty drop absent fields.
func (o Optional[T]) IsZero() bool { return !o.set }

func (o Optional[T]) String() string {
	if !o.set {
		return "<none>"
	}
	return fmt.Sprint(o.value)
}

// MarshalJSON encodes an absent value as null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return gojson.Marshal(o.value)
}

// MarshalYAML encodes an absent value as null.
func (o Optional[T]) MarshalYAML() (any, error) {
	if !o.set {
		return nil, nil
	}
	return o.value, nil
}
