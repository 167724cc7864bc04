// Package dt holds small generic data types used by the rest of the
// module.
package dt

import (
	"encoding/json"
	"fmt"
)

// Optional is a value that may or may not be present. The zero value
// is an empty optional. Eager operations that select a single element
// (first, last, first matching) return Optional values so that an
// empty input is distinguishable from a zero-valued element.
type Optional[T any] struct {
	v       T
	defined bool
}

// Some returns an Optional that holds the value.
func Some[T any](in T) Optional[T] { return Optional[T]{v: in, defined: true} }

// None returns an empty Optional.
func None[T any]() Optional[T] { return Optional[T]{} }

func (o Optional[T]) Get() (T, bool) { return o.v, o.defined }
func (o Optional[T]) OK() bool       { return o.defined }

// Resolve returns the value, or the zero value of T if the optional
// is empty.
func (o Optional[T]) Resolve() T { return o.v }

// Default returns the value, or the provided fallback if the optional
// is empty.
func (o Optional[T]) Default(in T) T {
	if !o.defined {
		return in
	}
	return o.v
}

// Set stores a value in the optional.
func (o *Optional[T]) Set(in T) { o.v = in; o.defined = true }

// Reset empties the optional.
func (o *Optional[T]) Reset() { *o = Optional[T]{} }

// Swap stores the new value and returns the previous value, which is
// the zero value when the optional was empty.
func (o *Optional[T]) Swap(next T) (prev T) { prev = o.v; o.Set(next); return }

func (o Optional[T]) String() string {
	if !o.defined {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.v)
}

// MarshalJSON encodes an empty optional as null and a present one as
// its value.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.defined {
		return []byte("null"), nil
	}
	return json.Marshal(o.v)
}

// UnmarshalJSON decodes null as an empty optional.
func (o *Optional[T]) UnmarshalJSON(in []byte) error {
	if string(in) == "null" {
		o.Reset()
		return nil
	}

	var val T
	if err := json.Unmarshal(in, &val); err != nil {
		return err
	}
	o.Set(val)
	return nil
}
