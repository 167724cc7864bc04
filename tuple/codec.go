// Package tuple provides immutable, fixed-arity, heterogeneous records
// of one to nine values. Tuples are plain structs: two tuples of
// comparable types can be compared with ==, and Equal compares any
// tuples field by field.
//
// Tuples encode to JSON and msgpack as fixed-length arrays.
package tuple

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/tychoish/funk/ers"
	"github.com/vmihailenco/msgpack"
)

// Swap returns a pair with the values exchanged.
func (t Pair[A, B]) Swap() Pair[B, A] { return Pair[B, A]{One: t.Two, Two: t.One} }

func format(vals []any) string {
	parts := make([]string, len(vals))
	for idx := range vals {
		parts[idx] = fmt.Sprint(vals[idx])
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func equal(lhs, rhs []any) bool {
	for idx := range lhs {
		if !reflect.DeepEqual(lhs[idx], rhs[idx]) {
			return false
		}
	}
	return true
}

func marshalJSON(vals []any) ([]byte, error) { return json.Marshal(vals) }

func unmarshalJSON(in []byte, fields []any) error {
	raw := []json.RawMessage{}
	if err := json.Unmarshal(in, &raw); err != nil {
		return err
	}

	if len(raw) != len(fields) {
		return fmt.Errorf("json array has %d items, tuple has %d: %w", len(raw), len(fields), ers.ErrInvalidInput)
	}

	for idx := range raw {
		if err := json.Unmarshal(raw[idx], fields[idx]); err != nil {
			return ers.Wrapf(err, "tuple field %d", idx)
		}
	}

	return nil
}

func encodeMsgpack(enc *msgpack.Encoder, vals []any) error {
	if err := enc.EncodeArrayLen(len(vals)); err != nil {
		return err
	}

	for idx := range vals {
		if err := enc.Encode(vals[idx]); err != nil {
			return ers.Wrapf(err, "tuple field %d", idx)
		}
	}

	return nil
}

func decodeMsgpack(dec *msgpack.Decoder, fields []any) error {
	size, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}

	if size != len(fields) {
		return fmt.Errorf("msgpack array has %d items, tuple has %d: %w", size, len(fields), ers.ErrInvalidInput)
	}

	for idx := range fields {
		if err := dec.Decode(fields[idx]); err != nil {
			return ers.Wrapf(err, "tuple field %d", idx)
		}
	}

	return nil
}
