package tuple

import "github.com/vmihailenco/msgpack"

// Single is a tuple of one value.
type Single[A any] struct {
	One A
}

// MakeSingle constructs a Single.
func MakeSingle[A any](one A) Single[A] {
	return Single[A]{One: one}
}

func (t Single[A]) Len() int { return 1 }
func (t Single[A]) Values() []any { return []any{t.One} }
func (t *Single[A]) fields() []any { return []any{&t.One} }
func (t Single[A]) String() string { return format(t.Values()) }
func (t Single[A]) Equal(o Single[A]) bool { return equal(t.Values(), o.Values()) }

func (t Single[A]) MarshalJSON() ([]byte, error) { return marshalJSON(t.Values()) }
func (t *Single[A]) UnmarshalJSON(in []byte) error { return unmarshalJSON(in, t.fields()) }
func (t Single[A]) EncodeMsgpack(enc *msgpack.Encoder) error { return encodeMsgpack(enc, t.Values()) }
func (t *Single[A]) DecodeMsgpack(dec *msgpack.Decoder) error { return decodeMsgpack(dec, t.fields()) }

// Pair is a tuple of two values.
type Pair[A, B any] struct {
	One A
	Two B
}

// MakePair constructs a Pair.
func MakePair[A, B any](one A, two B) Pair[A, B] {
	return Pair[A, B]{One: one, Two: two}
}

func (t Pair[A, B]) Len() int { return 2 }
func (t Pair[A, B]) Values() []any { return []any{t.One, t.Two} }
func (t *Pair[A, B]) fields() []any { return []any{&t.One, &t.Two} }
func (t Pair[A, B]) String() string { return format(t.Values()) }
func (t Pair[A, B]) Equal(o Pair[A, B]) bool { return equal(t.Values(), o.Values()) }

func (t Pair[A, B]) MarshalJSON() ([]byte, error) { return marshalJSON(t.Values()) }
func (t *Pair[A, B]) UnmarshalJSON(in []byte) error { return unmarshalJSON(in, t.fields()) }
func (t Pair[A, B]) EncodeMsgpack(enc *msgpack.Encoder) error { return encodeMsgpack(enc, t.Values()) }
func (t *Pair[A, B]) DecodeMsgpack(dec *msgpack.Decoder) error { return decodeMsgpack(dec, t.fields()) }

// Triple is a tuple of three values.
type Triple[A, B, C any] struct {
	One   A
	Two   B
	Three C
}

// MakeTriple constructs a Triple.
func MakeTriple[A, B, C any](one A, two B, three C) Triple[A, B, C] {
	return Triple[A, B, C]{One: one, Two: two, Three: three}
}

func (t Triple[A, B, C]) Len() int { return 3 }
func (t Triple[A, B, C]) Values() []any { return []any{t.One, t.Two, t.Three} }
func (t *Triple[A, B, C]) fields() []any { return []any{&t.One, &t.Two, &t.Three} }
func (t Triple[A, B, C]) String() string { return format(t.Values()) }
func (t Triple[A, B, C]) Equal(o Triple[A, B, C]) bool { return equal(t.Values(), o.Values()) }

func (t Triple[A, B, C]) MarshalJSON() ([]byte, error) { return marshalJSON(t.Values()) }
func (t *Triple[A, B, C]) UnmarshalJSON(in []byte) error { return unmarshalJSON(in, t.fields()) }
func (t Triple[A, B, C]) EncodeMsgpack(enc *msgpack.Encoder) error { return encodeMsgpack(enc, t.Values()) }
func (t *Triple[A, B, C]) DecodeMsgpack(dec *msgpack.Decoder) error { return decodeMsgpack(dec, t.fields()) }

// Quadruple is a tuple of four values.
type Quadruple[A, B, C, D any] struct {
	One   A
	Two   B
	Three C
	Four  D
}

// MakeQuadruple constructs a Quadruple.
func MakeQuadruple[A, B, C, D any](one A, two B, three C, four D) Quadruple[A, B, C, D] {
	return Quadruple[A, B, C, D]{One: one, Two: two, Three: three, Four: four}
}

func (t Quadruple[A, B, C, D]) Len() int { return 4 }
func (t Quadruple[A, B, C, D]) Values() []any { return []any{t.One, t.Two, t.Three, t.Four} }
func (t *Quadruple[A, B, C, D]) fields() []any { return []any{&t.One, &t.Two, &t.Three, &t.Four} }
func (t Quadruple[A, B, C, D]) String() string { return format(t.Values()) }
func (t Quadruple[A, B, C, D]) Equal(o Quadruple[A, B, C, D]) bool { return equal(t.Values(), o.Values()) }

func (t Quadruple[A, B, C, D]) MarshalJSON() ([]byte, error) { return marshalJSON(t.Values()) }
func (t *Quadruple[A, B, C, D]) UnmarshalJSON(in []byte) error { return unmarshalJSON(in, t.fields()) }
func (t Quadruple[A, B, C, D]) EncodeMsgpack(enc *msgpack.Encoder) error { return encodeMsgpack(enc, t.Values()) }
func (t *Quadruple[A, B, C, D]) DecodeMsgpack(dec *msgpack.Decoder) error { return decodeMsgpack(dec, t.fields()) }

// Quintuple is a tuple of five values.
type Quintuple[A, B, C, D, E any] struct {
	One   A
	Two   B
	Three C
	Four  D
	Five  E
}

// MakeQuintuple constructs a Quintuple.
func MakeQuintuple[A, B, C, D, E any](one A, two B, three C, four D, five E) Quintuple[A, B, C, D, E] {
	return Quintuple[A, B, C, D, E]{One: one, Two: two, Three: three, Four: four, Five: five}
}

func (t Quintuple[A, B, C, D, E]) Len() int { return 5 }
func (t Quintuple[A, B, C, D, E]) Values() []any { return []any{t.One, t.Two, t.Three, t.Four, t.Five} }
func (t *Quintuple[A, B, C, D, E]) fields() []any { return []any{&t.One, &t.Two, &t.Three, &t.Four, &t.Five} }
func (t Quintuple[A, B, C, D, E]) String() string { return format(t.Values()) }
func (t Quintuple[A, B, C, D, E]) Equal(o Quintuple[A, B, C, D, E]) bool { return equal(t.Values(), o.Values()) }

func (t Quintuple[A, B, C, D, E]) MarshalJSON() ([]byte, error) { return marshalJSON(t.Values()) }
func (t *Quintuple[A, B, C, D, E]) UnmarshalJSON(in []byte) error { return unmarshalJSON(in, t.fields()) }
func (t Quintuple[A, B, C, D, E]) EncodeMsgpack(enc *msgpack.Encoder) error { return encodeMsgpack(enc, t.Values()) }
func (t *Quintuple[A, B, C, D, E]) DecodeMsgpack(dec *msgpack.Decoder) error { return decodeMsgpack(dec, t.fields()) }

// Sextuple is a tuple of six values.
type Sextuple[A, B, C, D, E, F any] struct {
	One   A
	Two   B
	Three C
	Four  D
	Five  E
	Six   F
}

// MakeSextuple constructs a Sextuple.
func MakeSextuple[A, B, C, D, E, F any](one A, two B, three C, four D, five E, six F) Sextuple[A, B, C, D, E, F] {
	return Sextuple[A, B, C, D, E, F]{One: one, Two: two, Three: three, Four: four, Five: five, Six: six}
}

func (t Sextuple[A, B, C, D, E, F]) Len() int { return 6 }
func (t Sextuple[A, B, C, D, E, F]) Values() []any { return []any{t.One, t.Two, t.Three, t.Four, t.Five, t.Six} }
func (t *Sextuple[A, B, C, D, E, F]) fields() []any { return []any{&t.One, &t.Two, &t.Three, &t.Four, &t.Five, &t.Six} }
func (t Sextuple[A, B, C, D, E, F]) String() string { return format(t.Values()) }
func (t Sextuple[A, B, C, D, E, F]) Equal(o Sextuple[A, B, C, D, E, F]) bool { return equal(t.Values(), o.Values()) }

func (t Sextuple[A, B, C, D, E, F]) MarshalJSON() ([]byte, error) { return marshalJSON(t.Values()) }
func (t *Sextuple[A, B, C, D, E, F]) UnmarshalJSON(in []byte) error { return unmarshalJSON(in, t.fields()) }
func (t Sextuple[A, B, C, D, E, F]) EncodeMsgpack(enc *msgpack.Encoder) error { return encodeMsgpack(enc, t.Values()) }
func (t *Sextuple[A, B, C, D, E, F]) DecodeMsgpack(dec *msgpack.Decoder) error { return decodeMsgpack(dec, t.fields()) }

// Septuple is a tuple of seven values.
type Septuple[A, B, C, D, E, F, G any] struct {
	One   A
	Two   B
	Three C
	Four  D
	Five  E
	Six   F
	Seven G
}

// MakeSeptuple constructs a Septuple.
func MakeSeptuple[A, B, C, D, E, F, G any](one A, two B, three C, four D, five E, six F, seven G) Septuple[A, B, C, D, E, F, G] {
	return Septuple[A, B, C, D, E, F, G]{One: one, Two: two, Three: three, Four: four, Five: five, Six: six, Seven: seven}
}

func (t Septuple[A, B, C, D, E, F, G]) Len() int { return 7 }
func (t Septuple[A, B, C, D, E, F, G]) Values() []any { return []any{t.One, t.Two, t.Three, t.Four, t.Five, t.Six, t.Seven} }
func (t *Septuple[A, B, C, D, E, F, G]) fields() []any { return []any{&t.One, &t.Two, &t.Three, &t.Four, &t.Five, &t.Six, &t.Seven} }
func (t Septuple[A, B, C, D, E, F, G]) String() string { return format(t.Values()) }
func (t Septuple[A, B, C, D, E, F, G]) Equal(o Septuple[A, B, C, D, E, F, G]) bool { return equal(t.Values(), o.Values()) }

func (t Septuple[A, B, C, D, E, F, G]) MarshalJSON() ([]byte, error) { return marshalJSON(t.Values()) }
func (t *Septuple[A, B, C, D, E, F, G]) UnmarshalJSON(in []byte) error { return unmarshalJSON(in, t.fields()) }
func (t Septuple[A, B, C, D, E, F, G]) EncodeMsgpack(enc *msgpack.Encoder) error { return encodeMsgpack(enc, t.Values()) }
func (t *Septuple[A, B, C, D, E, F, G]) DecodeMsgpack(dec *msgpack.Decoder) error { return decodeMsgpack(dec, t.fields()) }

// Octuple is a tuple of eight values.
type Octuple[A, B, C, D, E, F, G, H any] struct {
	One   A
	Two   B
	Three C
	Four  D
	Five  E
	Six   F
	Seven G
	Eight H
}

// MakeOctuple constructs a Octuple.
func MakeOctuple[A, B, C, D, E, F, G, H any](one A, two B, three C, four D, five E, six F, seven G, eight H) Octuple[A, B, C, D, E, F, G, H] {
	return Octuple[A, B, C, D, E, F, G, H]{One: one, Two: two, Three: three, Four: four, Five: five, Six: six, Seven: seven, Eight: eight}
}

func (t Octuple[A, B, C, D, E, F, G, H]) Len() int { return 8 }
func (t Octuple[A, B, C, D, E, F, G, H]) Values() []any { return []any{t.One, t.Two, t.Three, t.Four, t.Five, t.Six, t.Seven, t.Eight} }
func (t *Octuple[A, B, C, D, E, F, G, H]) fields() []any { return []any{&t.One, &t.Two, &t.Three, &t.Four, &t.Five, &t.Six, &t.Seven, &t.Eight} }
func (t Octuple[A, B, C, D, E, F, G, H]) String() string { return format(t.Values()) }
func (t Octuple[A, B, C, D, E, F, G, H]) Equal(o Octuple[A, B, C, D, E, F, G, H]) bool { return equal(t.Values(), o.Values()) }

func (t Octuple[A, B, C, D, E, F, G, H]) MarshalJSON() ([]byte, error) { return marshalJSON(t.Values()) }
func (t *Octuple[A, B, C, D, E, F, G, H]) UnmarshalJSON(in []byte) error { return unmarshalJSON(in, t.fields()) }
func (t Octuple[A, B, C, D, E, F, G, H]) EncodeMsgpack(enc *msgpack.Encoder) error { return encodeMsgpack(enc, t.Values()) }
func (t *Octuple[A, B, C, D, E, F, G, H]) DecodeMsgpack(dec *msgpack.Decoder) error { return decodeMsgpack(dec, t.fields()) }

// Nonuple is a tuple of nine values.
type Nonuple[A, B, C, D, E, F, G, H, I any] struct {
	One   A
	Two   B
	Three C
	Four  D
	Five  E
	Six   F
	Seven G
	Eight H
	Nine  I
}

// MakeNonuple constructs a Nonuple.
func MakeNonuple[A, B, C, D, E, F, G, H, I any](one A, two B, three C, four D, five E, six F, seven G, eight H, nine I) Nonuple[A, B, C, D, E, F, G, H, I] {
	return Nonuple[A, B, C, D, E, F, G, H, I]{One: one, Two: two, Three: three, Four: four, Five: five, Six: six, Seven: seven, Eight: eight, Nine: nine}
}

func (t Nonuple[A, B, C, D, E, F, G, H, I]) Len() int { return 9 }
func (t Nonuple[A, B, C, D, E, F, G, H, I]) Values() []any { return []any{t.One, t.Two, t.Three, t.Four, t.Five, t.Six, t.Seven, t.Eight, t.Nine} }
func (t *Nonuple[A, B, C, D, E, F, G, H, I]) fields() []any { return []any{&t.One, &t.Two, &t.Three, &t.Four, &t.Five, &t.Six, &t.Seven, &t.Eight, &t.Nine} }
func (t Nonuple[A, B, C, D, E, F, G, H, I]) String() string { return format(t.Values()) }
func (t Nonuple[A, B, C, D, E, F, G, H, I]) Equal(o Nonuple[A, B, C, D, E, F, G, H, I]) bool { return equal(t.Values(), o.Values()) }

func (t Nonuple[A, B, C, D, E, F, G, H, I]) MarshalJSON() ([]byte, error) { return marshalJSON(t.Values()) }
func (t *Nonuple[A, B, C, D, E, F, G, H, I]) UnmarshalJSON(in []byte) error { return unmarshalJSON(in, t.fields()) }
func (t Nonuple[A, B, C, D, E, F, G, H, I]) EncodeMsgpack(enc *msgpack.Encoder) error { return encodeMsgpack(enc, t.Values()) }
func (t *Nonuple[A, B, C, D, E, F, G, H, I]) DecodeMsgpack(dec *msgpack.Decoder) error { return decodeMsgpack(dec, t.fields()) }
