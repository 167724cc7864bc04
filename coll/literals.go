package coll

import (
	"github.com/tychoish/funk"
	"github.com/tychoish/funk/tuple"
)

// MapOf builds a map from key/value pairs. When a key repeats, the
// later pair wins.
func MapOf[K comparable, V any](pairs ...tuple.Pair[K, V]) map[K]V {
	out := make(map[K]V, len(pairs))
	for _, p := range pairs {
		out[p.One] = p.Two
	}
	return out
}

// MapFrom drains an iterable of pairs into a map, with the same
// semantics as MapOf.
func MapFrom[K comparable, V any](in funk.Iterable[tuple.Pair[K, V]]) (map[K]V, error) {
	out := map[K]V{}
	err := funk.ForEach(in.Iterator(), func(p tuple.Pair[K, V]) error { out[p.One] = p.Two; return nil })
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Builder accumulates items for constructing a collection. The first
// error encountered while draining an iterable passed to And is
// retained and reported by Err; later calls to And are ignored once
// an error has occurred.
type Builder[T any] struct {
	items []T
	err   error
}

// NewBuilder returns a builder seeded with the items.
func NewBuilder[T any](items ...T) *Builder[T] { return (&Builder[T]{}).With(items...) }

// With appends items and returns the builder.
func (b *Builder[T]) With(items ...T) *Builder[T] { b.items = append(b.items, items...); return b }

// And appends every element of the iterable and returns the builder.
func (b *Builder[T]) And(in funk.Iterable[T]) *Builder[T] {
	if b.err != nil {
		return b
	}

	items, err := funk.Collect(in.Iterator())
	b.items = append(b.items, items...)
	b.err = err
	return b
}

func (b *Builder[T]) Err() error { return b.err }

// Slice returns a copy of the accumulated items.
func (b *Builder[T]) Slice() []T { return append(make([]T, 0, len(b.items)), b.items...) }

// List returns a new list of the accumulated items.
func (b *Builder[T]) List() *List[T] { return NewList(b.items...) }

// BuildSet returns a new set of the builder's accumulated items.
func BuildSet[T comparable](b *Builder[T]) *Set[T] { return NewSet(b.items...) }

// BuildBag returns a new bag of the builder's accumulated items.
func BuildBag[T comparable](b *Builder[T]) *Bag[T] { return NewBag(b.items...) }
