package funk

import "github.com/tychoish/funk/internal"

// Slice is a slice type that implements Iterable. Its iterators are
// read-only; use coll.List for a slice-backed collection whose
// iterators support removal.
type Slice[T any] []T

// Items constructs a Slice from its arguments. With no arguments it
// returns an empty, non-nil Slice.
func Items[T any](items ...T) Slice[T] { return append(Slice[T]{}, items...) }

// Iterator returns a new iterator over the elements of the slice.
func (s Slice[T]) Iterator() Iterator[T] { return SliceIterator(s) }

// SliceIterator returns an iterator over the elements of the slice
// that does not support removal.
func SliceIterator[T any](in []T) Iterator[T] {
	return &sliceIter[T]{cursor: internal.NewSliceCursor(&in)}
}

type sliceIter[T any] struct {
	cursor *internal.SliceCursor[T]
}

func (it *sliceIter[T]) HasNext() bool { return it.cursor.HasNext() }
func (it *sliceIter[T]) Remove() error { return ErrUnsupportedOperation }
func (it *sliceIter[T]) Next() (T, error) {
	item, ok := it.cursor.Next()
	if !ok {
		return item, ErrNoSuchElement
	}
	return item, nil
}

// Empty returns an iterator with no elements.
func Empty[T any]() Iterator[T] { return SliceIterator[T](nil) }

// Generator returns an iterator over the values produced by calling
// fn until it returns false. Generators may be infinite. Once fn has
// reported the end of the sequence it is never called again.
func Generator[T any](fn func() (T, bool)) *Lookahead[T] {
	Invariant.NotNil(fn, "generator function")

	done := false
	return NewLookahead(func() (T, error) {
		if !done {
			if item, ok := fn(); ok {
				return item, nil
			}
			done = true
		}

		var zero T
		return zero, ErrNoSuchElement
	}, nil)
}
