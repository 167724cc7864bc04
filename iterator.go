// Package funk is a small functional-collections toolkit built on
// generics: lazy iterator adapters (filter, map, batch, take, drop),
// the pull-based iteration protocol they share, and a handful of raw
// sequence sources.
//
// The lazy and eager packages provide whole-sequence operations built
// on these adapters, coll provides containers whose iterators support
// removal, and tuple provides fixed-arity records.
package funk

// Iterator is the pull-based sequence protocol. HasNext reports
// whether a call to Next would produce an element, and must be
// idempotent: calling it any number of times between two calls to
// Next neither consumes nor skips elements. Next returns the next
// element, or an error rooted in ErrNoSuchElement once the sequence is
// exhausted.
//
// Iterators are single pass and are not safe for concurrent use.
type Iterator[T any] interface {
	HasNext() bool
	Next() (T, error)
}

// Remover is the optional capability of an iterator to delete the
// element most recently returned by Next from its underlying
// collection. Remove returns ErrIllegalState when there is no such
// element (Next has not been called, or Remove was already called
// for it), and ErrUnsupportedOperation when the iterator cannot
// remove elements at all.
type Remover interface {
	Remove() error
}

// Iterable is implemented by collections that can produce a fresh
// Iterator over their contents.
type Iterable[T any] interface {
	Iterator() Iterator[T]
}

// IterableFunc adapts a constructor function into an Iterable.
type IterableFunc[T any] func() Iterator[T]

// Iterator calls the underlying function.
func (fn IterableFunc[T]) Iterator() Iterator[T] { return fn() }

// Remove calls Remove on the iterator if it implements Remover, and
// returns ErrUnsupportedOperation otherwise.
func Remove[T any](iter Iterator[T]) error {
	if rm, ok := iter.(Remover); ok {
		return rm.Remove()
	}

	return ErrUnsupportedOperation
}

// Collect drains the iterator into a slice. If Next returns an error
// other than exhaustion, Collect returns the elements gathered so far
// and that error.
func Collect[T any](iter Iterator[T]) ([]T, error) {
	out := []T{}
	for iter.HasNext() {
		item, err := iter.Next()
		if err != nil {
			if IsExhausted(err) {
				break
			}
			return out, err
		}
		out = append(out, item)
	}
	return out, nil
}

// ForEach calls the function for every remaining element of the
// iterator, stopping at the first error returned by either the
// iterator or the function.
func ForEach[T any](iter Iterator[T], fn func(T) error) error {
	for iter.HasNext() {
		item, err := iter.Next()
		if err != nil {
			if IsExhausted(err) {
				return nil
			}
			return err
		}

		if err := fn(item); err != nil {
			return err
		}
	}
	return nil
}

// Count drains the iterator and reports the number of elements it
// produced.
func Count[T any](iter Iterator[T]) (int, error) {
	count := 0
	err := ForEach(iter, func(T) error { count++; return nil })
	return count, err
}
