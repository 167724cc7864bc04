// Package eager provides operations that consume a whole iterable, or
// as much of it as they need, and return materialized results.
//
// Errors returned by the input's iterator, other than exhaustion, stop
// the operation and are returned unmodified. Nil functions and
// negative counts are programmer errors, and panic with an error
// rooted in funk.ErrInvalidInput.
package eager

import (
	"github.com/tychoish/funk"
	"github.com/tychoish/funk/dt"
)

func Map[S any, T any](in funk.Iterable[S], fn func(S) T) ([]T, error) {
	funk.Invariant.NotNil(fn, "map function")
	return funk.Collect[T](funk.Map(iterator(in), fn))
}

func Filter[T any](in funk.Iterable[T], predicate func(T) bool) ([]T, error) {
	funk.Invariant.NotNil(predicate, "filter predicate")
	return funk.Collect[T](funk.Filter(iterator(in), predicate))
}

func Reject[T any](in funk.Iterable[T], predicate func(T) bool) ([]T, error) {
	funk.Invariant.NotNil(predicate, "reject predicate")
	return funk.Collect[T](funk.Reject(iterator(in), predicate))
}

// Partition splits the input into the elements that satisfy the
// predicate and those that do not, preserving order within each.
func Partition[T any](in funk.Iterable[T], predicate func(T) bool) (matching []T, rest []T, err error) {
	funk.Invariant.NotNil(predicate, "partition predicate")

	matching, rest = []T{}, []T{}
	err = Each(in, func(item T) {
		if predicate(item) {
			matching = append(matching, item)
		} else {
			rest = append(rest, item)
		}
	})
	return matching, rest, err
}

// Batch splits the input into consecutive slices of size elements;
// the final slice may be shorter.
func Batch[T any](in funk.Iterable[T], size int) ([][]T, error) {
	funk.Invariant.Argument(size > 0, "batch size must be positive", size)

	out := [][]T{}
	batches := funk.Batch(iterator(in), size)
	for batches.HasNext() {
		view, err := batches.Next()
		if err != nil {
			return out, err
		}

		batch, err := funk.Collect[T](view)
		if len(batch) > 0 {
			out = append(out, batch)
		}
		if err != nil {
			return out, err
		}
	}
	return out, nil
}

// Reduce folds the input into an accumulator, starting from the
// initial value.
func Reduce[T any, A any](in funk.Iterable[T], initial A, fn func(acc A, item T) A) (A, error) {
	funk.Invariant.NotNil(fn, "reduce function")

	acc := initial
	err := Each(in, func(item T) { acc = fn(acc, item) })
	return acc, err
}

// Fold is Reduce seeded with the first element of the input. An empty
// input produces an empty optional.
func Fold[T any](in funk.Iterable[T], fn func(acc T, item T) T) (dt.Optional[T], error) {
	funk.Invariant.NotNil(fn, "fold function")

	var acc dt.Optional[T]
	err := Each(in, func(item T) {
		if acc.OK() {
			acc.Set(fn(acc.Resolve(), item))
			return
		}
		acc.Set(item)
	})
	if err != nil {
		return dt.None[T](), err
	}
	return acc, nil
}

func Count[T any](in funk.Iterable[T]) (int, error) { return funk.Count(iterator(in)) }

// Each calls the function on every element of the input, in order.
func Each[T any](in funk.Iterable[T], fn func(T)) error {
	funk.Invariant.NotNil(fn, "each function")
	return funk.ForEach(iterator(in), func(item T) error { fn(item); return nil })
}

func iterator[T any](in funk.Iterable[T]) funk.Iterator[T] {
	funk.Invariant.NotNil(in, "input iterable")
	return in.Iterator()
}
