// Package lazy provides deferred operations over iterables. Each
// function validates its arguments immediately and returns an
// Iterable; nothing is read from the input until a caller pulls from
// an iterator of the result. Each call to Iterator on a result builds
// a fresh adapter chain over a fresh iterator of the input.
package lazy

import "github.com/tychoish/funk"

func Map[S any, T any](in funk.Iterable[S], fn func(S) T) funk.Iterable[T] {
	checkInput(in)
	funk.Invariant.NotNil(fn, "map function")
	return funk.IterableFunc[T](func() funk.Iterator[T] { return funk.Map(in.Iterator(), fn) })
}

// Transform is a version of Map where the function may fail. Errors
// are returned by the Next call that would have produced the
// element, and iteration may continue past them.
func Transform[S any, T any](in funk.Iterable[S], fn func(S) (T, error)) funk.Iterable[T] {
	checkInput(in)
	funk.Invariant.NotNil(fn, "transform function")
	return funk.IterableFunc[T](func() funk.Iterator[T] { return funk.Transform(in.Iterator(), fn) })
}

func Filter[T any](in funk.Iterable[T], predicate func(T) bool) funk.Iterable[T] {
	checkInput(in)
	funk.Invariant.NotNil(predicate, "filter predicate")
	return funk.IterableFunc[T](func() funk.Iterator[T] { return funk.Filter(in.Iterator(), predicate) })
}

func Reject[T any](in funk.Iterable[T], predicate func(T) bool) funk.Iterable[T] {
	checkInput(in)
	funk.Invariant.NotNil(predicate, "reject predicate")
	return funk.IterableFunc[T](func() funk.Iterator[T] { return funk.Reject(in.Iterator(), predicate) })
}

// Batch groups the input into consecutive batches of, at most, size
// elements. See funk.Batch for the traversal rules of the batches.
func Batch[T any](in funk.Iterable[T], size int) funk.Iterable[funk.Iterator[T]] {
	checkInput(in)
	funk.Invariant.Argument(size > 0, "batch size must be positive", size)

	return funk.IterableFunc[funk.Iterator[T]](func() funk.Iterator[funk.Iterator[T]] {
		return funk.Map[*funk.BatchView[T], funk.Iterator[T]](
			funk.Batch(in.Iterator(), size),
			func(view *funk.BatchView[T]) funk.Iterator[T] { return view },
		)
	})
}

// Take produces, at most, the first n elements of the input.
func Take[T any](in funk.Iterable[T], n int) funk.Iterable[T] {
	checkInput(in)
	funk.Invariant.Argument(n >= 0, "take count must not be negative", n)
	return funk.IterableFunc[T](func() funk.Iterator[T] { return funk.Take(in.Iterator(), n) })
}

// Drop produces every element of the input after the first n.
func Drop[T any](in funk.Iterable[T], n int) funk.Iterable[T] {
	checkInput(in)
	funk.Invariant.Argument(n >= 0, "drop count must not be negative", n)
	return funk.IterableFunc[T](func() funk.Iterator[T] { return funk.Drop(in.Iterator(), n) })
}

func checkInput(in any) { funk.Invariant.NotNil(in, "input iterable") }
