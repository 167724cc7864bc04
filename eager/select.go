package eager

import (
	"github.com/eapache/queue"

	"github.com/tychoish/funk"
	"github.com/tychoish/funk/dt"
)

// First returns the first element of the input, pulling nothing
// after it.
func First[T any](in funk.Iterable[T]) (dt.Optional[T], error) { return nth(iterator(in), 0) }

// Second returns the second element of the input.
func Second[T any](in funk.Iterable[T]) (dt.Optional[T], error) { return nth(iterator(in), 1) }

// Last returns the final element of the input.
func Last[T any](in funk.Iterable[T]) (dt.Optional[T], error) {
	return last(iterator(in))
}

func FirstMatching[T any](in funk.Iterable[T], predicate func(T) bool) (dt.Optional[T], error) {
	funk.Invariant.NotNil(predicate, "first predicate")
	return nth[T](funk.Filter(iterator(in), predicate), 0)
}

func LastMatching[T any](in funk.Iterable[T], predicate func(T) bool) (dt.Optional[T], error) {
	funk.Invariant.NotNil(predicate, "last predicate")
	return last[T](funk.Filter(iterator(in), predicate))
}

// FirstN returns, at most, the first n elements of the input. Fewer
// are returned when the input is shorter.
func FirstN[T any](in funk.Iterable[T], n int) ([]T, error) {
	funk.Invariant.Argument(n >= 0, "first count must not be negative", n)
	return funk.Collect[T](funk.Take(iterator(in), n))
}

func FirstNMatching[T any](in funk.Iterable[T], n int, predicate func(T) bool) ([]T, error) {
	funk.Invariant.Argument(n >= 0, "first count must not be negative", n)
	funk.Invariant.NotNil(predicate, "first predicate")
	return funk.Collect[T](funk.Take[T](funk.Filter(iterator(in), predicate), n))
}

// LastN returns, at most, the last n elements of the input, in their
// original order. The whole input is consumed, but only n elements
// are held at a time.
func LastN[T any](in funk.Iterable[T], n int) ([]T, error) {
	funk.Invariant.Argument(n >= 0, "last count must not be negative", n)
	return lastN(iterator(in), n)
}

func LastNMatching[T any](in funk.Iterable[T], n int, predicate func(T) bool) ([]T, error) {
	funk.Invariant.Argument(n >= 0, "last count must not be negative", n)
	funk.Invariant.NotNil(predicate, "last predicate")
	return lastN[T](funk.Filter(iterator(in), predicate), n)
}

// Rest returns every element after the first.
func Rest[T any](in funk.Iterable[T]) ([]T, error) {
	return funk.Collect[T](funk.Drop(iterator(in), 1))
}

func nth[T any](iter funk.Iterator[T], idx int) (dt.Optional[T], error) {
	for i := 0; iter.HasNext(); i++ {
		item, err := iter.Next()
		if err != nil {
			return dt.None[T](), ignoreExhausted(err)
		}
		if i == idx {
			return dt.Some(item), nil
		}
	}
	return dt.None[T](), nil
}

func last[T any](iter funk.Iterator[T]) (dt.Optional[T], error) {
	var out dt.Optional[T]
	if err := funk.ForEach(iter, func(item T) error { out.Set(item); return nil }); err != nil {
		return dt.None[T](), err
	}
	return out, nil
}

func lastN[T any](iter funk.Iterator[T], n int) ([]T, error) {
	if n == 0 {
		return []T{}, nil
	}

	window := queue.New()
	err := funk.ForEach(iter, func(item T) error {
		window.Add(item)
		if window.Length() > n {
			window.Remove()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]T, window.Length())
	for idx := range out {
		// nil interface values come back untyped
		out[idx], _ = window.Get(idx).(T)
	}
	return out, nil
}

func ignoreExhausted(err error) error {
	if funk.IsExhausted(err) {
		return nil
	}
	return err
}
