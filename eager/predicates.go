package eager

import "github.com/tychoish/funk"

// Any reports whether some element satisfies the predicate. It stops
// at the first match, and is false for an empty input.
func Any[T any](in funk.Iterable[T], predicate func(T) bool) (bool, error) {
	funk.Invariant.NotNil(predicate, "any predicate")

	matches := funk.Filter(iterator(in), predicate)
	if !matches.HasNext() {
		return false, nil
	}

	if _, err := matches.Next(); err != nil {
		return false, err
	}
	return true, nil
}

// All reports whether every element satisfies the predicate. It stops
// at the first element that does not, and is true for an empty input.
func All[T any](in funk.Iterable[T], predicate func(T) bool) (bool, error) {
	funk.Invariant.NotNil(predicate, "all predicate")

	found, err := Any(in, func(item T) bool { return !predicate(item) })
	return !found && err == nil, err
}

// None reports whether no element satisfies the predicate. It is true
// for an empty input.
func None[T any](in funk.Iterable[T], predicate func(T) bool) (bool, error) {
	funk.Invariant.NotNil(predicate, "none predicate")

	found, err := Any(in, predicate)
	return !found && err == nil, err
}
