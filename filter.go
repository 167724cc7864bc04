package funk

// Filter returns a lazy iterator over the elements of iter for which
// the predicate returns true, in their original order. Elements are
// pulled from iter only as far as needed to answer HasNext or Next.
//
// If iter supports removal, so does the filtered iterator: Remove
// deletes the matching element most recently returned by Next.
// Panics raised by the predicate propagate to the caller.
func Filter[T any](iter Iterator[T], predicate func(T) bool) *Lookahead[T] {
	Invariant.NotNil(iter, "filter upstream iterator")
	Invariant.NotNil(predicate, "filter predicate")

	return NewLookahead(findMatch(iter, predicate), removeHook(iter))
}

// Reject is the inverse of Filter: it produces the elements for which
// the predicate returns false.
func Reject[T any](iter Iterator[T], predicate func(T) bool) *Lookahead[T] {
	Invariant.NotNil(predicate, "reject predicate")
	return Filter(iter, func(in T) bool { return !predicate(in) })
}

func findMatch[T any](iter Iterator[T], predicate func(T) bool) func() (T, error) {
	return func() (T, error) {
		for iter.HasNext() {
			item, err := iter.Next()
			if err != nil {
				return item, err
			}

			if predicate(item) {
				return item, nil
			}
		}

		var zero T
		return zero, ErrNoSuchElement
	}
}

// removeHook returns a function that removes the upstream iterator's
// current element, or nil when the iterator cannot remove.
func removeHook[T any](iter Iterator[T]) func() error {
	rm, ok := iter.(Remover)
	if !ok {
		return nil
	}
	return rm.Remove
}
