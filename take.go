package funk

// Limited is a lazy iterator that produces at most a fixed number of
// elements from an upstream iterator.
type Limited[T any] struct {
	iter      Iterator[T]
	remaining int
}

// Take returns an iterator over, at most, the first n elements of
// iter. Take never pulls more than n elements from iter.
func Take[T any](iter Iterator[T], n int) *Limited[T] {
	Invariant.NotNil(iter, "take upstream iterator")
	Invariant.Argument(n >= 0, "take count must not be negative", n)

	return &Limited[T]{iter: iter, remaining: n}
}

func (l *Limited[T]) HasNext() bool { return l.remaining > 0 && l.iter.HasNext() }

func (l *Limited[T]) Next() (T, error) {
	if l.remaining <= 0 {
		var zero T
		return zero, ErrNoSuchElement
	}

	item, err := l.iter.Next()
	if err == nil || !IsExhausted(err) {
		l.remaining--
	}

	return item, err
}

// Remove removes the element most recently returned by Next from the
// upstream collection.
func (l *Limited[T]) Remove() error { return Remove(l.iter) }

// Drop returns an iterator that skips the first n elements of iter
// and produces the rest. The skipped elements are not pulled until
// the returned iterator is first used.
func Drop[T any](iter Iterator[T], n int) *Lookahead[T] {
	Invariant.NotNil(iter, "drop upstream iterator")
	Invariant.Argument(n >= 0, "drop count must not be negative", n)

	skip := n
	return NewLookahead(func() (T, error) {
		for skip > 0 && iter.HasNext() {
			// a failed element still counts as skipped
			skip--
			if _, err := iter.Next(); err != nil {
				var zero T
				return zero, err
			}
		}

		if !iter.HasNext() {
			var zero T
			return zero, ErrNoSuchElement
		}

		return iter.Next()
	}, removeHook(iter))
}
