package funk

// Mapped is a lazy iterator that applies a function to each element
// of an upstream iterator. Mapping is one-to-one, so Mapped holds no
// buffered state: HasNext and Remove pass straight through to the
// upstream iterator.
type Mapped[S any, T any] struct {
	iter Iterator[S]
	fn   func(S) (T, error)
}

// Map returns a lazy iterator that produces fn(x) for each element x
// of iter, in order. Zero and nil values are passed to fn, and
// returned from it, unchanged.
func Map[S any, T any](iter Iterator[S], fn func(S) T) *Mapped[S, T] {
	Invariant.NotNil(fn, "map function")
	return Transform(iter, func(in S) (T, error) { return fn(in), nil })
}

// Transform is like Map, except the function may fail. An error from
// the function is returned, unmodified, by the Next call that pulled
// the element; the upstream iterator has already advanced past it, and
// iteration may continue.
func Transform[S any, T any](iter Iterator[S], fn func(S) (T, error)) *Mapped[S, T] {
	Invariant.NotNil(iter, "map upstream iterator")
	Invariant.NotNil(fn, "transform function")

	return &Mapped[S, T]{iter: iter, fn: fn}
}

// HasNext reports whether the upstream iterator has another element.
func (m *Mapped[S, T]) HasNext() bool { return m.iter.HasNext() }

// Next pulls one element from upstream and returns the transformed
// value.
func (m *Mapped[S, T]) Next() (T, error) {
	item, err := m.iter.Next()
	if err != nil {
		var zero T
		return zero, err
	}

	return m.fn(item)
}

// Remove removes the upstream element that produced the value most
// recently returned by Next.
func (m *Mapped[S, T]) Remove() error { return Remove(m.iter) }
