package lazy

import "github.com/tychoish/funk"

// Concat produces the elements of each iterable in turn. Removal is
// delegated to the iterator of whichever input produced the element.
func Concat[T any](ins ...funk.Iterable[T]) funk.Iterable[T] {
	for _, in := range ins {
		checkInput(in)
	}

	return funk.IterableFunc[T](func() funk.Iterator[T] {
		var current funk.Iterator[T]
		next := 0

		return funk.NewLookahead(
			func() (T, error) {
				for {
					if current != nil && current.HasNext() {
						return current.Next()
					}
					if next >= len(ins) {
						var zero T
						return zero, funk.ErrNoSuchElement
					}
					current = ins[next].Iterator()
					next++
				}
			},
			func() error { return funk.Remove(current) },
		)
	})
}

// Cycle repeats the input forever, taking a fresh iterator from it
// each time the previous one is exhausted. If a pass over the input
// produces no elements, the cycle ends; in particular cycling an
// empty iterable produces nothing.
func Cycle[T any](in funk.Iterable[T]) funk.Iterable[T] {
	checkInput(in)

	return funk.IterableFunc[T](func() funk.Iterator[T] {
		current := in.Iterator()
		produced := false

		return funk.NewLookahead(
			func() (T, error) {
				for !current.HasNext() {
					if !produced {
						var zero T
						return zero, funk.ErrNoSuchElement
					}
					current = in.Iterator()
					produced = false
				}

				produced = true
				return current.Next()
			},
			func() error { return funk.Remove(current) },
		)
	})
}
