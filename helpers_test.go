package funk

import (
	"github.com/tychoish/funk/internal"
)

// removable is a slice-backed iterator that supports Remove and
// records how many elements have been pulled from it.
type removable[T any] struct {
	cursor  *internal.SliceCursor[T]
	pulls   int
	removed int
}

func newRemovable[T any](vals *[]T) *removable[T] {
	return &removable[T]{cursor: internal.NewSliceCursor(vals)}
}

func (r *removable[T]) HasNext() bool { return r.cursor.HasNext() }

func (r *removable[T]) Next() (T, error) {
	item, ok := r.cursor.Next()
	if !ok {
		return item, ErrNoSuchElement
	}
	r.pulls++
	return item, nil
}

func (r *removable[T]) Remove() error {
	if !r.cursor.RemoveLast() {
		return ErrIllegalState
	}
	r.removed++
	return nil
}

// counting wraps an iterator and counts calls to Next, to verify that
// adapters never pull more than they need.
type counting[T any] struct {
	Iterator[T]
	pulls int
}

func (c *counting[T]) Next() (T, error) { c.pulls++; return c.Iterator.Next() }

func count[T any](iter Iterator[T]) *counting[T] { return &counting[T]{Iterator: iter} }

// naturals is an infinite iterator over 1, 2, 3...
func naturals() *Lookahead[int] {
	n := 0
	return Generator(func() (int, bool) { n++; return n, true })
}

func drain[T any](iter Iterator[T]) []T {
	out, err := Collect(iter)
	if err != nil {
		panic(err)
	}
	return out
}
