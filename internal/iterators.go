package internal

// SliceCursor walks a slice held by pointer, so that removals made
// through the cursor are visible to the owner of the slice. The zero
// value is not usable; construct with NewSliceCursor.
type SliceCursor[T any] struct {
	vals *[]T
	next int
	last int
}

func NewSliceCursor[T any](in *[]T) *SliceCursor[T] {
	return &SliceCursor[T]{vals: in, last: -1}
}

func (c *SliceCursor[T]) HasNext() bool { return c.next < len(*c.vals) }

// Next returns the next element, and false when the slice is
// exhausted.
func (c *SliceCursor[T]) Next() (T, bool) {
	if !c.HasNext() {
		var zero T
		return zero, false
	}

	c.last = c.next
	c.next++
	return (*c.vals)[c.last], true
}

// RemoveLast deletes the element most recently returned by Next from
// the underlying slice. It returns false if there is no such element
// or it has already been removed.
func (c *SliceCursor[T]) RemoveLast() bool {
	if c.last < 0 {
		return false
	}

	vals := *c.vals
	copy(vals[c.last:], vals[c.last+1:])
	var zero T
	vals[len(vals)-1] = zero
	*c.vals = vals[:len(vals)-1]

	c.next = c.last
	c.last = -1
	return true
}
