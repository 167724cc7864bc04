package funk

import "github.com/eapache/queue"

// Batches is the lazy iterator returned by Batch. Each element it
// produces is a *BatchView: an iterator over the next batch of
// elements of the upstream iterator.
//
// All views share one cursor over the upstream iterator. Batch k
// always receives the upstream elements at positions [k*size,
// (k+1)*size), regardless of the order in which views are created or
// drained, so views can be traversed out of order or interleaved.
// Elements only leave the upstream iterator when some view (or the
// outer iterator's HasNext) needs to look at them; elements pulled on
// behalf of one view that belong to another are parked until their
// owner asks for them.
//
// Neither Batches nor its views support Remove: batch boundaries are
// positions in the upstream sequence, not elements of a collection.
type Batches[T any] struct {
	cursor  *batchCursor[T]
	created int
}

// BatchView is one batch produced by Batches. It is itself a lazy
// iterator, bounded by the batch size; the final batch of a sequence
// may be shorter.
type BatchView[T any] struct {
	cursor  *batchCursor[T]
	index   int
	yielded int
}

// Batch splits iter into consecutive batches of, at most, size
// elements. The size must be positive.
func Batch[T any](iter Iterator[T], size int) *Batches[T] {
	Invariant.NotNil(iter, "batch upstream iterator")
	Invariant.Argument(size > 0, "batch size must be positive", size)

	return &Batches[T]{
		cursor: &batchCursor[T]{
			iter:   iter,
			size:   size,
			parked: map[int]*queue.Queue{},
		},
	}
}

// HasNext reports whether the upstream iterator has an element that
// no existing batch has claimed.
func (b *Batches[T]) HasNext() bool { return b.cursor.ensure(b.created * b.cursor.size) }

// Next returns a view over the next batch.
func (b *Batches[T]) Next() (*BatchView[T], error) {
	if !b.HasNext() {
		return nil, ErrNoSuchElement
	}

	view := &BatchView[T]{cursor: b.cursor, index: b.created}
	b.created++
	return view, nil
}

// Remove always returns ErrUnsupportedOperation.
func (*Batches[T]) Remove() error { return ErrUnsupportedOperation }

// Size returns the configured batch size.
func (b *Batches[T]) Size() int { return b.cursor.size }

// Index returns the position of this batch in the sequence of
// batches, starting at zero.
func (v *BatchView[T]) Index() int { return v.index }

// HasNext reports whether the batch has elements left: it has not yet
// produced a full batch, and the upstream iterator has an element at
// the batch's next position.
func (v *BatchView[T]) HasNext() bool {
	return v.yielded < v.cursor.size && v.cursor.ensure(v.position())
}

// Next returns the next element of the batch.
func (v *BatchView[T]) Next() (T, error) {
	if !v.HasNext() {
		var zero T
		return zero, ErrNoSuchElement
	}

	item, err := v.cursor.take(v.index)
	v.yielded++
	return item, err
}

// Remove always returns ErrUnsupportedOperation.
func (*BatchView[T]) Remove() error { return ErrUnsupportedOperation }

func (v *BatchView[T]) position() int { return v.index*v.cursor.size + v.yielded }

// batchCursor is the single upstream position shared by all views
// of a Batches iterator.
type batchCursor[T any] struct {
	iter   Iterator[T]
	size   int
	pulled int
	parked map[int]*queue.Queue
}

type parkedItem[T any] struct {
	value T
	err   error
}

// ensure pulls upstream elements until the element at position pos has
// been pulled, parking each pulled element with the batch that owns
// it. It reports false if the upstream iterator ends first.
func (c *batchCursor[T]) ensure(pos int) bool {
	for c.pulled <= pos {
		if !c.iter.HasNext() {
			return false
		}

		item, err := c.iter.Next()
		if err != nil && IsExhausted(err) {
			return false
		}

		owner := c.pulled / c.size
		q, ok := c.parked[owner]
		if !ok {
			q = queue.New()
			c.parked[owner] = q
		}
		q.Add(parkedItem[T]{value: item, err: err})
		c.pulled++
	}

	return true
}

// take removes the oldest parked element for the batch. Callers must
// ensure the element has been pulled.
func (c *batchCursor[T]) take(batch int) (T, error) {
	q := c.parked[batch]
	item := q.Remove().(parkedItem[T])
	if q.Length() == 0 {
		delete(c.parked, batch)
	}
	return item.value, item.err
}
