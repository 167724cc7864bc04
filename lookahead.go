package funk

// Lookahead is an iterator that can answer HasNext without consuming
// an element, by computing the next element ahead of time and caching
// it. The element is computed by a find strategy supplied at
// construction, which makes Lookahead the shared engine behind the
// filtering and dropping adapters.
//
// Removal follows the upstream iterator's position: Remove is only
// permitted immediately after Next returns an element, and only if no
// lookahead has moved the upstream iterator past that element since.
// A HasNext or Peek call that has to run the find strategy revokes the
// permission; calls answered from the cache leave it unchanged.
type Lookahead[T any] struct {
	find   func() (T, error)
	remove func() error

	cached    T
	hasCached bool
	pending   error
	canRemove bool
}

// NewLookahead builds a Lookahead around a find strategy. The strategy
// must return the next qualifying element, or an error rooted in
// ErrNoSuchElement when there is none. Any other error is delivered to
// the caller by the Next call that would have returned the element.
//
// The remove hook, which may be nil, deletes the element that the
// strategy most recently returned from the underlying collection.
func NewLookahead[T any](find func() (T, error), remove func() error) *Lookahead[T] {
	Invariant.NotNil(find, "lookahead find strategy")
	return &Lookahead[T]{find: find, remove: remove}
}

// HasNext reports whether another element is available, computing and
// caching it if necessary. Repeated calls are idempotent.
func (la *Lookahead[T]) HasNext() bool {
	if la.hasCached || la.pending != nil {
		return true
	}

	// the strategy may advance the upstream iterator even when it
	// finds nothing, so the previously returned element can no longer
	// be removed through it.
	la.canRemove = false

	item, err := la.find()
	if err != nil {
		if IsExhausted(err) {
			return false
		}
		la.pending = err
		return true
	}

	la.cached = item
	la.hasCached = true
	return true
}

// Next returns the next element, from the cache if HasNext or Peek
// computed it, and otherwise by running the find strategy.
func (la *Lookahead[T]) Next() (T, error) {
	la.canRemove = false

	if la.pending != nil {
		err := la.pending
		la.pending = nil
		return la.zero(), err
	}

	if la.hasCached {
		item := la.cached
		la.cached = la.zero()
		la.hasCached = false
		la.canRemove = true
		return item, nil
	}

	item, err := la.find()
	if err != nil {
		return la.zero(), err
	}

	la.canRemove = true
	return item, nil
}

// Peek returns the next element without consuming it. Like HasNext,
// computing the element revokes permission to remove the previously
// returned one.
func (la *Lookahead[T]) Peek() (T, error) {
	if !la.HasNext() {
		return la.zero(), ErrNoSuchElement
	}

	if la.pending != nil {
		return la.zero(), la.pending
	}

	return la.cached, nil
}

// Remove deletes the element most recently returned by Next from the
// underlying collection.
func (la *Lookahead[T]) Remove() error {
	if la.remove == nil {
		return ErrUnsupportedOperation
	}

	if !la.canRemove {
		return ErrIllegalState
	}

	if err := la.remove(); err != nil {
		return err
	}

	la.canRemove = false
	return nil
}

func (*Lookahead[T]) zero() (out T) { return }
