package coll

import (
	"github.com/tychoish/funk"
	"github.com/tychoish/funk/ers"
	"github.com/tychoish/funk/internal"
)

// Set is a collection of distinct values that remembers the order in
// which values were first added.
type Set[T comparable] struct {
	order []T
	index map[T]struct{}
	// incremented when Delete compacts order, so that live iterators
	// can detect that their position is stale.
	deletes int
}

// NewSet constructs a set from the items, ignoring duplicates.
func NewSet[T comparable](items ...T) *Set[T] {
	s := &Set[T]{index: make(map[T]struct{}, len(items))}
	s.Add(items...)
	return s
}

// SetFrom drains a fresh iterator from the iterable into a new set.
func SetFrom[T comparable](in funk.Iterable[T]) (*Set[T], error) {
	s := NewSet[T]()
	if err := funk.ForEach(in.Iterator(), func(item T) error { s.Add(item); return nil }); err != nil {
		return nil, err
	}
	return s, nil
}

// Add inserts items that are not already in the set.
func (s *Set[T]) Add(items ...T) {
	for _, item := range items {
		if _, ok := s.index[item]; ok {
			continue
		}
		s.index[item] = struct{}{}
		s.order = append(s.order, item)
	}
}

func (s *Set[T]) Has(item T) bool { _, ok := s.index[item]; return ok }
func (s *Set[T]) Len() int        { return len(s.order) }

// Delete removes the item from the set, returning false if it was not
// present.
func (s *Set[T]) Delete(item T) bool {
	if !s.Has(item) {
		return false
	}
	delete(s.index, item)
	s.deletes++
	for idx := range s.order {
		if s.order[idx] == item {
			s.order = append(s.order[:idx], s.order[idx+1:]...)
			break
		}
	}
	return true
}

// Slice returns the set's values in insertion order.
func (s *Set[T]) Slice() []T { return append(make([]T, 0, len(s.order)), s.order...) }

// Iterator returns an iterator over the set in insertion order.
// Remove deletes the value most recently returned by Next. Values
// added during iteration are visited, but once Delete has been called
// on the set the iterator's position is lost, and Next returns an
// error rooted in funk.ErrIllegalState.
func (s *Set[T]) Iterator() funk.Iterator[T] {
	return &setIter[T]{set: s, cursor: internal.NewSliceCursor(&s.order), deletes: s.deletes}
}

type setIter[T comparable] struct {
	set     *Set[T]
	cursor  *internal.SliceCursor[T]
	last    T
	deletes int
}

func (it *setIter[T]) HasNext() bool { return it.cursor.HasNext() }

func (it *setIter[T]) Next() (T, error) {
	if it.deletes != it.set.deletes {
		var zero T
		return zero, ers.Wrap(funk.ErrIllegalState, "set modified during iteration")
	}

	item, ok := it.cursor.Next()
	if !ok {
		return item, funk.ErrNoSuchElement
	}
	it.last = item
	return item, nil
}

func (it *setIter[T]) Remove() error {
	if !it.cursor.RemoveLast() {
		return funk.ErrIllegalState
	}
	delete(it.set.index, it.last)
	it.set.deletes++
	it.deletes = it.set.deletes
	return nil
}
