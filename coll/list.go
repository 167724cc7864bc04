// Package coll provides container types whose iterators support
// removal, literal constructors for them, and multiset algebra.
//
// None of the containers are safe for concurrent use.
package coll

import (
	"github.com/tychoish/funk"
	"github.com/tychoish/funk/internal"
)

// List is a slice-backed ordered collection. Its iterators support
// removing the element most recently returned by Next.
type List[T any] struct {
	items []T
}

// NewList constructs a list containing the items in order.
func NewList[T any](items ...T) *List[T] {
	return &List[T]{items: append(make([]T, 0, len(items)), items...)}
}

// ListFrom drains a fresh iterator from the iterable into a new list.
func ListFrom[T any](in funk.Iterable[T]) (*List[T], error) {
	items, err := funk.Collect(in.Iterator())
	if err != nil {
		return nil, err
	}
	return &List[T]{items: items}, nil
}

func (l *List[T]) Len() int { return len(l.items) }

// Append adds items to the end of the list.
func (l *List[T]) Append(items ...T) { l.items = append(l.items, items...) }

// Get returns the item at the index, and false if the index is out of
// range.
func (l *List[T]) Get(idx int) (T, bool) {
	if idx < 0 || idx >= len(l.items) {
		var zero T
		return zero, false
	}
	return l.items[idx], true
}

// Slice returns a copy of the list's contents.
func (l *List[T]) Slice() []T { return append(make([]T, 0, len(l.items)), l.items...) }

// Iterator returns an iterator over the list. Modifying the list
// other than through the iterator while iterating has undefined
// results.
func (l *List[T]) Iterator() funk.Iterator[T] {
	return &listIter[T]{cursor: internal.NewSliceCursor(&l.items)}
}

type listIter[T any] struct {
	cursor *internal.SliceCursor[T]
}

func (it *listIter[T]) HasNext() bool { return it.cursor.HasNext() }

func (it *listIter[T]) Next() (T, error) {
	item, ok := it.cursor.Next()
	if !ok {
		return item, funk.ErrNoSuchElement
	}
	return item, nil
}

func (it *listIter[T]) Remove() error {
	if !it.cursor.RemoveLast() {
		return funk.ErrIllegalState
	}
	return nil
}
