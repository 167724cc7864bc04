package coll

import (
	"github.com/tychoish/funk"
	"github.com/tychoish/funk/ers"
)

// Bag is a multiset: an unordered collection that counts how many
// times each value was added. Iteration visits distinct values in the
// order they were first added, producing each value as many times as
// it occurs.
type Bag[T comparable] struct {
	keys   []T
	counts map[T]int
	size   int
	// incremented whenever a distinct value leaves keys.
	deletes int
}

// NewBag constructs a bag holding the items.
func NewBag[T comparable](items ...T) *Bag[T] {
	b := &Bag[T]{counts: map[T]int{}}
	b.Add(items...)
	return b
}

// BagFrom drains a fresh iterator from the iterable into a new bag.
func BagFrom[T comparable](in funk.Iterable[T]) (*Bag[T], error) {
	b := NewBag[T]()
	if err := b.extend(in); err != nil {
		return nil, err
	}
	return b, nil
}

// Add inserts one occurrence of each item.
func (b *Bag[T]) Add(items ...T) {
	for _, item := range items {
		if b.counts[item] == 0 {
			b.keys = append(b.keys, item)
		}
		b.counts[item]++
		b.size++
	}
}

// RemoveOne removes a single occurrence of the item, returning false
// if the bag did not contain it.
func (b *Bag[T]) RemoveOne(item T) bool {
	count := b.counts[item]
	switch count {
	case 0:
		return false
	case 1:
		delete(b.counts, item)
		b.deletes++
		for idx := range b.keys {
			if b.keys[idx] == item {
				b.keys = append(b.keys[:idx], b.keys[idx+1:]...)
				break
			}
		}
	default:
		b.counts[item] = count - 1
	}
	b.size--
	return true
}

// Count returns the number of occurrences of the item.
func (b *Bag[T]) Count(item T) int { return b.counts[item] }

// Len returns the total number of occurrences of all values.
func (b *Bag[T]) Len() int { return b.size }

// Distinct returns the distinct values in the bag, in the order they
// were first added.
func (b *Bag[T]) Distinct() []T { return append(make([]T, 0, len(b.keys)), b.keys...) }

// Slice returns every occurrence in iteration order.
func (b *Bag[T]) Slice() []T {
	out := make([]T, 0, b.size)
	for _, key := range b.keys {
		for i := 0; i < b.counts[key]; i++ {
			out = append(out, key)
		}
	}
	return out
}

// Iterator returns an iterator over every occurrence in the bag.
// Remove deletes one occurrence of the value most recently returned
// by Next. If RemoveOne drops the last occurrence of a value while
// the iterator is live, Next returns an error rooted in
// funk.ErrIllegalState.
func (b *Bag[T]) Iterator() funk.Iterator[T] { return &bagIter[T]{bag: b, deletes: b.deletes} }

func (b *Bag[T]) extend(in funk.Iterable[T]) error {
	return funk.ForEach(in.Iterator(), func(item T) error { b.Add(item); return nil })
}

type bagIter[T comparable] struct {
	bag       *Bag[T]
	key       int
	emitted   int
	canRemove bool
	deletes   int
}

// position reports the key index and number of emitted occurrences
// that the next call to Next will start from.
func (it *bagIter[T]) position() (key int, emitted int) {
	key, emitted = it.key, it.emitted
	for key < len(it.bag.keys) && emitted >= it.bag.counts[it.bag.keys[key]] {
		key++
		emitted = 0
	}
	return key, emitted
}

func (it *bagIter[T]) HasNext() bool {
	key, _ := it.position()
	return key < len(it.bag.keys)
}

func (it *bagIter[T]) Next() (T, error) {
	it.canRemove = false
	if it.deletes != it.bag.deletes {
		var zero T
		return zero, ers.Wrap(funk.ErrIllegalState, "bag modified during iteration")
	}
	it.key, it.emitted = it.position()
	if it.key >= len(it.bag.keys) {
		var zero T
		return zero, funk.ErrNoSuchElement
	}

	it.emitted++
	it.canRemove = true
	return it.bag.keys[it.key], nil
}

func (it *bagIter[T]) Remove() error {
	if !it.canRemove {
		return funk.ErrIllegalState
	}
	it.canRemove = false

	// when the last occurrence goes, the following key slides into
	// this position with emitted back at zero.
	it.emitted--
	it.bag.RemoveOne(it.bag.keys[it.key])
	it.deletes = it.bag.deletes
	return nil
}

// Union returns a bag holding every occurrence of every element of
// the iterables.
func Union[T comparable](iterables ...funk.Iterable[T]) (*Bag[T], error) {
	b := NewBag[T]()
	for _, in := range iterables {
		if err := b.extend(in); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Difference returns a bag holding the elements of first, less one
// occurrence for each occurrence of an element in the later
// iterables. Elements of the later iterables that are not in first
// are ignored.
func Difference[T comparable](first funk.Iterable[T], rest ...funk.Iterable[T]) (*Bag[T], error) {
	b, err := BagFrom(first)
	if err != nil {
		return nil, err
	}

	for _, in := range rest {
		if err := funk.ForEach(in.Iterator(), func(item T) error { b.RemoveOne(item); return nil }); err != nil {
			return nil, err
		}
	}
	return b, nil
}
