package coll

import (
	"errors"
	"testing"

	"github.com/tychoish/funk"
	"github.com/tychoish/funk/assert"
	"github.com/tychoish/funk/assert/check"
	"github.com/tychoish/funk/tuple"
)

var errBoom = errors.New("boom")

func failing[T any]() funk.Iterable[T] {
	return funk.IterableFunc[T](func() funk.Iterator[T] {
		return funk.NewLookahead(func() (T, error) { var zero T; return zero, errBoom }, nil)
	})
}

func drain[T any](t *testing.T, iter funk.Iterator[T]) []T {
	t.Helper()
	out, err := funk.Collect(iter)
	assert.NotError(t, err)
	return out
}

func TestList(t *testing.T) {
	t.Run("Literal", func(t *testing.T) {
		l := NewList(1, 2, 3)
		assert.Equal(t, l.Len(), 3)
		check.EqualItems(t, l.Slice(), []int{1, 2, 3})
		check.EqualItems(t, drain(t, l.Iterator()), []int{1, 2, 3})
	})
	t.Run("Empty", func(t *testing.T) {
		l := NewList[string]()
		assert.Equal(t, l.Len(), 0)
		iter := l.Iterator()
		check.True(t, !iter.HasNext())
		_, err := iter.Next()
		check.ErrorIs(t, err, funk.ErrNoSuchElement)
	})
	t.Run("LiteralCopiesInput", func(t *testing.T) {
		in := []int{1, 2, 3}
		l := NewList(in...)
		in[0] = 100
		check.EqualItems(t, l.Slice(), []int{1, 2, 3})
	})
	t.Run("From", func(t *testing.T) {
		l, err := ListFrom[int](funk.Items(4, 5, 6))
		assert.NotError(t, err)
		check.EqualItems(t, l.Slice(), []int{4, 5, 6})

		l, err = ListFrom(failing[int]())
		check.ErrorIs(t, err, errBoom)
		check.True(t, l == nil)
	})
	t.Run("AppendAndGet", func(t *testing.T) {
		l := NewList("a")
		l.Append("b", "c")
		val, ok := l.Get(2)
		check.True(t, ok)
		check.Equal(t, val, "c")
		_, ok = l.Get(3)
		check.True(t, !ok)
		_, ok = l.Get(-1)
		check.True(t, !ok)
	})
	t.Run("IteratorRemove", func(t *testing.T) {
		l := NewList(1, 2, 3, 4, 5)
		iter := l.Iterator()
		for iter.HasNext() {
			item, err := iter.Next()
			assert.NotError(t, err)
			if item%2 == 0 {
				assert.NotError(t, funk.Remove(iter))
			}
		}
		check.EqualItems(t, l.Slice(), []int{1, 3, 5})
	})
	t.Run("RemoveRequiresNext", func(t *testing.T) {
		l := NewList(1, 2)
		iter := l.Iterator()
		check.ErrorIs(t, funk.Remove(iter), funk.ErrIllegalState)

		_, err := iter.Next()
		assert.NotError(t, err)
		check.NotError(t, funk.Remove(iter))
		check.ErrorIs(t, funk.Remove(iter), funk.ErrIllegalState)
		check.EqualItems(t, l.Slice(), []int{2})
	})
	t.Run("FilteredRemove", func(t *testing.T) {
		l := NewList(1, 2, 3, 4, 5, 6)
		iter := funk.Filter(l.Iterator(), func(in int) bool { return in > 3 })
		for iter.HasNext() {
			_, err := iter.Next()
			assert.NotError(t, err)
			assert.NotError(t, iter.Remove())
		}
		check.EqualItems(t, l.Slice(), []int{1, 2, 3})
	})
}

func TestSet(t *testing.T) {
	t.Run("Literal", func(t *testing.T) {
		s := NewSet("b", "a", "b", "c", "a")
		assert.Equal(t, s.Len(), 3)
		check.EqualItems(t, s.Slice(), []string{"b", "a", "c"})
		check.EqualItems(t, drain(t, s.Iterator()), []string{"b", "a", "c"})
		check.True(t, s.Has("a"))
		check.True(t, !s.Has("d"))
		assert.Contains(t, s.Slice(), "c")
	})
	t.Run("From", func(t *testing.T) {
		s, err := SetFrom[int](funk.Items(1, 1, 2, 3, 2))
		assert.NotError(t, err)
		check.EqualItems(t, s.Slice(), []int{1, 2, 3})

		_, err = SetFrom(failing[int]())
		check.ErrorIs(t, err, errBoom)
	})
	t.Run("Delete", func(t *testing.T) {
		s := NewSet(1, 2, 3)
		check.True(t, s.Delete(2))
		check.True(t, !s.Delete(2))
		check.True(t, !s.Has(2))
		check.EqualItems(t, s.Slice(), []int{1, 3})

		s.Add(2)
		check.EqualItems(t, s.Slice(), []int{1, 3, 2})
	})
	t.Run("IteratorRemove", func(t *testing.T) {
		s := NewSet(1, 2, 3, 4)
		iter := s.Iterator()
		for iter.HasNext() {
			item, err := iter.Next()
			assert.NotError(t, err)
			if item < 3 {
				assert.NotError(t, funk.Remove(iter))
			}
		}
		check.EqualItems(t, s.Slice(), []int{3, 4})
		check.True(t, !s.Has(1))
		check.Equal(t, s.Len(), 2)

		s.Add(1)
		check.True(t, s.Has(1))
		check.Equal(t, s.Len(), 3)
	})
}

func TestModifiedDuringIteration(t *testing.T) {
	t.Run("SetDelete", func(t *testing.T) {
		s := NewSet(1, 2, 3, 4)
		iter := s.Iterator()
		item, err := iter.Next()
		assert.NotError(t, err)
		check.Equal(t, item, 1)

		assert.True(t, s.Delete(1))
		check.True(t, iter.HasNext())
		_, err = iter.Next()
		check.ErrorIs(t, err, funk.ErrIllegalState)
		assert.NotContains(t, s.Slice(), 1)
	})
	t.Run("SetAdd", func(t *testing.T) {
		s := NewSet(1, 2)
		iter := s.Iterator()
		_, err := iter.Next()
		assert.NotError(t, err)
		s.Add(3)
		check.EqualItems(t, drain(t, iter), []int{2, 3})
	})
	t.Run("SetOtherIterator", func(t *testing.T) {
		s := NewSet("a", "b", "c")
		one, two := s.Iterator(), s.Iterator()
		_, err := one.Next()
		assert.NotError(t, err)
		assert.NotError(t, funk.Remove(one))
		check.EqualItems(t, drain(t, one), []string{"b", "c"})

		_, err = two.Next()
		check.ErrorIs(t, err, funk.ErrIllegalState)
	})
	t.Run("BagRemoveOne", func(t *testing.T) {
		b := NewBag(1, 1, 2, 3)
		iter := b.Iterator()
		_, err := iter.Next()
		assert.NotError(t, err)

		// dropping one of two occurrences keeps positions intact
		assert.True(t, b.RemoveOne(1))
		_, err = iter.Next()
		check.NotErrorIs(t, err, funk.ErrIllegalState)

		assert.True(t, b.RemoveOne(2))
		_, err = iter.Next()
		check.ErrorIs(t, err, funk.ErrIllegalState)
		check.Contains(t, b.Distinct(), 3)
	})
}

func TestBag(t *testing.T) {
	t.Run("Counts", func(t *testing.T) {
		b := NewBag("a", "b", "a", "c", "a")
		check.Equal(t, b.Len(), 5)
		check.Equal(t, b.Count("a"), 3)
		check.Equal(t, b.Count("b"), 1)
		check.Zero(t, b.Count("z"))
		check.NotZero(t, b.Count("c"))
		check.EqualItems(t, b.Distinct(), []string{"a", "b", "c"})
		check.EqualItems(t, b.Slice(), []string{"a", "a", "a", "b", "c"})
		check.EqualItems(t, drain(t, b.Iterator()), b.Slice())
	})
	t.Run("RemoveOne", func(t *testing.T) {
		b := NewBag(1, 1, 2)
		check.True(t, b.RemoveOne(1))
		check.Equal(t, b.Count(1), 1)
		check.True(t, b.RemoveOne(1))
		check.True(t, !b.RemoveOne(1))
		check.EqualItems(t, b.Distinct(), []int{2})
		check.Equal(t, b.Len(), 1)
	})
	t.Run("From", func(t *testing.T) {
		b, err := BagFrom[int](funk.Items(3, 3, 4))
		assert.NotError(t, err)
		check.Equal(t, b.Count(3), 2)

		_, err = BagFrom(failing[int]())
		check.ErrorIs(t, err, errBoom)
	})
	t.Run("IteratorRemovesOneOccurrence", func(t *testing.T) {
		b := NewBag(1, 1, 1, 2, 3, 3)
		iter := b.Iterator()
		seen := []int{}
		for iter.HasNext() {
			item, err := iter.Next()
			assert.NotError(t, err)
			seen = append(seen, item)
			if item != 2 {
				assert.NotError(t, funk.Remove(iter))
				check.ErrorIs(t, funk.Remove(iter), funk.ErrIllegalState)
			}
		}
		check.EqualItems(t, seen, []int{1, 1, 1, 2, 3, 3})
		check.EqualItems(t, b.Slice(), []int{2})
		check.Equal(t, b.Len(), 1)
	})
	t.Run("IteratorRemoveWithHasNext", func(t *testing.T) {
		b := NewBag("x", "y")
		iter := b.Iterator()
		item, err := iter.Next()
		assert.NotError(t, err)
		check.Equal(t, item, "x")
		check.True(t, iter.HasNext())
		assert.NotError(t, funk.Remove(iter))
		check.EqualItems(t, drain(t, iter), []string{"y"})
		check.EqualItems(t, b.Slice(), []string{"y"})
	})
	t.Run("Union", func(t *testing.T) {
		b, err := Union[int](funk.Items(1, 2), funk.Items(2, 3), NewList(3, 3))
		assert.NotError(t, err)
		check.Equal(t, b.Len(), 6)
		check.Equal(t, b.Count(2), 2)
		check.Equal(t, b.Count(3), 3)

		b, err = Union[int]()
		assert.NotError(t, err)
		check.Equal(t, b.Len(), 0)

		_, err = Union(funk.Iterable[int](funk.Items(1)), failing[int]())
		check.ErrorIs(t, err, errBoom)
	})
	t.Run("Difference", func(t *testing.T) {
		b, err := Difference[int](funk.Items(1, 1, 2, 3, 4), funk.Items(1, 5), funk.Items(4, 4))
		assert.NotError(t, err)
		check.EqualItems(t, b.Slice(), []int{1, 2, 3})

		b, err = Difference[int](funk.Items(1, 2))
		assert.NotError(t, err)
		check.EqualItems(t, b.Slice(), []int{1, 2})

		_, err = Difference(funk.Iterable[int](funk.Items(1)), failing[int]())
		check.ErrorIs(t, err, errBoom)
	})
}

func TestLiterals(t *testing.T) {
	t.Run("MapOf", func(t *testing.T) {
		mp := MapOf(tuple.MakePair("a", 1), tuple.MakePair("b", 2), tuple.MakePair("a", 3))
		check.DeepEqual(t, mp, map[string]int{"a": 3, "b": 2})
		check.Equal(t, len(MapOf[string, int]()), 0)
	})
	t.Run("MapFrom", func(t *testing.T) {
		mp, err := MapFrom[string, int](funk.Items(tuple.MakePair("a", 1), tuple.MakePair("b", 2)))
		assert.NotError(t, err)
		check.Equal(t, mp["b"], 2)

		_, err = MapFrom(failing[tuple.Pair[string, int]]())
		check.ErrorIs(t, err, errBoom)
	})
	t.Run("Builder", func(t *testing.T) {
		b := NewBuilder(1, 2).With(3).And(funk.Items(4, 2))
		assert.NotError(t, b.Err())
		check.EqualItems(t, b.Slice(), []int{1, 2, 3, 4, 2})
		check.EqualItems(t, b.List().Slice(), []int{1, 2, 3, 4, 2})
		check.EqualItems(t, BuildSet(b).Slice(), []int{1, 2, 3, 4})
		check.Equal(t, BuildBag(b).Count(2), 2)
	})
	t.Run("BuilderError", func(t *testing.T) {
		b := NewBuilder(1).And(failing[int]()).And(funk.Items(5))
		check.ErrorIs(t, b.Err(), errBoom)
		check.EqualItems(t, b.Slice(), []int{1})
	})
}
