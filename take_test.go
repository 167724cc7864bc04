package funk

import (
	"errors"
	"testing"

	"github.com/tychoish/funk/assert"
)

func TestTake(t *testing.T) {
	t.Run("Bounded", func(t *testing.T) {
		assert.EqualItems(t, drain[int](Take(SliceIterator([]int{1, 2, 3, 4}), 2)), []int{1, 2})
		assert.EqualItems(t, drain[int](Take(SliceIterator([]int{1, 2}), 5)), []int{1, 2})
		assert.EqualItems(t, drain[int](Take(SliceIterator([]int{1, 2}), 0)), []int{})
	})
	t.Run("NeverOverPulls", func(t *testing.T) {
		src := count[int](naturals())
		iter := Take[int](src, 3)
		assert.EqualItems(t, drain[int](iter), []int{1, 2, 3})
		assert.Equal(t, src.pulls, 3)
		assert.True(t, !iter.HasNext())
		_, err := iter.Next()
		assert.ErrorIs(t, err, ErrNoSuchElement)
		assert.Equal(t, src.pulls, 3)
	})
	t.Run("Removal", func(t *testing.T) {
		vals := []int{1, 2, 3}
		iter := Take[int](newRemovable(&vals), 2)
		_, _ = iter.Next()
		assert.NotError(t, iter.Remove())
		assert.EqualItems(t, vals, []int{2, 3})
		assert.EqualItems(t, drain[int](iter), []int{2})
	})
	t.Run("Negative", func(t *testing.T) {
		assert.PanicErrorIs(t, func() { Take(SliceIterator([]int{1}), -1) }, ErrInvalidInput)
		assert.PanicErrorIs(t, func() { Take[int](nil, 1) }, ErrInvalidInput)
	})
}

func TestDrop(t *testing.T) {
	t.Run("Skips", func(t *testing.T) {
		assert.EqualItems(t, drain[int](Drop(SliceIterator([]int{1, 2, 3, 4}), 1)), []int{2, 3, 4})
		assert.EqualItems(t, drain[int](Drop(SliceIterator([]int{1, 2, 3, 4}), 0)), []int{1, 2, 3, 4})
		assert.EqualItems(t, drain[int](Drop(SliceIterator([]int{1, 2}), 4)), []int{})
		assert.EqualItems(t, drain[int](Drop(Empty[int](), 1)), []int{})
	})
	t.Run("Lazy", func(t *testing.T) {
		src := count[int](naturals())
		iter := Drop[int](src, 10)
		assert.Equal(t, src.pulls, 0)
		v, err := iter.Next()
		assert.NotError(t, err)
		assert.Equal(t, v, 11)
		assert.Equal(t, src.pulls, 11)
	})
	t.Run("Removal", func(t *testing.T) {
		vals := []int{1, 2, 3, 4}
		iter := Drop[int](newRemovable(&vals), 2)
		v, err := iter.Next()
		assert.NotError(t, err)
		assert.Equal(t, v, 3)
		assert.NotError(t, iter.Remove())
		assert.EqualItems(t, vals, []int{1, 2, 4})
	})
	t.Run("FailedElementCountsAsSkipped", func(t *testing.T) {
		errBad := errors.New("bad element")
		src := Transform(SliceIterator([]string{"a", "bad", "c", "d"}), func(in string) (string, error) {
			if in == "bad" {
				return "", errBad
			}
			return in, nil
		})
		iter := Drop[string](src, 2)

		assert.True(t, iter.HasNext())
		_, err := iter.Next()
		assert.ErrorIs(t, err, errBad)
		assert.NotErrorIs(t, err, ErrNoSuchElement)

		assert.EqualItems(t, drain[string](iter), []string{"c", "d"})
	})
	t.Run("Negative", func(t *testing.T) {
		assert.PanicErrorIs(t, func() { Drop(SliceIterator([]int{1}), -2) }, ErrInvalidInput)
	})
}
