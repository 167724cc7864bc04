package internal

import "testing"

func TestSliceCursor(t *testing.T) {
	t.Run("Walk", func(t *testing.T) {
		vals := []int{1, 2, 3}
		cur := NewSliceCursor(&vals)
		seen := []int{}
		for cur.HasNext() {
			v, ok := cur.Next()
			if !ok {
				t.Fatal("cursor reported an element it could not produce")
			}
			seen = append(seen, v)
		}
		if len(seen) != 3 || seen[0] != 1 || seen[2] != 3 {
			t.Error(seen)
		}
		if _, ok := cur.Next(); ok {
			t.Error("exhausted cursor produced a value")
		}
	})
	t.Run("RemoveLast", func(t *testing.T) {
		vals := []string{"a", "b", "c", "d"}
		cur := NewSliceCursor(&vals)
		if cur.RemoveLast() {
			t.Error("removed before any element was returned")
		}
		cur.Next()
		cur.Next()
		if !cur.RemoveLast() {
			t.Fatal("could not remove the last returned element")
		}
		if cur.RemoveLast() {
			t.Error("removed the same element twice")
		}
		if len(vals) != 3 || vals[1] != "c" {
			t.Error(vals)
		}
		v, ok := cur.Next()
		if !ok || v != "c" {
			t.Error(v, ok)
		}
	})
}
