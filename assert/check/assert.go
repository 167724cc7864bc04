// Package check provides the same assertions as the assert package,
// except that a failing check records the failure and lets the test
// continue.
package check

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// True causes a test to fail if the condition is false.
func True(t testing.TB, cond bool) {
	t.Helper()
	if !cond {
		t.Error("assertion failure")
	}
}

// Equal causes a test to fail if the two (comparable) values are not
// equal.
func Equal[T comparable](t testing.TB, valOne, valTwo T) {
	t.Helper()
	if valOne != valTwo {
		t.Errorf("values unequal: <%v> != <%v>", valOne, valTwo)
	}
}

// NotEqual causes a test to fail if two (comparable) values are
// equal.
func NotEqual[T comparable](t testing.TB, valOne, valTwo T) {
	t.Helper()
	if valOne == valTwo {
		t.Errorf("values equal: <%v>", valOne)
	}
}

// DeepEqual compares two values with reflect.DeepEqual.
func DeepEqual[T any](t testing.TB, valOne, valTwo T) {
	t.Helper()
	if !reflect.DeepEqual(valOne, valTwo) {
		t.Errorf("values unequal: <%v> != <%v>", valOne, valTwo)
	}
}

func zeroOf[T any]() T { return *new(T) }

// Zero fails a test if the value is not the zero-value for its type.
func Zero[T comparable](t testing.TB, val T) {
	t.Helper()
	if zeroOf[T]() != val {
		t.Errorf("expected zero for value of type %T <%v>", val, val)
	}
}

// NotZero fails a test if the value is the zero for its type.
func NotZero[T comparable](t testing.TB, val T) {
	t.Helper()
	if zeroOf[T]() == val {
		t.Errorf("expected non-zero for value of type %T", val)
	}
}

// Error fails the test if the error is nil.
func Error(t testing.TB, err error) {
	t.Helper()
	if err == nil {
		t.Error("expected non-nil error")
	}
}

// NotError fails the test if the error is non-nil.
func NotError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Error(err)
	}
}

// ErrorIs is an assertion form of errors.Is, and fails the test if
// the error (or its wrapped values) are not equal to the target
// error.
func ErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Errorf("error <%v>, is not <%v>", err, target)
	}
}

// NotErrorIs is an assertion form of !errors.Is.
func NotErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if errors.Is(err, target) {
		t.Errorf("error <%v>, is <%v>", err, target)
	}
}

// Panic asserts that the function raises a panic.
func Panic(t testing.TB, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected a panic but got none")
		}
	}()
	fn()
}

// NotPanic asserts that the function does not panic.
func NotPanic(t testing.TB, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			t.Error("panic: ", r)
		}
	}()
	fn()
}

// PanicErrorIs asserts that the function panics with an error that
// is (or wraps) the target.
func PanicErrorIs(t testing.TB, fn func(), target error) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Error("expected a panic but got none")
			return
		}
		err, ok := r.(error)
		if !ok {
			t.Errorf("panic [%v] of type %T is not an error", r, r)
			return
		}
		ErrorIs(t, err, target)
	}()

	fn()
}

// Contains asserts that the item is in the slice provided. Empty or
// nil slices always cause failure.
func Contains[T comparable](t testing.TB, slice []T, item T) {
	t.Helper()
	if len(slice) == 0 {
		t.Error("slice was empty")
	}

	for _, it := range slice {
		if it == item {
			return
		}
	}

	t.Errorf("item <%v> is not in %v", item, slice)
}

// EqualItems compares the values in two slices and records a failure
// if the items are not equal.
func EqualItems[T comparable](t testing.TB, one, two []T) {
	t.Helper()
	if len(one) != len(two) {
		t.Errorf("slices are of different lengths [%d vs %d]", len(one), len(two))
		return
	}

	for idx := range one {
		if one[idx] != two[idx] {
			t.Errorf("items at index %d [%v vs %v] are not equal", idx, one[idx], two[idx])
		}
	}
}

// Substring asserts that the substring is present in the string.
func Substring(t testing.TB, str, substr string) {
	t.Helper()
	if !strings.Contains(str, substr) {
		t.Errorf("expected %q to contain substring %q", str, substr)
	}
}
