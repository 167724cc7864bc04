// Package assert provides an incredibly simple assertion framework,
// that relies on generics and simplicity. All assertions are "fatal"
// and cause the test to abort at the failure line (rather than
// continue on error). The check package has the same assertions,
// which record a failure and let the test continue.
package assert

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/tychoish/funk/internal"
)

// True causes a test to fail if the condition is false.
func True(t testing.TB, cond bool) {
	t.Helper()
	if !cond {
		t.Fatal("assertion failure")
	}
}

// Equal causes a test to fail if the two (comparable) values are not
// equal. Be aware that two different pointers and objects passed as
// interfaces that are implemented by pointer receivers are comparable
// as equal and will fail this assertion even if their *values* are
// equal.
func Equal[T comparable](t testing.TB, valOne, valTwo T) {
	t.Helper()
	if valOne != valTwo {
		t.Fatalf("unequal: <%v> != <%v>", valOne, valTwo)
	}
}

// NotEqual causes a test to fail if two (comparable) values are
// equal.
func NotEqual[T comparable](t testing.TB, valOne, valTwo T) {
	t.Helper()
	if valOne == valTwo {
		t.Fatalf("equal: <%v>", valOne)
	}
}

// DeepEqual compares two values of any type with reflect.DeepEqual,
// for values (slices, maps, structs with slice fields) that are not
// comparable.
func DeepEqual[T any](t testing.TB, valOne, valTwo T) {
	t.Helper()
	if !reflect.DeepEqual(valOne, valTwo) {
		t.Fatalf("unequal: <%v> != <%v>", valOne, valTwo)
	}
}

// Nil causes a test to fail if the value is not nil. This operation
// uses reflection, (unlike many in this package,) and correctly
// handles nil values assigned to interfaces (e.g. that they are nil.)
func Nil(t testing.TB, val any) {
	t.Helper()

	if _, ok := val.(error); ok {
		t.Error("use assert.NotError() for checking errors")
	}

	if !internal.IsNil(val) {
		t.Fatalf("value (type=%T), %v was expected to be nil", val, val)
	}
}

// NotNil causes a test to fail if the value is nil.
func NotNil(t testing.TB, val any) {
	t.Helper()

	if _, ok := val.(error); ok {
		t.Error("use assert.Error() for checking errors")
	}

	if internal.IsNil(val) {
		t.Fatalf("value (type=%T), was nil", val)
	}
}

// Zero fails a test if the value is not the zero-value for its type.
func Zero[T comparable](t testing.TB, val T) {
	t.Helper()

	var zero T
	if zero != val {
		t.Fatalf("expected zero for value of type %T <%v>", val, val)
	}
}

// NotZero fails a test if the value is the zero for its type.
func NotZero[T comparable](t testing.TB, val T) {
	t.Helper()
	var zero T
	if zero == val {
		t.Fatalf("expected non-zero for value of type %T", val)
	}
}

// Error fails the test if the error is nil.
func Error(t testing.TB, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected non-nil error")
	}
}

// NotError fails the test if the error is non-nil.
func NotError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

// ErrorIs is an assertion form of errors.Is, and fails the test if
// the error (or its wrapped values) are not equal to the target
// error.
func ErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("error <%v>, is not <%v>", err, target)
	}
}

// NotErrorIs is an assertion form of !errors.Is, and fails the test if
// the error (or its wrapped values) are equal to the target error.
func NotErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if errors.Is(err, target) {
		t.Fatalf("error <%v>, is <%v>", err, target)
	}
}

// Panic asserts that the function raises a panic.
func Panic(t testing.TB, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		if r := recover(); r == nil {
			t.Fatal("expected a panic but got none")
		}
	}()
	fn()
}

// NotPanic asserts that the function does not panic.
func NotPanic(t testing.TB, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		if r := recover(); r != nil {
			t.Fatal("panic: ", r)
		}
	}()
	fn()
}

// PanicErrorIs asserts that the function raises a panic, that the
// panic value is an error, and that the error is (or wraps) the
// target.
func PanicErrorIs(t testing.TB, fn func(), target error) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatal("expected a panic but got none")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic [%v] of type %T is not an error", r, r)
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
		t.Fatal("slice was empty")
	}

	for _, it := range slice {
		if it == item {
			return
		}
	}

	t.Fatalf("item <%v> is not in %v", item, slice)
}

// NotContains asserts that the item is *not* in the slice provided. If
// the input slice is empty, this assertion will never error.
func NotContains[T comparable](t testing.TB, slice []T, item T) {
	t.Helper()

	for _, it := range slice {
		if it == item {
			t.Fatalf("item <%v> is in %v", item, slice)
		}
	}
}

// EqualItems compares the values in two slices and creates an error
// if all items are not equal.
func EqualItems[T comparable](t testing.TB, one, two []T) {
	t.Helper()
	if len(one) != len(two) {
		t.Fatalf("slices are of different lengths [%d vs %d]", len(one), len(two))
	}

	for idx := range one {
		if one[idx] != two[idx] {
			t.Fatalf("items at index %d [%v vs %v] are not equal", idx, one[idx], two[idx])
		}
	}
}

// Substring asserts that the substring is present in the string.
func Substring(t testing.TB, str, substr string) {
	t.Helper()
	if !strings.Contains(str, substr) {
		t.Fatalf("expected %q to contain substring %q", str, substr)
	}
}
