package funk

import (
	"github.com/tychoish/funk/ers"
	"github.com/tychoish/funk/internal"
)

// Invariant provides a namespace for making runtime invariant
// assertions. These all raise panics, passing error objects from
// panic, which can be more easily handled. Adapter constructors use
// it to reject invalid arguments eagerly, so that misconfiguration
// never surfaces as a deferred failure during iteration.
var Invariant RuntimeInvariant = RuntimeInvariant{}

// RuntimeInvariant is a type defined to create a namespace, callable
// (typically) via the Invariant symbol. Access these functions as in:
//
//	funk.Invariant.IsTrue(size > 0, "batch size must be positive", size)
type RuntimeInvariant struct{}

// IsTrue provides a runtime assertion that the condition is true, and
// annotates panic object, which is an error rooted in the
// ErrInvariantViolation. In all other cases the operation is a noop.
func (RuntimeInvariant) IsTrue(cond bool, args ...any) { Invariant.OK(cond, args...) }

// IsFalse provides a runtime assertion that the condition is false,
// and annotates panic object, which is an error rooted in the
// ErrInvariantViolation. In all other cases the operation is a noop.
func (RuntimeInvariant) IsFalse(cond bool, args ...any) { Invariant.OK(!cond, args...) }

// OK panics if the condition is false, passing an error that is
// rooted in InvariantViolation. Otherwise the operation is a noop.
func (RuntimeInvariant) OK(cond bool, args ...any) {
	if !cond {
		panic(ers.NewInvariantViolation(args...))
	}
}

// Argument panics with an error rooted in both ErrInvalidInput and
// ErrInvariantViolation when the condition is false.
func (RuntimeInvariant) Argument(cond bool, args ...any) {
	if !cond {
		panic(ers.NewInvariantViolation(append([]any{ErrInvalidInput}, args...)...))
	}
}

// NotNil panics with an invalid input error when the value is a nil
// interface, pointer, function or channel. The value is typically a
// function, iterator or iterable passed to a constructor. Nil slices
// and maps are accepted, because they are valid empty collections.
func (RuntimeInvariant) NotNil(val any, name string) {
	Invariant.Argument(!internal.IsNilReference(val), name, "must not be nil")
}
