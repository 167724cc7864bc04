package ers

import "errors"

// ErrInvalidInput indicates malformed input or configuration. These
// errors are not retriable.
const ErrInvalidInput Error = Error("invalid input")

// ErrInvariantViolation is the root error of the error object that is
// the content of all panics produced by invariant assertions.
const ErrInvariantViolation Error = Error("invariant violation")

// ErrRecoveredPanic is at the root of any error returned by a
// function in this module that recovers from a panic.
const ErrRecoveredPanic Error = Error("recovered panic")

// ErrNotImplemented indicates that an operation is structurally not
// available on a type.
const ErrNotImplemented Error = Error("not implemented")

// IsInvariantViolation returns true if the argument is or resolves to
// ErrInvariantViolation.
func IsInvariantViolation(r any) bool {
	err, _ := r.(error)

	if r == nil || Ok(err) {
		return false
	}

	return errors.Is(err, ErrInvariantViolation)
}
