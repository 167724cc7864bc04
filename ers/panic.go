package ers

import (
	"fmt"
	"strings"
)

// ParsePanic converts a panic to an error, if it is not, and attaches
// the ErrRecoveredPanic error to that error. If no panic is detected,
// ParsePanic returns nil.
func ParsePanic(r any) error {
	if r == nil {
		return nil
	}

	switch err := r.(type) {
	case error:
		return Join(err, ErrRecoveredPanic)
	case string:
		return Join(New(err), ErrRecoveredPanic)
	default:
		return Join(fmt.Errorf("[%T]: %v", err, err), ErrRecoveredPanic)
	}
}

// WithRecoverCall runs a function without arguments that does not
// produce an error and, if the function panics, converts it into an
// error.
func WithRecoverCall(fn func()) (err error) {
	defer func() { err = ParsePanic(recover()) }()
	fn()
	return
}

// WithRecoverDo runs a function with a panic handler that converts
// the panic to an error.
func WithRecoverDo[T any](fn func() T) (out T, err error) {
	defer func() { err = ParsePanic(recover()) }()
	out = fn()
	return
}

// NewInvariantViolation creates a new error object, which always
// includes ErrInvariantViolation. Error arguments are joined, and the
// remaining arguments are rendered as the message.
func NewInvariantViolation(args ...any) error {
	switch len(args) {
	case 0:
		return ErrInvariantViolation
	case 1:
		switch ei := args[0].(type) {
		case error:
			return Join(ei, ErrInvariantViolation)
		case string:
			return Join(New(ei), ErrInvariantViolation)
		case func() error:
			return Join(ei(), ErrInvariantViolation)
		default:
			return Join(fmt.Errorf("%v", args[0]), ErrInvariantViolation)
		}
	default:
		var rest []any
		var errs []error
		for _, arg := range args {
			switch val := arg.(type) {
			case nil:
				continue
			case error:
				errs = append(errs, val)
			default:
				rest = append(rest, val)
			}
		}
		if len(rest) > 0 {
			errs = append(errs, New(strings.TrimSpace(fmt.Sprintln(rest...))))
		}
		return Join(append(errs, ErrInvariantViolation)...)
	}
}
