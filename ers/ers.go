// Package ers provides sentinel error constants and a few small
// helpers for joining, wrapping and recovering errors. It has no
// dependencies outside of the standard library.
package ers

import (
	"errors"
	"fmt"
)

// Error is a type alias for building/declaring sentinel errors
// as constants.
//
// In addition to nil error interface values, the Empty string is
// considered equal to nil errors for the purposes of Is(). errors.As
// correctly handles unwrapping and casting Error-typed error objects.
type Error string

// New constructs an error object that uses the Error as the
// underlying type.
func New(str string) error { return Error(str) }

// Error implements the error interface for Error.
func (e Error) Error() string { return string(e) }

// Is satisfies the Is() interface without using reflection.
func (e Error) Is(err error) bool {
	switch {
	case err == nil && e == "":
		return true
	case (err == nil) != (e == ""):
		return false
	default:
		switch x := err.(type) {
		case Error:
			return x == e
		default:
			return false
		}
	}
}

// Ok returns true when the error is nil, and false otherwise.
func Ok(err error) bool { return err == nil }

// IsError returns true when the error is non-nil. Provides the
// inverse of Ok().
func IsError(err error) bool { return !Ok(err) }

// Is returns true if the error is one of the target errors, (or one
// of it's constituent (wrapped) errors is a target error. ers.Is uses
// errors.Is.
func Is(err error, targets ...error) bool {
	for _, target := range targets {
		if err == nil && target != nil {
			continue
		}
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// As is a wrapper around errors.As to allow ers to be a drop in
// replacement for errors.
func As(err error, target any) bool { return errors.As(err, target) }

// When returns the error IF the conditional is true, and returns nil
// otherwise.
func When(cond bool, err error) error {
	if !cond {
		return nil
	}

	return err
}

// Wrap produces a wrapped error if the err is non-nil, wrapping the
// error with the provided annotation. When the error is nil, Wrap
// returns nil.
func Wrap(err error, annotation string) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s: %w", annotation, err)
}

// Wrapf produces a wrapped error, if the error is non-nil, with a
// formated wrap annotation. When the error is nil, Wrapf does not
// build an error and returns nil.
func Wrapf(err error, tmpl string, args ...any) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s: %w", fmt.Sprintf(tmpl, args...), err)
}
