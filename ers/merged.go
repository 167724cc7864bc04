package ers

import (
	"bytes"
	"errors"
)

// Stack represents the error type returned by Join when it has more
// than one error. The implementation provides support for
// errors.Unwrap and errors.Is, and provides an Unwind() method which
// returns a slice of the constituent errors for additional use.
type Stack struct {
	err   error
	next  *Stack
	count int
}

// Join takes a slice of errors and converts it into an *ers.Stack
// typed error. Nil errors are dropped; a single error is returned
// unchanged.
func Join(errs ...error) error {
	s := &Stack{}
	for _, err := range errs {
		s.Push(err)
	}

	switch s.count {
	case 0:
		return nil
	case 1:
		return s.err
	default:
		return s
	}
}

// Len reports the number of errors in the stack.
func (e *Stack) Len() int {
	if e == nil {
		return 0
	}
	return e.count
}

// Push adds an error to the stack. Nil errors are ignored, and
// stacks (or errors that unwrap to a slice) are flattened.
func (e *Stack) Push(err error) {
	switch werr := err.(type) {
	case nil:
		return
	case *Stack:
		errs := werr.Unwind()
		for idx := len(errs) - 1; idx >= 0; idx-- {
			e.Push(errs[idx])
		}
	case interface{ Unwrap() []error }:
		for _, err := range werr.Unwrap() {
			e.Push(err)
		}
	default:
		if e.err != nil {
			e.next = &Stack{next: e.next, err: e.err, count: e.count}
		}
		e.err = err
		e.count++
	}
}

// Error produces the aggregated error strings from this method,
// oldest error first.
func (e *Stack) Error() string {
	if e.err == nil && e.next == nil {
		return "<nil>"
	}

	errs := e.Unwind()
	buf := &bytes.Buffer{}
	for idx := len(errs) - 1; idx >= 0; idx-- {
		if buf.Len() > 0 {
			buf.WriteString(": ")
		}
		buf.WriteString(errs[idx].Error())
	}

	return buf.String()
}

// Is reports whether any error in the stack matches the target.
func (e *Stack) Is(err error) bool {
	for _, item := range e.Unwind() {
		if errors.Is(item, err) {
			return true
		}
	}
	return false
}

// As calls errors.As on the constituent errors to provide
// compatibility with errors.As.
func (e *Stack) As(target any) bool {
	for _, item := range e.Unwind() {
		if errors.As(item, target) {
			return true
		}
	}
	return false
}

// Unwind returns the constituent errors, most recent first.
func (e *Stack) Unwind() []error {
	out := make([]error, 0, e.count)
	for iter := e; iter != nil && iter.err != nil; iter = iter.next {
		out = append(out, iter.err)
	}

	return out
}
