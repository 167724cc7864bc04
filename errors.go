package funk

import (
	"errors"

	"github.com/tychoish/funk/ers"
)

// ErrNoSuchElement is returned by Next when the sequence has no
// further elements.
const ErrNoSuchElement ers.Error = ers.Error("no such element")

// ErrIllegalState is returned by Remove when no element is currently
// eligible for removal: either Next has not returned an element since
// the last removal, or a lookahead has already advanced the
// underlying iterator past it.
const ErrIllegalState ers.Error = ers.Error("illegal iterator state")

// ErrUnsupportedOperation is returned by Remove on iterators that
// cannot modify their underlying collection.
const ErrUnsupportedOperation ers.Error = ers.Error("unsupported operation")

// ErrInvalidInput is the root of the panics raised when an adapter is
// constructed with an invalid argument (nil functions or iterators,
// non-positive batch sizes, negative counts.)
const ErrInvalidInput ers.Error = ers.ErrInvalidInput

// ErrInvariantViolation is the root error of the error object that is
// the content of all panics produced by the Invariant helper.
const ErrInvariantViolation ers.Error = ers.ErrInvariantViolation

// IsExhausted reports whether the error signals the end of a
// sequence.
func IsExhausted(err error) bool { return errors.Is(err, ErrNoSuchElement) }
