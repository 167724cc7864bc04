// Package fn provides named function types for the callbacks accepted
// by the lazy and eager operations, along with combinators for
// building them up from smaller functions.
package fn

// Predicate reports whether a value satisfies some condition.
type Predicate[T any] func(T) bool

// MakePredicate converts a function into a Predicate.
func MakePredicate[T any](fn func(T) bool) Predicate[T] { return fn }

func (pf Predicate[T]) Apply(in T) bool { return pf(in) }

// Not returns a predicate that is true when the original is false.
func (pf Predicate[T]) Not() Predicate[T] { return Not(pf) }

// And returns a predicate that is true when this predicate and all of
// the others are true.
func (pf Predicate[T]) And(others ...Predicate[T]) Predicate[T] {
	return And(append([]Predicate[T]{pf}, others...)...)
}

// Or returns a predicate that is true when this predicate or any of
// the others is true.
func (pf Predicate[T]) Or(others ...Predicate[T]) Predicate[T] {
	return Or(append([]Predicate[T]{pf}, others...)...)
}

// Not inverts a predicate.
func Not[T any](pf Predicate[T]) Predicate[T] { return func(in T) bool { return !pf(in) } }

// And combines predicates, short circuiting at the first predicate
// that is false. And with no predicates is always true. Nil
// predicates are skipped.
func And[T any](pfs ...Predicate[T]) Predicate[T] {
	return func(in T) bool {
		for _, pf := range pfs {
			if pf != nil && !pf(in) {
				return false
			}
		}
		return true
	}
}

// Or combines predicates, short circuiting at the first predicate
// that is true. Or with no predicates is always false. Nil predicates
// are skipped.
func Or[T any](pfs ...Predicate[T]) Predicate[T] {
	return func(in T) bool {
		for _, pf := range pfs {
			if pf != nil && pf(in) {
				return true
			}
		}
		return false
	}
}

// Equals returns a predicate that matches values equal to the
// argument.
func Equals[T comparable](val T) Predicate[T] { return func(in T) bool { return in == val } }
