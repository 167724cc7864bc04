package fn

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/tychoish/funk"
)

// Transform converts a value of one type into a value of another.
type Transform[S any, T any] func(S) T

// MakeTransform converts a function into a Transform.
func MakeTransform[S any, T any](fn func(S) T) Transform[S, T] { return fn }

func (tf Transform[S, T]) Apply(in S) T { return tf(in) }

// Then composes two transforms: the result applies tf and then passes
// its output to next.
func Then[A any, B any, C any](tf Transform[A, B], next Transform[B, C]) Transform[A, C] {
	return func(in A) C { return next(tf(in)) }
}

// Identity returns its argument.
func Identity[T any](in T) T { return in }

// Reducer combines an accumulated value with the next element of a
// sequence.
type Reducer[T any, A any] func(acc A, in T) A

func (rf Reducer[T, A]) Apply(acc A, in T) A { return rf(acc, in) }

// Memoize wraps a transform with a least-recently-used cache holding
// at most size results, keyed by the input value. Memoized transforms
// are safe for concurrent use when the underlying function is; the
// cache itself is synchronized. The transform may be called more than
// once for the same input after its result is evicted.
//
// Memoize panics if size is not positive or the function is nil.
func Memoize[S comparable, T any](size int, tf func(S) T) Transform[S, T] {
	funk.Invariant.NotNil(tf, "memoized transform")
	funk.Invariant.Argument(size > 0, "memoize cache size must be positive", size)

	cache, err := lru.New[S, T](size)
	funk.Invariant.OK(err == nil, "building memoize cache", err)

	return func(in S) T {
		if out, ok := cache.Get(in); ok {
			return out
		}

		out := tf(in)
		cache.Add(in, out)
		return out
	}
}
