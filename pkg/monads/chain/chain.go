package chain

import (
	"github.com/ib-77/monads/pkg/monads/expected"
)

// Chain wraps an expected.Expected to enable fluent chaining
type Chain[T, E any] struct {
	result expected.Expected[T, E]
}

// Start creates a new chain from an Expected
func Start[T, E any](result expected.Expected[T, E]) *Chain[T, E] {
	return &Chain[T, E]{
		result: result,
	}
}

// FromValue creates a new chain holding a value
func FromValue[T, E any](value T) *Chain[T, E] {
	return Start(expected.Make[T, E](value))
}

// FromError creates a new chain holding an error
func FromError[T, E any](err E) *Chain[T, E] {
	return Start(expected.MakeUnexpected[T](err))
}

// Result returns the underlying Expected
func (c *Chain[T, E]) Result() expected.Expected[T, E] {
	return c.result
}

// Then chains a function that returns expected.Expected[U, E]
func Then[T, U, E any](c *Chain[T, E], onValue func(T) expected.Expected[U, E]) *Chain[U, E] {
	return Start(expected.AndThen(c.result, onValue))
}

// ThenTry chains a function that returns (U, error); toError maps a non-nil
// error into the chain's error type.
func ThenTry[T, U, E any](c *Chain[T, E], tryOnValue func(T) (U, error), toError func(error) E) *Chain[U, E] {
	return Then(c, func(v T) expected.Expected[U, E] {
		out, err := tryOnValue(v)
		if err != nil {
			return expected.MakeUnexpected[U](toError(err))
		}
		return expected.Make[U, E](out)
	})
}

// Map chains a transformation of the value; callable is anything
// expected.Map accepts.
func Map[U, T, E any](c *Chain[T, E], callable any) *Chain[U, E] {
	return Start(expected.Map[U](c.result, callable))
}

// MapError chains a transformation of the error.
func MapError[F, T, E any](c *Chain[T, E], callable any) *Chain[T, F] {
	return Start(expected.MapError[F](c.result, callable))
}

// Ensure performs a side effect without changing the result
func (c *Chain[T, E]) Ensure(onValue func(T)) *Chain[T, E] {
	return Start(expected.Tee(c.result, onValue))
}

// While applies step as long as the chain holds a value satisfying while.
func (c *Chain[T, E]) While(step func(T) expected.Expected[T, E], while func(T) bool) *Chain[T, E] {
	for c.result.HasValue() && while(c.result.Unwrap()) {
		c = Then(c, step)
	}
	return c
}

// Or returns the first of c and alternatives holding a value. Without one it
// returns the first holding an error, and c if all are empty.
func (c *Chain[T, E]) Or(alternatives ...*Chain[T, E]) *Chain[T, E] {
	var failed *Chain[T, E]
	for _, ch := range append([]*Chain[T, E]{c}, alternatives...) {
		if ch.result.HasValue() {
			return ch
		}
		if failed == nil && ch.result.HasError() {
			failed = ch
		}
	}
	if failed != nil {
		return failed
	}
	return c
}

// ValidateAll chains expected.ValidateAll.
func ValidateAll[T any](c *Chain[T, error], breakOnError bool, checks ...func(T) error) *Chain[T, error] {
	return Start(expected.ValidateAll(c.result, breakOnError, checks...))
}

// Finally collapses the chain into a final result using expected.Fold
func Finally[R, T, E any](c *Chain[T, E], onValue func(T) R, onError func(E) R, onEmpty func() R) R {
	return expected.Fold(c.result, onValue, onError, onEmpty)
}
