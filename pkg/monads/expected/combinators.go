package expected

import (
	"github.com/ib-77/monads/pkg/monads/invoke"
	"github.com/ib-77/monads/pkg/monads/storage"
)

// Map applies c to the held value and wraps the result as the value of a new
// Expected. An error is passed through unchanged without calling c, an empty
// e stays empty. c is anything invoke accepts with a T receiver: a func, an
// invoke.Method or an invoke.Field.
//
// c is resolved before looking at e, so a c that does not apply panics with
// *invoke.NotInvocableError whatever e holds. If c is fallible and returns a
// non-nil error, Map panics with that error; use TryInvoke to capture it.
func Map[U, T, E any](e Expected[T, E], c any) Expected[U, E] {
	call := invoke.PrepareOn[U](c, e.Unwrap())

	switch e.Tag() {
	case storage.Value:
		v, err := call.Do()
		if err != nil {
			panic(err)
		}
		return Make[U, E](v)
	case storage.Error:
		return MakeUnexpected[U](e.UnwrapError())
	}
	return empty[U, E]()
}

// MapMove is Map that moves the contents out of e, leaving it empty.
func MapMove[U, T, E any](e *Expected[T, E], c any) Expected[U, E] {
	return Map[U](e.Take(), c)
}

// MapError applies c to the held error and wraps the result as the error of a
// new Expected. A value is passed through unchanged without calling c.
func MapError[F, T, E any](e Expected[T, E], c any) Expected[T, F] {
	call := invoke.PrepareOn[F](c, e.UnwrapError())

	switch e.Tag() {
	case storage.Error:
		f, err := call.Do()
		if err != nil {
			panic(err)
		}
		return MakeUnexpected[T](f)
	case storage.Value:
		return Make[T, F](e.Unwrap())
	}
	return empty[T, F]()
}

// MapErrorMove is MapError that moves the contents out of e, leaving it empty.
func MapErrorMove[F, T, E any](e *Expected[T, E], c any) Expected[T, F] {
	return MapError[F](e.Take(), c)
}

// AndThen switches a held value to the Expected returned by onValue. Errors
// and the empty state pass through.
func AndThen[T, E, U any](e Expected[T, E], onValue func(T) Expected[U, E]) Expected[U, E] {
	switch e.Tag() {
	case storage.Value:
		return onValue(e.Unwrap())
	case storage.Error:
		return MakeUnexpected[U](e.UnwrapError())
	}
	return empty[U, E]()
}

// Tee runs onValue on a held value and returns e unchanged.
func Tee[T, E any](e Expected[T, E], onValue func(T)) Expected[T, E] {
	if e.HasValue() {
		onValue(e.Unwrap())
	}
	return e
}

// Fold collapses e into an R. onEmpty may be nil, the zero R is returned for
// an empty e then.
func Fold[R, T, E any](e Expected[T, E],
	onValue func(T) R,
	onError func(E) R,
	onEmpty func() R) R {

	switch e.Tag() {
	case storage.Value:
		return onValue(e.Unwrap())
	case storage.Error:
		return onError(e.UnwrapError())
	}
	if onEmpty != nil {
		return onEmpty()
	}
	var zero R
	return zero
}
