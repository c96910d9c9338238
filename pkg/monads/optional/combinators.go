package optional

import (
	"github.com/ib-77/monads/pkg/monads/invoke"
)

// Map applies c to the held value and wraps the result. An empty o yields an
// empty Optional[U] without calling c. Misuse and errors returned by a
// fallible c panic as in expected.Map.
func Map[U, T any](o Optional[T], c any) Optional[U] {
	call := invoke.PrepareOn[U](c, o.Unwrap())
	if !o.HasValue() {
		return None[U]()
	}

	v, err := call.Do()
	if err != nil {
		panic(err)
	}
	return Make(v)
}

// MapMove is Map that moves the value out of o, leaving it empty.
func MapMove[U, T any](o *Optional[T], c any) Optional[U] {
	return Map[U](o.Take(), c)
}

// AndThen switches a held value to the Optional returned by onValue.
func AndThen[T, U any](o Optional[T], onValue func(T) Optional[U]) Optional[U] {
	if !o.HasValue() {
		return None[U]()
	}
	return onValue(o.Unwrap())
}

// MaybeInvoke calls c with args. Its result is held on success; a panic or a
// non-nil error of a fallible c yields an empty Optional. c is resolved before
// the call, so misuse still panics.
func MaybeInvoke[T any](c any, args ...any) (out Optional[T]) {
	call := invoke.Prepare[T](c, args...)

	defer func() {
		if r := recover(); r != nil {
			out = None[T]()
		}
	}()

	v, err := call.Do()
	if err != nil {
		return None[T]()
	}
	return Make(v)
}
