package expected

import (
	"errors"

	"github.com/ib-77/monads/pkg/monads"
	"github.com/ib-77/monads/pkg/monads/invoke"
)

// TryInvoke calls c with args and captures any failure: a panic, or the
// non-nil error of a fallible c, ends up as a *monads.Exception in the error
// alternative. c is resolved before the guarded call, so misuse still panics.
func TryInvoke[T any](c any, args ...any) Expected[T, *monads.Exception] {
	v, rec, err := guarded(invoke.Prepare[T](c, args...))

	switch {
	case rec != nil:
		return MakeUnexpected[T](monads.Capture(rec.v))
	case err != nil:
		return MakeUnexpected[T](monads.CaptureError(err))
	}
	return Make[T, *monads.Exception](v)
}

// TryInvokeAs is TryInvoke that only captures failures errors.As can extract
// as X. Other panics are raised again with their original value, other
// returned errors are raised with panic(err).
func TryInvokeAs[T any, X error](c any, args ...any) Expected[T, X] {
	v, rec, err := guarded(invoke.Prepare[T](c, args...))

	var x X
	switch {
	case rec != nil:
		if e, ok := rec.v.(error); ok && errors.As(e, &x) {
			return MakeUnexpected[T](x)
		}
		panic(rec.v)
	case err != nil:
		if errors.As(err, &x) {
			return MakeUnexpected[T](x)
		}
		panic(err)
	}
	return Make[T, X](v)
}

type recovered struct {
	v any
}

func guarded[T any](call invoke.Call[T]) (v T, rec *recovered, err error) {
	defer func() {
		if r := recover(); r != nil {
			rec = &recovered{v: r}
		}
	}()

	v, err = call.Do()
	return v, nil, err
}
