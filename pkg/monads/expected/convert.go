package expected

import (
	"fmt"
	"reflect"

	"github.com/ib-77/monads/pkg/monads"
	"github.com/ib-77/monads/pkg/monads/storage"
)

// Convertible reports whether Expected[U, F] converts implicitly to
// Expected[T, E], i.e. U to T and F to E both convert implicitly.
func Convertible[T, E, U, F any]() bool {
	return monads.ImplicitFor[T, U]() && monads.ImplicitFor[E, F]()
}

// Convert is the implicit conversion from Expected[U, F]. The held
// alternative is converted, an empty src stays empty. It panics with a
// *monads.ConversionError when Convertible is false, whichever alternative src
// holds.
func Convert[T, E, U, F any](src Expected[U, F]) Expected[T, E] {
	if err := monads.CheckImplicit[T, U](); err != nil {
		panic(err)
	}
	if err := monads.CheckImplicit[E, F](); err != nil {
		panic(err)
	}

	switch src.Tag() {
	case storage.Value:
		return Make[T, E](monads.MustConvertFrom[T](src.Unwrap()))
	case storage.Error:
		return MakeUnexpected[T](monads.MustConvertFrom[E](src.UnwrapError()))
	}
	return empty[T, E]()
}

// ConvertWith is the explicit conversion from Expected[U, F], for types that
// only convert through a constructor.
func ConvertWith[T, E, U, F any](src Expected[U, F], toValue func(U) T, toError func(F) E) Expected[T, E] {
	switch src.Tag() {
	case storage.Value:
		return InPlace[T, E](func() T { return toValue(src.Unwrap()) })
	case storage.Error:
		return InPlaceError[T](func() E { return toError(src.UnwrapError()) })
	}
	return empty[T, E]()
}

// From builds an Expected from a bare value u. u must convert implicitly to
// exactly one of T and E; it then becomes that alternative. Otherwise the
// returned Expected is empty and the error wraps monads.ErrAmbiguous or
// monads.ErrNotConstructible.
func From[T, E any](u any) (Expected[T, E], error) {
	var ut reflect.Type
	if u != nil {
		ut = reflect.TypeOf(u)
	}
	tt, et := monads.TypeOf[T](), monads.TypeOf[E]()
	asValue, asError := monads.Implicit(ut, tt), monads.Implicit(ut, et)

	switch {
	case asValue && asError:
		return empty[T, E](), fmt.Errorf("%w: %v converts to both %v and %v", monads.ErrAmbiguous, ut, tt, et)
	case asValue:
		v, err := monads.Convert[T](u)
		if err != nil {
			return empty[T, E](), err
		}
		return Make[T, E](v), nil
	case asError:
		v, err := monads.Convert[E](u)
		if err != nil {
			return empty[T, E](), err
		}
		return MakeUnexpected[T](v), nil
	}
	return empty[T, E](), fmt.Errorf("%w: %v converts to neither %v nor %v", monads.ErrNotConstructible, ut, tt, et)
}
