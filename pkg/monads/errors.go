package monads

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrBadExpectedAccess is returned by the checked accessors of Expected when
	// the requested alternative is not the live one.
	ErrBadExpectedAccess = errors.New("monads: bad expected access")
	// ErrBadOptionalAccess is returned by the checked accessors of Optional when
	// no value is held.
	ErrBadOptionalAccess = errors.New("monads: bad optional access")

	ErrNotInvocable     = errors.New("monads: not invocable")
	ErrNotConstructible = errors.New("monads: not constructible")
	ErrAmbiguous        = errors.New("monads: ambiguous construction")
	ErrNotConvertible   = errors.New("monads: not convertible")

	// ErrNilHandle is the panic value raised when a nil pointer handle is
	// dereferenced by the invocation resolver.
	ErrNilHandle = errors.New("monads: nil handle dereferenced")
)

// ConversionError reports a conversion that is not available between two types.
type ConversionError struct {
	From reflect.Type
	To   reflect.Type
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s: %v to %v", ErrNotConvertible, e.From, e.To)
}

func (e *ConversionError) Unwrap() error {
	return ErrNotConvertible
}

func newConversionError(from, to reflect.Type) *ConversionError {
	return &ConversionError{From: from, To: to}
}
