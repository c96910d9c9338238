package expected

import (
	"fmt"

	"github.com/ib-77/monads/pkg/monads"
	"github.com/ib-77/monads/pkg/monads/storage"
)

// Expected holds a T value or an E error, never both. It holds neither only
// after a failed in-place construction, a Reset or a Take.
//
// The zero Expected holds the zero T, same as New.
type Expected[T, E any] struct {
	s storage.Pair[T, E]
}

var _ monads.Holder[int] = Expected[int, error]{}

// New returns an Expected holding the zero T.
func New[T, E any]() Expected[T, E] {
	return Expected[T, E]{s: storage.NewValue[T, E](*new(T))}
}

func Make[T, E any](v T) Expected[T, E] {
	return Expected[T, E]{s: storage.NewValue[T, E](v)}
}

func MakeUnexpected[T, E any](err E) Expected[T, E] {
	return Expected[T, E]{s: storage.NewError[T](err)}
}

// InPlace constructs the value alternative from ctor. A panic in ctor
// propagates to the caller.
func InPlace[T, E any](ctor func() T) Expected[T, E] {
	var e Expected[T, E]
	e.s.EmplaceValue(ctor)
	return e
}

// InPlaceError constructs the error alternative from ctor. A panic in ctor
// propagates to the caller.
func InPlaceError[T, E any](ctor func() E) Expected[T, E] {
	var e Expected[T, E]
	e.s.EmplaceError(ctor)
	return e
}

func empty[T, E any]() Expected[T, E] {
	return Expected[T, E]{s: storage.NewEmpty[T, E]()}
}

func (e Expected[T, E]) Tag() storage.Tag {
	return e.s.Tag()
}

func (e Expected[T, E]) HasValue() bool {
	return e.s.Tag() == storage.Value
}

func (e Expected[T, E]) HasError() bool {
	return e.s.Tag() == storage.Error
}

// IsEmpty reports the state left behind by a failed construction, a Reset or
// a Take.
func (e Expected[T, E]) IsEmpty() bool {
	return e.s.Tag() == storage.Empty
}

// Ok is the boolean conversion: true iff a value is held.
func (e Expected[T, E]) Ok() bool {
	return e.HasValue()
}

// Value returns the held value, or ErrBadExpectedAccess if there is none.
func (e Expected[T, E]) Value() (T, error) {
	if !e.HasValue() {
		var zero T
		return zero, e.badAccess(storage.Value)
	}
	return *e.s.Value(), nil
}

// Error returns the held error value, or ErrBadExpectedAccess if there is
// none.
func (e Expected[T, E]) Error() (E, error) {
	if !e.HasError() {
		var zero E
		return zero, e.badAccess(storage.Error)
	}
	return *e.s.Error(), nil
}

func (e Expected[T, E]) MustValue() T {
	v, err := e.Value()
	if err != nil {
		panic(err)
	}
	return v
}

func (e Expected[T, E]) MustError() E {
	v, err := e.Error()
	if err != nil {
		panic(err)
	}
	return v
}

// Unwrap returns the value slot without checking the state. The caller must
// know a value is held; otherwise the result is the zero T.
func (e Expected[T, E]) Unwrap() T {
	return *e.s.Value()
}

// UnwrapError returns the error slot without checking the state.
func (e Expected[T, E]) UnwrapError() E {
	return *e.s.Error()
}

// Deref returns a pointer to the value slot without checking the state. It
// stays valid until the next mutation of e.
func (e *Expected[T, E]) Deref() *T {
	return e.s.Value()
}

// ValueOr returns the held value or def.
func (e Expected[T, E]) ValueOr(def T) T {
	if e.HasValue() {
		return *e.s.Value()
	}
	return def
}

// Emplace tears down the held alternative and stores v as the value.
func (e *Expected[T, E]) Emplace(v T) *T {
	return e.s.EmplaceValue(func() T { return v })
}

// EmplaceWith tears down the held alternative and constructs the value from
// ctor. If ctor panics, e is left empty.
func (e *Expected[T, E]) EmplaceWith(ctor func() T) *T {
	return e.s.EmplaceValue(ctor)
}

// EmplaceFunc is EmplaceWith for constructors that report failure; on error e
// is left empty and the error is returned.
func (e *Expected[T, E]) EmplaceFunc(ctor func() (T, error)) (*T, error) {
	e.s.Reset()
	v, err := ctor()
	if err != nil {
		return nil, err
	}
	return e.s.EmplaceValue(func() T { return v }), nil
}

// EmplaceError tears down the held alternative and stores err as the error.
func (e *Expected[T, E]) EmplaceError(err E) *E {
	return e.s.EmplaceError(func() E { return err })
}

// EmplaceErrorWith tears down the held alternative and constructs the error
// from ctor. If ctor panics, e is left empty.
func (e *Expected[T, E]) EmplaceErrorWith(ctor func() E) *E {
	return e.s.EmplaceError(ctor)
}

// Reset tears down the held alternative and leaves e empty.
func (e *Expected[T, E]) Reset() {
	e.s.Reset()
}

// Set tears down the held alternative, then takes over a copy of other.
// Setting e to a copy of itself keeps the contents live.
func (e *Expected[T, E]) Set(other Expected[T, E]) {
	e.s.Assign(other.s)
}

// Take moves the contents out of e, leaving it empty.
func (e *Expected[T, E]) Take() Expected[T, E] {
	return Expected[T, E]{s: e.s.Take()}
}

func (e Expected[T, E]) String() string {
	switch e.s.Tag() {
	case storage.Value:
		return fmt.Sprintf("Expected(value: %v)", *e.s.Value())
	case storage.Error:
		return fmt.Sprintf("Expected(error: %v)", *e.s.Error())
	}
	return "Expected(empty)"
}

func (e Expected[T, E]) badAccess(want storage.Tag) error {
	return fmt.Errorf("%w: want %s, holds %s", monads.ErrBadExpectedAccess, want, e.s.Tag())
}
