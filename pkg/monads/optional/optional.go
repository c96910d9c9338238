package optional

import (
	"fmt"
	"reflect"

	"github.com/ib-77/monads/pkg/monads"
	"github.com/ib-77/monads/pkg/monads/storage"
)

// Optional holds a T or nothing. The zero Optional holds nothing.
type Optional[T any] struct {
	s storage.Single[T]
}

var _ monads.Holder[int] = Optional[int]{}

func Make[T any](v T) Optional[T] {
	return Optional[T]{s: storage.NewSingle(v)}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

// InPlace constructs the value from ctor. A panic in ctor propagates.
func InPlace[T any](ctor func() T) Optional[T] {
	var o Optional[T]
	o.s.Emplace(ctor)
	return o
}

// From builds an Optional from a bare value that converts implicitly to T.
func From[T any](u any) (Optional[T], error) {
	v, err := monads.Convert[T](u)
	if err != nil {
		var ut reflect.Type
		if u != nil {
			ut = reflect.TypeOf(u)
		}
		return None[T](), fmt.Errorf("%w: %v to %v", monads.ErrNotConstructible, ut, monads.TypeOf[T]())
	}
	return Make(v), nil
}

// FromHolder keeps the value of h, if any.
func FromHolder[T any](h monads.Holder[T]) Optional[T] {
	if h.HasValue() {
		return Make(h.Unwrap())
	}
	return None[T]()
}

// Convert is the implicit conversion from Optional[U]; it panics with a
// *monads.ConversionError if U does not convert implicitly to T.
func Convert[T, U any](src Optional[U]) Optional[T] {
	if err := monads.CheckImplicit[T, U](); err != nil {
		panic(err)
	}
	if !src.HasValue() {
		return None[T]()
	}
	return Make(monads.MustConvertFrom[T](src.Unwrap()))
}

// ConvertWith is the explicit conversion from Optional[U].
func ConvertWith[T, U any](src Optional[U], to func(U) T) Optional[T] {
	if !src.HasValue() {
		return None[T]()
	}
	return InPlace(func() T { return to(src.Unwrap()) })
}

func (o Optional[T]) HasValue() bool {
	return o.s.Has()
}

// Ok is the boolean conversion: true iff a value is held.
func (o Optional[T]) Ok() bool {
	return o.s.Has()
}

// Value returns the held value, or ErrBadOptionalAccess.
func (o Optional[T]) Value() (T, error) {
	if !o.s.Has() {
		var zero T
		return zero, monads.ErrBadOptionalAccess
	}
	return *o.s.Value(), nil
}

func (o Optional[T]) MustValue() T {
	v, err := o.Value()
	if err != nil {
		panic(err)
	}
	return v
}

// Unwrap returns the slot without checking; the zero T when empty.
func (o Optional[T]) Unwrap() T {
	return *o.s.Value()
}

// Deref returns a pointer to the slot without checking. It stays valid until
// the next mutation of o.
func (o *Optional[T]) Deref() *T {
	return o.s.Value()
}

func (o Optional[T]) ValueOr(def T) T {
	if o.s.Has() {
		return *o.s.Value()
	}
	return def
}

// Emplace tears down the held value and stores v.
func (o *Optional[T]) Emplace(v T) *T {
	return o.s.Emplace(func() T { return v })
}

// EmplaceWith tears down the held value and constructs a new one from ctor.
// If ctor panics, o is left empty.
func (o *Optional[T]) EmplaceWith(ctor func() T) *T {
	return o.s.Emplace(ctor)
}

// EmplaceFunc is EmplaceWith for constructors that report failure; on error o
// is left empty.
func (o *Optional[T]) EmplaceFunc(ctor func() (T, error)) (*T, error) {
	o.s.Reset()
	v, err := ctor()
	if err != nil {
		return nil, err
	}
	return o.s.Emplace(func() T { return v }), nil
}

func (o *Optional[T]) Reset() {
	o.s.Reset()
}

// Set tears down the held value, then takes over a copy of other. Setting o
// to a copy of itself keeps the value live.
func (o *Optional[T]) Set(other Optional[T]) {
	o.s.Assign(other.s)
}

// Take moves the contents out of o, leaving it empty.
func (o *Optional[T]) Take() Optional[T] {
	return Optional[T]{s: o.s.Take()}
}

func (o Optional[T]) String() string {
	if o.s.Has() {
		return fmt.Sprintf("Optional(%v)", *o.s.Value())
	}
	return "Optional(none)"
}
