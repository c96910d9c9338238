package storage

// Pair holds at most one of a T value and an E error.
//
// The zero Pair holds the zero T. Copying a Pair copies the live alternative
// as a Go value; with Releaser contents only one of the copies should be
// reset.
type Pair[T, E any] struct {
	value T
	err   E
	tag   Tag
}

// NewValue returns a Pair holding v.
func NewValue[T, E any](v T) Pair[T, E] {
	return Pair[T, E]{value: v, tag: Value}
}

// NewError returns a Pair holding e.
func NewError[T, E any](e E) Pair[T, E] {
	return Pair[T, E]{err: e, tag: Error}
}

// NewEmpty returns a Pair holding neither alternative.
func NewEmpty[T, E any]() Pair[T, E] {
	return Pair[T, E]{tag: Empty}
}

func (p *Pair[T, E]) Tag() Tag {
	return p.tag
}

// Value returns the value slot. Only meaningful when Tag is Value.
func (p *Pair[T, E]) Value() *T {
	return &p.value
}

// Error returns the error slot. Only meaningful when Tag is Error.
func (p *Pair[T, E]) Error() *E {
	return &p.err
}

// EmplaceValue tears down the live alternative and constructs the value from
// ctor. A panic in ctor leaves the Pair Empty and keeps propagating.
func (p *Pair[T, E]) EmplaceValue(ctor func() T) *T {
	p.Reset()
	v := ctor()
	p.value = v
	p.tag = Value
	return &p.value
}

// EmplaceError tears down the live alternative and constructs the error from
// ctor. A panic in ctor leaves the Pair Empty and keeps propagating.
func (p *Pair[T, E]) EmplaceError(ctor func() E) *E {
	p.Reset()
	e := ctor()
	p.err = e
	p.tag = Error
	return &p.err
}

// Reset tears down the live alternative, if any, and marks the Pair Empty.
// Calling it again is a no-op.
func (p *Pair[T, E]) Reset() {
	switch p.tag {
	case Value:
		teardown(&p.value, Trivial[T]())
	case Error:
		teardown(&p.err, Trivial[E]())
	}
	p.tag = Empty
}

// Take moves the contents out, leaving p Empty without tearing anything down.
func (p *Pair[T, E]) Take() Pair[T, E] {
	out := *p
	var zero Pair[T, E]
	*p = zero
	p.tag = Empty
	return out
}
