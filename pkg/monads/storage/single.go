package storage

// Single holds at most one T. The zero Single is empty.
type Single[T any] struct {
	value T
	has   bool
}

// NewSingle returns a Single holding v.
func NewSingle[T any](v T) Single[T] {
	return Single[T]{value: v, has: true}
}

func (s *Single[T]) Has() bool {
	return s.has
}

// Value returns the slot. Only meaningful when Has is true.
func (s *Single[T]) Value() *T {
	return &s.value
}

// Emplace tears down the held value and constructs a new one from ctor. A
// panic in ctor leaves the Single empty and keeps propagating.
func (s *Single[T]) Emplace(ctor func() T) *T {
	s.Reset()
	v := ctor()
	s.value = v
	s.has = true
	return &s.value
}

// Reset tears down the held value, if any. Calling it again is a no-op.
func (s *Single[T]) Reset() {
	if s.has {
		teardown(&s.value, Trivial[T]())
	}
	s.has = false
}

// Take moves the contents out, leaving s empty without tearing anything down.
func (s *Single[T]) Take() Single[T] {
	out := *s
	*s = Single[T]{}
	return out
}
