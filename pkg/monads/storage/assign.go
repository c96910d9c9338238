package storage

import (
	"reflect"
)

// Assign tears down the live alternative of p and takes over other. If other
// holds the alternative p already holds with equal contents, as in
// p.Assign(*p), the slot is overwritten without a teardown, so the shared
// contents are not released while still live.
func (p *Pair[T, E]) Assign(other Pair[T, E]) {
	if p.tag == other.tag {
		switch p.tag {
		case Value:
			if Trivial[T]() || same(&p.value, &other.value) {
				*p = other
				return
			}
		case Error:
			if Trivial[E]() || same(&p.err, &other.err) {
				*p = other
				return
			}
		}
	}
	p.Reset()
	*p = other
}

// Assign is Pair.Assign for a Single.
func (s *Single[T]) Assign(other Single[T]) {
	if s.has && other.has && (Trivial[T]() || same(&s.value, &other.value)) {
		*s = other
		return
	}
	s.Reset()
	*s = other
}

// same reports whether two slots hold the same contents: == for comparable
// dynamic types, reflect.DeepEqual otherwise.
func same[T any](a, b *T) (eq bool) {
	va, vb := reflect.ValueOf(a).Elem(), reflect.ValueOf(b).Elem()
	if va.Kind() == reflect.Interface {
		if va.IsNil() || vb.IsNil() {
			return va.IsNil() && vb.IsNil()
		}
		va, vb = va.Elem(), vb.Elem()
		if va.Type() != vb.Type() {
			return false
		}
	}

	if !va.Type().Comparable() {
		return reflect.DeepEqual(va.Interface(), vb.Interface())
	}
	// structs and arrays can still hold incomparable values in interface fields
	defer func() {
		if recover() != nil {
			eq = reflect.DeepEqual(va.Interface(), vb.Interface())
		}
	}()
	return va.Equal(vb)
}
