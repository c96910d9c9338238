package monads

import (
	"reflect"
)

// IsNil reports nil interfaces and interfaces holding a nil pointer, map,
// slice, func or chan.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	if Nilable(v.Type()) && v.IsNil() {
		return true
	}
	return false
}

// Nilable reports whether the zero value of t is nil. A nil t stands for an
// untyped nil and is nilable.
func Nilable(t reflect.Type) bool {
	if t == nil {
		return true
	}
	switch t.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return true
	}
	return false
}

// TypeOf returns the static type of T, interface types included.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// ValueOf returns v as a reflect.Value of its static type T, so interface
// typed values keep their interface type (and a nil interface stays valid).
func ValueOf[T any](v T) reflect.Value {
	return reflect.ValueOf(&v).Elem()
}
