package monads

import (
	"reflect"
)

// Implicit reports whether a value of type from converts to type to without
// an explicit conversion step: Go assignability, plus numeric widening and
// narrowing between integer and floating point kinds, and complex to complex.
// The numeric rule only targets predeclared types (float64, int, ...); a
// named numeric type such as `type Port uint16` is a distinct type and is
// reached only by assignment or an explicit conversion. Conversions Go allows
// but which change meaning (int to string, slice to array pointer, ...) are
// explicit only.
func Implicit(from, to reflect.Type) bool {
	if to == nil {
		return false
	}
	if from == nil {
		return Nilable(to)
	}
	if from.AssignableTo(to) {
		return true
	}
	if !predeclared(to) {
		return false
	}
	switch {
	case isReal(from.Kind()) && isReal(to.Kind()):
		return true
	case isComplex(from.Kind()) && isComplex(to.Kind()):
		return true
	}
	return false
}

// ImplicitFor is Implicit over static types.
func ImplicitFor[To, From any]() bool {
	return Implicit(TypeOf[From](), TypeOf[To]())
}

// CheckImplicit returns a *ConversionError unless From converts implicitly
// to To.
func CheckImplicit[To, From any]() error {
	from, to := TypeOf[From](), TypeOf[To]()
	if !Implicit(from, to) {
		return newConversionError(from, to)
	}
	return nil
}

// Convert converts v (by its dynamic type) to To if the conversion is
// implicit.
func Convert[To any](v any) (To, error) {
	var from reflect.Type
	rv := reflect.ValueOf(v)
	if rv.IsValid() {
		from = rv.Type()
	}
	return convert[To](rv, from)
}

// ConvertFrom converts v (by its static type From) to To if the conversion is
// implicit.
func ConvertFrom[To, From any](v From) (To, error) {
	return convert[To](ValueOf(v), TypeOf[From]())
}

// MustConvertFrom is ConvertFrom that panics with a *ConversionError.
func MustConvertFrom[To, From any](v From) To {
	out, err := ConvertFrom[To](v)
	if err != nil {
		panic(err)
	}
	return out
}

func convert[To any](rv reflect.Value, from reflect.Type) (To, error) {
	var out To
	to := TypeOf[To]()
	if !Implicit(from, to) {
		return out, newConversionError(from, to)
	}

	dst := reflect.ValueOf(&out).Elem()
	switch {
	case !rv.IsValid():
		// untyped nil, already the zero value
	case rv.Kind() == reflect.Interface && rv.IsNil():
		// nil interface of a static type, stays the zero value of To
	case rv.Type().AssignableTo(to):
		dst.Set(rv)
	default:
		dst.Set(rv.Convert(to))
	}
	return out, nil
}

func predeclared(t reflect.Type) bool {
	return t.PkgPath() == "" && t.Name() != ""
}

func isReal(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func isComplex(k reflect.Kind) bool {
	return k == reflect.Complex64 || k == reflect.Complex128
}
