package invoke

import (
	"reflect"

	"github.com/ib-77/monads/pkg/monads"
)

var errorType = monads.TypeOf[error]()

// Resolution is the outcome of classifying a callable against argument types.
type Resolution struct {
	Shape Shape
	// Result is the type of the value the call produces, nil for callables
	// without one. A trailing error result is not part of it.
	Result reflect.Type
	// Fallible is set when the callable reports failure through a trailing
	// error result.
	Fallible bool
}

// Invocable reports whether a shape applies.
func (r Resolution) Invocable() bool {
	return r.Shape != NotInvocable
}

type probe func(c any, args []reflect.Type) (Resolution, bool)

// probes in priority order, the first match wins
var probes = [...]probe{
	methodDirect,
	methodGet,
	methodDeref,
	fieldDirect,
	fieldGet,
	fieldDeref,
	plainCall,
}

// Resolve classifies c against args. A nil entry in args stands for an
// untyped nil argument. Nothing is called.
func Resolve(c any, args ...reflect.Type) Resolution {
	for _, p := range probes {
		if res, ok := p(c, args); ok {
			return res
		}
	}
	return Resolution{Shape: NotInvocable}
}

// IsInvocable reports whether any shape applies to c and args.
func IsInvocable(c any, args ...reflect.Type) bool {
	return Resolve(c, args...).Invocable()
}

func methodDirect(c any, args []reflect.Type) (Resolution, bool) {
	return method(c, args, MethodDirect, func(t reflect.Type) (reflect.Type, bool) {
		return t, t != nil
	})
}

func methodGet(c any, args []reflect.Type) (Resolution, bool) {
	return method(c, args, MethodGet, getTarget)
}

func methodDeref(c any, args []reflect.Type) (Resolution, bool) {
	return method(c, args, MethodDeref, derefTarget)
}

func method(c any, args []reflect.Type, shape Shape,
	target func(t reflect.Type) (reflect.Type, bool)) (Resolution, bool) {

	m, ok := c.(MemberFunc)
	if !ok || !m.fn.IsValid() || len(args) == 0 {
		return Resolution{}, false
	}

	recv, ok := target(args[0])
	if !ok || !recv.AssignableTo(m.Receiver()) {
		return Resolution{}, false
	}

	ft := m.Type()
	if !argsFit(ft, 1, args[1:]) {
		return Resolution{}, false
	}
	return results(shape, ft)
}

func fieldDirect(c any, args []reflect.Type) (Resolution, bool) {
	return field(c, args, FieldDirect, func(t reflect.Type) (reflect.Type, bool) {
		return t, t != nil
	})
}

func fieldGet(c any, args []reflect.Type) (Resolution, bool) {
	return field(c, args, FieldGet, getTarget)
}

func fieldDeref(c any, args []reflect.Type) (Resolution, bool) {
	return field(c, args, FieldDeref, derefTarget)
}

func field(c any, args []reflect.Type, shape Shape,
	target func(t reflect.Type) (reflect.Type, bool)) (Resolution, bool) {

	d, ok := c.(DataMember)
	if !ok || d.owner == nil || len(args) != 1 {
		return Resolution{}, false
	}

	owner, ok := target(args[0])
	if !ok || !owner.AssignableTo(d.owner) {
		return Resolution{}, false
	}
	return Resolution{Shape: shape, Result: d.typ}, true
}

func plainCall(c any, args []reflect.Type) (Resolution, bool) {
	ft := reflect.TypeOf(c)
	if ft == nil || ft.Kind() != reflect.Func {
		return Resolution{}, false
	}
	if !argsFit(ft, 0, args) {
		return Resolution{}, false
	}
	return results(PlainCall, ft)
}

// getTarget returns the result type of t's Get() accessor.
func getTarget(t reflect.Type) (reflect.Type, bool) {
	if t == nil {
		return nil, false
	}
	m, ok := t.MethodByName("Get")
	if !ok {
		return nil, false
	}
	// method types of concrete types carry the receiver as first input
	in := 1
	if t.Kind() == reflect.Interface {
		in = 0
	}
	if m.Type.NumIn() != in || m.Type.NumOut() != 1 {
		return nil, false
	}
	return m.Type.Out(0), true
}

func derefTarget(t reflect.Type) (reflect.Type, bool) {
	if t == nil || t.Kind() != reflect.Pointer {
		return nil, false
	}
	return t.Elem(), true
}

func fits(arg, param reflect.Type) bool {
	if arg == nil {
		return monads.Nilable(param)
	}
	return arg.AssignableTo(param)
}

// argsFit checks args against the parameters of ft starting at offset.
func argsFit(ft reflect.Type, offset int, args []reflect.Type) bool {
	n := ft.NumIn() - offset
	if !ft.IsVariadic() {
		if len(args) != n {
			return false
		}
		for i, a := range args {
			if !fits(a, ft.In(offset+i)) {
				return false
			}
		}
		return true
	}

	fixed := n - 1
	if len(args) < fixed {
		return false
	}
	for i := 0; i < fixed; i++ {
		if !fits(args[i], ft.In(offset+i)) {
			return false
		}
	}
	elem := ft.In(ft.NumIn() - 1).Elem()
	for _, a := range args[fixed:] {
		if !fits(a, elem) {
			return false
		}
	}
	return true
}

func results(shape Shape, ft reflect.Type) (Resolution, bool) {
	switch ft.NumOut() {
	case 0:
		return Resolution{Shape: shape}, true
	case 1:
		if ft.Out(0) == errorType {
			return Resolution{Shape: shape, Fallible: true}, true
		}
		return Resolution{Shape: shape, Result: ft.Out(0)}, true
	case 2:
		if ft.Out(1) == errorType {
			return Resolution{Shape: shape, Result: ft.Out(0), Fallible: true}, true
		}
	}
	return Resolution{}, false
}
