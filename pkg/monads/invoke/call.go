package invoke

import (
	"reflect"

	"github.com/ib-77/monads/pkg/monads"
)

// Void is the result of callables that produce no value.
type Void = struct{}

var voidType = monads.TypeOf[Void]()

// Call is a resolved invocation, ready to run.
type Call[Out any] struct {
	callable any
	res      Resolution
	args     []reflect.Value
}

// Prepare resolves c against the dynamic types of args. It panics with a
// *NotInvocableError if no shape applies or the result does not fit Out.
func Prepare[Out any](c any, args ...any) Call[Out] {
	vals := make([]reflect.Value, len(args))
	for i, a := range args {
		vals[i] = reflect.ValueOf(a)
	}
	return prepare[Out](c, vals)
}

// PrepareOn is Prepare with a receiver whose static type R is kept, so an
// interface typed receiver resolves as that interface.
func PrepareOn[Out, R any](c any, recv R, args ...any) Call[Out] {
	vals := make([]reflect.Value, 0, len(args)+1)
	vals = append(vals, monads.ValueOf(recv))
	for _, a := range args {
		vals = append(vals, reflect.ValueOf(a))
	}
	return prepare[Out](c, vals)
}

// Invoke prepares and runs c in one step.
func Invoke[Out any](c any, args ...any) (Out, error) {
	return Prepare[Out](c, args...).Do()
}

// InvokeOn prepares c against recv and runs it in one step.
func InvokeOn[Out, R any](c any, recv R, args ...any) (Out, error) {
	return PrepareOn[Out](c, recv, args...).Do()
}

func prepare[Out any](c any, vals []reflect.Value) Call[Out] {
	types := make([]reflect.Type, len(vals))
	for i, v := range vals {
		if v.IsValid() {
			types[i] = v.Type()
		}
	}

	res := Resolve(c, types...)
	if !res.Invocable() {
		panic(newNotInvocableError(c, types, nil, nil))
	}
	out := monads.TypeOf[Out]()
	if !resultFits(res.Result, out) {
		panic(newNotInvocableError(c, types, res.Result, out))
	}

	return Call[Out]{callable: c, res: res, args: vals}
}

func resultFits(result, out reflect.Type) bool {
	if result == nil {
		return out == voidType || (out.Kind() == reflect.Interface && out.NumMethod() == 0)
	}
	return result.AssignableTo(out)
}

// Resolution returns how the call was classified.
func (c Call[Out]) Resolution() Resolution {
	return c.res
}

// Do runs the call. The returned error is the callable's own trailing error
// result; it is always nil for infallible callables.
func (c Call[Out]) Do() (Out, error) {
	var out Out

	rets := c.outputs()
	var err error
	if c.res.Fallible {
		last := rets[len(rets)-1]
		if !last.IsNil() {
			err = last.Interface().(error)
		}
		rets = rets[:len(rets)-1]
	}

	if c.res.Result != nil && len(rets) == 1 {
		reflect.ValueOf(&out).Elem().Set(rets[0])
	}
	return out, err
}

func (c Call[Out]) outputs() []reflect.Value {
	switch {
	case c.res.Shape.IsMethod():
		m := c.callable.(MemberFunc)
		in := make([]reflect.Value, 0, len(c.args))
		in = append(in, through(c.res.Shape, c.args[0]))
		in = append(in, c.args[1:]...)
		return callFunc(m.fn, in)
	case c.res.Shape.IsField():
		d := c.callable.(DataMember)
		return []reflect.Value{through(c.res.Shape, c.args[0]).FieldByIndex(d.index)}
	case c.res.Shape == PlainCall:
		return callFunc(reflect.ValueOf(c.callable), c.args)
	}
	panic(newNotInvocableError(c.callable, nil, nil, nil))
}

// through reaches the member's receiver from the argument.
func through(shape Shape, v reflect.Value) reflect.Value {
	switch shape {
	case MethodGet, FieldGet:
		if nilGetter(v) {
			panic(monads.ErrNilHandle)
		}
		return v.MethodByName("Get").Call(nil)[0]
	case MethodDeref, FieldDeref:
		if v.IsNil() {
			panic(monads.ErrNilHandle)
		}
		return v.Elem()
	}
	return v
}

// nilGetter reports a nil interface, or a nil pointer whose Get is declared
// on the pointee and would dereference it.
func nilGetter(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Interface:
		return v.IsNil()
	case reflect.Pointer:
		if !v.IsNil() {
			return false
		}
		_, onValue := v.Type().Elem().MethodByName("Get")
		return onValue
	}
	return false
}

func callFunc(fn reflect.Value, args []reflect.Value) []reflect.Value {
	ft := fn.Type()
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		if a.IsValid() {
			in[i] = a
			continue
		}
		in[i] = reflect.Zero(paramType(ft, i))
	}
	return fn.Call(in)
}

func paramType(ft reflect.Type, i int) reflect.Type {
	if last := ft.NumIn() - 1; ft.IsVariadic() && i >= last {
		return ft.In(last).Elem()
	}
	return ft.In(i)
}
