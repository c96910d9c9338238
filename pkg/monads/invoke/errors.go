package invoke

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/ib-77/monads/pkg/monads"
)

// NotInvocableError describes a callable that cannot be applied to the given
// arguments, or whose result does not fit the requested type.
type NotInvocableError struct {
	Callable string
	Args     []reflect.Type
	// Result and Want are set when a shape applied but its result type is
	// not assignable to the requested one.
	Result reflect.Type
	Want   reflect.Type
}

func (e *NotInvocableError) Error() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		if a == nil {
			args[i] = "nil"
			continue
		}
		args[i] = a.String()
	}

	if e.Want != nil {
		result := "no result"
		if e.Result != nil {
			result = e.Result.String()
		}
		return fmt.Sprintf("%s: %s(%s) yields %s, want %v",
			monads.ErrNotInvocable, e.Callable, strings.Join(args, ", "), result, e.Want)
	}
	return fmt.Sprintf("%s: %s(%s)", monads.ErrNotInvocable, e.Callable, strings.Join(args, ", "))
}

func (e *NotInvocableError) Unwrap() error {
	return monads.ErrNotInvocable
}

func newNotInvocableError(c any, args []reflect.Type, result, want reflect.Type) *NotInvocableError {
	return &NotInvocableError{
		Callable: describe(c),
		Args:     args,
		Result:   result,
		Want:     want,
	}
}

func describe(c any) string {
	switch v := c.(type) {
	case MemberFunc:
		if v.fn.IsValid() {
			return "method " + v.fn.Type().String()
		}
		return "method <nil>"
	case DataMember:
		if v.owner != nil {
			return "field " + v.String()
		}
		return "field <nil>"
	case nil:
		return "<nil>"
	}
	return reflect.TypeOf(c).String()
}
