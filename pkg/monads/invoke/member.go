package invoke

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/ib-77/monads/pkg/monads"
)

// MemberFunc is a member function: a func whose first parameter is the
// receiver the member belongs to.
type MemberFunc struct {
	fn reflect.Value
}

// Method wraps a method expression such as (*bytes.Buffer).Len or Point.Norm,
// or any func taking the receiver first. It panics if fn is not such a func.
func Method(fn any) MemberFunc {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
		panic(fmt.Errorf("%w: %T is not a func", monads.ErrNotInvocable, fn))
	}
	t := v.Type()
	if t.NumIn() == 0 || (t.IsVariadic() && t.NumIn() == 1) {
		panic(fmt.Errorf("%w: %v has no receiver parameter", monads.ErrNotInvocable, t))
	}
	return MemberFunc{fn: v}
}

// Receiver returns the type the member function is declared on.
func (m MemberFunc) Receiver() reflect.Type {
	return m.fn.Type().In(0)
}

// Type returns the type of the underlying func.
func (m MemberFunc) Type() reflect.Type {
	return m.fn.Type()
}

// DataMember names an exported field of a struct type.
type DataMember struct {
	owner reflect.Type
	typ   reflect.Type
	index []int
	path  string
}

// Field returns the data member path of struct type R. The path is a field
// name, or dotted names walking into nested struct fields ("Inner.X");
// promoted fields of embedded structs resolve like a selector would. It panics
// if R is not a struct or the path does not name an exported field.
func Field[R any](path string) DataMember {
	owner := monads.TypeOf[R]()
	if owner.Kind() != reflect.Struct {
		panic(fmt.Errorf("%w: %v is not a struct", monads.ErrNotInvocable, owner))
	}

	var index []int
	t := owner
	for i, name := range strings.Split(path, ".") {
		if i > 0 {
			if t.Kind() != reflect.Struct {
				panic(fmt.Errorf("%w: %v.%s: %v is not a struct", monads.ErrNotInvocable, owner, path, t))
			}
		}
		f, ok := t.FieldByName(name)
		if !ok || !f.IsExported() {
			panic(fmt.Errorf("%w: %v has no exported field %q", monads.ErrNotInvocable, owner, path))
		}
		index = append(index, f.Index...)
		t = f.Type
	}

	return DataMember{owner: owner, typ: t, index: index, path: path}
}

// Owner returns the struct type the member belongs to.
func (d DataMember) Owner() reflect.Type {
	return d.owner
}

// Type returns the field type.
func (d DataMember) Type() reflect.Type {
	return d.typ
}

func (d DataMember) String() string {
	return d.owner.String() + "." + d.path
}
