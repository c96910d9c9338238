package storage

import (
	"reflect"

	"github.com/ib-77/monads/pkg/monads"
)

var releaserType = monads.TypeOf[monads.Releaser]()

// Trivial reports whether values of T never need a Release step, judged on
// the static type: interface types may hold a Releaser at run time and are
// not trivial. Fields are not inspected, see monads.Releaser.
func Trivial[T any]() bool {
	return trivial(monads.TypeOf[T]())
}

func trivial(t reflect.Type) bool {
	if t.Kind() == reflect.Interface {
		return false
	}
	return !t.Implements(releaserType) && !reflect.PointerTo(t).Implements(releaserType)
}

// teardown releases whatever the slot holds and zeroes it.
func teardown[T any](slot *T, trivial bool) {
	if !trivial {
		release(slot)
	}
	var zero T
	*slot = zero
}

func release[T any](slot *T) {
	if r, ok := any(*slot).(monads.Releaser); ok {
		if !monads.IsNil(r) {
			r.Release()
		}
		return
	}
	if r, ok := any(slot).(monads.Releaser); ok {
		r.Release()
	}
}
