package monads

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Exception is a handle over a captured failure: either the value passed to
// panic or an error returned by a fallible callable.
//
// Two handles refer to the same failure only if they are the same pointer;
// Id is the printable form of that identity.
type Exception struct {
	id         uuid.UUID
	capturedAt time.Time
	v          any
	panicked   bool
}

// Capture wraps a recovered panic value.
func Capture(v any) *Exception {
	return &Exception{
		id:         uuid.New(),
		capturedAt: time.Now().UTC(),
		v:          v,
		panicked:   true,
	}
}

// CaptureError wraps an error returned through the normal result channel.
func CaptureError(err error) *Exception {
	return &Exception{
		id:         uuid.New(),
		capturedAt: time.Now().UTC(),
		v:          err,
	}
}

func (e *Exception) Id() uuid.UUID {
	return e.id
}

// CapturedAt time of capture (UTC)
func (e *Exception) CapturedAt() time.Time {
	return e.capturedAt
}

// Value returns the captured panic value or error as is.
func (e *Exception) Value() any {
	return e.v
}

// Panicked reports whether the failure was raised with panic rather than
// returned as an error.
func (e *Exception) Panicked() bool {
	return e.panicked
}

func (e *Exception) Error() string {
	if err, ok := e.v.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(e.v)
}

func (e *Exception) Unwrap() error {
	err, _ := e.v.(error)
	return err
}

// Rethrow raises the captured failure again. Panics are re-raised with the
// original value, returned errors with the error itself.
func (e *Exception) Rethrow() {
	panic(e.v)
}

