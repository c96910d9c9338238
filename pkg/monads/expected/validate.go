package expected

import (
	"go.uber.org/multierr"
)

// Validate keeps a held value that passes check; a failing check turns e into
// its error. Errors and the empty state pass through.
func Validate[T any](e Expected[T, error], check func(T) error) Expected[T, error] {
	return ValidateAll(e, true, check)
}

// ValidateAll runs checks on a held value in order. With breakOnError it
// stops at the first failing check, otherwise every failure is collected
// into one error (see multierr.Errors to split it again). Without failures e
// is returned unchanged.
func ValidateAll[T any](e Expected[T, error], breakOnError bool, checks ...func(T) error) Expected[T, error] {
	if !e.HasValue() {
		return e
	}

	v := e.Unwrap()
	var err error
	for _, check := range checks {
		if cerr := check(v); cerr != nil {
			err = multierr.Append(err, cerr)
			if breakOnError {
				break
			}
		}
	}

	if err != nil {
		return MakeUnexpected[T](err)
	}
	return e
}
