package monads

// Releaser is implemented by values that own something which must be given
// back when the container holding them tears the value down. Containers call
// Release exactly once per constructed alternative.
//
// Only the held value itself is checked. A struct that merely has Releaser
// fields is not released field by field; it must implement Releaser and
// release its fields itself.
type Releaser interface {
	Release()
}

// Holder defines the read side shared by Expected and Optional.
type Holder[T any] interface {
	// HasValue returns true if a value alternative is live
	HasValue() bool
	// Value returns the live value or a bad access error
	Value() (T, error)
	// Unwrap returns the value slot without checking the state
	Unwrap() T
}
