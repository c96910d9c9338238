// Package optional implements Optional[T], a value that either holds a T or
// holds nothing. It shares its storage discipline with package expected.
//
// Key operations:
// - Make/None/InPlace/From/Convert/ConvertWith: construct an Optional
// - Value (checked), Unwrap and Deref (unchecked), ValueOr
// - Emplace*/Reset/Set/Take: mutate in place
// - Map: transform the value through any invoke callable
// - MaybeInvoke: discard the failure of a panicking or error-returning call
// - FromHolder: keep only the value of an Expected (or any monads.Holder)
package optional
