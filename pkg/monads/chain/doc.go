// Package chain provides a fluent wrapper around expected.Expected[T, E]
// for building synchronous railway-style chains.
//
// Key operations:
// - Start/FromValue/FromError: begin a chain from an Expected, a value or an error
// - Then: switch to a new Expected[U, E] via a function
// - ThenTry: call a (U, error) function and turn the error into E
// - Map/MapError: transform one alternative through any invoke callable
// - Ensure: run side effects on a value without changing the result
// - While: repeat a step while a condition holds on the value
// - Or: fall back to alternative chains
// - ValidateAll: run checks on the value, failing fast or collecting errors
// - Finally: collapse the chain into a final value via handlers
package chain
