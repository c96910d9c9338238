// Package expected implements Expected[T, E], a value that holds either a
// success value T or an error value E.
//
// Highlights:
// - New/Make/MakeUnexpected/InPlace/InPlaceError: construct an Expected
// - From, Convert, ConvertWith: build from bare values or related Expected types
// - Value/Error: checked access, Unwrap/UnwrapError: unchecked access
// - Emplace*/Reset/Set/Take: mutate in place
// - Map/MapError: transform one alternative through any invoke callable
// - AndThen/Tee/Fold: switch, side-effect and collapse helpers
// - Validate/ValidateAll: check a value, turning failed checks into the error
// - TryInvoke/TryInvokeAs: turn panicking or error-returning calls into values
package expected
