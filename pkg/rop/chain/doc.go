// Package chain provides fluent front ends over the lazy sequences and
// over single rop.Result values.
//
// Chain[T] wraps a lazy.Iter. Same-type adapters (Filter, Skip, Take,
// StepBy, Tap, ...) are methods; adapters that change the element type
// (Map, FilterMap, FlatMap, Zip, Enumerate) and Fold are functions.
//
// Track[T] composes the solo railway primitives:
// - Start/FromValue: begin a track from a Result or a value
// - Then: switch to a new Result[U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - ThenMap: transform the successful value (T -> U)
// - Ensure: run side effects on success without changing the result
// - Finally: collapse the track into a final value via handlers
// - Collect: drain a Chain of results onto a Track
package chain
