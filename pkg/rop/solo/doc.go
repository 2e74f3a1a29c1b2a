// Package solo contains single-value, synchronous railway helpers that
// operate on rop.Result[T, error]. They bridge plain Go (value, error)
// code into the success/failure tracks.
//
// Highlights:
// - Succeed/Fail/Of: construct Result[T, error]
// - Validate/AndValidate/ValidateAll: validation producing failures, joined with errors.Join
// - Switch/Map/Try: move from Result[In] to Result[Out]
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/error handlers
// - Collect: drain a lazy sequence of results, honoring ctx cancellation
package solo
