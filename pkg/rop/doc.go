// Package rop contains the closed sum types the rest of the module is built
// on: Option[T], Result[T, E] and ControlFlow[B, C].
//
// All three implement the Try protocol (Branch / FromOutput / FromResidual),
// which lets a single generic fold short-circuit on a None, an Err or a
// Break without knowing which one it is dealing with.
//
// Methods keep the element type; type-changing operations are package
// functions (MapOption, AndThenResult, MapErr, MapBreak, ...).
//
// Contract violations such as unwrapping a None panic with an error that
// wraps ErrNoneValue, ErrErrValue or ErrOkValue.
package rop
