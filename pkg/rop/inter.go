package rop

import "fmt"

// Try is the short-circuit protocol shared by Option, Result and
// ControlFlow. O is the success output, Rs the residual carried by a break.
//
// The self-referencing constraint lets generic code rebuild the concrete
// type from either half of a branch:
//
//	var zero R
//	zero.FromOutput(o)   // Continue(o) back to R
//	zero.FromResidual(r) // Break(r) back to R
//
// FromOutput and FromResidual ignore their receiver.
type Try[R Try[R, O, Rs], O, Rs any] interface {
	Branch() Signal[Rs, O]
	FromOutput(O) R
	FromResidual(Rs) R
}

// Signal is the decomposed form of a Try value: either a residual to stop
// with or an output to keep going with. It is kept apart from ControlFlow
// so that ControlFlow can branch into a signal over itself.
type Signal[Rs, O any] struct {
	residual Rs
	output   O
	isBreak  bool
}

// Residual is written Residual[O](rs).
func Residual[O, Rs any](rs Rs) Signal[Rs, O] {
	return Signal[Rs, O]{residual: rs, isBreak: true}
}

// Output is written Output[Rs](o).
func Output[Rs, O any](o O) Signal[Rs, O] {
	return Signal[Rs, O]{output: o}
}

func (s Signal[Rs, O]) IsBreak() bool {
	return s.isBreak
}

func (s Signal[Rs, O]) IsContinue() bool {
	return !s.isBreak
}

func (s Signal[Rs, O]) BreakValue() Option[Rs] {
	if s.isBreak {
		return Some(s.residual)
	}
	return None[Rs]()
}

func (s Signal[Rs, O]) ContinueValue() Option[O] {
	if s.isBreak {
		return None[O]()
	}
	return Some(s.output)
}

func (s Signal[Rs, O]) String() string {
	if s.isBreak {
		return fmt.Sprintf("Break(%v)", s.residual)
	}
	return fmt.Sprintf("Continue(%v)", s.output)
}

// Unit is the payload of results whose value carries no information.
type Unit struct{}

// Infallible marks the half of a residual that is never populated, e.g. the
// success side of Result[Infallible, E].
type Infallible struct{}

// Rebuild reconstructs a Try value from its decomposed signal.
func Rebuild[R Try[R, O, Rs], O, Rs any](s Signal[Rs, O]) R {
	var zero R
	if s.isBreak {
		return zero.FromResidual(s.residual)
	}
	return zero.FromOutput(s.output)
}
