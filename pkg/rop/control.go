package rop

import "fmt"

// ControlFlow tells an operation whether to stop early with a residual
// (Break) or keep going with a value (Continue).
type ControlFlow[B, C any] struct {
	brk     B
	cont    C
	isBreak bool
}

// Break is written Break[C](b) so the residual type is inferred.
func Break[C, B any](b B) ControlFlow[B, C] {
	return ControlFlow[B, C]{brk: b, isBreak: true}
}

// Continue is written Continue[B](c) so the value type is inferred.
func Continue[B, C any](c C) ControlFlow[B, C] {
	return ControlFlow[B, C]{cont: c}
}

func (c ControlFlow[B, C]) IsBreak() bool {
	return c.isBreak
}

func (c ControlFlow[B, C]) IsContinue() bool {
	return !c.isBreak
}

func (c ControlFlow[B, C]) BreakValue() Option[B] {
	if c.isBreak {
		return Some(c.brk)
	}
	return None[B]()
}

func (c ControlFlow[B, C]) ContinueValue() Option[C] {
	if c.isBreak {
		return None[C]()
	}
	return Some(c.cont)
}

func (c ControlFlow[B, C]) Match(onBreak func(B), onContinue func(C)) {
	if c.isBreak {
		onBreak(c.brk)
		return
	}
	onContinue(c.cont)
}

// Branch keeps Continue as is and signals Break(b) with the residual
// Break(b), so a nested fold can hand the outer residual back untouched.
func (c ControlFlow[B, C]) Branch() Signal[ControlFlow[B, Infallible], C] {
	if c.isBreak {
		return Residual[C](Break[Infallible](c.brk))
	}
	return Output[ControlFlow[B, Infallible]](c.cont)
}

func (ControlFlow[B, C]) FromOutput(value C) ControlFlow[B, C] {
	return Continue[B](value)
}

func (ControlFlow[B, C]) FromResidual(residual ControlFlow[B, Infallible]) ControlFlow[B, C] {
	return Break[C](residual.brk)
}

func (c ControlFlow[B, C]) String() string {
	if c.isBreak {
		return fmt.Sprintf("Break(%v)", c.brk)
	}
	return fmt.Sprintf("Continue(%v)", c.cont)
}

func MapBreak[B, C, T any](c ControlFlow[B, C], f func(B) T) ControlFlow[T, C] {
	if c.isBreak {
		return Break[C](f(c.brk))
	}
	return Continue[T](c.cont)
}

func MapContinue[B, C, T any](c ControlFlow[B, C], f func(C) T) ControlFlow[B, T] {
	if c.isBreak {
		return Break[T](c.brk)
	}
	return Continue[B](f(c.cont))
}
