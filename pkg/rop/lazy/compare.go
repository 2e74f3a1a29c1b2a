package lazy

import (
	"cmp"

	"github.com/ib-77/lazyrop/pkg/rop"
)

// IterCompare walks a and b in lockstep. f decides per pair of elements
// whether to keep going or stop with a verdict.
//
// Break(t) is returned as soon as f breaks. Otherwise the result is
// Continue with the ordering implied by the lengths: -1 when a ran out
// first, 0 when both ended together, +1 when b ran out first.
func IterCompare[A, B, T any](a Iter[A], b Iter[B], f func(A, B) rop.ControlFlow[T, rop.Unit]) rop.ControlFlow[T, int] {
	step := func(x A) rop.ControlFlow[rop.ControlFlow[T, int], rop.Unit] {
		y, ok := b.Next().Get()
		if !ok {
			return rop.Break[rop.Unit](rop.Continue[T](1))
		}
		return rop.MapBreak(f(x, y), rop.Break[int, T])
	}

	if verdict, stopped := TryForEach(a, step).BreakValue().Get(); stopped {
		return verdict
	}
	if b.Next().IsNone() {
		return rop.Continue[T](0)
	}
	return rop.Continue[T](-1)
}

// CmpBy compares two sequences lexicographically. compare may return any
// negative, zero or positive number; the result is normalized to -1, 0, +1.
func CmpBy[A, B any](a Iter[A], b Iter[B], compare func(A, B) int) int {
	verdict := IterCompare(a, b, func(x A, y B) rop.ControlFlow[int, rop.Unit] {
		if ord := sign(compare(x, y)); ord != 0 {
			return rop.Break[rop.Unit](ord)
		}
		return rop.Continue[int](rop.Unit{})
	})
	return verdict.BreakValue().Or(verdict.ContinueValue()).Unwrap()
}

// PartialCmpBy is CmpBy for element types without a total order. A None
// from compare makes the whole comparison None.
func PartialCmpBy[A, B any](a Iter[A], b Iter[B], compare func(A, B) rop.Option[int]) rop.Option[int] {
	verdict := IterCompare(a, b, func(x A, y B) rop.ControlFlow[rop.Option[int], rop.Unit] {
		ord := rop.MapOption(compare(x, y), sign)
		if ord == rop.Some(0) {
			return rop.Continue[rop.Option[int]](rop.Unit{})
		}
		return rop.Break[rop.Unit](ord)
	})
	if ord, ok := verdict.ContinueValue().Get(); ok {
		return rop.Some(ord)
	}
	return verdict.BreakValue().Unwrap()
}

// EqBy reports whether both sequences have the same length and eq holds
// for every pair.
func EqBy[A, B any](a Iter[A], b Iter[B], eq func(A, B) bool) bool {
	verdict := IterCompare(a, b, func(x A, y B) rop.ControlFlow[rop.Unit, rop.Unit] {
		if eq(x, y) {
			return keepGoing
		}
		return stopHere
	})
	return verdict == rop.Continue[rop.Unit](0)
}

func Cmp[T cmp.Ordered](a, b Iter[T]) int {
	return CmpBy(a, b, cmp.Compare[T])
}

func Eq[T comparable](a, b Iter[T]) bool {
	return EqBy(a, b, func(x, y T) bool { return x == y })
}

func Ne[T comparable](a, b Iter[T]) bool {
	return !Eq(a, b)
}

func Lt[T cmp.Ordered](a, b Iter[T]) bool {
	return Cmp(a, b) < 0
}

func Le[T cmp.Ordered](a, b Iter[T]) bool {
	return Cmp(a, b) <= 0
}

func Gt[T cmp.Ordered](a, b Iter[T]) bool {
	return Cmp(a, b) > 0
}

func Ge[T cmp.Ordered](a, b Iter[T]) bool {
	return Cmp(a, b) >= 0
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
