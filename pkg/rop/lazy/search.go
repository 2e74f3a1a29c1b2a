package lazy

import (
	"github.com/ib-77/lazyrop/pkg/rop"
)

type unitFlow = rop.ControlFlow[rop.Unit, rop.Unit]

var (
	keepGoing = rop.Continue[rop.Unit](rop.Unit{})
	stopHere  = rop.Break[rop.Unit](rop.Unit{})
)

// All reports whether every element satisfies predicate. It stops at the
// first element that does not; an empty sequence yields true.
func All[T any](it Iter[T], predicate func(T) bool) bool {
	return TryFold(it, rop.Unit{}, func(_ rop.Unit, x T) unitFlow {
		if predicate(x) {
			return keepGoing
		}
		return stopHere
	}).IsContinue()
}

// Any reports whether some element satisfies predicate, stopping at the
// first one that does.
func Any[T any](it Iter[T], predicate func(T) bool) bool {
	return TryFold(it, rop.Unit{}, func(_ rop.Unit, x T) unitFlow {
		if predicate(x) {
			return stopHere
		}
		return keepGoing
	}).IsBreak()
}

func Find[T any](it Iter[T], predicate func(T) bool) rop.Option[T] {
	return TryFold(it, rop.Unit{}, func(_ rop.Unit, x T) rop.ControlFlow[T, rop.Unit] {
		if predicate(x) {
			return rop.Break[rop.Unit](x)
		}
		return rop.Continue[T](rop.Unit{})
	}).BreakValue()
}

// FindMap returns the first Some produced by f.
func FindMap[T, U any](it Iter[T], f func(T) rop.Option[U]) rop.Option[U] {
	return TryFold(it, rop.Unit{}, func(_ rop.Unit, x T) rop.ControlFlow[U, rop.Unit] {
		if v, ok := f(x).Get(); ok {
			return rop.Break[rop.Unit](v)
		}
		return rop.Continue[U](rop.Unit{})
	}).BreakValue()
}

// TryFind is Find with a fallible predicate. The first error stops the
// search and is returned as is.
func TryFind[T, E any](it Iter[T], f func(T) rop.Result[bool, E]) rop.Result[rop.Option[T], E] {
	flow := TryFold(it, rop.Unit{}, func(_ rop.Unit, x T) rop.ControlFlow[rop.Result[rop.Option[T], E], rop.Unit] {
		matched, err, ok := f(x).Get()
		switch {
		case !ok:
			return rop.Break[rop.Unit](rop.Err[rop.Option[T]](err))
		case matched:
			return rop.Break[rop.Unit](rop.Ok[E](rop.Some(x)))
		default:
			return rop.Continue[rop.Result[rop.Option[T], E]](rop.Unit{})
		}
	})
	return flow.BreakValue().UnwrapOrElse(func() rop.Result[rop.Option[T], E] {
		return rop.Ok[E](rop.None[T]())
	})
}

// Position returns the index of the first element satisfying predicate.
func Position[T any](it Iter[T], predicate func(T) bool) rop.Option[int] {
	return TryFold(it, 0, func(i int, x T) rop.ControlFlow[int, int] {
		if predicate(x) {
			return rop.Break[int](i)
		}
		return rop.Continue[int](i + 1)
	}).BreakValue()
}
