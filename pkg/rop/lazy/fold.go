package lazy

import (
	"github.com/ib-77/lazyrop/pkg/rop"
)

// TryFold pulls elements and threads an accumulator through f.
//
// Each step result is decomposed with Branch. Continue(acc) feeds the next
// step; the first Break stops pulling and the step result itself is
// returned, so the caller gets back the exact None, Err or Break that f
// produced. On exhaustion the final accumulator is rebuilt with FromOutput.
func TryFold[T, B, Rs any, R rop.Try[R, B, Rs]](it Iter[T], init B, f func(B, T) R) R {
	acc := init
	for {
		x, ok := it.Next().Get()
		if !ok {
			break
		}
		r := f(acc, x)
		next, cont := r.Branch().ContinueValue().Get()
		if !cont {
			return r
		}
		acc = next
	}
	var zero R
	return zero.FromOutput(acc)
}

// TryForEach runs f on every element until one of them breaks.
func TryForEach[T, Rs any, R rop.Try[R, rop.Unit, Rs]](it Iter[T], f func(T) R) R {
	return TryFold[T, rop.Unit, Rs, R](it, rop.Unit{}, func(_ rop.Unit, x T) R {
		return f(x)
	})
}

// Fold is TryFold with a step that always continues.
func Fold[T, B any](it Iter[T], init B, f func(B, T) B) B {
	return TryFold(it, init, func(acc B, x T) rop.ControlFlow[rop.Infallible, B] {
		return rop.Continue[rop.Infallible](f(acc, x))
	}).ContinueValue().Unwrap()
}

func ForEach[T any](it Iter[T], f func(T)) {
	Fold(it, rop.Unit{}, func(u rop.Unit, x T) rop.Unit {
		f(x)
		return u
	})
}

func Count[T any](it Iter[T]) int {
	return Fold(it, 0, func(n int, _ T) int {
		return n + 1
	})
}

func Last[T any](it Iter[T]) rop.Option[T] {
	return Fold(it, rop.None[T](), func(_ rop.Option[T], x T) rop.Option[T] {
		return rop.Some(x)
	})
}

// AdvanceBy discards n elements. When the sequence runs out first the
// error holds how many steps could not be taken.
func AdvanceBy[T any](it Iter[T], n int) rop.Result[rop.Unit, int] {
	for i := 0; i < n; i++ {
		if it.Next().IsNone() {
			return rop.Err[rop.Unit](n - i)
		}
	}
	return rop.OkUnit[int]()
}

// Nth returns the element at zero-based index n, consuming everything up
// to and including it.
func Nth[T any](it Iter[T], n int) rop.Option[T] {
	if AdvanceBy(it, n).IsErr() {
		return rop.None[T]()
	}
	return it.Next()
}

// NextChunk pulls exactly n elements. If fewer are left the error carries
// the ones that were pulled.
func NextChunk[T any](it Iter[T], n int) rop.Result[[]T, []T] {
	chunk := make([]T, 0, max(n, 0))
	for len(chunk) < n {
		x, ok := it.Next().Get()
		if !ok {
			return rop.Err[[]T](chunk)
		}
		chunk = append(chunk, x)
	}
	return rop.Ok[[]T](chunk)
}

// Collect drains it into a slice.
func Collect[T any](it Iter[T]) []T {
	lower, _ := SizeHint(it)
	return Fold(it, make([]T, 0, min(max(lower, 0), maxPrealloc)), func(acc []T, x T) []T {
		return append(acc, x)
	})
}

// TryCollect drains a sequence of results, stopping at the first Err.
func TryCollect[T, E any](it Iter[rop.Result[T, E]]) rop.Result[[]T, E] {
	lower, _ := SizeHint(it)
	return TryFold(it, make([]T, 0, min(max(lower, 0), maxPrealloc)), func(acc []T, x rop.Result[T, E]) rop.Result[[]T, E] {
		return rop.MapResult(x, func(v T) []T {
			return append(acc, v)
		})
	})
}

// CollectOptions drains a sequence of options, stopping at the first None.
func CollectOptions[T any](it Iter[rop.Option[T]]) rop.Option[[]T] {
	return TryFold(it, []T{}, func(acc []T, x rop.Option[T]) rop.Option[[]T] {
		return rop.MapOption(x, func(v T) []T {
			return append(acc, v)
		})
	})
}

func Sum[T Number](it Iter[T]) T {
	return Fold(it, T(0), func(acc, x T) T {
		return acc + x
	})
}

func Product[T Number](it Iter[T]) T {
	return Fold(it, T(1), func(acc, x T) T {
		return acc * x
	})
}
