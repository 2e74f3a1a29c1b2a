package lazy

import (
	"cmp"

	"github.com/ib-77/lazyrop/pkg/rop"
	"github.com/ib-77/lazyrop/pkg/rop/tuple"
)

// Reduce folds the sequence using its first element as the seed. An empty
// sequence gives None.
func Reduce[T any](it Iter[T], f func(T, T) T) rop.Option[T] {
	return rop.MapOption(it.Next(), func(first T) T {
		return Fold(it, first, f)
	})
}

// TryReduce is Reduce with a step that may short-circuit. Continue holds
// the reduced value (None for an empty sequence); Break holds the step
// result that stopped the reduction.
func TryReduce[T, Rs any, R rop.Try[R, T, Rs]](it Iter[T], f func(T, T) R) rop.ControlFlow[R, rop.Option[T]] {
	first, ok := it.Next().Get()
	if !ok {
		return rop.Continue[R](rop.None[T]())
	}
	r := TryFold[T, T, Rs, R](it, first, f)
	if v, cont := r.Branch().ContinueValue().Get(); cont {
		return rop.Continue[R](rop.Some(v))
	}
	return rop.Break[rop.Option[T]](r)
}

// MaxBy returns the greatest element according to compare. Among equal
// elements the last one wins.
func MaxBy[T any](it Iter[T], compare func(a, b T) int) rop.Option[T] {
	return Reduce(it, func(x, y T) T {
		if compare(x, y) <= 0 {
			return y
		}
		return x
	})
}

// MinBy returns the least element according to compare. Among equal
// elements the first one wins.
func MinBy[T any](it Iter[T], compare func(a, b T) int) rop.Option[T] {
	return Reduce(it, func(x, y T) T {
		if compare(x, y) <= 0 {
			return x
		}
		return y
	})
}

func MaxByKey[T any, K cmp.Ordered](it Iter[T], key func(T) K) rop.Option[T] {
	best := MaxBy(Map(it, keyed(key)), compareKeys[K, T])
	return rop.MapOption(best, tuple.Second[K, T])
}

func MinByKey[T any, K cmp.Ordered](it Iter[T], key func(T) K) rop.Option[T] {
	best := MinBy(Map(it, keyed(key)), compareKeys[K, T])
	return rop.MapOption(best, tuple.Second[K, T])
}

func Max[T cmp.Ordered](it Iter[T]) rop.Option[T] {
	return MaxBy(it, cmp.Compare[T])
}

func Min[T cmp.Ordered](it Iter[T]) rop.Option[T] {
	return MinBy(it, cmp.Compare[T])
}

func keyed[T any, K cmp.Ordered](key func(T) K) func(T) tuple.Pair[K, T] {
	return func(x T) tuple.Pair[K, T] {
		return tuple.Of(key(x), x)
	}
}

func compareKeys[K cmp.Ordered, T any](a, b tuple.Pair[K, T]) int {
	return cmp.Compare(a.V1, b.V1)
}

// IsSortedBy reports whether every element compares <= 0 against the one
// after it. Empty and single-element sequences are sorted.
func IsSortedBy[T any](it Iter[T], compare func(a, b T) int) bool {
	last, ok := it.Next().Get()
	if !ok {
		return true
	}
	return All(it, func(cur T) bool {
		if compare(last, cur) > 0 {
			return false
		}
		last = cur
		return true
	})
}

func IsSorted[T cmp.Ordered](it Iter[T]) bool {
	return IsSortedBy(it, cmp.Compare[T])
}

func IsSortedByKey[T any, K cmp.Ordered](it Iter[T], key func(T) K) bool {
	return IsSortedBy(Map(it, key), cmp.Compare[K])
}
