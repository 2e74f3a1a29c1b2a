package lazy

import (
	"github.com/ib-77/lazyrop/pkg/rop"
)

type FilterIter[T any] struct {
	iter      Iter[T]
	predicate func(T) bool
}

// Filter yields only the elements for which predicate holds.
func Filter[T any](it Iter[T], predicate func(T) bool) *FilterIter[T] {
	return &FilterIter[T]{iter: it, predicate: predicate}
}

func (f *FilterIter[T]) Next() rop.Option[T] {
	return Find(f.iter, f.predicate)
}

func (f *FilterIter[T]) SizeHint() (int, rop.Option[int]) {
	_, upper := SizeHint(f.iter)
	return 0, upper
}

type SkipWhileIter[T any] struct {
	iter      Iter[T]
	predicate func(T) bool
	passing   bool
}

// SkipWhile drops leading elements while predicate holds, then passes
// everything through.
func SkipWhile[T any](it Iter[T], predicate func(T) bool) *SkipWhileIter[T] {
	return &SkipWhileIter[T]{iter: it, predicate: predicate}
}

func (s *SkipWhileIter[T]) Next() rop.Option[T] {
	if s.passing {
		return s.iter.Next()
	}
	return Find(s.iter, func(x T) bool {
		if s.predicate(x) {
			return false
		}
		s.passing = true
		return true
	})
}

type TakeWhileIter[T any] struct {
	iter      Iter[T]
	predicate func(T) bool
	done      bool
}

// TakeWhile yields elements while predicate holds. The first failing
// element is consumed and the sequence stays exhausted afterwards.
func TakeWhile[T any](it Iter[T], predicate func(T) bool) *TakeWhileIter[T] {
	return &TakeWhileIter[T]{iter: it, predicate: predicate}
}

func (t *TakeWhileIter[T]) Next() rop.Option[T] {
	if t.done {
		return rop.None[T]()
	}
	x, ok := t.iter.Next().Get()
	if !ok {
		return rop.None[T]()
	}
	if !t.predicate(x) {
		t.done = true
		return rop.None[T]()
	}
	return rop.Some(x)
}
