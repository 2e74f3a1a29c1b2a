package lazy

import (
	"fmt"

	"github.com/ib-77/lazyrop/pkg/rop"
)

type SkipIter[T any] struct {
	iter Iter[T]
	n    int
}

// Skip drops the first n elements. The dropping happens on the first pull.
func Skip[T any](it Iter[T], n int) *SkipIter[T] {
	return &SkipIter[T]{iter: it, n: max(n, 0)}
}

func (s *SkipIter[T]) Next() rop.Option[T] {
	if s.n > 0 {
		n := s.n
		s.n = 0
		return Nth(s.iter, n)
	}
	return s.iter.Next()
}

func (s *SkipIter[T]) SizeHint() (int, rop.Option[int]) {
	lower, upper := SizeHint(s.iter)
	return max(lower-s.n, 0), rop.MapOption(upper, func(u int) int { return max(u-s.n, 0) })
}

type TakeIter[T any] struct {
	iter Iter[T]
	n    int
}

// Take yields at most n elements.
func Take[T any](it Iter[T], n int) *TakeIter[T] {
	return &TakeIter[T]{iter: it, n: max(n, 0)}
}

func (t *TakeIter[T]) Next() rop.Option[T] {
	if t.n == 0 {
		return rop.None[T]()
	}
	t.n--
	return t.iter.Next()
}

func (t *TakeIter[T]) SizeHint() (int, rop.Option[int]) {
	if t.n == 0 {
		return 0, rop.Some(0)
	}
	lower, upper := SizeHint(t.iter)
	return min(lower, t.n), rop.Some(min(upper.UnwrapOr(t.n), t.n))
}

type StepByIter[T any] struct {
	iter      Iter[T]
	skip      int
	firstTake bool
}

// StepBy yields the first element and then every step-th one after it.
// It panics when step is not positive.
func StepBy[T any](it Iter[T], step int) *StepByIter[T] {
	if step <= 0 {
		panic(fmt.Errorf("step by %d: %w", step, ErrZeroStep))
	}
	return &StepByIter[T]{iter: it, skip: step - 1, firstTake: true}
}

func (s *StepByIter[T]) Next() rop.Option[T] {
	if s.firstTake {
		s.firstTake = false
		return s.iter.Next()
	}
	return Nth(s.iter, s.skip)
}
