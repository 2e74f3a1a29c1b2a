package lazy

import (
	"github.com/ib-77/lazyrop/pkg/rop"
)

type ScanIter[T, S, B any] struct {
	iter  Iter[T]
	state S
	f     func(*S, T) rop.Option[B]
	done  bool
}

// Scan threads mutable state through f. The first None returned by f ends
// the sequence for good.
func Scan[T, S, B any](it Iter[T], initial S, f func(state *S, x T) rop.Option[B]) *ScanIter[T, S, B] {
	return &ScanIter[T, S, B]{iter: it, state: initial, f: f}
}

func (s *ScanIter[T, S, B]) Next() rop.Option[B] {
	if s.done {
		return rop.None[B]()
	}
	x, ok := s.iter.Next().Get()
	if !ok {
		return rop.None[B]()
	}
	out := s.f(&s.state, x)
	s.done = out.IsNone()
	return out
}

// State exposes the current scan state.
func (s *ScanIter[T, S, B]) State() S {
	return s.state
}
