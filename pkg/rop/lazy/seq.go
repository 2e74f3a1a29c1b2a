package lazy

import (
	"iter"

	"github.com/ib-77/lazyrop/pkg/rop"
)

// SeqIter pulls from a range-over-func sequence.
type SeqIter[T any] struct {
	next func() (T, bool)
	stop func()
}

// FromSeq adapts a standard library sequence. Call Stop when abandoning
// the iterator before it is exhausted.
func FromSeq[T any](seq iter.Seq[T]) *SeqIter[T] {
	next, stop := iter.Pull(seq)
	return &SeqIter[T]{next: next, stop: stop}
}

func (s *SeqIter[T]) Next() rop.Option[T] {
	return rop.FromOk(s.next())
}

func (s *SeqIter[T]) Stop() {
	s.stop()
}

// ToSeq exposes it to range loops. Breaking out of the loop leaves the
// rest of it unconsumed.
func ToSeq[T any](it Iter[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next().Get()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// ToSeq2 yields index-element pairs.
func ToSeq2[T any](it Iter[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; ; i++ {
			v, ok := it.Next().Get()
			if !ok || !yield(i, v) {
				return
			}
		}
	}
}
