package lazy

import (
	"github.com/ib-77/lazyrop/pkg/rop"
)

// PeekableIter buffers at most one element looked at ahead of time. The
// buffer also remembers a peeked exhaustion, so upstream is not queried
// again until Next has drained it.
type PeekableIter[T any] struct {
	iter   Iter[T]
	peeked rop.Option[rop.Option[T]]
}

func Peekable[T any](it Iter[T]) *PeekableIter[T] {
	if p, ok := it.(*PeekableIter[T]); ok {
		return p
	}
	return &PeekableIter[T]{iter: it}
}

func (p *PeekableIter[T]) Next() rop.Option[T] {
	if v, ok := p.peeked.Take().Get(); ok {
		return v
	}
	return p.iter.Next()
}

// Peek returns the next element without consuming it.
func (p *PeekableIter[T]) Peek() rop.Option[T] {
	if v, ok := p.peeked.Get(); ok {
		return v
	}
	v := p.iter.Next()
	p.peeked = rop.Some(v)
	return v
}

// NextIf consumes the next element only when predicate holds for it;
// otherwise the element stays buffered for the following call.
func (p *PeekableIter[T]) NextIf(predicate func(T) bool) rop.Option[T] {
	next := p.Next()
	if next.IsSomeAnd(predicate) {
		return next
	}
	p.peeked = rop.Some(next)
	return rop.None[T]()
}

func (p *PeekableIter[T]) SizeHint() (int, rop.Option[int]) {
	v, ok := p.peeked.Get()
	if !ok {
		return SizeHint(p.iter)
	}
	if v.IsNone() {
		return 0, rop.Some(0)
	}
	lower, upper := SizeHint(p.iter)
	return saturatingAdd(lower, 1), rop.AndThenOption(upper, func(u int) rop.Option[int] { return checkedAdd(u, 1) })
}

func NextIfEq[T comparable](p *PeekableIter[T], expected T) rop.Option[T] {
	return p.NextIf(func(x T) bool { return x == expected })
}
