package lazy

import (
	"github.com/ib-77/lazyrop/pkg/rop"
	"github.com/ib-77/lazyrop/pkg/rop/tuple"
)

type ChainIter[T any] struct {
	first  Iter[T]
	second Iter[T]
}

// Chain yields all of first, then all of second. first is not queried
// again once it has reported exhaustion.
func Chain[T any](first, second Iter[T]) *ChainIter[T] {
	return &ChainIter[T]{first: first, second: second}
}

func (c *ChainIter[T]) Next() rop.Option[T] {
	if c.first != nil {
		if v := c.first.Next(); v.IsSome() {
			return v
		}
		c.first = nil
	}
	return c.second.Next()
}

func (c *ChainIter[T]) SizeHint() (int, rop.Option[int]) {
	lower, upper := SizeHint(c.second)
	if c.first == nil {
		return lower, upper
	}
	fl, fu := SizeHint(c.first)
	return saturatingAdd(fl, lower), rop.AndThenOption(fu, func(a int) rop.Option[int] {
		return rop.AndThenOption(upper, func(b int) rop.Option[int] { return checkedAdd(a, b) })
	})
}

type ZipIter[A, B any] struct {
	a Iter[A]
	b Iter[B]
}

// Zip pairs up elements of a and b and stops as soon as either side does.
func Zip[A, B any](a Iter[A], b Iter[B]) *ZipIter[A, B] {
	return &ZipIter[A, B]{a: a, b: b}
}

func (z *ZipIter[A, B]) Next() rop.Option[tuple.Pair[A, B]] {
	x, ok := z.a.Next().Get()
	if !ok {
		return rop.None[tuple.Pair[A, B]]()
	}
	y, ok := z.b.Next().Get()
	if !ok {
		return rop.None[tuple.Pair[A, B]]()
	}
	return rop.Some(tuple.Of(x, y))
}

func (z *ZipIter[A, B]) SizeHint() (int, rop.Option[int]) {
	al, au := SizeHint(z.a)
	bl, bu := SizeHint(z.b)
	upper := au
	if u, ok := bu.Get(); ok {
		upper = rop.Some(min(au.UnwrapOr(u), u))
	}
	return min(al, bl), upper
}
