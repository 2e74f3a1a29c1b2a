package lazy

import (
	"github.com/ib-77/lazyrop/pkg/rop"
)

type IntersperseIter[T any] struct {
	iter      *PeekableIter[T]
	separator func() T
	needSep   bool
}

// Intersperse places separator between adjacent elements, never after the
// last one.
func Intersperse[T any](it Iter[T], separator T) *IntersperseIter[T] {
	return IntersperseWith(it, func() T { return separator })
}

// IntersperseWith is Intersperse with separators produced on demand.
func IntersperseWith[T any](it Iter[T], separator func() T) *IntersperseIter[T] {
	return &IntersperseIter[T]{iter: Peekable[T](Fuse(it)), separator: separator}
}

func (i *IntersperseIter[T]) Next() rop.Option[T] {
	if i.needSep && i.iter.Peek().IsSome() {
		i.needSep = false
		return rop.Some(i.separator())
	}
	item := i.iter.Next()
	i.needSep = item.IsSome()
	return item
}
