package lazy

import (
	"github.com/ib-77/lazyrop/pkg/rop"
)

type FlattenIter[T any] struct {
	outer *FuseIter[Iter[T]]
	front Iter[T]
}

// Flatten yields the elements of each inner sequence in turn.
func Flatten[T any](it Iter[Iter[T]]) *FlattenIter[T] {
	return &FlattenIter[T]{outer: Fuse(it)}
}

// FlatMap maps every element to a sequence and flattens the result.
func FlatMap[T, U any](it Iter[T], f func(T) Iter[U]) *FlattenIter[U] {
	return Flatten[U](Map(it, f))
}

func (f *FlattenIter[T]) Next() rop.Option[T] {
	for {
		if f.front != nil {
			if v := f.front.Next(); v.IsSome() {
				return v
			}
			f.front = nil
		}
		inner, ok := f.outer.Next().Get()
		if !ok {
			return rop.None[T]()
		}
		f.front = inner
	}
}

// FlattenOptions drops the None elements and unwraps the rest.
func FlattenOptions[T any](it Iter[rop.Option[T]]) *FilterMapIter[rop.Option[T], T] {
	return FilterMap(it, func(o rop.Option[T]) rop.Option[T] { return o })
}
