package lazy

import (
	"github.com/ib-77/lazyrop/pkg/rop"
)

type FuseIter[T any] struct {
	iter Iter[T]
}

// Fuse stops querying it after the first None and reports None forever.
func Fuse[T any](it Iter[T]) *FuseIter[T] {
	if f, ok := it.(*FuseIter[T]); ok {
		return f
	}
	return &FuseIter[T]{iter: it}
}

func (f *FuseIter[T]) Next() rop.Option[T] {
	if f.iter == nil {
		return rop.None[T]()
	}
	v := f.iter.Next()
	if v.IsNone() {
		f.iter = nil
	}
	return v
}

func (f *FuseIter[T]) SizeHint() (int, rop.Option[int]) {
	if f.iter == nil {
		return 0, rop.Some(0)
	}
	return SizeHint(f.iter)
}
