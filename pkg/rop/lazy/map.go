package lazy

import (
	"github.com/ib-77/lazyrop/pkg/rop"
	"github.com/ib-77/lazyrop/pkg/rop/tuple"
)

type MapIter[T, U any] struct {
	iter Iter[T]
	f    func(T) U
}

// Map applies f to every element as it is pulled.
func Map[T, U any](it Iter[T], f func(T) U) *MapIter[T, U] {
	return &MapIter[T, U]{iter: it, f: f}
}

func (m *MapIter[T, U]) Next() rop.Option[U] {
	return rop.MapOption(m.iter.Next(), m.f)
}

func (m *MapIter[T, U]) SizeHint() (int, rop.Option[int]) {
	return SizeHint(m.iter)
}

type FilterMapIter[T, U any] struct {
	iter Iter[T]
	f    func(T) rop.Option[U]
}

// FilterMap keeps the Some results of f and drops elements mapped to None.
func FilterMap[T, U any](it Iter[T], f func(T) rop.Option[U]) *FilterMapIter[T, U] {
	return &FilterMapIter[T, U]{iter: it, f: f}
}

func (m *FilterMapIter[T, U]) Next() rop.Option[U] {
	return FindMap(m.iter, m.f)
}

func (m *FilterMapIter[T, U]) SizeHint() (int, rop.Option[int]) {
	_, upper := SizeHint(m.iter)
	return 0, upper
}

type MapWhileIter[T, U any] struct {
	iter Iter[T]
	f    func(T) rop.Option[U]
	done bool
}

// MapWhile maps elements until f returns None for the first time and is
// exhausted from then on.
func MapWhile[T, U any](it Iter[T], f func(T) rop.Option[U]) *MapWhileIter[T, U] {
	return &MapWhileIter[T, U]{iter: it, f: f}
}

func (m *MapWhileIter[T, U]) Next() rop.Option[U] {
	if m.done {
		return rop.None[U]()
	}
	x, ok := m.iter.Next().Get()
	if !ok {
		return rop.None[U]()
	}
	out := m.f(x)
	m.done = out.IsNone()
	return out
}

type InspectIter[T any] struct {
	iter Iter[T]
	f    func(T)
}

// Inspect calls f on every element passing through, unchanged.
func Inspect[T any](it Iter[T], f func(T)) *InspectIter[T] {
	return &InspectIter[T]{iter: it, f: f}
}

func (i *InspectIter[T]) Next() rop.Option[T] {
	return i.iter.Next().Inspect(i.f)
}

func (i *InspectIter[T]) SizeHint() (int, rop.Option[int]) {
	return SizeHint(i.iter)
}

type EnumerateIter[T any] struct {
	iter  Iter[T]
	count int
}

// Enumerate pairs each element with its zero-based index.
func Enumerate[T any](it Iter[T]) *EnumerateIter[T] {
	return &EnumerateIter[T]{iter: it}
}

func (e *EnumerateIter[T]) Next() rop.Option[tuple.Pair[int, T]] {
	x, ok := e.iter.Next().Get()
	if !ok {
		return rop.None[tuple.Pair[int, T]]()
	}
	i := e.count
	e.count++
	return rop.Some(tuple.Of(i, x))
}

func (e *EnumerateIter[T]) SizeHint() (int, rop.Option[int]) {
	return SizeHint(e.iter)
}
