package chain

import (
	"github.com/rs/zerolog"

	"github.com/ib-77/lazyrop/pkg/rop"
	"github.com/ib-77/lazyrop/pkg/rop/lazy"
	"github.com/ib-77/lazyrop/pkg/rop/trace"
	"github.com/ib-77/lazyrop/pkg/rop/tuple"
)

// Chain wraps a lazy.Iter to enable fluent chaining. Adapters return a new
// Chain over the adapted sequence; nothing is pulled until a terminal
// method runs.
type Chain[T any] struct {
	iter lazy.Iter[T]
}

// From starts a chain over an existing sequence.
func From[T any](it lazy.Iter[T]) *Chain[T] {
	return &Chain[T]{iter: it}
}

// FromSlice starts a chain over items.
func FromSlice[T any](items []T) *Chain[T] {
	return From[T](lazy.FromSlice(items))
}

// Of starts a chain over the given values.
func Of[T any](items ...T) *Chain[T] {
	return FromSlice(items)
}

// Iter returns the underlying sequence.
func (c *Chain[T]) Iter() lazy.Iter[T] {
	return c.iter
}

func (c *Chain[T]) Next() rop.Option[T] {
	return c.iter.Next()
}

func (c *Chain[T]) Filter(predicate func(T) bool) *Chain[T] {
	return From[T](lazy.Filter(c.iter, predicate))
}

func (c *Chain[T]) Skip(n int) *Chain[T] {
	return From[T](lazy.Skip(c.iter, n))
}

func (c *Chain[T]) Take(n int) *Chain[T] {
	return From[T](lazy.Take(c.iter, n))
}

func (c *Chain[T]) SkipWhile(predicate func(T) bool) *Chain[T] {
	return From[T](lazy.SkipWhile(c.iter, predicate))
}

func (c *Chain[T]) TakeWhile(predicate func(T) bool) *Chain[T] {
	return From[T](lazy.TakeWhile(c.iter, predicate))
}

func (c *Chain[T]) StepBy(step int) *Chain[T] {
	return From[T](lazy.StepBy(c.iter, step))
}

func (c *Chain[T]) Fuse() *Chain[T] {
	return From[T](lazy.Fuse(c.iter))
}

// Inspect runs f on each element as it is pulled.
func (c *Chain[T]) Inspect(f func(T)) *Chain[T] {
	return From[T](lazy.Inspect(c.iter, f))
}

// Chain appends other after the current sequence.
func (c *Chain[T]) Chain(other lazy.Iter[T]) *Chain[T] {
	return From[T](lazy.Chain(c.iter, other))
}

func (c *Chain[T]) Intersperse(separator T) *Chain[T] {
	return From[T](lazy.Intersperse(c.iter, separator))
}

// Tap logs every pulled element through trace.Tap.
func (c *Chain[T]) Tap(logger zerolog.Logger, label string) *Chain[T] {
	return From[T](trace.Tap(c.iter, logger, label))
}

// Collect drains the chain into a slice.
func (c *Chain[T]) Collect() []T {
	return lazy.Collect(c.iter)
}

func (c *Chain[T]) Count() int {
	return lazy.Count(c.iter)
}

func (c *Chain[T]) Last() rop.Option[T] {
	return lazy.Last(c.iter)
}

func (c *Chain[T]) Nth(n int) rop.Option[T] {
	return lazy.Nth(c.iter, n)
}

func (c *Chain[T]) All(predicate func(T) bool) bool {
	return lazy.All(c.iter, predicate)
}

func (c *Chain[T]) Any(predicate func(T) bool) bool {
	return lazy.Any(c.iter, predicate)
}

func (c *Chain[T]) Find(predicate func(T) bool) rop.Option[T] {
	return lazy.Find(c.iter, predicate)
}

func (c *Chain[T]) Position(predicate func(T) bool) rop.Option[int] {
	return lazy.Position(c.iter, predicate)
}

func (c *Chain[T]) Reduce(f func(T, T) T) rop.Option[T] {
	return lazy.Reduce(c.iter, f)
}

func (c *Chain[T]) MaxBy(compare func(a, b T) int) rop.Option[T] {
	return lazy.MaxBy(c.iter, compare)
}

func (c *Chain[T]) MinBy(compare func(a, b T) int) rop.Option[T] {
	return lazy.MinBy(c.iter, compare)
}

func (c *Chain[T]) ForEach(f func(T)) {
	lazy.ForEach(c.iter, f)
}

// Map chains a 1:1 transformation. It is a function because methods cannot
// introduce the new element type.
func Map[T, U any](c *Chain[T], f func(T) U) *Chain[U] {
	return From[U](lazy.Map(c.iter, f))
}

func FilterMap[T, U any](c *Chain[T], f func(T) rop.Option[U]) *Chain[U] {
	return From[U](lazy.FilterMap(c.iter, f))
}

func FlatMap[T, U any](c *Chain[T], f func(T) lazy.Iter[U]) *Chain[U] {
	return From[U](lazy.FlatMap(c.iter, f))
}

func Zip[T, U any](c *Chain[T], other lazy.Iter[U]) *Chain[tuple.Pair[T, U]] {
	return From[tuple.Pair[T, U]](lazy.Zip(c.iter, other))
}

func Enumerate[T any](c *Chain[T]) *Chain[tuple.Pair[int, T]] {
	return From[tuple.Pair[int, T]](lazy.Enumerate(c.iter))
}

func Fold[T, B any](c *Chain[T], init B, f func(B, T) B) B {
	return lazy.Fold(c.iter, init, f)
}
