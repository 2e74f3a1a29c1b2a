package lazy

import (
	"github.com/ib-77/lazyrop/pkg/rop"
)

// countingIter records how many times it was pulled.
type countingIter[T any] struct {
	items  []T
	pulled int
}

func counting[T any](items ...T) *countingIter[T] {
	return &countingIter[T]{items: items}
}

func (c *countingIter[T]) Next() rop.Option[T] {
	if c.pulled >= len(c.items) {
		c.pulled++
		return rop.None[T]()
	}
	v := c.items[c.pulled]
	c.pulled++
	return rop.Some(v)
}

// flakyIter alternates Some and None forever: 0, None, 1, None, 2, ...
type flakyIter struct {
	calls int
}

func (f *flakyIter) Next() rop.Option[int] {
	f.calls++
	if f.calls%2 == 0 {
		return rop.None[int]()
	}
	return rop.Some(f.calls / 2)
}
