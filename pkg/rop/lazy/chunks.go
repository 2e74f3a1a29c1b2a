package lazy

import (
	"fmt"

	"github.com/ib-77/lazyrop/pkg/rop"
)

type ArrayChunksIter[T any] struct {
	iter      Iter[T]
	size      int
	remainder rop.Option[[]T]
}

// ArrayChunks yields non-overlapping chunks of exactly size elements. A
// trailing short chunk is not yielded; it is kept for Remainder.
func ArrayChunks[T any](it Iter[T], size int) *ArrayChunksIter[T] {
	if size <= 0 {
		panic(fmt.Errorf("array chunks of %d: %w", size, ErrZeroSize))
	}
	return &ArrayChunksIter[T]{iter: it, size: size}
}

func (c *ArrayChunksIter[T]) Next() rop.Option[[]T] {
	chunk := NextChunk(c.iter, c.size)
	if full, ok := chunk.Ok().Get(); ok {
		return rop.Some(full)
	}
	if partial := chunk.UnwrapErr(); len(partial) > 0 {
		c.remainder = rop.Some(partial)
	}
	return rop.None[[]T]()
}

// Remainder returns the elements left over once the chunks ran out.
func (c *ArrayChunksIter[T]) Remainder() rop.Option[[]T] {
	return c.remainder
}

func (c *ArrayChunksIter[T]) SizeHint() (int, rop.Option[int]) {
	lower, upper := SizeHint(c.iter)
	return lower / c.size, rop.MapOption(upper, func(u int) int { return u / c.size })
}
