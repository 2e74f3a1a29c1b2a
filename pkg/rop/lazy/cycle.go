package lazy

import (
	"github.com/ib-77/lazyrop/pkg/rop"
)

// CycleIter drains its source and then restarts it, forever.
type CycleIter[T any] struct {
	orig   Restartable[T]
	active Iter[T]
	done   bool
}

// Cycle repeats it endlessly. The remaining elements of it come first;
// every later round is a fresh traversal from it.Restart. A source with no
// elements at all makes the cycle empty instead of spinning.
func Cycle[T any](it Restartable[T]) *CycleIter[T] {
	return &CycleIter[T]{orig: it, active: it}
}

func (c *CycleIter[T]) Next() rop.Option[T] {
	if c.done {
		return rop.None[T]()
	}
	if v := c.active.Next(); v.IsSome() {
		return v
	}
	c.active = c.orig.Restart()
	v := c.active.Next()
	c.done = v.IsNone()
	return v
}

func (c *CycleIter[T]) SizeHint() (int, rop.Option[int]) {
	if c.done {
		return 0, rop.Some(0)
	}
	return maxHint, rop.None[int]()
}
