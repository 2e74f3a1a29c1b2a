package lazy

import (
	"github.com/ib-77/lazyrop/pkg/rop"
)

// Iter is a pull-based sequence.
type Iter[T any] interface {
	// Next returns the next element, or None once the sequence is exhausted.
	Next() rop.Option[T]
}

// SizeHinter is implemented by sequences that know bounds on their
// remaining length: a lower bound and an optional upper bound.
type SizeHinter interface {
	SizeHint() (int, rop.Option[int])
}

// Restartable is a sequence that can hand out a fresh traversal of its
// elements from the beginning. Cycle only accepts restartable sources.
type Restartable[T any] interface {
	Iter[T]
	Restart() Iter[T]
}

// SizeHint returns the bounds reported by it, or (0, None) when it does
// not know them.
func SizeHint[T any](it Iter[T]) (int, rop.Option[int]) {
	if h, ok := it.(SizeHinter); ok {
		return h.SizeHint()
	}
	return 0, rop.None[int]()
}

type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Number interface {
	Integer | ~float32 | ~float64
}

// Func adapts a plain function to Iter.
type Func[T any] func() rop.Option[T]

func (f Func[T]) Next() rop.Option[T] {
	return f()
}

func FromFunc[T any](f func() rop.Option[T]) Func[T] {
	return Func[T](f)
}

type SliceIter[T any] struct {
	items []T
	pos   int
}

// FromSlice iterates items without copying them.
func FromSlice[T any](items []T) *SliceIter[T] {
	return &SliceIter[T]{items: items}
}

func Of[T any](items ...T) *SliceIter[T] {
	return FromSlice(items)
}

func (s *SliceIter[T]) Next() rop.Option[T] {
	if s.pos >= len(s.items) {
		return rop.None[T]()
	}
	v := s.items[s.pos]
	s.pos++
	return rop.Some(v)
}

func (s *SliceIter[T]) SizeHint() (int, rop.Option[int]) {
	n := len(s.items) - s.pos
	return n, rop.Some(n)
}

func (s *SliceIter[T]) Restart() Iter[T] {
	return FromSlice(s.items)
}

type RangeIter[T Integer] struct {
	start, cur, end T
}

// Range yields start, start+1, ..., end-1.
func Range[T Integer](start, end T) *RangeIter[T] {
	return &RangeIter[T]{start: start, cur: start, end: end}
}

func (r *RangeIter[T]) Next() rop.Option[T] {
	if r.cur >= r.end {
		return rop.None[T]()
	}
	v := r.cur
	r.cur++
	return rop.Some(v)
}

func (r *RangeIter[T]) SizeHint() (int, rop.Option[int]) {
	if r.cur >= r.end {
		return 0, rop.Some(0)
	}
	n := int(r.end - r.cur)
	return n, rop.Some(n)
}

func (r *RangeIter[T]) Restart() Iter[T] {
	return Range(r.start, r.end)
}

type EmptyIter[T any] struct{}

func Empty[T any]() EmptyIter[T] {
	return EmptyIter[T]{}
}

func (EmptyIter[T]) Next() rop.Option[T] {
	return rop.None[T]()
}

func (EmptyIter[T]) SizeHint() (int, rop.Option[int]) {
	return 0, rop.Some(0)
}

func (e EmptyIter[T]) Restart() Iter[T] {
	return e
}

type OnceIter[T any] struct {
	value rop.Option[T]
	orig  T
}

// Once yields value exactly one time.
func Once[T any](value T) *OnceIter[T] {
	return &OnceIter[T]{value: rop.Some(value), orig: value}
}

func (o *OnceIter[T]) Next() rop.Option[T] {
	return o.value.Take()
}

func (o *OnceIter[T]) SizeHint() (int, rop.Option[int]) {
	if o.value.IsSome() {
		return 1, rop.Some(1)
	}
	return 0, rop.Some(0)
}

func (o *OnceIter[T]) Restart() Iter[T] {
	return Once(o.orig)
}

type RepeatIter[T any] struct {
	f func() T
}

// Repeat yields value forever.
func Repeat[T any](value T) *RepeatIter[T] {
	return RepeatWith(func() T { return value })
}

// RepeatWith yields f() forever.
func RepeatWith[T any](f func() T) *RepeatIter[T] {
	return &RepeatIter[T]{f: f}
}

func (r *RepeatIter[T]) Next() rop.Option[T] {
	return rop.Some(r.f())
}

func (r *RepeatIter[T]) SizeHint() (int, rop.Option[int]) {
	return maxHint, rop.None[int]()
}

func (r *RepeatIter[T]) Restart() Iter[T] {
	return r
}

// Successors yields first and then succ applied to the previous element
// until succ returns None.
func Successors[T any](first rop.Option[T], succ func(T) rop.Option[T]) Func[T] {
	next := first
	return FromFunc(func() rop.Option[T] {
		cur := next.Take()
		if v, ok := cur.Get(); ok {
			next = succ(v)
		}
		return cur
	})
}

// FromOption yields the contained value, if any.
func FromOption[T any](o rop.Option[T]) Iter[T] {
	if v, ok := o.Get(); ok {
		return Once(v)
	}
	return Empty[T]()
}

// FromResult yields the success value, if any.
func FromResult[T, E any](r rop.Result[T, E]) Iter[T] {
	return FromOption(r.Ok())
}

type RestartingIter[T any] struct {
	factory func() Iter[T]
	current Iter[T]
}

// Restarting makes any sequence restartable by rebuilding it from factory.
func Restarting[T any](factory func() Iter[T]) *RestartingIter[T] {
	return &RestartingIter[T]{factory: factory, current: factory()}
}

func (r *RestartingIter[T]) Next() rop.Option[T] {
	return r.current.Next()
}

func (r *RestartingIter[T]) Restart() Iter[T] {
	return r.factory()
}

// maxHint is the lower bound reported by sources that never end.
const maxHint = int(^uint(0) >> 1)

// maxPrealloc caps the capacity Collect reserves up front from a lower bound.
const maxPrealloc = 1 << 16

func saturatingAdd(a, b int) int {
	if a > maxHint-b {
		return maxHint
	}
	return a + b
}

// checkedAdd reports None when the sum of two bounds does not fit in an int.
func checkedAdd(a, b int) rop.Option[int] {
	if a > maxHint-b {
		return rop.None[int]()
	}
	return rop.Some(a + b)
}
