package lazy

import (
	"fmt"
	"slices"

	"github.com/ib-77/lazyrop/pkg/rop"
)

// MapWindowsIter keeps the last size elements in a buffer of twice that
// length so sliding the window is a slice move, not a copy, on most steps.
type MapWindowsIter[T, R any] struct {
	iter   Iter[T]
	f      func([]T) R
	size   int
	buf    []T
	start  int
	filled bool
}

// MapWindows calls f on every overlapping window of size consecutive
// elements. The slice passed to f is only valid during the call.
func MapWindows[T, R any](it Iter[T], size int, f func(window []T) R) *MapWindowsIter[T, R] {
	if size <= 0 {
		panic(fmt.Errorf("map windows of %d: %w", size, ErrZeroSize))
	}
	return &MapWindowsIter[T, R]{iter: it, f: f, size: size, buf: make([]T, 2*size)}
}

// Windows yields a copy of every overlapping window.
func Windows[T any](it Iter[T], size int) *MapWindowsIter[T, []T] {
	return MapWindows(it, size, slices.Clone[[]T])
}

func (w *MapWindowsIter[T, R]) Next() rop.Option[R] {
	if w.iter == nil {
		return rop.None[R]()
	}
	if !w.filled {
		for i := 0; i < w.size; i++ {
			x, ok := w.iter.Next().Get()
			if !ok {
				w.iter = nil
				return rop.None[R]()
			}
			w.buf[i] = x
		}
		w.filled = true
		return rop.Some(w.f(w.buf[:w.size]))
	}

	x, ok := w.iter.Next().Get()
	if !ok {
		w.iter = nil
		return rop.None[R]()
	}
	if w.start+w.size == len(w.buf) {
		copy(w.buf, w.buf[w.start+1:])
		w.start = 0
		w.buf[w.size-1] = x
	} else {
		w.buf[w.start+w.size] = x
		w.start++
	}
	return rop.Some(w.f(w.buf[w.start : w.start+w.size]))
}
