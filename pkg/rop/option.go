package rop

import (
	"fmt"

	"github.com/ib-77/lazyrop/pkg/rop/tuple"
)

// Option is either Some(value) or None. The zero value is None for every T,
// so no shared sentinel has to be allocated.
type Option[T any] struct {
	value T
	some  bool
}

func Some[T any](value T) Option[T] {
	return Option[T]{value: value, some: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// FromOk lifts the comma-ok idiom (map lookups, type assertions).
func FromOk[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

// FromPtr treats a nil pointer as None.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

func (o Option[T]) IsSomeAnd(predicate func(T) bool) bool {
	return o.some && predicate(o.value)
}

func (o Option[T]) IsNoneOr(predicate func(T) bool) bool {
	return !o.some || predicate(o.value)
}

// Get returns the value and whether it was present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Unwrap returns the contained value and panics on None.
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic(fmt.Errorf("unwrap: %w", ErrNoneValue))
	}
	return o.value
}

// Expect is Unwrap with a caller supplied panic message.
func (o Option[T]) Expect(msg string) T {
	if !o.some {
		panic(fmt.Errorf("%s: %w", msg, ErrNoneValue))
	}
	return o.value
}

func (o Option[T]) UnwrapOr(defaultValue T) T {
	if !o.some {
		return defaultValue
	}
	return o.value
}

func (o Option[T]) UnwrapOrElse(supplier func() T) T {
	if !o.some {
		return supplier()
	}
	return o.value
}

func (o Option[T]) UnwrapOrDefault() T {
	return o.value
}

// Filter keeps Some(v) only when predicate(v) holds.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if o.some && predicate(o.value) {
		return o
	}
	return None[T]()
}

// Or returns o when it is Some, other otherwise.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.some {
		return o
	}
	return other
}

func (o Option[T]) OrElse(other func() Option[T]) Option[T] {
	if o.some {
		return o
	}
	return other()
}

// XOr returns whichever side is Some when exactly one of them is.
func (o Option[T]) XOr(other Option[T]) Option[T] {
	switch {
	case o.some && !other.some:
		return o
	case !o.some && other.some:
		return other
	default:
		return None[T]()
	}
}

// Inspect calls f with the value, if any, and returns o unchanged.
func (o Option[T]) Inspect(f func(T)) Option[T] {
	if o.some {
		f(o.value)
	}
	return o
}

func (o Option[T]) Match(onSome func(T), onNone func()) {
	if o.some {
		onSome(o.value)
		return
	}
	onNone()
}

// Take moves the value out, leaving None behind.
func (o *Option[T]) Take() Option[T] {
	taken := *o
	*o = None[T]()
	return taken
}

// Replace stores value and returns the previous content.
func (o *Option[T]) Replace(value T) Option[T] {
	old := *o
	*o = Some(value)
	return old
}

// Branch maps Some(v) to Continue(v) and None to Break(None).
func (o Option[T]) Branch() Signal[Option[Infallible], T] {
	if o.some {
		return Output[Option[Infallible]](o.value)
	}
	return Residual[T](None[Infallible]())
}

func (Option[T]) FromOutput(value T) Option[T] {
	return Some(value)
}

func (Option[T]) FromResidual(Option[Infallible]) Option[T] {
	return None[T]()
}

func (o Option[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// MapOption is a strict 1:1 transform of the contained value.
func MapOption[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.some {
		return None[U]()
	}
	return Some(f(o.value))
}

func MapOptionOr[T, U any](o Option[T], defaultValue U, f func(T) U) U {
	if !o.some {
		return defaultValue
	}
	return f(o.value)
}

func MapOptionOrElse[T, U any](o Option[T], defaultF func() U, f func(T) U) U {
	if !o.some {
		return defaultF()
	}
	return f(o.value)
}

// AndOption returns other when o is Some, None otherwise.
func AndOption[T, U any](o Option[T], other Option[U]) Option[U] {
	if !o.some {
		return None[U]()
	}
	return other
}

// AndThenOption is the flat-map of Option.
func AndThenOption[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if !o.some {
		return None[U]()
	}
	return f(o.value)
}

func OkOr[T, E any](o Option[T], err E) Result[T, E] {
	if !o.some {
		return Err[T](err)
	}
	return Ok[E](o.value)
}

func OkOrElse[T, E any](o Option[T], err func() E) Result[T, E] {
	if !o.some {
		return Err[T](err())
	}
	return Ok[E](o.value)
}

func FlattenOption[T any](o Option[Option[T]]) Option[T] {
	if !o.some {
		return None[T]()
	}
	return o.value
}

// ZipOption pairs two values when both are present.
func ZipOption[T, U any](o Option[T], other Option[U]) Option[tuple.Pair[T, U]] {
	if !o.some || !other.some {
		return None[tuple.Pair[T, U]]()
	}
	return Some(tuple.Of(o.value, other.value))
}
