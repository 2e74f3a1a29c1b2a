// Package multi holds an optional value that distinguishes "nothing",
// "exactly one" and "several".
package multi

import (
	"fmt"
	"slices"

	"github.com/ib-77/lazyrop/pkg/rop"
	"github.com/ib-77/lazyrop/pkg/rop/lazy"
)

// Option is None, One or Many. The cardinality is the number of held
// values, so a Many always has at least two. The zero value is None.
type Option[T any] struct {
	values []T
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func One[T any](value T) Option[T] {
	return Option[T]{values: []T{value}}
}

// Many takes at least two values so it can never hold fewer.
func Many[T any](first, second T, rest ...T) Option[T] {
	values := make([]T, 0, 2+len(rest))
	values = append(values, first, second)
	return Option[T]{values: append(values, rest...)}
}

// FromSlice picks the cardinality from len(items). items is copied.
func FromSlice[T any](items []T) Option[T] {
	if len(items) == 0 {
		return None[T]()
	}
	return Option[T]{values: slices.Clone(items)}
}

// From drains it and picks the cardinality from what came out.
func From[T any](it lazy.Iter[T]) Option[T] {
	return Option[T]{values: lazy.Collect(it)}.normalize()
}

// Flatten merges the values of every option, in order.
func Flatten[T any](options ...Option[T]) Option[T] {
	var values []T
	for _, o := range options {
		values = append(values, o.values...)
	}
	return Option[T]{values: values}.normalize()
}

func (o Option[T]) normalize() Option[T] {
	if len(o.values) == 0 {
		return None[T]()
	}
	return o
}

func (o Option[T]) IsNone() bool {
	return len(o.values) == 0
}

func (o Option[T]) IsOne() bool {
	return len(o.values) == 1
}

func (o Option[T]) IsOneAnd(predicate func(T) bool) bool {
	return o.IsOne() && predicate(o.values[0])
}

func (o Option[T]) IsMany() bool {
	return len(o.values) > 1
}

func (o Option[T]) IsManyAnd(predicate func([]T) bool) bool {
	return o.IsMany() && predicate(o.Values())
}

// Size is 0 for None, 1 for One and the number of values for Many.
func (o Option[T]) Size() int {
	return len(o.values)
}

// Values returns a copy of the held values; nil for None.
func (o Option[T]) Values() []T {
	return slices.Clone(o.values)
}

// First returns the single value of One or the first value of Many.
func (o Option[T]) First() rop.Option[T] {
	if o.IsNone() {
		return rop.None[T]()
	}
	return rop.Some(o.values[0])
}

// Unwrap returns the held values and panics on None.
func (o Option[T]) Unwrap() []T {
	return o.Expect("unwrap")
}

func (o Option[T]) Expect(msg string) []T {
	if o.IsNone() {
		panic(fmt.Errorf("%s: %w", msg, rop.ErrNoneValue))
	}
	return o.Values()
}

func (o Option[T]) UnwrapOr(defaultValues []T) []T {
	if o.IsNone() {
		return defaultValues
	}
	return o.Values()
}

func (o Option[T]) UnwrapOrElse(supplier func() []T) []T {
	if o.IsNone() {
		return supplier()
	}
	return o.Values()
}

// Inspect calls f with the held values unless o is None.
func (o Option[T]) Inspect(f func([]T)) Option[T] {
	if !o.IsNone() {
		f(o.Values())
	}
	return o
}

// Iter yields the held values.
func (o Option[T]) Iter() lazy.Iter[T] {
	return lazy.FromSlice(o.values)
}

func (o Option[T]) String() string {
	switch len(o.values) {
	case 0:
		return "None"
	case 1:
		return fmt.Sprintf("One(%v)", o.values[0])
	default:
		return fmt.Sprintf("Many(%v)", o.values)
	}
}

// Map applies f to every held value; the cardinality is kept.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	return Option[U]{values: lazy.Collect(lazy.Map(o.Iter(), f))}.normalize()
}

func MapOr[T, U any](o Option[T], defaultValues []U, f func(T) U) []U {
	if o.IsNone() {
		return defaultValues
	}
	return Map(o, f).values
}

func MapOrElse[T, U any](o Option[T], defaultF func() []U, f func(T) U) []U {
	if o.IsNone() {
		return defaultF()
	}
	return Map(o, f).values
}
