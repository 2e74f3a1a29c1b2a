package chain

import (
	"context"

	"github.com/ib-77/lazyrop/pkg/rop"
	"github.com/ib-77/lazyrop/pkg/rop/solo"
)

// Track wraps a single rop.Result with context to enable fluent railway
// chaining on top of the solo primitives.
type Track[T any] struct {
	ctx    context.Context
	result rop.Result[T, error]
}

// Start creates a new track from a rop.Result
func Start[T any](ctx context.Context, result rop.Result[T, error]) *Track[T] {
	return &Track[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new track from a successful value
func FromValue[T any](ctx context.Context, value T) *Track[T] {
	return Start(ctx, solo.Succeed(value))
}

// Collect drains a chain of results onto a track. The first failure, or
// cancellation of ctx, switches the track to failure.
func Collect[T any](ctx context.Context, c *Chain[rop.Result[T, error]]) *Track[[]T] {
	return Start(ctx, solo.Collect(ctx, c.Iter()))
}

// Result returns the underlying rop.Result
func (t *Track[T]) Result() rop.Result[T, error] {
	return t.result
}

// Then chains a function that returns rop.Result[U, error]
func Then[T, U any](t *Track[T], onSuccess func(context.Context, T) rop.Result[U, error]) *Track[U] {
	return Start(t.ctx, solo.Switch(t.ctx, t.result, onSuccess))
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](t *Track[T], tryOnSuccess func(context.Context, T) (U, error)) *Track[U] {
	return Start(t.ctx, solo.Try(t.ctx, t.result, tryOnSuccess))
}

// ThenMap chains a pure transformation function
func ThenMap[T, U any](t *Track[T], onSuccess func(context.Context, T) U) *Track[U] {
	return Start(t.ctx, solo.Map(t.ctx, t.result, onSuccess))
}

// Ensure performs a side effect without changing the result
func (t *Track[T]) Ensure(onSuccess func(context.Context, T)) *Track[T] {
	return Start(t.ctx, solo.Tee(t.ctx, t.result,
		func(ctx context.Context, result rop.Result[T, error]) {
			onSuccess(ctx, result.Unwrap())
		}))
}

// Finally collapses the track into a final value using solo.Finally
func Finally[T, U any](t *Track[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U) U {
	return solo.Finally(t.ctx, t.result, onSuccess, onFailure)
}
