package solo

import (
	"context"
	"errors"

	"github.com/ib-77/lazyrop/pkg/rop"
	"github.com/ib-77/lazyrop/pkg/rop/lazy"
)

func Succeed[T any](input T) rop.Result[T, error] {
	return rop.Ok[error](input)
}

func Fail[T any](err error) rop.Result[T, error] {
	return rop.Err[T](err)
}

// Of lifts a Go (value, error) return into a Result.
func Of[T any](value T, err error) rop.Result[T, error] {
	return rop.FromPair(value, err)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Result[T, error] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input rop.Result[T, error],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Result[T, error] {

	return rop.AndThenResult(input, func(in T) rop.Result[T, error] {
		if isValid, errMsg := validate(ctx, in); !isValid {
			return Fail[T](errors.New(errMsg))
		}
		return Succeed(in)
	})
}

// ValidateAll runs every validator against input and joins their errors.
// With breakOnError the first failing validator wins.
func ValidateAll[T any](
	ctx context.Context,
	input rop.Result[T, error],
	breakOnError bool,
	validators ...func(ctx context.Context, in rop.Result[T, error]) rop.Result[T, error]) rop.Result[T, error] {

	var err error
	return Join(
		ctx,
		input,
		breakOnError,
		func(ctx context.Context, current rop.Result[T, error]) rop.Result[T, error] {

			if current.IsErr() {
				e := rop.GetErrors(err)
				e = append(e, current.UnwrapErr())
				err = errors.Join(e...)
			}

			if rop.IsNil(err) {
				return current
			}

			return Fail[T](err)
		},
		validators...,
	)
}

// Switch moves from Result[In] to Result[Out] on the success track.
func Switch[In, Out any](ctx context.Context,
	input rop.Result[In, error],
	onSuccess func(ctx context.Context, r In) rop.Result[Out, error]) rop.Result[Out, error] {

	return rop.AndThenResult(input, func(in In) rop.Result[Out, error] {
		return onSuccess(ctx, in)
	})
}

func Map[In, Out any](ctx context.Context,
	input rop.Result[In, error],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out, error] {

	return rop.MapResult(input, func(in In) Out {
		return onSuccess(ctx, in)
	})
}

func Tee[T any](ctx context.Context,
	input rop.Result[T, error],
	onSuccess func(ctx context.Context, r rop.Result[T, error])) rop.Result[T, error] {

	if input.IsOk() {
		onSuccess(ctx, input)
	}

	return input
}

func TeeIf[T any](ctx context.Context,
	input rop.Result[T, error],
	condition func(ctx context.Context, r rop.Result[T, error]) bool,
	onSuccessAndCondition func(ctx context.Context, r rop.Result[T, error])) rop.Result[T, error] {

	if input.IsOk() && condition(ctx, input) {
		onSuccessAndCondition(ctx, input)
	}

	return input
}

func DoubleTee[T any](ctx context.Context, input rop.Result[T, error],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error)) rop.Result[T, error] {

	input.Match(
		func(v T) { onSuccess(ctx, v) },
		func(err error) { onError(ctx, err) },
	)
	return input
}

// Try calls onTryExecute on the success value and turns a returned error
// into the failure track.
func Try[In, Out any](ctx context.Context, input rop.Result[In, error],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out, error] {

	return rop.AndThenResult(input, func(in In) rop.Result[Out, error] {
		return Of(onTryExecute(ctx, in))
	})
}

func FailOnError[T any](ctx context.Context, input rop.Result[T, error],
	maybeErr func(ctx context.Context, in T) error) rop.Result[T, error] {

	if v, ok := input.Ok().Get(); ok {
		if err := maybeErr(ctx, v); err != nil {
			return Fail[T](err)
		}
	}
	return input
}

func Finally[In, Out any](ctx context.Context, input rop.Result[In, error],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out) Out {

	return rop.MapResultOrElse(input,
		func(err error) Out { return onError(ctx, err) },
		func(in In) Out { return onSuccess(ctx, in) })
}

// Join threads input through every step, passing each step's result to
// concat. Cancellation of ctx stops the walk with the last result.
func Join[T any](ctx context.Context,
	input rop.Result[T, error],
	breakOnError bool,
	concat func(ctx context.Context, current rop.Result[T, error]) rop.Result[T, error],
	steps ...func(ctx context.Context, in rop.Result[T, error]) rop.Result[T, error]) rop.Result[T, error] {

	if len(steps) == 0 || concat == nil || ctx.Err() != nil {
		return input
	}

	finalResult := concat(ctx, steps[0](ctx, input))
	if ctx.Err() != nil || (finalResult.IsErr() && breakOnError) {
		return finalResult
	}

	for _, step := range steps[1:] {
		if ctx.Err() != nil {
			return finalResult
		}

		finalResult = concat(ctx, step(ctx, finalResult))
		if finalResult.IsErr() && breakOnError {
			return finalResult
		}
	}
	return finalResult
}

// Collect drains a sequence of results into one, stopping at the first
// failure or when ctx is done.
func Collect[T any](ctx context.Context, it lazy.Iter[rop.Result[T, error]]) rop.Result[[]T, error] {
	return lazy.TryFold(it, []T{}, func(acc []T, r rop.Result[T, error]) rop.Result[[]T, error] {
		if err := ctx.Err(); err != nil {
			return Fail[[]T](err)
		}
		return rop.MapResult(r, func(v T) []T {
			return append(acc, v)
		})
	})
}
