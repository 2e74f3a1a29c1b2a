package rop

import (
	"errors"
	"fmt"
)

// Result holds either Ok(value) or Err(err), never both.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Ok is written Ok[E](v) so the value type is inferred.
func Ok[E, T any](value T) Result[T, E] {
	return Result[T, E]{value: value, ok: true}
}

// Err is written Err[T](e). A nil error is replaced with ErrNilError so a
// failure can never look like a silent success.
func Err[T, E any](err E) Result[T, E] {
	if e, isErr := any(&err).(*error); isErr && IsNil(*e) {
		*e = ErrNilError
	}
	return Result[T, E]{err: err}
}

// OkUnit is the success marker for results whose payload is irrelevant.
func OkUnit[E any]() Result[Unit, E] {
	return Ok[E](Unit{})
}

// FromPair converts a Go (value, error) return into a Result.
func FromPair[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[error](value)
}

func (r Result[T, E]) IsOk() bool {
	return r.ok
}

func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

func (r Result[T, E]) IsOkAnd(predicate func(T) bool) bool {
	return r.ok && predicate(r.value)
}

func (r Result[T, E]) IsErrAnd(predicate func(E) bool) bool {
	return !r.ok && predicate(r.err)
}

// Ok projects the success value.
func (r Result[T, E]) Ok() Option[T] {
	if r.ok {
		return Some(r.value)
	}
	return None[T]()
}

// Err projects the failure value.
func (r Result[T, E]) Err() Option[E] {
	if r.ok {
		return None[E]()
	}
	return Some(r.err)
}

func (r Result[T, E]) Get() (T, E, bool) {
	return r.value, r.err, r.ok
}

func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(r.failure("unwrap", ErrErrValue, r.err))
	}
	return r.value
}

func (r Result[T, E]) Expect(msg string) T {
	if !r.ok {
		panic(r.failure(msg, ErrErrValue, r.err))
	}
	return r.value
}

func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		panic(r.failure("unwrap err", ErrOkValue, r.value))
	}
	return r.err
}

func (r Result[T, E]) ExpectErr(msg string) E {
	if r.ok {
		panic(r.failure(msg, ErrOkValue, r.value))
	}
	return r.err
}

func (r Result[T, E]) UnwrapOr(defaultValue T) T {
	if !r.ok {
		return defaultValue
	}
	return r.value
}

func (r Result[T, E]) UnwrapOrElse(f func(E) T) T {
	if !r.ok {
		return f(r.err)
	}
	return r.value
}

func (r Result[T, E]) UnwrapOrDefault() T {
	if !r.ok {
		var zero T
		return zero
	}
	return r.value
}

// Inspect runs f on the success value and returns r unchanged.
func (r Result[T, E]) Inspect(f func(T)) Result[T, E] {
	if r.ok {
		f(r.value)
	}
	return r
}

// InspectErr runs f on the failure value and returns r unchanged.
func (r Result[T, E]) InspectErr(f func(E)) Result[T, E] {
	if !r.ok {
		f(r.err)
	}
	return r
}

func (r Result[T, E]) Match(onOk func(T), onErr func(E)) {
	if r.ok {
		onOk(r.value)
		return
	}
	onErr(r.err)
}

// Branch maps Ok(v) to Continue(v) and Err(e) to Break(Err(e)).
func (r Result[T, E]) Branch() Signal[Result[Infallible, E], T] {
	if r.ok {
		return Output[Result[Infallible, E]](r.value)
	}
	return Residual[T](Result[Infallible, E]{err: r.err})
}

func (Result[T, E]) FromOutput(value T) Result[T, E] {
	return Ok[E](value)
}

func (Result[T, E]) FromResidual(residual Result[Infallible, E]) Result[T, E] {
	return Result[T, E]{err: residual.err}
}

func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

// failure builds the panic value for a contract violation. When the payload
// is itself an error it stays reachable through errors.Is / errors.As.
func (r Result[T, E]) failure(msg string, sentinel error, payload any) error {
	if cause, ok := payload.(error); ok {
		return fmt.Errorf("%s: %w: %w", msg, sentinel, cause)
	}
	return fmt.Errorf("%s: %w: %v", msg, sentinel, payload)
}

func MapResult[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	if !r.ok {
		return Result[U, E]{err: r.err}
	}
	return Ok[E](f(r.value))
}

func MapErr[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if !r.ok {
		return Result[T, F]{err: f(r.err)}
	}
	return Ok[F](r.value)
}

func MapResultOr[T, U, E any](r Result[T, E], defaultValue U, f func(T) U) U {
	if !r.ok {
		return defaultValue
	}
	return f(r.value)
}

func MapResultOrElse[T, U, E any](r Result[T, E], defaultF func(E) U, f func(T) U) U {
	if !r.ok {
		return defaultF(r.err)
	}
	return f(r.value)
}

// AndResult returns other when r is Ok, r's error otherwise.
func AndResult[T, U, E any](r Result[T, E], other Result[U, E]) Result[U, E] {
	if !r.ok {
		return Result[U, E]{err: r.err}
	}
	return other
}

func AndThenResult[T, U, E any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if !r.ok {
		return Result[U, E]{err: r.err}
	}
	return f(r.value)
}

// OrResult returns r when it is Ok, other otherwise.
func OrResult[T, E, F any](r Result[T, E], other Result[T, F]) Result[T, F] {
	if r.ok {
		return Ok[F](r.value)
	}
	return other
}

func OrElseResult[T, E, F any](r Result[T, E], f func(E) Result[T, F]) Result[T, F] {
	if r.ok {
		return Ok[F](r.value)
	}
	return f(r.err)
}

func FlattenResult[T, E any](r Result[Result[T, E], E]) Result[T, E] {
	if !r.ok {
		return Result[T, E]{err: r.err}
	}
	return r.value
}

// AsError converts a Result with an error payload back to Go's (T, error).
func AsError[T any](r Result[T, error]) (T, error) {
	if !r.ok {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}

// ErrorIs reports whether r failed with an error matching target.
func ErrorIs[T any](r Result[T, error], target error) bool {
	return !r.ok && errors.Is(r.err, target)
}
