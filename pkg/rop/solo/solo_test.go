package solo

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/lazyrop/pkg/rop"
	"github.com/ib-77/lazyrop/pkg/rop/lazy"
)

// helper validators for int values that ignore prior result and validate captured value
func validateNonNegative(v int) func(ctx context.Context, in rop.Result[int, error]) rop.Result[int, error] {
	return func(ctx context.Context, in rop.Result[int, error]) rop.Result[int, error] {
		if v < 0 {
			return Fail[int](errors.New("negative"))
		}
		return Succeed(v)
	}
}

func validateEven(v int) func(ctx context.Context, in rop.Result[int, error]) rop.Result[int, error] {
	return func(ctx context.Context, in rop.Result[int, error]) rop.Result[int, error] {
		if v%2 != 0 {
			return Fail[int](errors.New("odd"))
		}
		return Succeed(v)
	}
}

func passThrough[T any]() func(ctx context.Context, in rop.Result[T, error]) rop.Result[T, error] {
	return func(ctx context.Context, in rop.Result[T, error]) rop.Result[T, error] { return in }
}

func TestValidateAll_AllSuccess(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	v := 10 // non-negative, even

	res := ValidateAll(ctx, Succeed(v), true, validateNonNegative(v), validateEven(v))

	if !res.IsOk() {
		t.Fatalf("expected success, got error: %v", res.UnwrapErr())
	}
	if res.Unwrap() != v {
		t.Fatalf("expected result %d, got %d", v, res.Unwrap())
	}
}

func TestValidateAll_FailBreakOnFirst(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	v := -1 // fails non-negative and odd

	executed := 0
	v1 := func(ctx context.Context, in rop.Result[int, error]) rop.Result[int, error] {
		executed++
		return validateNonNegative(v)(ctx, in)
	}
	v2 := func(ctx context.Context, in rop.Result[int, error]) rop.Result[int, error] {
		executed++
		return validateEven(v)(ctx, in)
	}

	res := ValidateAll(ctx, Succeed(v), true, v1, v2)

	if res.IsOk() {
		t.Fatalf("expected failure, got success: %v", res.Unwrap())
	}
	if executed != 1 {
		t.Fatalf("expected only first validator to execute, got %d", executed)
	}
	// errors.Join(single) prints as the original error
	if res.UnwrapErr().Error() != "negative" {
		t.Fatalf("expected 'negative' error, got: %v", res.UnwrapErr())
	}
}

func TestValidateAll_AccumulateErrors_NoBreak(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	v := -3 // negative and odd

	res := ValidateAll(ctx, Succeed(v), false, validateNonNegative(v), validateNonNegative(v), validateEven(v))

	if res.IsOk() {
		t.Fatalf("expected failure, got success: %v", res.Unwrap())
	}

	errs := rop.GetErrors(res.UnwrapErr())
	if len(errs) != 3 {
		t.Fatalf("expected 3 accumulated errors, got %d", len(errs))
	}
	if errs[0].Error() != "negative" || errs[1].Error() != "negative" || errs[2].Error() != "odd" {
		t.Fatalf("expected errors ['negative', 'negative', 'odd'], got ['%s','%s','%s']",
			errs[0].Error(), errs[1].Error(), errs[2].Error())
	}
}

func TestValidateAll_InitialInputFail(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	res := ValidateAll(ctx, Fail[int](errors.New("initial")), true, passThrough[int]())

	if res.IsOk() {
		t.Fatalf("expected failure, got success")
	}
	if res.UnwrapErr().Error() != "initial" {
		t.Fatalf("expected initial error to pass through, got: %v", res.UnwrapErr())
	}
}

func TestValidateAll_ContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancel before running

	res := ValidateAll(ctx, Succeed(42), false, validateNonNegative(-1), validateEven(43))

	// canceled context short-circuits Join and returns input unchanged
	if !res.IsOk() || res.Unwrap() != 42 {
		t.Fatalf("expected original value 42, got %v", res)
	}
}

func TestValidateAll_NoValidators(t *testing.T) {
	t.Parallel()

	res := ValidateAll(context.Background(), Succeed(7), false)

	if !res.IsOk() || res.Unwrap() != 7 {
		t.Fatalf("expected result 7, got %v", res)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	positive := func(ctx context.Context, in int) (bool, string) { return in > 0, "not positive" }

	if out := Validate(ctx, 3, positive); !out.IsOk() {
		t.Fatalf("expected success, got %v", out)
	}
	out := Validate(ctx, -3, positive)
	if out.IsOk() || out.UnwrapErr().Error() != "not positive" {
		t.Fatalf("expected 'not positive', got %v", out)
	}

	called := false
	AndValidate(ctx, Fail[int](errors.New("x")), func(ctx context.Context, in int) (bool, string) {
		called = true
		return true, ""
	})
	if called {
		t.Fatalf("validator must not run on failure input")
	}
}

func TestSwitchMapTry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	sw := Switch(ctx, Succeed("12"), func(ctx context.Context, s string) rop.Result[int, error] {
		return Of(strconv.Atoi(s))
	})
	if sw.Unwrap() != 12 {
		t.Fatalf("expected 12, got %v", sw)
	}

	mapped := Map(ctx, Succeed(5), func(ctx context.Context, v int) string { return "n:" + strconv.Itoa(v) })
	if mapped.Unwrap() != "n:5" {
		t.Fatalf("expected 'n:5', got %v", mapped)
	}

	tried := Try(ctx, Succeed("abc"), func(ctx context.Context, s string) (int, error) {
		return strconv.Atoi(s)
	})
	var numErr *strconv.NumError
	if !errors.As(tried.UnwrapErr(), &numErr) {
		t.Fatalf("expected *strconv.NumError, got %v", tried)
	}

	boom := errors.New("boom")
	skipped := Try(ctx, Fail[string](boom), func(ctx context.Context, s string) (int, error) {
		t.Fatalf("must not be called")
		return 0, nil
	})
	if !rop.ErrorIs(skipped, boom) {
		t.Fatalf("expected boom to pass through, got %v", skipped)
	}
}

func TestTees(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var seen []string
	Tee(ctx, Succeed(1), func(ctx context.Context, r rop.Result[int, error]) { seen = append(seen, "tee") })
	Tee(ctx, Fail[int](errors.New("x")), func(ctx context.Context, r rop.Result[int, error]) { seen = append(seen, "tee-fail") })
	TeeIf(ctx, Succeed(2),
		func(ctx context.Context, r rop.Result[int, error]) bool { return r.Unwrap() > 1 },
		func(ctx context.Context, r rop.Result[int, error]) { seen = append(seen, "tee-if") })
	DoubleTee(ctx, Fail[int](errors.New("x")),
		func(ctx context.Context, v int) { seen = append(seen, "ok") },
		func(ctx context.Context, err error) { seen = append(seen, "err:"+err.Error()) })

	want := []string{"tee", "tee-if", "err:x"}
	if len(seen) != len(want) {
		t.Fatalf("expected %v, got %v", want, seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, seen)
		}
	}
}

func TestFailOnErrorAndFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FailOnError(ctx, Succeed(3), func(ctx context.Context, v int) error {
		if v%2 != 0 {
			return errors.New("odd")
		}
		return nil
	})
	if out.IsOk() {
		t.Fatalf("expected failure, got %v", out)
	}

	s := Finally(ctx, Succeed(2),
		func(ctx context.Context, v int) string { return "ok" },
		func(ctx context.Context, err error) string { return "fail" })
	f := Finally(ctx, out,
		func(ctx context.Context, v int) string { return "ok" },
		func(ctx context.Context, err error) string { return "fail:" + err.Error() })
	if s != "ok" || f != "fail:odd" {
		t.Fatalf("expected 'ok' and 'fail:odd', got %q and %q", s, f)
	}
}

func TestCollect(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	parsed := lazy.Map(lazy.Of("1", "2", "3"), func(s string) rop.Result[int, error] {
		return Of(strconv.Atoi(s))
	})
	all := Collect(ctx, parsed)
	if got := all.Unwrap(); len(got) != 3 || got[2] != 3 {
		t.Fatalf("expected [1 2 3], got %v", all)
	}

	pulled := 0
	broken := lazy.Map(lazy.Of("1", "x", "3"), func(s string) rop.Result[int, error] {
		pulled++
		return Of(strconv.Atoi(s))
	})
	if Collect(ctx, broken).IsOk() || pulled != 2 {
		t.Fatalf("expected failure after 2 pulls, got %d pulls", pulled)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	out := Collect(cancelled, lazy.Map(lazy.Of("1"), func(s string) rop.Result[int, error] {
		return Of(strconv.Atoi(s))
	}))
	if !rop.ErrorIs(out, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", out)
	}
}
