package chain

import (
	"errors"
	"testing"

	"github.com/ib-77/adt3/pkg/adt"
	"github.com/ib-77/adt3/pkg/adt/try"
)

type Safe = adt.Safe

func fail[T any](msg string) try.Try[T, Safe] {
	return try.Fail[Safe, T](errors.New(msg))
}

func TestStartAndResult_Ok(t *testing.T) {
	t.Parallel()

	out := Start(try.Ok[Safe](5)).Result()
	if !out.IsOk() || out.MustValue() != 5 {
		t.Fatalf("expected Ok(5), got %v", out)
	}
}

func TestFromValue(t *testing.T) {
	t.Parallel()

	out := FromValue[Safe](7).Result()
	if !out.IsOk() || out.MustValue() != 7 {
		t.Fatalf("expected Ok(7), got %v", out)
	}
}

func TestFromAttempt_CapturesPanic(t *testing.T) {
	t.Parallel()

	out := FromAttempt[Safe](func() int { panic("no value") }).Result()
	if out.IsOk() || !adt.IsCaptured(out.Err()) {
		t.Fatalf("expected captured failure, got %v", out)
	}
}

func TestThen_ShortCircuitOnError(t *testing.T) {
	t.Parallel()

	called := false
	out := Start(fail[int]("boom")).
		Then(func(v int) try.Try[int, Safe] {
			called = true
			return try.Ok[Safe](v + 1)
		}).
		Result()

	if out.IsOk() || out.Err().Error() != "boom" {
		t.Fatalf("expected Error 'boom', got %v", out)
	}
	if called {
		t.Fatalf("onOk should not be called when the initial result is an Error")
	}
}

func TestThen_OkPath(t *testing.T) {
	t.Parallel()

	out := FromValue[Safe](3).
		Then(func(v int) try.Try[int, Safe] { return try.Ok[Safe](v * 2) }).
		Result()

	if out.MustValue() != 6 {
		t.Fatalf("expected Ok(6), got %v", out)
	}
}

func TestThen_ChangesType(t *testing.T) {
	t.Parallel()

	c := Then(FromValue[Safe](3), func(v int) try.Try[string, Safe] {
		if v > 2 {
			return try.Ok[Safe]("big")
		}
		return fail[string]("small")
	})

	if got := c.Result().MustValue(); got != "big" {
		t.Fatalf("expected 'big', got %q", got)
	}
}

func TestThenTry(t *testing.T) {
	t.Parallel()

	out := FromValue[Safe](4).
		ThenTry(func(v int) (int, error) { return v * v, nil }).
		Result()
	if out.MustValue() != 16 {
		t.Fatalf("expected Ok(16), got %v", out)
	}

	out = FromValue[Safe](10).
		ThenTry(func(int) (int, error) { return 0, errors.New("try-error") }).
		Result()
	if out.IsOk() || out.Err().Error() != "try-error" {
		t.Fatalf("expected Error 'try-error', got %v", out)
	}

	out = Start(fail[int]("bad")).
		ThenTry(func(v int) (int, error) { return v + 1, nil }).
		Result()
	if out.Err() == nil || out.Err().Error() != "bad" {
		t.Fatalf("expected Error 'bad', got %v", out)
	}
}

func TestMap(t *testing.T) {
	t.Parallel()

	if out := FromValue[Safe](5).Map(func(v int) int { return v + 3 }).Result(); out.MustValue() != 8 {
		t.Fatalf("expected Ok(8), got %v", out)
	}

	if out := Start(fail[int]("oops")).Map(func(v int) int { return v + 100 }).Result(); out.Err().Error() != "oops" {
		t.Fatalf("expected Error 'oops', got %v", out)
	}

	lengths := Map(FromValue[Safe]("four"), func(s string) int { return len(s) })
	if lengths.Result().MustValue() != 4 {
		t.Fatalf("expected Ok(4), got %v", lengths)
	}
}

func TestEnsure_SideEffects(t *testing.T) {
	t.Parallel()

	okCalled, errCalled := false, false
	out := FromValue[Safe](11).
		Ensure(func(int) { okCalled = true }, func(error) { errCalled = true }).
		Result()
	if out.MustValue() != 11 || !okCalled || errCalled {
		t.Fatalf("expected Ok side-effect only; ok=%v, err=%v", okCalled, errCalled)
	}

	okCalled, errCalled = false, false
	out = Start(fail[int]("bad")).
		Ensure(func(int) { okCalled = true }, func(error) { errCalled = true }).
		Result()
	if out.Err().Error() != "bad" || okCalled || !errCalled {
		t.Fatalf("expected Error side-effect only; ok=%v, err=%v", okCalled, errCalled)
	}

	// nil callbacks are skipped
	if out := FromValue[Safe](1).Ensure(nil, nil).Result(); out.MustValue() != 1 {
		t.Fatalf("expected unchanged Ok, got %v", out)
	}
}

func TestOr(t *testing.T) {
	t.Parallel()

	first := Start(fail[int]("first"))
	second := Start(fail[int]("second"))
	good := FromValue[Safe](9)

	if out := first.Or(second, good).Result(); out.MustValue() != 9 {
		t.Fatalf("expected first Ok alternative, got %v", out)
	}
	if out := first.Or(second).Result(); out.Err().Error() != "first" {
		t.Fatalf("expected the receiver's Error, got %v", out)
	}
	if out := good.Or(first).Result(); out.MustValue() != 9 {
		t.Fatalf("Ok receiver must win, got %v", out)
	}
}

func TestAnd(t *testing.T) {
	t.Parallel()

	a := FromValue[Safe](1)
	b := FromValue[Safe](2)
	bad := Start(fail[int]("required"))

	if out := a.And(b).Result(); out.MustValue() != 2 {
		t.Fatalf("expected the last Ok, got %v", out)
	}
	if out := a.And(bad, b).Result(); out.Err().Error() != "required" {
		t.Fatalf("expected the first Error, got %v", out)
	}
}

func TestRepeatUntilAndWhile(t *testing.T) {
	t.Parallel()

	double := func(v int) try.Try[int, Safe] { return try.Ok[Safe](v * 2) }

	out := FromValue[Safe](1).RepeatUntil(double, func(v int) bool { return v < 100 }).Result()
	if out.MustValue() != 128 {
		t.Fatalf("expected 128, got %v", out)
	}

	steps := 0
	once := FromValue[Safe](500).RepeatUntil(func(v int) try.Try[int, Safe] {
		steps++
		return try.Ok[Safe](v + 1)
	}, func(v int) bool { return v < 100 })
	if steps != 1 || once.Result().MustValue() != 501 {
		t.Fatalf("RepeatUntil must run the step once, got %d steps and %v", steps, once)
	}

	out = FromValue[Safe](500).While(double, func(v int) bool { return v < 100 }).Result()
	if out.MustValue() != 500 {
		t.Fatalf("While must not run a step when the condition fails, got %v", out)
	}

	out = FromValue[Safe](3).While(func(v int) try.Try[int, Safe] {
		if v > 20 {
			return fail[int]("overflow")
		}
		return double(v)
	}, func(int) bool { return true }).Result()
	if out.Err() == nil || out.Err().Error() != "overflow" {
		t.Fatalf("While must stop on Error, got %v", out)
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()

	s := FromValue[Safe](3).Finally(
		func(v int) int { return v + 100 },
		func(error) int { return -1 },
	)
	if s != 103 {
		t.Fatalf("expected 103, got %d", s)
	}

	f := Start(fail[int]("x")).Finally(
		func(v int) int { return v },
		func(error) int { return -1 },
	)
	if f != -1 {
		t.Fatalf("expected -1 for Error, got %d", f)
	}

	label := Finally(FromValue[Safe](3), func(v int) string { return "ok" }, error.Error)
	if label != "ok" {
		t.Fatalf("expected 'ok', got %q", label)
	}
}
