package chain

import (
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/monads/pkg/monads/expected"
	"github.com/ib-77/monads/pkg/monads/invoke"
)

type order struct {
	ID    string
	Total int
}

func (o order) Discounted() int { return o.Total * 9 / 10 }

func TestStart_Result_Value(t *testing.T) {
	t.Parallel()
	c := Start(expected.Make[int, error](10))
	out := c.Result()
	if !out.HasValue() || out.Unwrap() != 10 {
		t.Fatalf("expected value 10, got %v", out)
	}
}

func TestFromValue_FromError(t *testing.T) {
	t.Parallel()
	if out := FromValue[int, error](7).Result(); out.Unwrap() != 7 {
		t.Fatalf("expected value 7, got %v", out)
	}
	out := FromError[int](errors.New("boom")).Result()
	if !out.HasError() || out.UnwrapError().Error() != "boom" {
		t.Fatalf("expected error 'boom', got %v", out)
	}
}

func TestThen_ShortCircuitOnError(t *testing.T) {
	t.Parallel()
	called := false
	c := Then(FromError[int](errors.New("boom")), func(v int) expected.Expected[string, error] {
		called = true
		return expected.Make[string, error]("ok")
	})
	out := c.Result()
	if !out.HasError() || out.UnwrapError().Error() != "boom" {
		t.Fatalf("expected error 'boom', got %v", out)
	}
	if called {
		t.Fatalf("Then onValue must not be called on error input")
	}
}

func TestThen_EmptyPassesThrough(t *testing.T) {
	t.Parallel()
	var e expected.Expected[int, error]
	e.Reset()
	out := Then(Start(e), func(v int) expected.Expected[int, error] {
		t.Fatalf("Then onValue must not be called on empty input")
		return e
	}).Result()
	if !out.IsEmpty() {
		t.Fatalf("expected empty, got %v", out)
	}
}

func TestThenTry_ValueAndError(t *testing.T) {
	t.Parallel()
	toError := func(err error) string { return "parse: " + err.Error() }

	out := ThenTry(FromValue[string, string]("12"), strconv.Atoi, toError).Result()
	if !out.HasValue() || out.Unwrap() != 12 {
		t.Fatalf("expected value 12, got %v", out)
	}

	out = ThenTry(FromValue[string, string]("x"), strconv.Atoi, toError).Result()
	if !out.HasError() || out.UnwrapError() != `parse: strconv.Atoi: parsing "x": invalid syntax` {
		t.Fatalf("expected mapped parse error, got %v", out)
	}

	out = ThenTry(FromError[string]("bad"), strconv.Atoi, toError).Result()
	if out.UnwrapError() != "bad" {
		t.Fatalf("expected error 'bad' to pass through, got %v", out)
	}
}

func TestMap_FuncAndMembers(t *testing.T) {
	t.Parallel()
	c := FromValue[order, error](order{ID: "o-1", Total: 200})

	if out := Map[int](c, invoke.Method(order.Discounted)).Result(); out.Unwrap() != 180 {
		t.Fatalf("expected 180, got %v", out)
	}
	if out := Map[string](c, invoke.Field[order]("ID")).Result(); out.Unwrap() != "o-1" {
		t.Fatalf("expected 'o-1', got %v", out)
	}

	out := Map[string](FromError[int](errors.New("oops")), strconv.Itoa).Result()
	if !out.HasError() || out.UnwrapError().Error() != "oops" {
		t.Fatalf("expected error 'oops', got %v", out)
	}
}

func TestMapError(t *testing.T) {
	t.Parallel()
	out := MapError[int](FromError[string]("four"), func(s string) int { return len(s) }).Result()
	if !out.HasError() || out.UnwrapError() != 4 {
		t.Fatalf("expected error 4, got %v", out)
	}
}

func TestEnsure(t *testing.T) {
	t.Parallel()
	seen := 0
	out := FromValue[int, error](5).Ensure(func(v int) { seen = v }).Result()
	if seen != 5 || out.Unwrap() != 5 {
		t.Fatalf("expected side effect with 5 and unchanged value, got seen=%d out=%v", seen, out)
	}

	FromError[int](errors.New("e")).Ensure(func(v int) { seen = -1 })
	if seen != 5 {
		t.Fatalf("Ensure must not run on error input")
	}
}

func TestWhile(t *testing.T) {
	t.Parallel()
	inc := func(v int) expected.Expected[int, error] { return expected.Make[int, error](v + 1) }

	out := FromValue[int, error](0).While(inc, func(v int) bool { return v < 5 }).Result()
	if out.Unwrap() != 5 {
		t.Fatalf("expected 5, got %v", out)
	}

	failAt3 := func(v int) expected.Expected[int, error] {
		if v == 3 {
			return expected.MakeUnexpected[int](errors.New("stop"))
		}
		return inc(v)
	}
	out = FromValue[int, error](0).While(failAt3, func(v int) bool { return true }).Result()
	if !out.HasError() || out.UnwrapError().Error() != "stop" {
		t.Fatalf("expected error 'stop', got %v", out)
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	onValue := func(v int) string { return "value:" + strconv.Itoa(v) }
	onError := func(err error) string { return "error:" + err.Error() }
	onEmpty := func() string { return "empty" }

	got := Finally(Map[int](FromValue[string, error]("abc"), func(s string) int { return len(s) }),
		onValue, onError, onEmpty)
	if got != "value:3" {
		t.Fatalf("expected 'value:3', got %q", got)
	}

	got = Finally(FromError[int](errors.New("x")), onValue, onError, onEmpty)
	if got != "error:x" {
		t.Fatalf("expected 'error:x', got %q", got)
	}
}

func TestOr(t *testing.T) {
	t.Parallel()
	failed := FromError[int](errors.New("first"))
	alsoFailed := FromError[int](errors.New("second"))
	good := FromValue[int, error](3)

	if out := failed.Or(alsoFailed, good).Result(); out.Unwrap() != 3 {
		t.Fatalf("expected the value alternative, got %v", out)
	}
	if out := failed.Or(alsoFailed).Result(); out.UnwrapError().Error() != "first" {
		t.Fatalf("expected the first error, got %v", out)
	}
	if out := good.Or(failed).Result(); out.Unwrap() != 3 {
		t.Fatalf("expected c itself, got %v", out)
	}
}

func TestValidateAll(t *testing.T) {
	t.Parallel()
	short := func(s string) error {
		if len(s) > 3 {
			return errors.New("too long")
		}
		return nil
	}

	if out := ValidateAll(FromValue[string, error]("abc"), true, short).Result(); out.Unwrap() != "abc" {
		t.Fatalf("expected 'abc' to pass, got %v", out)
	}
	if out := ValidateAll(FromValue[string, error]("abcd"), false, short).Result(); !out.HasError() {
		t.Fatalf("expected validation error, got %v", out)
	}
}
