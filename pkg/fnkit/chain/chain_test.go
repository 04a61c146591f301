package chain

import (
	"errors"
	"testing"

	"github.com/ib-77/fnkit/pkg/fnkit"
)

func TestChain_Success(t *testing.T) {
	t.Parallel()

	r := Chain(Ok(10), func(x int) Result[int] { return Ok(x * 2) })

	if !r.IsOk() || r.Value() != 20 {
		t.Fatalf("expected 20, got %v (err: %v)", r.Value(), r.Err())
	}
	if len(r.Trail()) != 0 {
		t.Fatalf("expected empty trail, got %d entries", len(r.Trail()))
	}
}

func TestChain_ShortCircuit(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	invoked := false

	r := Chain(Err[int](boom), func(x int) Result[int] {
		invoked = true
		return Ok(x)
	})

	if invoked {
		t.Fatalf("chained function must not run on an errored chain")
	}
	if r.Err() != boom {
		t.Fatalf("expected original error, got: %v", r.Err())
	}
	if len(r.Trail()) != 1 {
		t.Fatalf("short-circuit must not grow the trail, got %d entries", len(r.Trail()))
	}
}

func TestChain_TrailMonotonicity(t *testing.T) {
	t.Parallel()

	const steps = 4
	r := Ok(0)
	for i := 0; i < steps; i++ {
		err := errors.New("step failed")
		r = r.Then(func(int) Result[int] { return Err[int](err) })
		r = r.Recover(func(error) int { return 0 })
	}

	if !r.IsOk() {
		t.Fatalf("expected recovered success, got: %v", r.Err())
	}
	if len(r.Trail()) != steps {
		t.Fatalf("expected %d accumulated errors, got %d", steps, len(r.Trail()))
	}
}

func TestChain_TrailSurvivesSuccess(t *testing.T) {
	t.Parallel()

	r := Ok(1).
		Then(func(int) Result[int] { return Err[int](errors.New("first")) }).
		Recover(func(error) int { return 2 }).
		Then(func(x int) Result[int] { return Ok(x * 10) })

	if !r.IsOk() || r.Value() != 20 {
		t.Fatalf("expected recovered chain to continue, got %v (err: %v)", r.Value(), r.Err())
	}
	trail := r.Trail()
	if len(trail) != 1 || trail[0].Error() != "first" {
		t.Fatalf("success must not truncate the trail, got: %v", trail)
	}
}

func TestChain_RecoversPanic(t *testing.T) {
	t.Parallel()

	r := Chain(Ok(1), func(int) Result[int] { panic("inner failure") })

	if !r.IsErr() {
		t.Fatalf("expected error state after panic")
	}
	var pe *fnkit.PanicError
	if !errors.As(r.Err(), &pe) {
		t.Fatalf("expected PanicError, got: %v", r.Err())
	}
	trail := r.Trail()
	if len(trail) != 1 || trail[0] != r.Err() {
		t.Fatalf("current error must be the trail tail, got: %v", trail)
	}
}

func TestMap_ErroredShortCircuits(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	r := Map(Err[int](boom), func(x int) string { return "unused" })

	if !r.IsErr() || r.Err() != boom {
		t.Fatalf("expected original error, got: %v", r.Err())
	}
}

func TestMap_CarriesTrail(t *testing.T) {
	t.Parallel()

	r := Ok(1).
		Then(func(int) Result[int] { return Err[int](errors.New("once")) }).
		Recover(func(error) int { return 5 })

	mapped := Map(r, func(x int) int { return x + 1 })
	if mapped.Value() != 6 {
		t.Fatalf("expected 6, got %d", mapped.Value())
	}
	if len(mapped.Trail()) != 1 {
		t.Fatalf("map must carry the inherited trail, got: %v", mapped.Trail())
	}
}

func TestOrElse_RequiresErrorAndHistory(t *testing.T) {
	t.Parallel()

	fallbackRuns := 0
	fallback := func() Result[int] {
		fallbackRuns++
		return Ok(-1)
	}

	// no error yet: fallback stays idle
	if r := Ok(1).OrElse(fallback); r.Value() != 1 {
		t.Fatalf("expected pass-through, got %v", r.Value())
	}

	// recovered success with history: still no trigger
	recovered := Ok(1).
		Then(func(int) Result[int] { return Err[int](errors.New("x")) }).
		Recover(func(error) int { return 2 })
	if r := recovered.OrElse(fallback); r.Value() != 2 {
		t.Fatalf("expected pass-through of recovered value, got %v", r.Value())
	}
	if fallbackRuns != 0 {
		t.Fatalf("fallback must not run without an errored current slot")
	}

	// errored with history: triggers
	if r := Err[int](errors.New("y")).OrElse(fallback); r.Value() != -1 {
		t.Fatalf("expected fallback result, got %v", r.Value())
	}
	if fallbackRuns != 1 {
		t.Fatalf("expected exactly one fallback evaluation, got %d", fallbackRuns)
	}
}

func TestMapErr_ReplacesTail(t *testing.T) {
	t.Parallel()

	r := Err[int](errors.New("raw")).MapErr(func(err error) error {
		return errors.New("wrapped: " + err.Error())
	})

	if r.Err().Error() != "wrapped: raw" {
		t.Fatalf("unexpected mapped error: %v", r.Err())
	}
	trail := r.Trail()
	if len(trail) != 1 || trail[0] != r.Err() {
		t.Fatalf("trail tail must follow the mapped error, got: %v", trail)
	}
}

func TestUnwrap_ChainError(t *testing.T) {
	t.Parallel()

	e1 := errors.New("first")
	r := Ok(1).
		Then(func(int) Result[int] { return Err[int](e1) })

	_, err := r.Unwrap()
	var ce *fnkit.ChainError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ChainError, got: %v", err)
	}
	if len(ce.History) != 1 || !errors.Is(err, e1) {
		t.Fatalf("expected full history in the failure, got: %v", ce.History)
	}

	_, err = r.Expect("reading profile")
	if err == nil || !errors.Is(err, e1) {
		t.Fatalf("expect must carry the history, got: %v", err)
	}
}

func TestFromResult(t *testing.T) {
	t.Parallel()

	if r := FromResult(fnkit.Ok(3)); !r.IsOk() || r.Value() != 3 {
		t.Fatalf("expected lifted success")
	}

	boom := errors.New("boom")
	r := FromResult(fnkit.Err[int](boom))
	if !r.IsErr() || len(r.Trail()) != 1 {
		t.Fatalf("expected lifted error to seed the trail, got: %v", r.Trail())
	}
}
