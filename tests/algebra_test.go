package tests

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/fnkit/pkg/fnkit"
	"github.com/ib-77/fnkit/pkg/fnkit/async"
	"github.com/ib-77/fnkit/pkg/fnkit/chain"
	"github.com/ib-77/fnkit/pkg/fnkit/flow"
	"github.com/ib-77/fnkit/pkg/fnkit/option"
)

// TestOrderPipeline drives a small order-validation flow end to end:
// parse, validate, price, and fall back on failure.
func TestOrderPipeline(t *testing.T) {
	parse := func(raw string) chain.Result[int] {
		qty, err := strconv.Atoi(raw)
		if err != nil {
			return chain.Err[int](fmt.Errorf("parse %q: %w", raw, err))
		}
		return chain.Ok(qty)
	}

	price := func(qty int) chain.Result[float64] {
		if qty <= 0 {
			return chain.Err[float64](errors.New("quantity must be positive"))
		}
		return chain.Ok(float64(qty) * 9.99)
	}

	good := chain.Chain(parse("3"), price)
	total, err := good.Unwrap()
	require.NoError(t, err)
	assert.InDelta(t, 29.97, total, 0.001)

	bad := chain.Chain(parse("-1"), price)
	_, err = bad.Unwrap()
	var ce *fnkit.ChainError
	require.ErrorAs(t, err, &ce)
	assert.Len(t, ce.History, 1)

	recovered := bad.OrElse(func() chain.Result[float64] { return chain.Ok[float64](0) })
	total, err = recovered.Unwrap()
	require.NoError(t, err)
	assert.Zero(t, total)
}

// TestBatchValidation fans in many independent validations and inspects
// every reason for failure at once.
func TestBatchValidation(t *testing.T) {
	validate := func(qty int) fnkit.Result[int] {
		if qty <= 0 {
			return fnkit.Err[int](fmt.Errorf("invalid quantity %d", qty))
		}
		return fnkit.Ok(qty)
	}

	batch := []fnkit.Result[int]{
		validate(3), validate(-1), validate(5), validate(0),
	}

	merged := flow.Merge(batch)
	assert.True(t, merged.IsMultiErr())
	require.Len(t, merged.Errors(), 2)
	assert.Equal(t, "invalid quantity -1", merged.Errors()[0].Error())
	assert.Equal(t, "invalid quantity 0", merged.Errors()[1].Error())

	summary := merged.MapErr(func(errs []error) int { return len(errs) })
	count, err := summary.Unwrap()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

// TestAsyncFanOut gathers concurrent lookups, races a slow source against a
// fast one, and reduces the collected values.
func TestAsyncFanOut(t *testing.T) {
	ctx := context.Background()

	lookup := func(d time.Duration, v int) *async.Result[int] {
		return async.From(func(ctx context.Context) (int, error) {
			time.Sleep(d)
			return v, nil
		})
	}

	values, err := flow.Parallel([]*async.Result[int]{
		lookup(20*time.Millisecond, 1),
		lookup(10*time.Millisecond, 2),
		lookup(time.Millisecond, 3),
	}).Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, values)

	fastest, err := flow.Race([]*async.Result[int]{
		lookup(50*time.Millisecond, -1),
		lookup(time.Millisecond, 42),
	}).Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, 42, fastest)

	total, err := flow.ReduceAsync([]*async.Result[int]{
		async.Of(1), async.Of(2), async.Of(3),
	}, func(a, b int) int { return a + b }).Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, total)
}

// TestOptionalConfig reads an optional setting with a chained fallback.
func TestOptionalConfig(t *testing.T) {
	settings := map[string]string{"region": "eu-west-1"}

	get := func(key string) option.Option[string] {
		if v, ok := settings[key]; ok {
			return option.Some(v)
		}
		return option.Absent[string]()
	}

	region := option.Map(get("region"), func(v string) string { return "prefix-" + v }).
		GetOrDefault("prefix-default")
	assert.Equal(t, "prefix-eu-west-1", region)

	zone := get("zone").OrElse(func() string { return "zone-a" })
	assert.Equal(t, "zone-a", zone)
}
