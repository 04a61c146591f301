package futures

import (
	"context"

	"github.com/ib-77/fnkit/pkg/fnkit"
)

// ResolveAll waits for every future and returns one fnkit.Result per future,
// at the index of the provided slice. Output order matches input order, not
// completion order. Context cancellation aborts the collection.
func ResolveAll[T any](ctx context.Context, fs []*Future[T]) ([]fnkit.Result[T], error) {
	res := make([]fnkit.Result[T], 0, len(fs))

	for _, f := range fs {
		v, err := f.Get(ctx)
		if err != nil {
			res = append(res, fnkit.Err[T](err))
		} else {
			res = append(res, fnkit.Ok(v))
		}
		// check after collecting to avoid racing cancellation against the
		// last completed future
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	return res, nil
}

// FirstOf waits for the first future to complete and returns its outcome.
// The remaining futures are abandoned, not canceled: their results are simply
// never read. An empty input reports fnkit.ErrNoCompletion.
func FirstOf[T any](ctx context.Context, fs []*Future[T]) (T, error) {
	if len(fs) == 0 {
		var zero T
		return zero, fnkit.ErrNoCompletion
	}

	type outcome struct {
		value T
		err   error
	}

	first := make(chan outcome, len(fs))
	watchCtx, stop := context.WithCancel(ctx)
	defer stop()

	for _, f := range fs {
		go func(f *Future[T]) {
			v, err := f.Get(watchCtx)
			first <- outcome{value: v, err: err}
		}(f)
	}

	o := <-first
	return o.value, o.err
}
