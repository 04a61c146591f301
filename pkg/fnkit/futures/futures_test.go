package futures

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFuture_FirstCompletionWins(t *testing.T) {
	require := require.New(t)

	f := New[int]()

	go func() {
		time.Sleep(10 * time.Millisecond)
		f.Complete(1)
		f.Complete(2)
		f.Fail(errors.New("too late"))
	}()

	v, err := f.Get(context.Background())
	require.NoError(err)
	require.Equal(1, v)
}

func TestFuture_ConcurrentCompleters(t *testing.T) {
	require := require.New(t)

	f := New[int]()

	for i := 0; i <= 100; i++ {
		go func() {
			f.Complete(42)
		}()
	}

	v, err := f.Get(context.Background())
	require.NoError(err)
	require.Equal(42, v)
}

func TestFuture_Fail(t *testing.T) {
	require := require.New(t)

	boom := errors.New("boom")
	f := New[int]()
	f.Fail(boom)

	_, err := f.Get(context.Background())
	require.ErrorIs(err, boom)
}

func TestFuture_Cancel(t *testing.T) {
	require := require.New(t)

	f := New[int]()
	f.Cancel()

	_, err := f.Get(context.Background())
	require.ErrorIs(err, ErrCanceled)
}

func TestFuture_GetHonorsContext(t *testing.T) {
	require := require.New(t)

	f := New[int]()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.Get(ctx)
	require.ErrorIs(err, context.Canceled)
}

func TestFromFunc(t *testing.T) {
	require := require.New(t)

	f := FromFunc(context.Background(), func(ctx context.Context) (string, error) {
		return "done", nil
	})

	v, err := f.Get(context.Background())
	require.NoError(err)
	require.Equal("done", v)
}

func TestFromFunc_Error(t *testing.T) {
	require := require.New(t)

	boom := errors.New("boom")
	f := FromFunc(context.Background(), func(ctx context.Context) (string, error) {
		return "", boom
	})

	_, err := f.Get(context.Background())
	require.ErrorIs(err, boom)
}

func TestFuture_ManyReaders(t *testing.T) {
	require := require.New(t)

	f := New[int]()
	go func() {
		time.Sleep(5 * time.Millisecond)
		f.Complete(7)
	}()

	results := make(chan int, 3)
	for i := 0; i < 3; i++ {
		go func() {
			v, _ := f.Get(context.Background())
			results <- v
		}()
	}

	for i := 0; i < 3; i++ {
		require.Equal(7, <-results)
	}
}
