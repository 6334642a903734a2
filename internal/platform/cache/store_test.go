package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreGetOrLoadSharesConcurrentLoads(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32
	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "standings", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	results := make(chan any, workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "standings:39:2025", loader)
			if err != nil {
				results <- err
				return
			}
			results <- v
		}()
	}

	close(start)
	wg.Wait()
	close(results)
	for v := range results {
		assert.Equal(t, "standings", v)
	}
	assert.Equal(t, int32(1), calls.Load())
}

func TestStoreDoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	boom := errors.New("boom")
	var calls int

	_, err := store.GetOrLoad(context.Background(), "k", func(context.Context) (any, error) {
		calls++
		return nil, boom
	})
	require.ErrorIs(t, err, boom)

	v, err := store.GetOrLoad(context.Background(), "k", func(context.Context) (any, error) {
		calls++
		return 7, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.Equal(t, 2, calls)
}

func TestStoreLoadOutlivesCancelledCaller(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	started := make(chan struct{})
	release := make(chan struct{})
	loaderErr := make(chan error, 1)

	ctx, cancel := context.WithCancel(context.Background())
	first := make(chan error, 1)
	go func() {
		_, err := store.GetOrLoad(ctx, "standings", func(ctx context.Context) (any, error) {
			close(started)
			<-release
			loaderErr <- ctx.Err()
			return "table", nil
		})
		first <- err
	}()

	<-started
	cancel()
	require.ErrorIs(t, <-first, context.Canceled)

	close(release)
	require.NoError(t, <-loaderErr)

	v, err := store.GetOrLoad(context.Background(), "standings", func(context.Context) (any, error) {
		return nil, errors.New("should be cached")
	})
	require.NoError(t, err)
	assert.Equal(t, "table", v)
}

func TestStoreExpiresEntries(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	now := time.Date(2026, 2, 5, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.Set(context.Background(), "weather:40", "sunny")
	_, ok := store.Get(context.Background(), "weather:40")
	require.True(t, ok)

	now = now.Add(61 * time.Second)
	_, ok = store.Get(context.Background(), "weather:40")
	assert.False(t, ok)

	stats := store.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Zero(t, stats.Size)
}

func TestFetchIsTyped(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()

	got, err := Fetch(ctx, store, "ids", func(context.Context) ([]int, error) { return []int{40, 42}, nil })
	require.NoError(t, err)
	assert.Equal(t, []int{40, 42}, got)

	store.Set(ctx, "mismatch", "text")
	_, err = Fetch(ctx, store, "mismatch", func(context.Context) (int, error) { return 0, nil })
	assert.Error(t, err)

	var nilStore *Store
	n, err := Fetch(ctx, nilStore, "x", func(context.Context) (int, error) { return 3, nil })
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
