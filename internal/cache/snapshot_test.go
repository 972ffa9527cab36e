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

func TestSnapshotFreshness(t *testing.T) {
	s := NewSnapshot[int](10 * time.Second)
	now := time.Now()

	_, ok := s.Fresh(now)
	assert.False(t, ok, "empty snapshot must not be fresh")
	_, ok = s.Last()
	assert.False(t, ok, "empty snapshot has no last value")

	s.Store(42, now)

	v, ok := s.Fresh(now.Add(5 * time.Second))
	assert.True(t, ok)
	assert.Equal(t, 42, v)

	_, ok = s.Fresh(now.Add(10 * time.Second))
	assert.False(t, ok, "value at the window boundary is stale")

	// Stale values stay retrievable for the degraded path.
	v, ok = s.Last()
	assert.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestSnapshotGetOrRefresh(t *testing.T) {
	ctx := context.Background()

	t.Run("fetches once and serves cached", func(t *testing.T) {
		s := NewSnapshot[string](time.Minute)
		var calls int32
		fetch := func(context.Context) (string, error) {
			atomic.AddInt32(&calls, 1)
			return "data", nil
		}

		v, err := s.GetOrRefresh(ctx, fetch)
		require.NoError(t, err)
		assert.Equal(t, "data", v)

		v, err = s.GetOrRefresh(ctx, fetch)
		require.NoError(t, err)
		assert.Equal(t, "data", v)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("expired value refetches", func(t *testing.T) {
		s := NewSnapshot[string](30 * time.Millisecond)
		var calls int32
		fetch := func(context.Context) (string, error) {
			atomic.AddInt32(&calls, 1)
			return "data", nil
		}

		_, err := s.GetOrRefresh(ctx, fetch)
		require.NoError(t, err)
		time.Sleep(60 * time.Millisecond)
		_, err = s.GetOrRefresh(ctx, fetch)
		require.NoError(t, err)
		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	})

	t.Run("error leaves last value intact", func(t *testing.T) {
		s := NewSnapshot[string](time.Nanosecond)
		s.Store("stale", time.Now().Add(-time.Hour))

		_, err := s.GetOrRefresh(ctx, func(context.Context) (string, error) {
			return "", errors.New("upstream down")
		})
		require.Error(t, err)

		v, ok := s.Last()
		assert.True(t, ok)
		assert.Equal(t, "stale", v)
	})

	t.Run("concurrent callers share one fetch", func(t *testing.T) {
		s := NewSnapshot[int](time.Minute)
		var calls int32
		release := make(chan struct{})
		fetch := func(context.Context) (int, error) {
			atomic.AddInt32(&calls, 1)
			<-release
			return 7, nil
		}

		const n = 8
		var wg sync.WaitGroup
		results := make([]int, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				v, err := s.GetOrRefresh(ctx, fetch)
				assert.NoError(t, err)
				results[i] = v
			}(i)
		}

		// Give every goroutine time to join the in-flight refresh.
		time.Sleep(50 * time.Millisecond)
		close(release)
		wg.Wait()

		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
		for _, v := range results {
			assert.Equal(t, 7, v)
		}
	})
}
