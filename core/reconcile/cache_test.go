package reconcile

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"l10n-manager/core/record"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolCache_Get(t *testing.T) {
	cache := NewPoolCache(time.Minute)
	var calls int32
	load := func(ctx context.Context) ([]record.TextRecord, error) {
		atomic.AddInt32(&calls, 1)
		return []record.TextRecord{record.New("s1", "one", true)}, nil
	}

	for i := 0; i < 3; i++ {
		pool, err := cache.Get(context.Background(), "res/values/strings.xml", load)
		require.NoError(t, err)
		assert.Len(t, pool, 1)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	cache.Invalidate("res/values/strings.xml")
	_, err := cache.Get(context.Background(), "res/values/strings.xml", load)
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestPoolCache_ZeroTTL(t *testing.T) {
	cache := NewPoolCache(0)
	var calls int32
	load := func(ctx context.Context) ([]record.TextRecord, error) {
		atomic.AddInt32(&calls, 1)
		return nil, nil
	}

	_, _ = cache.Get(context.Background(), "k", load)
	_, _ = cache.Get(context.Background(), "k", load)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestPoolCache_Error(t *testing.T) {
	cache := NewPoolCache(time.Minute)
	_, err := cache.Get(context.Background(), "k", func(ctx context.Context) ([]record.TextRecord, error) {
		return nil, errors.New("parse failed")
	})
	assert.EqualError(t, err, "parse failed")
}

func TestPoolCache_Concurrent(t *testing.T) {
	cache := NewPoolCache(time.Minute)
	var calls int32
	release := make(chan struct{})
	load := func(ctx context.Context) ([]record.TextRecord, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return []record.TextRecord{record.New("s1", "one", true)}, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pool, err := cache.Get(context.Background(), "k", load)
			assert.NoError(t, err)
			assert.Len(t, pool, 1)
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
