package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGet(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	_, ok, err := cache.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "k", "v", 0))
	val, ok, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", val)
}

func TestMemoryCache_Expiry(t *testing.T) {
	cache := NewMemoryCache()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", "v", time.Minute))

	now = now.Add(30 * time.Second)
	_, ok, _ := cache.Get(ctx, "k")
	assert.True(t, ok)

	now = now.Add(time.Minute)
	_, ok, _ = cache.Get(ctx, "k")
	assert.False(t, ok)
	assert.Equal(t, 0, cache.Len())
}

func TestMemoryCache_ExpiredEntryRewrittenDuringGet(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return start }

	require.NoError(t, cache.Set(ctx, "k", "stale", time.Minute))

	// The first clock read in Get happens after the read lock is released;
	// a writer refreshes the key right there.
	rewritten := false
	cache.now = func() time.Time {
		if !rewritten {
			rewritten = true
			require.NoError(t, cache.Set(ctx, "k", "fresh", 0))
		}
		return start.Add(time.Hour)
	}

	val, ok, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "fresh", val)
	assert.Equal(t, 1, cache.Len())

	val, ok, _ = cache.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "fresh", val)
}

func TestMemoryCache_ConcurrentSetGet(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				_ = cache.Set(ctx, "k", "v", time.Nanosecond)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				_, _, _ = cache.Get(ctx, "k")
			}
		}()
	}
	wg.Wait()

	require.NoError(t, cache.Set(ctx, "k", "final", 0))
	val, ok, _ := cache.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "final", val)
}

func TestRedisCache_UnreachableServer(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	cache := NewRedisCacheFromClient(client, "test:")
	defer cache.Close()

	ctx := context.Background()

	_, ok, err := cache.Get(ctx, "k")
	assert.Error(t, err)
	assert.False(t, ok)

	assert.Error(t, cache.Set(ctx, "k", "v", time.Minute))
	assert.Error(t, cache.Ping(ctx))
}
