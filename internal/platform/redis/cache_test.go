package redis_test

import (
	"context"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rediscache "github.com/tasknest/tasknest-api/internal/platform/redis"
)

// unreachableCache returns a Cache whose backend connection always
// fails. Every operation must degrade to a miss or no-op without
// returning or panicking; that fail-open contract is what these tests
// pin down.
func unreachableCache(t *testing.T) *rediscache.Cache {
	t.Helper()

	client := goredis.NewClient(&goredis.Options{
		Addr:            "127.0.0.1:1", // nothing listens here
		DialTimeout:     50 * time.Millisecond,
		ReadTimeout:     50 * time.Millisecond,
		WriteTimeout:    50 * time.Millisecond,
		MaxRetries:      -1, // fail immediately, no backoff
		PoolSize:        1,
		MinIdleConns:    0,
		ConnMaxIdleTime: time.Millisecond,
	})
	t.Cleanup(func() {
		_ = client.Close()
	})

	return rediscache.NewWithClient(client, nil)
}

func TestCacheFailOpen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := unreachableCache(t)

	t.Run("get degrades to miss", func(t *testing.T) {
		value, ok := cache.Get(ctx, "task:123")
		assert.False(t, ok)
		assert.Nil(t, value)
	})

	t.Run("put is a no-op", func(t *testing.T) {
		assert.NotPanics(t, func() {
			cache.Put(ctx, "task:123", []byte(`{"id":"123"}`), time.Minute)
		})
	})

	t.Run("delete is a no-op", func(t *testing.T) {
		assert.NotPanics(t, func() {
			cache.Delete(ctx, "task:123")
		})
	})

	t.Run("pattern delete is a no-op", func(t *testing.T) {
		assert.NotPanics(t, func() {
			cache.DeleteMatching(ctx, "task:*")
		})
	})

	t.Run("ping reports the failure", func(t *testing.T) {
		require.Error(t, cache.Ping(ctx))
	})
}
