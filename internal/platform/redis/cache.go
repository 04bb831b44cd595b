// Package redis provides the Redis-backed cache layer. The cache is an
// accelerator in front of the record store, never a source of truth:
// every operation is best-effort and a backend failure degrades to a
// miss or a no-op instead of failing the caller.
package redis

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tasknest/tasknest-api/internal/config"
	"github.com/tasknest/tasknest-api/internal/platform/logger"
	"github.com/tasknest/tasknest-api/internal/service/taskcache"
)

// Ensure Cache satisfies the task cache's key-value contract.
var _ taskcache.CacheLayer = (*Cache)(nil)

// scanBatchSize bounds how many keys a single SCAN iteration may return
// during pattern deletion.
const scanBatchSize = 100

// Cache is a thin key-value layer over a Redis client with TTL expiry
// and glob pattern invalidation. The fail-open policy lives here, at the
// boundary, so callers never handle cache errors.
type Cache struct {
	client *redis.Client
	logger *slog.Logger
}

// New creates a Cache from the given configuration. The connection is
// established lazily; use Ping to verify reachability at startup.
func New(cfg config.CacheConfig, log *slog.Logger) *Cache {
	if log == nil {
		log = slog.Default()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return &Cache{
		client: client,
		logger: log.With(slog.String("component", "cache")),
	}
}

// NewWithClient wraps an existing Redis client. Tests use this with a
// client pointed at a fake or local server.
func NewWithClient(client *redis.Client, log *slog.Logger) *Cache {
	if log == nil {
		log = slog.Default()
	}
	return &Cache{
		client: client,
		logger: log.With(slog.String("component", "cache")),
	}
}

// Ping verifies the backend is reachable. Startup logs the outcome but
// proceeds either way; the service runs correctly with a cold cache.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the underlying client's resources.
func (c *Cache) Close() error {
	return c.client.Close()
}

// Get returns the stored value for key and whether it was present and
// unexpired. Backend errors are logged and reported as a miss.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	log := logger.FromContextOrDefault(ctx, c.logger)

	value, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn("cache get failed, treating as miss",
				slog.String("key", key),
				slog.String("error", err.Error()))
		}
		return nil, false
	}

	return value, true
}

// Put stores value under key with the given time-to-live, overwriting
// any existing entry. Failures are logged and swallowed.
func (c *Cache) Put(ctx context.Context, key string, value []byte, ttl time.Duration) {
	log := logger.FromContextOrDefault(ctx, c.logger)

	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		log.Warn("cache put failed",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}
}

// Delete removes a single entry. Deleting an absent key is a no-op.
func (c *Cache) Delete(ctx context.Context, key string) {
	log := logger.FromContextOrDefault(ctx, c.logger)

	if err := c.client.Del(ctx, key).Err(); err != nil {
		log.Warn("cache delete failed",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}
}

// DeleteMatching removes every entry whose key matches the glob-style
// pattern. It walks the keyspace with SCAN rather than KEYS so the
// backend is never blocked on a large keyspace.
func (c *Cache) DeleteMatching(ctx context.Context, pattern string) {
	log := logger.FromContextOrDefault(ctx, c.logger)

	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, scanBatchSize).Result()
		if err != nil {
			log.Warn("cache scan failed during pattern delete",
				slog.String("pattern", pattern),
				slog.String("error", err.Error()))
			return
		}

		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				log.Warn("cache bulk delete failed",
					slog.String("pattern", pattern),
					slog.Int("keys", len(keys)),
					slog.String("error", err.Error()))
				return
			}
		}

		cursor = next
		if cursor == 0 {
			return
		}
	}
}
