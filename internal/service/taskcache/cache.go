// Package taskcache implements the cache-aside layer between the task
// handlers and the record store. Task snapshots and per-owner listings
// are kept in a TTL key-value cache; the record store remains the only
// source of truth and every cache operation is best-effort.
package taskcache

import (
	"context"
	"time"
)

// CacheLayer is the key-value contract the task cache is built on. Any
// TTL-capable store can back it. Implementations own the fail-open
// policy: backend failures surface as misses and no-ops, never as
// errors, so a cache outage costs latency but not correctness.
type CacheLayer interface {
	// Get returns the stored value and whether it was present and
	// unexpired. Malformed or unreadable entries are reported as absent.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Put stores a value with a time-to-live, overwriting any existing
	// entry for that key.
	Put(ctx context.Context, key string, value []byte, ttl time.Duration)

	// Delete removes a single entry; a no-op if absent.
	Delete(ctx context.Context, key string)

	// DeleteMatching removes every entry whose key matches a glob-style
	// pattern.
	DeleteMatching(ctx context.Context, pattern string)
}
