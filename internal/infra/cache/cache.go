// Package cache provides a TTL-bounded result cache for reference data
// fetched from the upstream. Entries are stored encoded so the same
// code path serves the in-memory store and the optional Redis store.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/landbridge/michrazim/internal/metrics"
)

// DefaultTTL applies to reference data unless the caller overrides it.
const DefaultTTL = 5 * time.Minute

// Store is the backing entry store. An expired or absent entry returns
// ok=false; per-key read-modify-write is atomic within a store.
type Store interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
}

// Cache fronts a Store with encode/decode plumbing.
type Cache struct {
	store Store
}

// New creates a cache over the given store. A nil store falls back to
// the in-memory store.
func New(store Store) *Cache {
	if store == nil {
		store = NewMemoryStore()
	}
	return &Cache{store: store}
}

// GetOrCompute returns the live entry for key, or invokes fn, stores
// its result with ttl and returns it. Concurrent callers for the same
// missing key may both invoke fn; the last write wins. Store errors are
// treated as misses so a flaky backend degrades to recompute, except
// when the compute itself fails.
func GetOrCompute[T any](ctx context.Context, c *Cache, key string, ttl time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	if data, ok, err := c.store.Get(ctx, key); err == nil && ok {
		var v T
		if err := json.Unmarshal(data, &v); err == nil {
			metrics.CacheHits.WithLabelValues(key).Inc()
			return v, nil
		}
	}

	metrics.CacheMisses.WithLabelValues(key).Inc()

	v, err := fn(ctx)
	if err != nil {
		return zero, err
	}

	data, err := json.Marshal(v)
	if err != nil {
		return zero, fmt.Errorf("encode cache entry %q: %w", key, err)
	}
	// Best effort: a store write failure must not fail the lookup.
	_ = c.store.Set(ctx, key, data, ttl)

	return v, nil
}
