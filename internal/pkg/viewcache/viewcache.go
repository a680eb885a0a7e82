// Package viewcache caches rendered listing documents keyed by route path.
// A path may be stored with a query string ("/admin/courses?page=2"); revalidating the
// path drops the bare entry and every query variant.
package viewcache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// Store is a byte-level cache backend
type Store interface {
	// Get returns the cached value and whether it was present
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	// Invalidate removes key and every key of the form key + "?..."
	Invalidate(ctx context.Context, key string) error
}

// Cache is the view cache used by the read side and revalidated by form actions.
// A load that overlaps a Revalidate in the same process is served but not stored.
type Cache struct {
	store Store
	log   zerolog.Logger

	mu  sync.RWMutex
	gen uint64
}

func (c *Cache) generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gen
}

// storeIfCurrent writes data unless a revalidation happened since generation gen was read
func (c *Cache) storeIfCurrent(ctx context.Context, gen uint64, key string, data []byte) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.gen != gen {
		c.log.Debug().Str("key", key).Msg("Skipping view cache write after revalidation")
		return
	}
	if err := c.store.Set(ctx, key, data); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("View cache write failed")
	}
}

// New creates a Cache over the given store
func New(store Store, log zerolog.Logger) *Cache {
	return &Cache{store: store, log: log}
}

// Fetch returns the cached document for key, loading and storing it on a miss.
// Backend failures are logged and the loader result is served uncached.
func Fetch[T any](ctx context.Context, c *Cache, key string, load func(context.Context) (T, error)) (T, error) {
	var zero T

	if data, ok, err := c.store.Get(ctx, key); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("View cache read failed")
	} else if ok {
		var cached T
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
		c.log.Warn().Str("key", key).Msg("Discarding undecodable view cache entry")
	}

	gen := c.generation()
	value, err := load(ctx)
	if err != nil {
		return zero, err
	}

	data, err := json.Marshal(value)
	if err != nil {
		return zero, fmt.Errorf("marshal view %s: %w", key, err)
	}
	c.storeIfCurrent(ctx, gen, key, data)
	return value, nil
}

// Revalidate drops the cached documents of each path and its query variants.
// Failures are logged; a stale view never fails the mutation that triggered it.
func (c *Cache) Revalidate(ctx context.Context, paths ...string) {
	c.mu.Lock()
	c.gen++
	c.mu.Unlock()

	for _, path := range paths {
		if err := c.store.Invalidate(ctx, path); err != nil {
			c.log.Error().Err(err).Str("path", path).Msg("View revalidation failed")
			continue
		}
		c.log.Debug().Str("path", path).Msg("View revalidated")
	}
}
