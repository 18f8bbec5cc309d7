package reconcile

import (
	"context"
	"sync"
	"time"

	"l10n-manager/core/record"

	"golang.org/x/sync/singleflight"
)

// PoolLoader builds a canonical pool.
type PoolLoader func(ctx context.Context) ([]record.TextRecord, error)

type poolEntry struct {
	records []record.TextRecord
	built   time.Time
}

// PoolCache holds canonical pools keyed by the default strings path.
type PoolCache struct {
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]*poolEntry
	sf      singleflight.Group
}

// NewPoolCache creates a cache. A zero TTL disables caching.
func NewPoolCache(ttl time.Duration) *PoolCache {
	return &PoolCache{ttl: ttl, entries: make(map[string]*poolEntry)}
}

func (c *PoolCache) expired(e *poolEntry) bool {
	if c.ttl == 0 {
		return true
	}
	return time.Since(e.built) > c.ttl
}

func (c *PoolCache) lookup(key string) ([]record.TextRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok || c.expired(e) {
		return nil, false
	}
	return e.records, true
}

// Get returns the cached pool for key, or builds it with load. Concurrent
// callers for the same key share a single load.
func (c *PoolCache) Get(ctx context.Context, key string, load PoolLoader) ([]record.TextRecord, error) {
	if pool, ok := c.lookup(key); ok {
		return pool, nil
	}

	v, err, _ := c.sf.Do(key, func() (interface{}, error) {
		if pool, ok := c.lookup(key); ok {
			return pool, nil
		}

		pool, err := load(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = &poolEntry{records: pool, built: time.Now()}
		c.mu.Unlock()
		return pool, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]record.TextRecord), nil
}

// Invalidate drops the pool for key.
func (c *PoolCache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}
