// Package cache provides the TTL-bounded memoizing cache the snapshot
// orchestrator goes through. Concurrent callers for the same key while no
// cached value exists share a single producer execution; a producer error is
// never stored, so the next call retries.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Producer computes the value for a key on a cache miss.
type Producer func(ctx context.Context) (any, error)

type entry struct {
	value     any
	expiresAt time.Time
}

// Cache is a TTL memoizing cache with single-flight semantics per key.
// Independent keys never block each other.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*entry
	flight  singleflight.Group
	now     func() time.Time
}

// Option configures the Cache.
type Option func(*Cache)

// WithClock injects a clock, used by tests to step through TTL expiry.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// New creates an empty cache.
func New(opts ...Option) *Cache {
	c := &Cache{
		entries: make(map[string]*entry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Key builds a deterministic cache key from a namespace and its scope.
func Key(namespace string, workspaceID int64, lookbackDays int) string {
	return fmt.Sprintf("%s:%d:%d", namespace, workspaceID, lookbackDays)
}

// Remember returns the cached value for key when one exists within its TTL;
// otherwise it invokes producer exactly once across concurrent callers and
// stores the result. The returned bool reports whether the value came from
// the cache.
func (c *Cache) Remember(ctx context.Context, key string, ttl time.Duration, producer Producer) (any, bool, error) {
	if v, ok := c.get(key); ok {
		return v, true, nil
	}

	v, err, _ := c.flight.Do(key, func() (any, error) {
		// Another flight may have stored the value between our miss and
		// acquiring the flight slot.
		if v, ok := c.get(key); ok {
			return v, nil
		}
		v, err := producer(ctx)
		if err != nil {
			return nil, err
		}
		c.set(key, v, ttl)
		return v, nil
	})
	if err != nil {
		return nil, false, err
	}
	return v, false, nil
}

// Forget drops the cached value for key.
func (c *Cache) Forget(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

func (c *Cache) get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().After(e.expiresAt) {
		// Expired - treat as miss (cleanup happens lazily on set)
		return nil, false
	}
	return e.value, true
}

func (c *Cache) set(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = &entry{value: value, expiresAt: c.now().Add(ttl)}
	c.cleanupExpiredLocked(10)
}

// cleanupExpiredLocked removes up to maxCleanup expired entries.
// Must be called with the write lock held.
func (c *Cache) cleanupExpiredLocked(maxCleanup int) {
	now := c.now()
	cleaned := 0
	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
			cleaned++
			if cleaned >= maxCleanup {
				break
			}
		}
	}
}
