package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Defaults mirror the reporting workload: results stay fresh for an hour,
// expired entries are swept every ten minutes.
const (
	DefaultTTL           = time.Hour
	DefaultSweepInterval = 10 * time.Minute
)

type entry struct {
	value     any
	expiresAt time.Time
}

// Cache is a process-wide key-value store with a fixed time-to-live.
// An entry older than the TTL is never returned as a hit. Concurrent misses
// for the same key may each recompute independently: there is no single-flight
// protection, which is acceptable because every cached query is read-only and
// idempotent.
type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
	now     func() time.Time
}

// New creates a cache with the given TTL. A non-positive TTL falls back to
// DefaultTTL.
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get returns the stored value for key if its age is within the TTL.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || c.now().After(e.expiresAt) {
		slog.Debug("Cache miss", "key", key)
		return nil, false
	}
	slog.Debug("Cache hit", "key", key)
	return e.value, true
}

// Set stores value under key, overwriting any prior entry and resetting its age.
func (c *Cache) Set(key string, value any) bool {
	c.mu.Lock()
	c.entries[key] = entry{value: value, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
	slog.Debug("Cache set", "key", key)
	return true
}

// Delete removes a single entry.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	slog.Debug("Cache deleted", "key", key)
}

// FlushAll removes every entry.
func (c *Cache) FlushAll() {
	c.mu.Lock()
	c.entries = make(map[string]entry)
	c.mu.Unlock()
	slog.Info("Cache flushed")
}

// Len reports the number of stored entries, expired or not.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Sweep removes expired entries and returns how many were dropped.
// Expired entries are already invisible to Get; sweeping just reclaims memory.
func (c *Cache) Sweep() int {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// Janitor sweeps expired entries on the given interval until ctx is cancelled.
func (c *Cache) Janitor(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if removed := c.Sweep(); removed > 0 {
				slog.Debug("Cache sweep completed", "removed", removed)
			}
		}
	}
}
