package data

import (
	"context"
	"sync"
	"time"

	"payoff-grid/internal/model"
)

// CacheEntry is one computed grid.
type CacheEntry struct {
	Grid      *model.Grid
	ExpiresAt time.Time
}

// GridCache keeps computed grids in memory, keyed by betgrid.Request.Key.
// Grids are never mutated after population, so entries are shared as is.
// A nil *GridCache is valid and caches nothing.
type GridCache struct {
	mu         sync.RWMutex
	store      map[string]*CacheEntry
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

// NewGridCache returns nil when ttl <= 0. At most maxEntries grids are held;
// values below 1 are treated as 1.
func NewGridCache(ttl time.Duration, maxEntries int) *GridCache {
	if ttl <= 0 {
		return nil
	}
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &GridCache{
		store:      make(map[string]*CacheEntry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// Get retrieves a cached grid if available and not expired
func (c *GridCache) Get(key string) (*model.Grid, bool) {
	if c == nil {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.store[key]
	if !exists || c.now().After(entry.ExpiresAt) {
		return nil, false
	}
	return entry.Grid, true
}

// Set stores a grid in the cache. When full, expired entries are dropped
// first, then the entry closest to expiry.
func (c *GridCache) Set(key string, grid *model.Grid) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.store[key]; !exists && len(c.store) >= c.maxEntries {
		c.evictLocked()
	}
	c.store[key] = &CacheEntry{
		Grid:      grid,
		ExpiresAt: c.now().Add(c.ttl),
	}
}

// Len counts stored entries, expired or not.
func (c *GridCache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

// Clear removes all entries from the cache
func (c *GridCache) Clear() {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store = make(map[string]*CacheEntry)
}

// Prune removes expired entries and reports how many were dropped.
func (c *GridCache) Prune() int {
	if c == nil {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return c.pruneLocked()
}

func (c *GridCache) pruneLocked() int {
	now := c.now()
	dropped := 0
	for key, entry := range c.store {
		if now.After(entry.ExpiresAt) {
			delete(c.store, key)
			dropped++
		}
	}
	return dropped
}

func (c *GridCache) evictLocked() {
	if c.pruneLocked() > 0 {
		return
	}
	var (
		oldest    string
		oldestExp time.Time
	)
	for key, entry := range c.store {
		if oldest == "" || entry.ExpiresAt.Before(oldestExp) {
			oldest, oldestExp = key, entry.ExpiresAt
		}
	}
	delete(c.store, oldest)
}

// RunCleanup prunes every interval until ctx is done.
func (c *GridCache) RunCleanup(ctx context.Context, interval time.Duration) {
	if c == nil {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.Prune()
		case <-ctx.Done():
			return
		}
	}
}
