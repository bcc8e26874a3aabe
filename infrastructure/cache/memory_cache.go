package cache

import (
	"sync"
	"time"

	"tombraider-hub/domain/dto"
)

type entry struct {
	value     interface{}
	createdAt time.Time
	expiresAt time.Time
}

func (e *entry) expired(now time.Time) bool {
	return now.After(e.expiresAt)
}

// MemoryCache is a process-local cache with one fixed TTL for every key.
// Expired entries are removed lazily on Get/Has and in bulk by Cleanup.
type MemoryCache struct {
	mu   sync.RWMutex
	data map[string]*entry
	ttl  time.Duration
	now  func() time.Time
}

type Option func(*MemoryCache)

// WithClock replaces time.Now as the cache's time source.
func WithClock(now func() time.Time) Option {
	return func(c *MemoryCache) {
		c.now = now
	}
}

func NewMemoryCache(ttl time.Duration, opts ...Option) *MemoryCache {
	c := &MemoryCache{
		data: make(map[string]*entry),
		ttl:  ttl,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *MemoryCache) Get(key string) (interface{}, bool) {
	now := c.now()

	c.mu.RLock()
	e, ok := c.data[key]
	if !ok {
		c.mu.RUnlock()
		return nil, false
	}
	if !e.expired(now) {
		value := e.value
		c.mu.RUnlock()
		return value, true
	}
	c.mu.RUnlock()

	c.removeIfExpired(key, now)
	return nil, false
}

func (c *MemoryCache) Has(key string) bool {
	_, ok := c.Get(key)
	return ok
}

// removeIfExpired re-checks under the write lock: a Set may have replaced
// the entry since it was read.
func (c *MemoryCache) removeIfExpired(key string, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.data[key]; ok && e.expired(now) {
		delete(c.data, key)
	}
}

func (c *MemoryCache) Set(key string, value interface{}) {
	now := c.now()
	e := &entry{
		value:     value,
		createdAt: now,
		expiresAt: now.Add(c.ttl),
	}

	c.mu.Lock()
	c.data[key] = e
	c.mu.Unlock()
}

func (c *MemoryCache) Delete(key string) {
	c.mu.Lock()
	delete(c.data, key)
	c.mu.Unlock()
}

func (c *MemoryCache) Clear() {
	c.mu.Lock()
	c.data = make(map[string]*entry)
	c.mu.Unlock()
}

func (c *MemoryCache) Cleanup() int {
	now := c.now()
	removed := 0

	c.mu.Lock()
	defer c.mu.Unlock()
	for key, e := range c.data {
		if e.expired(now) {
			delete(c.data, key)
			removed++
		}
	}
	return removed
}

func (c *MemoryCache) Stats() dto.CacheStats {
	now := c.now()
	stats := dto.CacheStats{TTL: c.ttl}

	c.mu.RLock()
	defer c.mu.RUnlock()
	stats.Total = len(c.data)
	for _, e := range c.data {
		if e.expired(now) {
			stats.Expired++
		}
	}
	stats.Valid = stats.Total - stats.Expired
	return stats
}
