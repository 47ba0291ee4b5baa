package cache

import (
	"strings"
	"sync"
	"time"
)

// Cache is a bounded, in-process key-value store with per-entry TTL, a
// retention-score eviction policy, and a background expiry sweeper. All
// methods are safe for concurrent use; every mutation is guarded by one
// coarse lock per instance.
//
// A Cache is created with New and owns its entries, statistics, and sweeper
// exclusively. Two instances never share state, even when raw keys collide,
// because every stored key is KeyPrefix + rawKey.
type Cache struct {
	mu      sync.RWMutex
	config  Config
	entries map[string]*Entry
	stats   counters
	logger  *Logger

	sweepInterval time.Duration
	sweepDone     chan struct{}
	closeOnce     sync.Once
}

// New creates a cache instance from the given configuration and starts its
// background sweeper. It returns a configuration error if cfg.DefaultTTL or
// cfg.MaxSize is not positive, or if an option carries an invalid value.
func New(cfg Config, opts ...Option) (*Cache, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.sweepInterval <= 0 {
		return nil, newInvalidConfigError("SweepInterval", o.sweepInterval, "must be greater than zero")
	}

	c := &Cache{
		config:        cfg,
		entries:       make(map[string]*Entry),
		logger:        o.logger.WithCache(cfg.KeyPrefix),
		sweepInterval: o.sweepInterval,
		sweepDone:     make(chan struct{}),
	}

	c.startSweeper()

	return c, nil
}

// Config returns a copy of the instance's configuration.
func (c *Cache) Config() Config {
	return c.config
}

// key builds the full store key from a raw key.
func (c *Cache) key(rawKey string) string {
	return c.config.KeyPrefix + rawKey
}

// Set stores value under rawKey with the instance's default TTL. If the key
// already exists it is overwritten in place, resetting its hit count and
// insertion time. If the key is new and the store is at capacity, exactly
// one existing entry is evicted first. Set never fails.
func (c *Cache) Set(rawKey string, value any) {
	c.SetWithTTL(rawKey, value, 0)
}

// SetWithTTL stores value under rawKey with an entry-specific TTL. A ttl of
// zero or less falls back to the instance's default. Otherwise identical to
// Set.
func (c *Cache) SetWithTTL(rawKey string, value any, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.config.DefaultTTL
	}
	key := c.key(rawKey)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.config.MaxSize {
		c.evictOne()
	}

	c.entries[key] = &Entry{
		Data:       value,
		InsertedAt: time.Now(),
		TTL:        ttl,
	}
}

// Get returns the live value stored under rawKey. A live entry counts one
// hit and has its hit counter incremented. An absent or expired entry counts
// one miss; an expired entry is removed on the spot.
func (c *Cache) Get(rawKey string) (any, bool) {
	key := c.key(rawKey)

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		c.stats.misses++
		c.logger.logMiss(key, "absent")
		return nil, false
	}
	if entry.IsExpired() {
		delete(c.entries, key)
		c.stats.misses++
		c.logger.logMiss(key, "expired")
		return nil, false
	}

	entry.Hits++
	c.stats.hits++
	c.logger.logHit(key)
	return entry.Data, true
}

// Has reports whether rawKey resolves to a live entry. It is equivalent to a
// single Get compared against absence, and counts against the hit/miss
// statistics exactly once.
func (c *Cache) Has(rawKey string) bool {
	_, ok := c.Get(rawKey)
	return ok
}

// Delete removes the entry stored under rawKey and reports whether a removal
// occurred. It never touches the hit/miss counters.
func (c *Cache) Delete(rawKey string) bool {
	key := c.key(rawKey)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; !ok {
		return false
	}
	delete(c.entries, key)
	return true
}

// Clear atomically empties the store and resets every statistics counter to
// zero. No intermediate state is observable. Clear is idempotent.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*Entry)
	c.stats = counters{}
}

// Len returns the number of entries currently stored, live or not yet swept.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// InvalidatePattern removes every entry whose full key contains substr and
// returns how many were removed. Removals are neither misses nor evictions;
// no counter changes.
func (c *Cache) InvalidatePattern(substr string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key := range c.entries {
		if strings.Contains(key, substr) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// Warm pre-populates the cache through the normal Set path, applying the
// default TTL and the usual capacity/eviction rules.
func (c *Cache) Warm(entries map[string]any) {
	for rawKey, value := range entries {
		c.Set(rawKey, value)
	}
}
