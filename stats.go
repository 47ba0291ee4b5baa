package cache

import (
	"math"
)

// counters tracks the raw statistics of one cache instance. It is guarded by
// the owning instance's lock; every store mutation updates exactly one field.
type counters struct {
	hits      int64
	misses    int64
	evictions int64
}

// Stats is an immutable snapshot of a cache instance's statistics. The json
// tags match the shape the surrounding services expose over HTTP.
type Stats struct {
	// Hits counts lookups satisfied from the cache.
	Hits int64 `json:"hits"`

	// Misses counts lookups that found no live entry.
	Misses int64 `json:"misses"`

	// Evictions counts entries removed under capacity pressure.
	Evictions int64 `json:"evictions"`

	// Size is the number of entries currently stored.
	Size int `json:"size"`

	// HitRate is hits/(hits+misses) as a percentage, rounded to two
	// decimals. Zero when no lookups have happened.
	HitRate float64 `json:"hit_rate"`
}

// Stats returns a snapshot of the instance's statistics. Computing the
// snapshot mutates nothing.
func (c *Cache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return Stats{
		Hits:      c.stats.hits,
		Misses:    c.stats.misses,
		Evictions: c.stats.evictions,
		Size:      len(c.entries),
		HitRate:   hitRate(c.stats.hits, c.stats.misses),
	}
}

// hitRate computes the percentage of lookups satisfied from cache, rounded
// to two decimals.
func hitRate(hits, misses int64) float64 {
	total := hits + misses
	if total == 0 {
		return 0
	}
	rate := float64(hits) / float64(total) * 100
	return math.Round(rate*100) / 100
}
