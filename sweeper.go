package cache

import (
	"time"
)

// startSweeper launches the background goroutine that eagerly reclaims
// expired entries. The goroutine is owned by the instance and exits when
// Close is called.
func (c *Cache) startSweeper() {
	ticker := time.NewTicker(c.sweepInterval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-c.sweepDone:
				return
			case <-ticker.C:
				c.Sweep()
			}
		}
	}()
}

// Sweep removes every expired entry immediately and returns how many were
// removed. The background sweeper calls it on every tick; callers may also
// invoke it directly to reclaim memory ahead of the next tick. Entries
// removed by a sweep count as neither misses nor evictions.
func (c *Cache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, entry := range c.entries {
		if entry.IsExpired() {
			delete(c.entries, key)
			removed++
		}
	}

	if removed > 0 {
		c.logger.logSweep(removed, len(c.entries))
	}
	return removed
}

// Close stops the background sweeper and releases its ticker. It is
// idempotent and safe to call from any goroutine. The instance remains
// usable afterwards; only eager expiry stops, lazy expiry on Get still
// applies.
func (c *Cache) Close() {
	c.closeOnce.Do(func() {
		close(c.sweepDone)
	})
}
