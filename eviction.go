package cache

import (
	"time"
)

// retentionScore weighs hit frequency against age: each hit is worth 1000
// milliseconds of youth. Higher scores are more valuable; the lowest score
// is evicted first. The weighting keeps hot-but-old entries alive while
// single-use entries age out.
func retentionScore(e *Entry, now time.Time) int64 {
	return e.Hits*1000 - e.Age(now).Milliseconds()
}

// evictOne removes the single entry with the lowest retention score at this
// snapshot, breaking ties toward the older InsertedAt so the victim is
// deterministic. It increments the evictions counter exactly once.
//
// The caller must hold the write lock. Called only from the set path when
// the store is at capacity and the incoming key is new.
func (c *Cache) evictOne() {
	now := time.Now()

	var victimKey string
	var victim *Entry
	var victimScore int64

	for key, entry := range c.entries {
		score := retentionScore(entry, now)
		older := victim != nil && score == victimScore && entry.InsertedAt.Before(victim.InsertedAt)
		if victim == nil || score < victimScore || older {
			victimKey, victim, victimScore = key, entry, score
		}
	}

	if victim == nil {
		return
	}

	delete(c.entries, victimKey)
	c.stats.evictions++
	c.logger.logEviction(victimKey, victimScore)
}
