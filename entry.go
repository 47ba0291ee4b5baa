package cache

import (
	"time"
)

// Entry represents a single cache entry. Entries are owned by exactly one
// Cache instance; readers only ever see the stored Data value.
type Entry struct {
	// Data is the opaque cached payload.
	Data any

	// InsertedAt is the time the entry was stored. Overwriting a key
	// resets it.
	InsertedAt time.Time

	// TTL is the entry-specific time-to-live. It defaults to the owning
	// instance's DefaultTTL but may be overridden per SetWithTTL call.
	TTL time.Duration

	// Hits counts successful reads of this entry. Overwriting a key
	// resets it to zero.
	Hits int64
}

// IsExpired returns true once the entry's TTL has fully elapsed. An expired
// entry is treated as absent everywhere: reads miss, and either the read
// path or the sweeper removes it.
func (e *Entry) IsExpired() bool {
	return time.Since(e.InsertedAt) >= e.TTL
}

// Age returns how long ago the entry was inserted, relative to now.
func (e *Entry) Age(now time.Time) time.Duration {
	return now.Sub(e.InsertedAt)
}
