// Package cache provides a bounded, in-process key-value cache engine with
// time-based expiry, retention-score eviction, and background reclamation.
//
// Service-side components use it to avoid recomputing or re-fetching
// expensive results: AI-generated replies, command outputs, user and session
// lookups. The engine is memory-only and per-process; it does not persist
// entries or coordinate across processes.
//
// # Features
//
//   - Per-instance TTL default with per-entry overrides
//   - Capacity bound with deterministic eviction (frequency weighed against age)
//   - Background sweeper reclaiming expired entries independent of reads
//   - Hit/miss/eviction statistics with a JSON-ready snapshot
//   - Named registry of independently tuned instances per data domain
//   - Adapters: HTTP middleware (net/http and gin) and a generic function
//     memoizer with optional single-flight coalescing
//
// # Quick Start
//
// Creating and using an instance:
//
//	c, err := cache.New(cache.Config{
//	    DefaultTTL: 5 * time.Minute,
//	    MaxSize:    1000,
//	    KeyPrefix:  "chat:",
//	})
//	if err != nil {
//	    return err
//	}
//	defer c.Close()
//
//	c.Set("room1", reply)
//	if v, ok := c.Get("room1"); ok {
//	    // served from cache
//	}
//
// Named instances per domain:
//
//	reg, err := cache.NewDefaultRegistry()
//	if err != nil {
//	    return err
//	}
//	defer reg.Close()
//
//	users, err := reg.Get(cache.CacheUser)
//
// Memoizing a producer function:
//
//	lookup := cache.Memoize(users,
//	    func(id string) string { return id },
//	    func(ctx context.Context, id string) (User, error) {
//	        return db.FetchUser(ctx, id)
//	    },
//	)
//	u, err := lookup(ctx, "42")
//
// # Entry Lifecycle
//
// An entry is created by Set, counted on each Get hit, and destroyed by
// explicit Delete, overwrite, lazy expiry discovered on Get, eager expiry by
// the sweeper, or eviction under capacity pressure. An entry is live while
// now - InsertedAt < TTL; once expired it is treated as absent everywhere.
//
// # Eviction
//
// When a new key would exceed MaxSize, the entry with the lowest retention
// score (hits*1000 - age in milliseconds, ties to the older entry) is
// removed. Frequently hit entries survive even when old; single-use entries
// age out.
//
// # Concurrency
//
// Every instance is guarded by one coarse lock; all methods are safe for
// concurrent use. Concurrent misses for the same key are not de-duplicated
// by the store itself; callers who need that use the memoizer's
// WithCoalescing option.
//
// # Errors
//
// Construction is the only failure point of an instance; it reports invalid
// configuration through the platform error taxonomy
// (github.com/jmgilman/go/errors, code INVALID_CONFIGURATION). A cache miss
// is not an error: Get returns (nil, false).
package cache
