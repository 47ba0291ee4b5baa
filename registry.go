package cache

import (
	"sort"
	"sync"

	"github.com/jmgilman/go/errors"
)

// Canonical cache names used by the surrounding services. Each domain gets
// its own independently tuned instance; see DefaultRegistryConfig for the
// tuning.
const (
	// CacheChat holds conversational exchanges (short TTL, high capacity).
	CacheChat = "chat"

	// CacheCommand holds command execution results (medium TTL and capacity).
	CacheCommand = "command"

	// CacheUser holds user records (long TTL, low capacity).
	CacheUser = "user"

	// CacheSession holds session state (hour-scale TTL).
	CacheSession = "session"
)

// Registry holds independently configured cache instances by name. It is an
// explicitly constructed dependency: create one per process (or per test)
// and pass it to whoever needs named caches. All methods are safe for
// concurrent use.
type Registry struct {
	mu     sync.RWMutex
	caches map[string]*Cache
	opts   []Option
}

// NewRegistry creates an empty registry. The given options are applied to
// every cache the registry constructs.
func NewRegistry(opts ...Option) *Registry {
	return &Registry{
		caches: make(map[string]*Cache),
		opts:   opts,
	}
}

// Register constructs a cache from cfg and holds it under name. Registering
// a name twice is a conflict error; an invalid cfg is a configuration error.
func (r *Registry) Register(name string, cfg Config) (*Cache, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.caches[name]; exists {
		return nil, newDuplicateCacheError(name)
	}

	c, err := New(cfg, r.opts...)
	if err != nil {
		return nil, errors.WithContext(err, "cache", name)
	}

	r.caches[name] = c
	return c, nil
}

// Get returns the cache registered under name, or a not found error.
func (r *Registry) Get(name string) (*Cache, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.caches[name]
	if !ok {
		return nil, newUnknownCacheError(name)
	}
	return c, nil
}

// Names returns the registered cache names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.caches))
	for name := range r.caches {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Stats returns a statistics snapshot for every registered cache, keyed by
// name.
func (r *Registry) Stats() map[string]Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := make(map[string]Stats, len(r.caches))
	for name, c := range r.caches {
		stats[name] = c.Stats()
	}
	return stats
}

// Close stops the sweeper of every registered cache. The caches remain
// usable for store operations.
func (r *Registry) Close() {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.caches {
		c.Close()
	}
}

// NewDefaultRegistry creates a registry holding the four canonical
// instances, tuned per DefaultRegistryConfig. The given options are applied
// to each instance.
func NewDefaultRegistry(opts ...Option) (*Registry, error) {
	return NewRegistryFromConfig(DefaultRegistryConfig(), opts...)
}
