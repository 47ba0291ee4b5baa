package cache

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"
)

// MemoizeOption configures a memoized function.
type MemoizeOption func(*memoizeOptions)

type memoizeOptions struct {
	ttl      time.Duration
	coalesce bool
}

// WithResultTTL overrides the TTL applied to memoized results. The default
// is the cache instance's DefaultTTL.
func WithResultTTL(d time.Duration) MemoizeOption {
	return func(o *memoizeOptions) {
		o.ttl = d
	}
}

// WithCoalescing collapses concurrent misses for an identical key into a
// single producer invocation, with the duplicates receiving the shared
// result. Without it, duplicate concurrent misses each invoke the producer
// independently.
func WithCoalescing() MemoizeOption {
	return func(o *memoizeOptions) {
		o.coalesce = true
	}
}

// Memoize wraps a producer function so its results are served from c. keyFn
// derives the raw cache key from the argument; the producer runs only when
// that key has no live entry. Only successful results are cached: a producer
// error is propagated to the caller unchanged and nothing is stored, so the
// next call invokes the producer again.
//
// The producer is captured directly in the returned closure; the cache never
// inspects it beyond its (result, error) outcome.
func Memoize[A any, R any](
	c *Cache,
	keyFn func(A) string,
	fn func(context.Context, A) (R, error),
	opts ...MemoizeOption,
) func(context.Context, A) (R, error) {
	var o memoizeOptions
	for _, opt := range opts {
		opt(&o)
	}

	var group singleflight.Group

	produce := func(ctx context.Context, arg A, key string) (R, error) {
		result, err := fn(ctx, arg)
		if err != nil {
			var zero R
			return zero, err
		}
		c.SetWithTTL(key, result, o.ttl)
		return result, nil
	}

	return func(ctx context.Context, arg A) (R, error) {
		key := keyFn(arg)

		if v, ok := c.Get(key); ok {
			if result, ok := v.(R); ok {
				return result, nil
			}
		}

		if !o.coalesce {
			return produce(ctx, arg, key)
		}

		v, err, _ := group.Do(key, func() (any, error) {
			return produce(ctx, arg, key)
		})
		if err != nil {
			var zero R
			return zero, err
		}
		return v.(R), nil
	}
}
