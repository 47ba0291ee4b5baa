package cache

import (
	"time"
)

// DefaultSweepInterval is the period between background sweeper passes when
// no override is given.
const DefaultSweepInterval = 60 * time.Second

// Config holds the identity of a cache instance. It is immutable after
// construction; New copies it by value.
type Config struct {
	// DefaultTTL is the time-to-live applied to entries stored without an
	// explicit override. Must be greater than zero.
	DefaultTTL time.Duration

	// MaxSize is the maximum number of entries the instance holds. When a
	// new key would exceed it, exactly one existing entry is evicted first.
	// Must be greater than zero.
	MaxSize int

	// KeyPrefix namespaces every key stored in this instance. The full key
	// is always KeyPrefix + rawKey, plain string concatenation. May be
	// empty.
	KeyPrefix string
}

// Validate checks the configuration for invalid values. It is called by New;
// callers constructing configs from external input can call it directly to
// fail early.
func (c Config) Validate() error {
	if c.DefaultTTL <= 0 {
		return newInvalidConfigError("DefaultTTL", c.DefaultTTL, "must be greater than zero")
	}
	if c.MaxSize <= 0 {
		return newInvalidConfigError("MaxSize", c.MaxSize, "must be greater than zero")
	}
	return nil
}

// options holds construction settings that are not part of the instance
// identity triple.
type options struct {
	sweepInterval time.Duration
	logger        *Logger
}

func defaultOptions() options {
	return options{
		sweepInterval: DefaultSweepInterval,
		logger:        NewNopLogger(),
	}
}

// Option configures optional behavior of a cache instance at construction.
type Option func(*options)

// WithSweepInterval sets the period of the background expiry sweeper.
// The default is DefaultSweepInterval.
func WithSweepInterval(d time.Duration) Option {
	return func(o *options) {
		o.sweepInterval = d
	}
}

// WithLogger sets the structured logger used for cache events. The default
// discards everything.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
