package cache

import (
	"log/slog"
)

// Logger provides structured logging for cache instances. It wraps an
// *slog.Logger so callers plug in whatever handler their service uses;
// a nil Logger is safe and discards everything.
type Logger struct {
	logger *slog.Logger
}

// NewLogger creates a Logger backed by the given slog logger.
// A nil argument yields a no-op logger.
func NewLogger(l *slog.Logger) *Logger {
	if l == nil {
		return NewNopLogger()
	}
	return &Logger{logger: l}
}

// NewNopLogger creates a logger that discards all log messages.
func NewNopLogger() *Logger {
	return &Logger{logger: slog.New(slog.DiscardHandler)}
}

// Debug logs debug-level messages.
func (l *Logger) Debug(msg string, args ...any) {
	if l == nil || l.logger == nil {
		return
	}
	l.logger.Debug(msg, args...)
}

// Info logs info-level messages.
func (l *Logger) Info(msg string, args ...any) {
	if l == nil || l.logger == nil {
		return
	}
	l.logger.Info(msg, args...)
}

// Warn logs warning-level messages.
func (l *Logger) Warn(msg string, args ...any) {
	if l == nil || l.logger == nil {
		return
	}
	l.logger.Warn(msg, args...)
}

// Error logs error-level messages.
func (l *Logger) Error(msg string, args ...any) {
	if l == nil || l.logger == nil {
		return
	}
	l.logger.Error(msg, args...)
}

// With returns a logger with additional context fields.
func (l *Logger) With(args ...any) *Logger {
	if l == nil || l.logger == nil {
		return l
	}
	return &Logger{logger: l.logger.With(args...)}
}

// WithCache returns a logger with the cache key prefix attached, so log
// lines from different named instances are distinguishable.
func (l *Logger) WithCache(keyPrefix string) *Logger {
	return l.With("key_prefix", keyPrefix)
}

// logHit logs a cache hit event.
func (l *Logger) logHit(key string) {
	l.Debug("cache hit", "key", key, "result", "hit")
}

// logMiss logs a cache miss event.
func (l *Logger) logMiss(key string, reason string) {
	l.Debug("cache miss", "key", key, "reason", reason, "result", "miss")
}

// logEviction logs an eviction event.
func (l *Logger) logEviction(key string, score int64) {
	l.Info("cache entry evicted", "key", key, "retention_score", score)
}

// logSweep logs the outcome of one sweeper pass.
func (l *Logger) logSweep(removed, remaining int) {
	l.Debug("cache sweep completed", "entries_removed", removed, "entries_remaining", remaining)
}
