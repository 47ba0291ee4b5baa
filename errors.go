package cache

import (
	"fmt"

	"github.com/jmgilman/go/errors"
)

// Cache-specific error codes (use existing codes from errors library).
// These are convenience aliases for readability in cache context.
const (
	// ErrCodeInvalidConfig indicates an invalid cache configuration.
	ErrCodeInvalidConfig = errors.CodeInvalidConfig

	// ErrCodeNotFound indicates a requested named cache does not exist.
	ErrCodeNotFound = errors.CodeNotFound

	// ErrCodeConflict indicates a named cache is already registered.
	ErrCodeConflict = errors.CodeConflict
)

// newInvalidConfigError creates a configuration error with field context.
func newInvalidConfigError(field string, value interface{}, reason string) error {
	err := errors.New(
		errors.CodeInvalidConfig,
		fmt.Sprintf("invalid cache config: %s %s", field, reason),
	)
	err = errors.WithContext(err, "field", field)
	err = errors.WithContext(err, "value", value)
	return err
}

// newUnknownCacheError creates a not found error for a registry lookup.
func newUnknownCacheError(name string) error {
	err := errors.New(
		errors.CodeNotFound,
		fmt.Sprintf("no cache registered under %q", name),
	)
	return errors.WithContext(err, "name", name)
}

// newDuplicateCacheError creates a conflict error for a repeated registration.
func newDuplicateCacheError(name string) error {
	err := errors.New(
		errors.CodeConflict,
		fmt.Sprintf("cache %q is already registered", name),
	)
	return errors.WithContext(err, "name", name)
}
