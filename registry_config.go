package cache

import (
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/jmgilman/go/errors"
)

// RegistryConfig describes a set of named cache configurations, as loaded
// from a YAML file or the environment.
type RegistryConfig struct {
	Caches map[string]CacheSettings `yaml:"caches"`
}

// CacheSettings is the external representation of one cache's Config. TTL is
// a Go duration string ("5m", "1h30m") so config files and environment
// variables stay human-readable.
type CacheSettings struct {
	TTL       string `yaml:"ttl"`
	MaxSize   int    `yaml:"max_size"`
	KeyPrefix string `yaml:"key_prefix"`
}

// toConfig parses the settings into an immutable Config.
func (s CacheSettings) toConfig() (Config, error) {
	ttl, err := time.ParseDuration(s.TTL)
	if err != nil {
		return Config{}, newInvalidConfigError("TTL", s.TTL, "must be a valid duration string")
	}
	return Config{
		DefaultTTL: ttl,
		MaxSize:    s.MaxSize,
		KeyPrefix:  s.KeyPrefix,
	}, nil
}

// DefaultRegistryConfig returns the canonical per-domain tuning: short-TTL
// high-capacity conversational exchanges, medium command results, long-TTL
// low-capacity user records, and hour-scale session state.
func DefaultRegistryConfig() RegistryConfig {
	return RegistryConfig{
		Caches: map[string]CacheSettings{
			CacheChat:    {TTL: "5m", MaxSize: 1000, KeyPrefix: "chat:"},
			CacheCommand: {TTL: "10m", MaxSize: 500, KeyPrefix: "command:"},
			CacheUser:    {TTL: "30m", MaxSize: 200, KeyPrefix: "user:"},
			CacheSession: {TTL: "1h", MaxSize: 500, KeyPrefix: "session:"},
		},
	}
}

// LoadRegistryFile reads a registry configuration from a YAML file:
//
//	caches:
//	  chat:
//	    ttl: 5m
//	    max_size: 1000
//	    key_prefix: "chat:"
func LoadRegistryFile(path string) (RegistryConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RegistryConfig{}, errors.Wrap(err, errors.CodeInvalidConfig, "failed to read registry config file")
	}

	var rc RegistryConfig
	if err := yaml.Unmarshal(data, &rc); err != nil {
		return RegistryConfig{}, errors.Wrap(err, errors.CodeInvalidConfig, "failed to parse registry config file")
	}
	return rc, nil
}

// RegistryConfigFromEnv builds the canonical registry configuration with
// environment overrides applied. For each canonical name, the variables
// CACHE_<NAME>_TTL, CACHE_<NAME>_MAX_SIZE, and CACHE_<NAME>_KEY_PREFIX
// override the defaults (e.g. CACHE_CHAT_TTL=10m).
//
// When dotenv files are given, each is loaded first and a missing file is an
// error. With no arguments a ./.env file is loaded when present and silently
// skipped otherwise.
func RegistryConfigFromEnv(dotenvFiles ...string) (RegistryConfig, error) {
	if len(dotenvFiles) > 0 {
		if err := godotenv.Load(dotenvFiles...); err != nil {
			return RegistryConfig{}, errors.Wrap(err, errors.CodeInvalidConfig, "failed to load env file")
		}
	} else {
		// .env is optional
		_ = godotenv.Load()
	}

	rc := DefaultRegistryConfig()
	for name, settings := range rc.Caches {
		prefix := "CACHE_" + strings.ToUpper(name) + "_"

		settings.TTL = getEnv(prefix+"TTL", settings.TTL)
		settings.KeyPrefix = getEnv(prefix+"KEY_PREFIX", settings.KeyPrefix)

		maxSize, err := getEnvAsInt(prefix+"MAX_SIZE", settings.MaxSize)
		if err != nil {
			return RegistryConfig{}, err
		}
		settings.MaxSize = maxSize

		rc.Caches[name] = settings
	}
	return rc, nil
}

// NewRegistryFromConfig constructs a registry holding one cache per entry in
// rc. Construction is all-or-nothing: on any invalid entry the caches built
// so far are closed and the error is returned with the offending name in
// context.
func NewRegistryFromConfig(rc RegistryConfig, opts ...Option) (*Registry, error) {
	r := NewRegistry(opts...)

	names := make([]string, 0, len(rc.Caches))
	for name := range rc.Caches {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		cfg, err := rc.Caches[name].toConfig()
		if err != nil {
			r.Close()
			return nil, errors.WithContext(err, "cache", name)
		}
		if _, err := r.Register(name, cfg); err != nil {
			r.Close()
			return nil, err
		}
	}
	return r, nil
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer with a default
// value. A set-but-malformed value is a configuration error rather than a
// silent fallback.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, newInvalidConfigError(key, value, "must be an integer")
	}
	return intValue, nil
}
