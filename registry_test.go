package cache

import (
	"testing"
	"time"

	"github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()

	r, err := NewDefaultRegistry(WithSweepInterval(time.Hour))
	require.NoError(t, err)
	t.Cleanup(r.Close)
	return r
}

func TestDefaultRegistryInstances(t *testing.T) {
	r := newTestRegistry(t)

	require.Equal(t, []string{CacheChat, CacheCommand, CacheSession, CacheUser}, r.Names())

	tests := []struct {
		name       string
		wantTTL    time.Duration
		wantSize   int
		wantPrefix string
	}{
		{name: CacheChat, wantTTL: 5 * time.Minute, wantSize: 1000, wantPrefix: "chat:"},
		{name: CacheCommand, wantTTL: 10 * time.Minute, wantSize: 500, wantPrefix: "command:"},
		{name: CacheUser, wantTTL: 30 * time.Minute, wantSize: 200, wantPrefix: "user:"},
		{name: CacheSession, wantTTL: time.Hour, wantSize: 500, wantPrefix: "session:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := r.Get(tt.name)
			require.NoError(t, err)

			cfg := c.Config()
			require.Equal(t, tt.wantTTL, cfg.DefaultTTL)
			require.Equal(t, tt.wantSize, cfg.MaxSize)
			require.Equal(t, tt.wantPrefix, cfg.KeyPrefix)
		})
	}
}

func TestRegistryGetUnknown(t *testing.T) {
	r := newTestRegistry(t)

	c, err := r.Get("unknown")
	require.Error(t, err)
	require.Nil(t, c)
	require.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}

func TestRegistryRegisterDuplicate(t *testing.T) {
	r := newTestRegistry(t)

	c, err := r.Register(CacheChat, Config{DefaultTTL: time.Minute, MaxSize: 1})
	require.Error(t, err)
	require.Nil(t, c)
	require.Equal(t, errors.CodeConflict, errors.GetCode(err))
}

func TestRegistryRegisterInvalidConfig(t *testing.T) {
	r := NewRegistry(WithSweepInterval(time.Hour))
	t.Cleanup(r.Close)

	c, err := r.Register("bad", Config{DefaultTTL: time.Minute, MaxSize: -1})
	require.Error(t, err)
	require.Nil(t, c)
	require.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
	require.Empty(t, r.Names())
}

func TestRegistryRegisterReturnsCache(t *testing.T) {
	r := NewRegistry(WithSweepInterval(time.Hour))
	t.Cleanup(r.Close)

	c, err := r.Register("reports", Config{DefaultTTL: time.Minute, MaxSize: 10, KeyPrefix: "report:"})
	require.NoError(t, err)
	require.NotNil(t, c)

	got, err := r.Get("reports")
	require.NoError(t, err)
	require.Same(t, c, got)
}

func TestRegistryInstanceIsolation(t *testing.T) {
	r := newTestRegistry(t)

	chat, err := r.Get(CacheChat)
	require.NoError(t, err)
	command, err := r.Get(CacheCommand)
	require.NoError(t, err)

	chat.Set("room1", "cached reply")
	command.Set("room1", "command output")

	v, ok := chat.Get("room1")
	require.True(t, ok)
	require.Equal(t, "cached reply", v)

	v, ok = command.Get("room1")
	require.True(t, ok)
	require.Equal(t, "command output", v)
}

func TestRegistryStats(t *testing.T) {
	r := newTestRegistry(t)

	chat, err := r.Get(CacheChat)
	require.NoError(t, err)
	chat.Set("k", "v")
	chat.Get("k")
	chat.Get("absent")

	all := r.Stats()
	require.Len(t, all, 4)
	require.Equal(t, int64(1), all[CacheChat].Hits)
	require.Equal(t, int64(1), all[CacheChat].Misses)
	require.Equal(t, Stats{}, all[CacheUser])
}

func TestRegistryCloseLeavesCachesUsable(t *testing.T) {
	r, err := NewDefaultRegistry(WithSweepInterval(time.Hour))
	require.NoError(t, err)

	chat, err := r.Get(CacheChat)
	require.NoError(t, err)

	r.Close()
	r.Close()

	chat.Set("k", "v")
	_, ok := chat.Get("k")
	require.True(t, ok)
}
