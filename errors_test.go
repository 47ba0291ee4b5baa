package cache

import (
	"testing"

	"github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/require"
)

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode errors.ErrorCode
		wantMsg  string
	}{
		{
			name:     "invalid config",
			err:      newInvalidConfigError("MaxSize", -1, "must be positive"),
			wantCode: errors.CodeInvalidConfig,
			wantMsg:  "[INVALID_CONFIGURATION] invalid cache config: MaxSize must be positive",
		},
		{
			name:     "unknown cache",
			err:      newUnknownCacheError("reports"),
			wantCode: errors.CodeNotFound,
			wantMsg:  `[NOT_FOUND] no cache registered under "reports"`,
		},
		{
			name:     "duplicate cache",
			err:      newDuplicateCacheError("chat"),
			wantCode: errors.CodeConflict,
			wantMsg:  `[CONFLICT] cache "chat" is already registered`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.wantCode, errors.GetCode(tt.err))
			require.Equal(t, tt.wantMsg, tt.err.Error())
			require.False(t, errors.IsRetryable(tt.err), "cache errors are permanent")
		})
	}
}
