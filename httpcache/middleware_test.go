package httpcache

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/cache"
)

func newTestCache(t *testing.T) *cache.Cache {
	t.Helper()

	c, err := cache.New(
		cache.Config{DefaultTTL: time.Minute, MaxSize: 100, KeyPrefix: "http:"},
		cache.WithSweepInterval(time.Hour),
	)
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func countingHandler(calls *int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"path":%q}`, r.URL.Path)
	})
}

func TestKey(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		want   string
	}{
		{name: "plain path", method: http.MethodGet, target: "/reports", want: "GET /reports"},
		{name: "query is normalized", method: http.MethodGet, target: "/reports?b=2&a=1", want: "GET /reports?a=1&b=2"},
		{name: "method is part of the key", method: http.MethodPost, target: "/reports", want: "POST /reports"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(tt.method, tt.target, nil)
			require.Equal(t, tt.want, Key(r))
		})
	}
}

func TestMiddlewareMissThenHit(t *testing.T) {
	c := newTestCache(t)

	calls := 0
	handler := Middleware(c)(countingHandler(&calls))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/reports", nil))

	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, HeaderMiss, first.Header().Get(Header))
	require.Equal(t, 1, calls)

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/reports", nil))

	require.Equal(t, http.StatusOK, second.Code)
	require.Equal(t, HeaderHit, second.Header().Get(Header))
	require.Equal(t, 1, calls, "cached response is served without the handler")
	require.Equal(t, first.Body.String(), second.Body.String())
	require.Equal(t, "application/json", second.Header().Get("Content-Type"))
}

func TestMiddlewareQueryOrderInsensitive(t *testing.T) {
	c := newTestCache(t)

	calls := 0
	handler := Middleware(c)(countingHandler(&calls))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/reports?b=2&a=1", nil))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reports?a=1&b=2", nil))

	require.Equal(t, HeaderHit, rec.Header().Get(Header))
	require.Equal(t, 1, calls)
}

func TestMiddlewareDistinctMethods(t *testing.T) {
	c := newTestCache(t)

	calls := 0
	handler := Middleware(c)(countingHandler(&calls))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/reports", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/reports", nil))

	require.Equal(t, 2, calls, "method is part of the cache key")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reports", nil))
	require.Equal(t, HeaderHit, rec.Header().Get(Header))
	require.Equal(t, 2, calls)
}

func TestMiddlewareNon200NotCached(t *testing.T) {
	c := newTestCache(t)

	calls := 0
	handler := Middleware(c)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "upstream failed", http.StatusBadGateway)
	}))

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reports", nil))

		require.Equal(t, http.StatusBadGateway, rec.Code, "status passes through untouched")
		require.Equal(t, HeaderMiss, rec.Header().Get(Header))
	}
	require.Equal(t, 2, calls, "error responses are never cached")
}

func TestMiddlewareEmptyBodyNotCached(t *testing.T) {
	c := newTestCache(t)

	calls := 0
	handler := Middleware(c)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/empty", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/empty", nil))

	require.Equal(t, 2, calls)
}

func TestMiddlewareWithTTL(t *testing.T) {
	c := newTestCache(t)

	calls := 0
	handler := Middleware(c, WithTTL(25*time.Millisecond))(countingHandler(&calls))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/reports", nil))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reports", nil))
	require.Equal(t, HeaderHit, rec.Header().Get(Header))
	require.Equal(t, 1, calls)

	time.Sleep(50 * time.Millisecond)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reports", nil))
	require.Equal(t, HeaderMiss, rec.Header().Get(Header))
	require.Equal(t, 2, calls, "expired response is rebuilt")
}
