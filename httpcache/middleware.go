package httpcache

import (
	"bytes"
	"net/http"
	"time"

	"github.com/jmgilman/go/cache"
)

// Header is the response header reporting cache participation.
const Header = "X-Cache"

// Values written to the X-Cache header.
const (
	HeaderHit  = "HIT"
	HeaderMiss = "MISS"
)

// Response is the payload stored for a cached request. The gincache package
// stores the same shape, so both middlewares can share one cache instance.
type Response struct {
	Body        []byte
	ContentType string
}

// Key derives the raw cache key for a request from its method, path, and
// normalized query string. Query parameters are sorted by name, so parameter
// order in the URL does not change the key.
func Key(r *http.Request) string {
	query := r.URL.Query().Encode()
	if query == "" {
		return r.Method + " " + r.URL.Path
	}
	return r.Method + " " + r.URL.Path + "?" + query
}

// Option configures the middleware.
type Option func(*options)

type options struct {
	ttl time.Duration
}

// WithTTL overrides the TTL applied to cached responses. The default is the
// cache instance's DefaultTTL.
func WithTTL(d time.Duration) Option {
	return func(o *options) {
		o.ttl = d
	}
}

// Middleware wraps a handler with a cache-checked step backed by c. A hit
// short-circuits the downstream handler and writes the cached body with
// X-Cache: HIT. A miss sets X-Cache: MISS, invokes the downstream handler,
// and stores the body when the response qualifies.
func Middleware(c *cache.Cache, opts ...Option) func(http.Handler) http.Handler {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := Key(r)

			if v, ok := c.Get(key); ok {
				if resp, ok := v.(Response); ok {
					if resp.ContentType != "" {
						w.Header().Set("Content-Type", resp.ContentType)
					}
					w.Header().Set(Header, HeaderHit)
					w.WriteHeader(http.StatusOK)
					_, _ = w.Write(resp.Body)
					return
				}
			}

			w.Header().Set(Header, HeaderMiss)
			rec := &recorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			if rec.status == http.StatusOK && rec.body.Len() > 0 {
				c.SetWithTTL(key, Response{
					Body:        rec.body.Bytes(),
					ContentType: rec.Header().Get("Content-Type"),
				}, o.ttl)
			}
		})
	}
}

// recorder captures the downstream status and body while passing both
// through to the client.
type recorder struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (r *recorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *recorder) Write(p []byte) (int, error) {
	r.body.Write(p)
	return r.ResponseWriter.Write(p)
}
