package gincache

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jmgilman/go/cache"
	"github.com/jmgilman/go/cache/httpcache"
)

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

// Middleware returns a gin handler that serves repeated requests from c. A
// hit aborts the chain and writes the cached body with X-Cache: HIT; a miss
// sets X-Cache: MISS, runs the chain, and stores the body when the response
// has status 200 and a non-empty body.
func Middleware(c *cache.Cache, opts ...Option) gin.HandlerFunc {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return func(ctx *gin.Context) {
		key := httpcache.Key(ctx.Request)

		if v, ok := c.Get(key); ok {
			if resp, ok := v.(httpcache.Response); ok {
				ctx.Header(httpcache.Header, httpcache.HeaderHit)
				ctx.Data(http.StatusOK, resp.ContentType, resp.Body)
				ctx.Abort()
				return
			}
		}

		ctx.Header(httpcache.Header, httpcache.HeaderMiss)
		rec := &bodyRecorder{ResponseWriter: ctx.Writer}
		ctx.Writer = rec
		ctx.Next()

		if rec.Status() == http.StatusOK && rec.body.Len() > 0 {
			c.SetWithTTL(key, httpcache.Response{
				Body:        rec.body.Bytes(),
				ContentType: rec.Header().Get("Content-Type"),
			}, o.ttl)
		}
	}
}

// bodyRecorder captures the response body while passing writes through to
// the client.
type bodyRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (r *bodyRecorder) Write(p []byte) (int, error) {
	r.body.Write(p)
	return r.ResponseWriter.Write(p)
}

func (r *bodyRecorder) WriteString(s string) (int, error) {
	r.body.WriteString(s)
	return r.ResponseWriter.WriteString(s)
}
