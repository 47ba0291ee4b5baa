// Package httpcache turns a net/http handler into a cache-checked step.
//
// The middleware derives a deterministic key from the request method, path,
// and normalized query string, and serves repeated requests from a cache
// instance instead of the downstream handler. An X-Cache response header
// reports HIT or MISS for observability.
//
// Only responses with status 200 and a non-empty body are cached; everything
// else passes through untouched. The middleware never alters the downstream
// status and never masks handler errors. Caching only wraps the success
// path.
//
//	c, _ := cache.New(cache.Config{DefaultTTL: time.Minute, MaxSize: 500, KeyPrefix: "http:"})
//	mux := http.NewServeMux()
//	mux.Handle("/reports", reportHandler)
//	handler := httpcache.Middleware(c)(mux)
package httpcache
