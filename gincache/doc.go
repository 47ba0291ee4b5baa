// Package gincache provides the gin flavor of the httpcache middleware.
//
// It derives keys and stores payloads exactly as httpcache does, so a gin
// pipeline and a net/http pipeline can share one cache instance. Only
// status-200 responses with a non-empty body are cached; the downstream
// status is never altered.
//
//	c, _ := cache.New(cache.Config{DefaultTTL: time.Minute, MaxSize: 500, KeyPrefix: "http:"})
//	router := gin.New()
//	router.Use(gincache.Middleware(c))
package gincache
