// Package redis provides optional Redis connection management for the
// booking page cache.
//
// The cache is strictly additive: Config.Enabled reports whether a
// REDIS_URL was supplied, and the application wires the cache layer only
// in that case. Connect retries the initial connection within a bounded
// timeout; Healthcheck yields a probe for the readiness endpoint.
package redis
