// Package middleware provides HTTP middleware shared across the
// service: per-IP rate limiting, security headers, and request logging.
package middleware
