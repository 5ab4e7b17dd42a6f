// Package web exposes the HTTP surface of the service: the JSON
// endpoint for creating booking pages and the rendered public pages.
package web
