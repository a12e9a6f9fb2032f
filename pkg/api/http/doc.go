// Package http provides the HTTP server implementation.
//
// The HTTP server exposes endpoints for:
//   - The greeting on /
//   - Health checks
//   - Prometheus metrics
package http
