// Package http implements the inbound ClickNLoad HTTP transport.
//
// It exposes the endpoints browser plugins and ClickNLoad pages probe and post
// to, decodes their url-encoded, multipart, or JSON bodies, and delegates to
// the service layer. Cross-cutting concerns such as CORS, request tracing,
// access logging, and Prometheus metrics are handled in this package before
// requests reach the handlers.
package http
