// Package middleware provides HTTP middleware for the shipping rates API.
package middleware

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracingConfig configures the server span middleware.
type TracingConfig struct {
	ServiceName string
	Enabled     bool
	// SkipPaths are not traced (health probes, metrics scrapes)
	SkipPaths []string
}

// TracingWithConfig wraps otelgin so every routed request gets a server span
// named "METHOD route", e.g. "POST /api/v1/shipping/options".
func TracingWithConfig(cfg TracingConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return passthrough
	}
	return otelgin.Middleware(cfg.ServiceName,
		otelgin.WithFilter(func(r *http.Request) bool {
			return !slices.Contains(cfg.SkipPaths, r.URL.Path)
		}),
	)
}

// spanCallerAttrs are copied from the gin context onto the server span
// when present.
var spanCallerAttrs = []struct {
	key attribute.Key
	get func(c *gin.Context) string
}{
	{"request_id", func(c *gin.Context) string { return c.GetString(RequestIDContextKey) }},
	{"client_id", GetJWTClientID},
	{"store_id", GetJWTStoreID},
}

// TracingAttributeInjector tags the active span with request and caller
// identity. It belongs after RequestID and the JWT middleware.
func TracingAttributeInjector() gin.HandlerFunc {
	return func(c *gin.Context) {
		if span := trace.SpanFromContext(c.Request.Context()); span.IsRecording() {
			for _, a := range spanCallerAttrs {
				if v := a.get(c); v != "" {
					span.SetAttributes(a.key.String(v))
				}
			}
		}
		c.Next()
	}
}

// SpanErrorMarker sets an error status on the span for any 4xx or 5xx
// response, including the aborts of auth and rate limiting that otelgin
// records as unset.
func SpanErrorMarker() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		span := trace.SpanFromContext(c.Request.Context())
		if status < http.StatusBadRequest || !span.IsRecording() {
			return
		}
		span.SetStatus(codes.Error, http.StatusText(status))
		span.SetAttributes(attribute.Int("http.status_code", status))
	}
}
