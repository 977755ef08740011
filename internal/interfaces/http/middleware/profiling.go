// Package middleware provides HTTP middleware for the shipping rates API.
package middleware

import (
	"context"
	"strings"

	"github.com/erp/shipping/internal/infrastructure/telemetry"
	"github.com/gin-gonic/gin"
)

// ProfilingConfig holds configuration for the profiling middleware.
type ProfilingConfig struct {
	// Enabled controls whether profiling labels are added to requests.
	Enabled bool
	// SkipPaths are paths that don't need profiling labels (e.g., health checks).
	SkipPaths []string
	// SkipPathPrefixes are path prefixes that don't need profiling labels.
	SkipPathPrefixes []string
}

// DefaultProfilingConfig returns default profiling middleware configuration.
func DefaultProfilingConfig() ProfilingConfig {
	return ProfilingConfig{
		Enabled: true,
		SkipPaths: []string{
			"/health",
			"/healthz",
			"/ready",
			"/metrics",
		},
		SkipPathPrefixes: []string{
			"/swagger",
		},
	}
}

// Profiling returns profiling middleware with default configuration.
func Profiling() gin.HandlerFunc {
	return ProfilingWithConfig(DefaultProfilingConfig())
}

// ProfilingWithConfig attaches Pyroscope labels to the request context:
//   - method: HTTP method
//   - route: route pattern (e.g. "/api/v1/rate-records/:id")
//   - resource: first resource segment of the route (e.g. "rate-records")
//   - client_id: API client from the JWT, when authenticated
//
// Place it after the JWT middleware so client_id is available. Labels set
// deeper in the stack (rating operation and mode) nest under these.
func ProfilingWithConfig(cfg ProfilingConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	skip := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if _, ok := skip[path]; ok || hasAnyPrefix(path, cfg.SkipPathPrefixes) {
			c.Next()
			return
		}

		telemetry.WithProfilingLabels(c.Request.Context(), extractProfilingLabels(c), func(ctx context.Context) {
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		})
	}
}

// extractProfilingLabels returns label key/value pairs for the request.
func extractProfilingLabels(c *gin.Context) []string {
	labels := make([]string, 0, 8)

	if method := c.Request.Method; method != "" {
		labels = append(labels, telemetry.LabelMethod, method)
	}

	route := c.FullPath()
	if route != "" {
		labels = append(labels, telemetry.LabelRoute, route)
	}
	if resource := resourceFromRoute(route); resource != "" {
		labels = append(labels, telemetry.LabelResource, resource)
	}

	if clientID := GetJWTClientID(c); clientID != "" {
		labels = append(labels, telemetry.LabelClientID, clientID)
	}

	return labels
}

// resourceFromRoute returns the first segment after the "api" and version
// prefix that is not a path parameter.
// "/api/v1/rate-records/:id" -> "rate-records"
func resourceFromRoute(route string) string {
	for _, part := range strings.Split(route, "/") {
		if part == "" || part == "api" || isVersionSegment(part) {
			continue
		}
		if strings.HasPrefix(part, ":") || strings.HasPrefix(part, "*") {
			continue
		}
		return part
	}
	return ""
}

// isVersionSegment checks if a path segment is an API version (v1, v2, etc.)
func isVersionSegment(segment string) bool {
	if len(segment) < 2 {
		return false
	}
	if segment[0] != 'v' && segment[0] != 'V' {
		return false
	}
	for i := 1; i < len(segment); i++ {
		if segment[i] < '0' || segment[i] > '9' {
			return false
		}
	}
	return true
}
