// Package middleware provides the HTTP middleware chain of the shipping rates API.
package middleware

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/erp/shipping/internal/infrastructure/logger"
	"github.com/erp/shipping/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// RequestIDContextKey is the gin context key holding the request ID
const RequestIDContextKey = "request_id"

// MaxRequestIDLength bounds client supplied request IDs
const MaxRequestIDLength = 128

// CORSConfig holds CORS middleware configuration
type CORSConfig struct {
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	ExposeHeaders    []string
	AllowCredentials bool
	MaxAge           time.Duration
}

// DefaultCORSConfig returns the CORS configuration for the given origins.
// An empty list rejects every cross-origin request.
func DefaultCORSConfig(origins ...string) CORSConfig {
	return CORSConfig{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Request-ID", "Accept", "Origin"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}

// CORS returns CORS middleware for the given origins
func CORS(origins ...string) gin.HandlerFunc {
	return CORSWithConfig(DefaultCORSConfig(origins...))
}

// CORSWithConfig returns a CORS middleware with custom configuration
func CORSWithConfig(cfg CORSConfig) gin.HandlerFunc {
	allowWildcard := slices.Contains(cfg.AllowOrigins, "*")

	allowedOrigin := func(origin string) string {
		switch {
		case len(cfg.AllowOrigins) == 0:
			return ""
		case allowWildcard:
			return "*"
		case slices.Contains(cfg.AllowOrigins, origin):
			return origin
		}
		return ""
	}

	return func(c *gin.Context) {
		if allowed := allowedOrigin(c.Request.Header.Get("Origin")); allowed != "" {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", allowed)
			// Browsers reject credentials with a wildcard origin
			if cfg.AllowCredentials && allowed != "*" {
				h.Set("Access-Control-Allow-Credentials", "true")
			}
			h.Set("Access-Control-Allow-Headers", strings.Join(cfg.AllowHeaders, ", "))
			h.Set("Access-Control-Allow-Methods", strings.Join(cfg.AllowMethods, ", "))
			if len(cfg.ExposeHeaders) > 0 {
				h.Set("Access-Control-Expose-Headers", strings.Join(cfg.ExposeHeaders, ", "))
			}
			if cfg.MaxAge > 0 {
				h.Set("Access-Control-Max-Age", strconv.Itoa(int(cfg.MaxAge.Seconds())))
			}
		}

		// Preflight always answers 204, with headers only for allowed origins
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// RequestID assigns each request an ID, echoing a client supplied X-Request-ID.
// The ID is stored in the gin context and in the request context for logging.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if len(requestID) > MaxRequestIDLength {
			requestID = requestID[:MaxRequestIDLength]
		}
		if requestID == "" {
			requestID = generateRequestID()
		}
		c.Set(RequestIDContextKey, requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Request = c.Request.WithContext(logger.WithRequestID(c.Request.Context(), requestID))
		c.Next()
	}
}

// generateRequestID returns 16 random bytes hex encoded
func generateRequestID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return strconv.FormatInt(time.Now().UnixNano(), 16)
	}
	return hex.EncodeToString(b)
}

// SecurityConfig holds configuration for security headers
type SecurityConfig struct {
	HSTSEnabled bool
	HSTSMaxAge  int // in seconds

	// CSPDirective applies to API responses. Paths under CSPExemptPrefixes
	// (the Swagger UI, which needs inline scripts) get no CSP header.
	CSPDirective      string
	CSPExemptPrefixes []string
}

// DefaultSecurityConfig returns settings for a JSON API
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		HSTSMaxAge:        31536000, // 1 year
		CSPDirective:      "default-src 'none'; frame-ancestors 'none'",
		CSPExemptPrefixes: []string{"/swagger"},
	}
}

// Secure adds security headers to responses using default configuration
func Secure() gin.HandlerFunc {
	return SecureWithConfig(DefaultSecurityConfig())
}

// SecureWithConfig adds security headers to responses with custom configuration
func SecureWithConfig(cfg SecurityConfig) gin.HandlerFunc {
	hstsValue := "max-age=" + strconv.Itoa(cfg.HSTSMaxAge) + "; includeSubDomains"

	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "no-referrer")
		h.Set("Cache-Control", "no-store")

		if cfg.CSPDirective != "" && !hasAnyPrefix(c.Request.URL.Path, cfg.CSPExemptPrefixes) {
			h.Set("Content-Security-Policy", cfg.CSPDirective)
		}
		if cfg.HSTSEnabled {
			h.Set("Strict-Transport-Security", hstsValue)
		}

		c.Next()
	}
}

// Timeout bounds the request context. Rating and repository calls observe
// the deadline; the handler still writes the resulting error response.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if timeout <= 0 {
			c.Next()
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func hasAnyPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// abortWithError writes the standard error envelope and stops the chain
func abortWithError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponseWithRequestID(code, message, c.GetString(RequestIDContextKey)))
}
