package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/erp/shipping/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// do runs one request through a single-middleware engine with a 200 handler
// mounted at path.
func do(mw gin.HandlerFunc, method, path string, header http.Header) *httptest.ResponseRecorder {
	engine := gin.New()
	engine.Use(mw)
	engine.Handle(http.MethodGet, path, func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func origin(o string) http.Header {
	return http.Header{"Origin": {o}}
}

func TestCORS(t *testing.T) {
	storefronts := []string{"http://localhost:3000", "https://shop.example.com"}

	tests := []struct {
		name        string
		allowed     []string
		method      string
		origin      string
		status      int
		allowOrigin string
		credentials string
	}{
		{"no origins configured", nil, http.MethodGet, "http://evil.test", http.StatusOK, "", ""},
		{"no origins configured preflight", nil, http.MethodOptions, "http://evil.test", http.StatusNoContent, "", ""},
		{"listed storefront", storefronts, http.MethodGet, "https://shop.example.com", http.StatusOK, "https://shop.example.com", "true"},
		{"unlisted origin", storefronts, http.MethodGet, "http://other.test", http.StatusOK, "", ""},
		{"listed preflight", storefronts, http.MethodOptions, "http://localhost:3000", http.StatusNoContent, "http://localhost:3000", "true"},
		{"wildcard never sends credentials", []string{"*"}, http.MethodGet, "http://any.test", http.StatusOK, "*", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(CORS(tt.allowed...), tt.method, "/api/v1/shipping/options", origin(tt.origin))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.allowOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.credentials, rec.Header().Get("Access-Control-Allow-Credentials"))
			if tt.allowOrigin != "" {
				assert.Equal(t, "43200", rec.Header().Get("Access-Control-Max-Age"))
				assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
				assert.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), "X-RateLimit-Remaining")
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	var seen, inContext string
	engine := gin.New()
	engine.Use(RequestID())
	engine.GET("/", func(c *gin.Context) {
		seen = c.GetString(RequestIDContextKey)
		inContext = logger.GetRequestID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name   string
		header string
		check  func(t *testing.T, id string)
	}{
		{"generated when absent", "", func(t *testing.T, id string) {
			assert.Len(t, id, 32)
		}},
		{"client value echoed", "checkout-7f3a", func(t *testing.T, id string) {
			assert.Equal(t, "checkout-7f3a", id)
		}},
		{"oversized value truncated", strings.Repeat("x", 4*MaxRequestIDLength), func(t *testing.T, id string) {
			assert.Len(t, id, MaxRequestIDLength)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("X-Request-ID", tt.header)
			}
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)

			tt.check(t, seen)
			assert.Equal(t, seen, inContext)
			assert.Equal(t, seen, rec.Header().Get("X-Request-ID"))
		})
	}

	assert.NotEqual(t, generateRequestID(), generateRequestID())
}

func TestSecure(t *testing.T) {
	const apiCSP = "default-src 'none'; frame-ancestors 'none'"

	hsts := DefaultSecurityConfig()
	hsts.HSTSEnabled = true

	tests := []struct {
		name string
		mw   gin.HandlerFunc
		path string
		csp  string
		sts  string
	}{
		{"api response", Secure(), "/api/v1/shipping/options", apiCSP, ""},
		{"swagger ui exempt from csp", Secure(), "/swagger/index.html", "", ""},
		{"hsts enabled", SecureWithConfig(hsts), "/api/v1/system/ping", apiCSP, "max-age=31536000; includeSubDomains"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := do(tt.mw, http.MethodGet, tt.path, nil).Header()

			assert.Equal(t, "DENY", h.Get("X-Frame-Options"))
			assert.Equal(t, "nosniff", h.Get("X-Content-Type-Options"))
			assert.Equal(t, "no-store", h.Get("Cache-Control"))
			assert.Equal(t, tt.csp, h.Get("Content-Security-Policy"))
			assert.Equal(t, tt.sts, h.Get("Strict-Transport-Security"))
		})
	}
}

func TestTimeout(t *testing.T) {
	for _, limit := range []time.Duration{30 * time.Second, 0} {
		t.Run(limit.String(), func(t *testing.T) {
			var deadline time.Time
			var bounded bool
			engine := gin.New()
			engine.Use(Timeout(limit))
			engine.GET("/", func(c *gin.Context) {
				deadline, bounded = c.Request.Context().Deadline()
			})
			engine.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

			if limit == 0 {
				assert.False(t, bounded)
				return
			}
			require.True(t, bounded)
			assert.WithinDuration(t, time.Now().Add(limit), deadline, 2*time.Second)
		})
	}
}
