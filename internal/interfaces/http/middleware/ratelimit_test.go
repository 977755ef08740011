package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/erp/shipping/internal/infrastructure/cache"
	"github.com/erp/shipping/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T, limit int) *cache.InMemoryRateLimiter {
	t.Helper()
	rl := cache.NewInMemoryRateLimiter(limit, time.Minute)
	t.Cleanup(func() { _ = rl.Close() })
	return rl
}

func TestRateLimit(t *testing.T) {
	t.Run("limits by ip", func(t *testing.T) {
		router := gin.New()
		router.Use(RequestID(), RateLimit(newTestLimiter(t, 2)))
		router.GET("/test", okHandler)

		for i := 0; i < 2; i++ {
			w := serve(router, "/test", "")
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
		}

		w := serve(router, "/test", "")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "60", w.Header().Get("Retry-After"))
		assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
		assert.Equal(t, dto.ErrCodeRateLimited, errorCode(t, w))
	})

	t.Run("remaining counts down", func(t *testing.T) {
		router := gin.New()
		router.Use(RateLimit(newTestLimiter(t, 3)))
		router.GET("/test", okHandler)

		assert.Equal(t, "2", serve(router, "/test", "").Header().Get("X-RateLimit-Remaining"))
		assert.Equal(t, "1", serve(router, "/test", "").Header().Get("X-RateLimit-Remaining"))
	})

	t.Run("authenticated clients have their own budget", func(t *testing.T) {
		svc := newTestJWTService()
		router := gin.New()
		router.Use(JWTAuthMiddleware(svc), RateLimit(newTestLimiter(t, 1)))
		router.GET("/test", okHandler)

		token := "Bearer " + newTestToken(t, svc, uuid.Nil)
		assert.Equal(t, http.StatusOK, serve(router, "/test", token).Code)
		assert.Equal(t, http.StatusTooManyRequests, serve(router, "/test", token).Code)
	})

	t.Run("nil limiter disables", func(t *testing.T) {
		router := gin.New()
		router.Use(RateLimit(nil))
		router.GET("/test", okHandler)

		for i := 0; i < 5; i++ {
			assert.Equal(t, http.StatusOK, serve(router, "/test", "").Code)
		}
	})
}

func TestRateLimitKey(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	c.Request.RemoteAddr = "10.0.0.7:5123"

	assert.Equal(t, "ip:10.0.0.7", RateLimitKey(c))

	c.Set(JWTClientIDKey, "checkout")
	assert.Equal(t, "client:checkout", RateLimitKey(c))
}

func TestRateLimitByKey(t *testing.T) {
	router := gin.New()
	router.Use(RateLimitByKey(newTestLimiter(t, 1), func(c *gin.Context) string {
		return c.GetHeader("X-Store-ID")
	}))
	router.GET("/test", okHandler)

	send := func(store string) int {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("X-Store-ID", store)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send("a"))
	assert.Equal(t, http.StatusOK, send("b"))
	assert.Equal(t, http.StatusTooManyRequests, send("a"))
}
