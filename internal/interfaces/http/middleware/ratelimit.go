package middleware

import (
	"math"
	"net/http"
	"strconv"

	"github.com/erp/shipping/internal/infrastructure/cache"
	"github.com/erp/shipping/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// RateLimit limits requests per API client, falling back to the client IP
// for unauthenticated requests. Place it after the JWT middleware.
func RateLimit(limiter cache.RateLimiter) gin.HandlerFunc {
	return RateLimitByKey(limiter, RateLimitKey)
}

// RateLimitKey keys authenticated callers by client id and others by IP
func RateLimitKey(c *gin.Context) string {
	if clientID := GetJWTClientID(c); clientID != "" {
		return "client:" + clientID
	}
	return "ip:" + c.ClientIP()
}

// RateLimitByKey returns a rate limiting middleware with custom key extractor.
// A nil limiter disables limiting.
func RateLimitByKey(limiter cache.RateLimiter, keyFunc func(*gin.Context) string) gin.HandlerFunc {
	if limiter == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	limit := strconv.Itoa(limiter.Limit())
	retryAfter := strconv.Itoa(int(math.Ceil(limiter.Window().Seconds())))

	return func(c *gin.Context) {
		allowed, remaining := limiter.Allow(c.Request.Context(), keyFunc(c))

		c.Header("X-RateLimit-Limit", limit)
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			c.Header("Retry-After", retryAfter)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeRateLimited,
				"Too many requests. Please try again later.",
				c.GetString(RequestIDContextKey),
			))
			return
		}

		c.Next()
	}
}
