package middleware

import (
	"errors"
	"net/http"

	"github.com/erp/shipping/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

const bodyTooLargeMessage = "Request body exceeds maximum allowed size"

// BodyLimit rejects requests whose declared Content-Length exceeds maxBytes and
// caps streamed bodies with http.MaxBytesReader. A non-positive limit disables it.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes <= 0 || c.Request.Body == nil {
			c.Next()
			return
		}
		if c.Request.ContentLength > maxBytes {
			abortTooLarge(c)
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// IsBodyTooLarge reports whether err came from reading past the BodyLimit cap
func IsBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

func abortTooLarge(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge,
		dto.NewErrorResponseWithRequestID(dto.ErrCodeRequestTooLarge, bodyTooLargeMessage, c.GetString(RequestIDContextKey)))
}
