// Package handler holds the gin handlers of the shipping rates API.
package handler

import (
	"errors"
	"net/http"

	"github.com/erp/shipping/internal/domain/shared"
	"github.com/erp/shipping/internal/infrastructure/logger"
	"github.com/erp/shipping/internal/interfaces/http/dto"
	"github.com/erp/shipping/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BaseHandler writes the dto envelopes and parses the identifiers shared by
// every resource handler.
type BaseHandler struct{}

// getRequestID prefers the id assigned by the RequestID middleware.
func getRequestID(c *gin.Context) string {
	if id := c.GetString(middleware.RequestIDContextKey); id != "" {
		return id
	}
	return c.GetHeader("X-Request-ID")
}

func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// SuccessWithMeta adds pagination totals for list endpoints.
func (h *BaseHandler) SuccessWithMeta(c *gin.Context, data any, total int64, page, pageSize int) {
	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(data, total, page, pageSize))
}

func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error writes the error envelope tagged with the request id.
func (h *BaseHandler) Error(c *gin.Context, status int, code, message string) {
	c.JSON(status, dto.NewErrorResponseWithRequestID(code, message, getRequestID(c)))
}

// ErrorWithCode looks the status up from the code.
func (h *BaseHandler) ErrorWithCode(c *gin.Context, code, message string) {
	h.Error(c, dto.GetHTTPStatus(code), code, message)
}

func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	h.Error(c, http.StatusNotFound, dto.ErrCodeNotFound, message)
}

func (h *BaseHandler) Forbidden(c *gin.Context, code, message string) {
	h.Error(c, http.StatusForbidden, code, message)
}

func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, message)
}

func (h *BaseHandler) ServiceUnavailable(c *gin.Context, message string) {
	h.Error(c, http.StatusServiceUnavailable, dto.ErrCodeServiceUnavailable, message)
}

// bindJSON and bindQuery report false after writing the validation 400.
func (h *BaseHandler) bindJSON(c *gin.Context, req any) bool {
	return h.bound(c, c.ShouldBindJSON(req))
}

func (h *BaseHandler) bindQuery(c *gin.Context, req any) bool {
	return h.bound(c, c.ShouldBindQuery(req))
}

func (h *BaseHandler) bound(c *gin.Context, err error) bool {
	if err != nil {
		middleware.HandleValidationError(c, err)
		return false
	}
	return true
}

// pathID parses :id, answering 400 when it is not a UUID.
func (h *BaseHandler) pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid ID format")
		return uuid.Nil, false
	}
	return id, true
}

// queryID parses an optional UUID query parameter. Absent is uuid.Nil,
// which the matcher treats as a wildcard.
func (h *BaseHandler) queryID(c *gin.Context, name string) (uuid.UUID, bool) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return uuid.Nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		h.BadRequest(c, "Invalid "+name+" format")
		return uuid.Nil, false
	}
	return id, true
}

// resolveStore applies the caller's store pin. A request without a store
// inherits the pinned one; a different store is refused with 403.
func (h *BaseHandler) resolveStore(c *gin.Context, storeID *uuid.UUID) bool {
	pinned := middleware.GetJWTStoreID(c)
	if pinned == "" {
		return true
	}
	if *storeID == uuid.Nil {
		if id, err := uuid.Parse(pinned); err == nil {
			*storeID = id
			return true
		}
	}
	if !middleware.StoreAllowed(c, storeID.String()) {
		h.Forbidden(c, dto.ErrCodeStoreNotAllowed, "Client is not allowed to rate for this store")
		return false
	}
	return true
}

// HandleError maps domain errors onto their HTTP status. Anything else is
// logged and hidden behind a 500.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	switch {
	case err == nil:
		return
	case errors.As(err, &domainErr):
		h.ErrorWithCode(c, dto.NormalizeErrorCode(domainErr.Code), domainErr.Message)
	default:
		logger.GetGinLogger(c).Error("Request failed", zap.Error(err))
		h.InternalError(c, "An unexpected error occurred")
	}
}
