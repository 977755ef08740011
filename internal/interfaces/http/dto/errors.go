package dto

import (
	"net/http"
	"strings"
)

// API error codes, ERR_<DESCRIPTION>. Domain errors carry their own codes
// and are translated with NormalizeErrorCode before they are written.
const (
	ErrCodeInternal           = "ERR_INTERNAL"
	ErrCodeServiceUnavailable = "ERR_SERVICE_UNAVAILABLE"

	ErrCodeValidation      = "ERR_VALIDATION"
	ErrCodeBadRequest      = "ERR_BAD_REQUEST"
	ErrCodeInvalidInput    = "ERR_INVALID_INPUT"
	ErrCodeInvalidJSON     = "ERR_INVALID_JSON"
	ErrCodeRequestTooLarge = "ERR_REQUEST_TOO_LARGE"

	ErrCodeUnauthorized    = "ERR_UNAUTHORIZED"
	ErrCodeTokenExpired    = "ERR_TOKEN_EXPIRED"
	ErrCodeTokenInvalid    = "ERR_TOKEN_INVALID"
	ErrCodeForbidden       = "ERR_FORBIDDEN"
	ErrCodeStoreNotAllowed = "ERR_STORE_NOT_ALLOWED"
	ErrCodeRateLimited     = "ERR_RATE_LIMITED"

	ErrCodeNotFound      = "ERR_NOT_FOUND"
	ErrCodeAlreadyExists = "ERR_ALREADY_EXISTS"
	ErrCodeInvalidState  = "ERR_INVALID_STATE"
)

var codeStatus = map[string]int{
	ErrCodeInternal:           http.StatusInternalServerError,
	ErrCodeServiceUnavailable: http.StatusServiceUnavailable,

	ErrCodeValidation:      http.StatusBadRequest,
	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeInvalidInput:    http.StatusBadRequest,
	ErrCodeInvalidJSON:     http.StatusBadRequest,
	ErrCodeRequestTooLarge: http.StatusRequestEntityTooLarge,

	ErrCodeUnauthorized:    http.StatusUnauthorized,
	ErrCodeTokenExpired:    http.StatusUnauthorized,
	ErrCodeTokenInvalid:    http.StatusUnauthorized,
	ErrCodeForbidden:       http.StatusForbidden,
	ErrCodeStoreNotAllowed: http.StatusForbidden,
	ErrCodeRateLimited:     http.StatusTooManyRequests,

	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,
	ErrCodeInvalidState:  http.StatusUnprocessableEntity,
}

// generic domain codes from the shared package
var domainCodes = map[string]string{
	"NOT_FOUND":      ErrCodeNotFound,
	"ALREADY_EXISTS": ErrCodeAlreadyExists,
	"INVALID_INPUT":  ErrCodeInvalidInput,
	"INVALID_STATE":  ErrCodeInvalidState,
}

// GetHTTPStatus returns the status for an API or domain error code.
// Domain validation codes (INVALID_*, UNKNOWN_*) are 400; anything else
// unknown is a 500.
func GetHTTPStatus(code string) int {
	if status, ok := codeStatus[NormalizeErrorCode(code)]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") || strings.HasPrefix(code, "UNKNOWN_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// NormalizeErrorCode maps the generic domain codes onto API codes.
// Specific domain codes such as INVALID_WEIGHT_BAND pass through.
func NormalizeErrorCode(code string) string {
	if apiCode, ok := domainCodes[code]; ok {
		return apiCode
	}
	return code
}
