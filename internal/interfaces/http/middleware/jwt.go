package middleware

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/erp/shipping/internal/infrastructure/auth"
	"github.com/erp/shipping/internal/infrastructure/logger"
	"github.com/erp/shipping/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Context keys populated after a bearer token validates.
const (
	JWTClaimsKey   = "jwt_claims"
	JWTClientIDKey = "jwt_client_id"
	JWTStoreIDKey  = "jwt_store_id"
	AuthHeaderKey  = "Authorization"
	BearerPrefix   = "Bearer "
)

// JWTMiddlewareConfig configures bearer authentication of API clients.
type JWTMiddlewareConfig struct {
	JWTService *auth.JWTService
	// SkipPaths are matched exactly, SkipPathPrefixes by prefix
	SkipPaths        []string
	SkipPathPrefixes []string
	// OnError replaces the default 401 envelope
	OnError func(c *gin.Context, err error)
	Logger  *zap.Logger
}

// DefaultJWTConfig leaves probes, ping and the swagger UI open.
func DefaultJWTConfig(jwtService *auth.JWTService) JWTMiddlewareConfig {
	return JWTMiddlewareConfig{
		JWTService:       jwtService,
		SkipPaths:        []string{"/health", "/metrics", "/api/v1/system/ping"},
		SkipPathPrefixes: []string{"/swagger"},
	}
}

// JWTAuthMiddleware authenticates with DefaultJWTConfig.
func JWTAuthMiddleware(jwtService *auth.JWTService) gin.HandlerFunc {
	return JWTAuthMiddlewareWithConfig(DefaultJWTConfig(jwtService))
}

// JWTAuthMiddlewareWithConfig validates the bearer token and stores the
// client id, pinned store and claims on the gin and request contexts.
func JWTAuthMiddlewareWithConfig(cfg JWTMiddlewareConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.skips(c.Request.URL.Path) {
			c.Next()
			return
		}

		token, reason := bearerToken(c.GetHeader(AuthHeaderKey))
		if reason != "" {
			cfg.reject(c, auth.ErrInvalidToken, reason)
			return
		}
		claims, err := cfg.JWTService.ValidateToken(token)
		if err != nil {
			cfg.reject(c, err, "token validation failed")
			return
		}

		c.Set(JWTClaimsKey, claims)
		c.Set(JWTClientIDKey, claims.ClientID)
		c.Set(JWTStoreIDKey, claims.StoreID)
		c.Request = c.Request.WithContext(logger.WithClientID(c.Request.Context(), claims.ClientID))

		if cfg.Logger != nil {
			cfg.Logger.Debug("API client authenticated",
				zap.String("client_id", claims.ClientID),
				zap.String("store_id", claims.StoreID),
				zap.Strings("scopes", claims.Scopes),
			)
		}
		c.Next()
	}
}

func (cfg JWTMiddlewareConfig) skips(path string) bool {
	return slices.Contains(cfg.SkipPaths, path) || hasAnyPrefix(path, cfg.SkipPathPrefixes)
}

// bearerToken returns the token, or a reason it could not be extracted.
func bearerToken(header string) (string, string) {
	switch {
	case header == "":
		return "", "missing authorization header"
	case !strings.HasPrefix(header, BearerPrefix):
		return "", "authorization header is not a bearer token"
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, BearerPrefix))
	if token == "" {
		return "", "empty bearer token"
	}
	return token, ""
}

var tokenRejections = []struct {
	err     error
	code    string
	message string
}{
	{auth.ErrExpiredToken, dto.ErrCodeTokenExpired, "Token has expired"},
	{auth.ErrTokenNotYetValid, dto.ErrCodeTokenInvalid, "Token is not yet valid"},
	{auth.ErrInvalidClaims, dto.ErrCodeTokenInvalid, "Invalid token claims"},
	{auth.ErrMissingClientID, dto.ErrCodeTokenInvalid, "Invalid token claims"},
	{auth.ErrInvalidToken, dto.ErrCodeTokenInvalid, "Invalid token"},
}

func (cfg JWTMiddlewareConfig) reject(c *gin.Context, err error, reason string) {
	if cfg.OnError != nil {
		cfg.OnError(c, err)
		return
	}
	if cfg.Logger != nil {
		cfg.Logger.Warn("JWT authentication failed",
			zap.Error(err),
			zap.String("reason", reason),
			zap.String("path", c.Request.URL.Path),
		)
	}

	code, message := dto.ErrCodeUnauthorized, "Authentication required"
	for _, r := range tokenRejections {
		if errors.Is(err, r.err) {
			code, message = r.code, r.message
			break
		}
	}
	abortWithError(c, http.StatusUnauthorized, code, message)
}

// GetJWTClaims returns the validated claims, or nil on unauthenticated routes.
func GetJWTClaims(c *gin.Context) *auth.Claims {
	v, _ := c.Get(JWTClaimsKey)
	claims, _ := v.(*auth.Claims)
	return claims
}

func GetJWTClientID(c *gin.Context) string {
	return c.GetString(JWTClientIDKey)
}

// GetJWTStoreID returns the store the client is pinned to. Empty means any store.
func GetJWTStoreID(c *gin.Context) string {
	return c.GetString(JWTStoreIDKey)
}
