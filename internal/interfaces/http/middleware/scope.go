package middleware

import (
	"net/http"

	"github.com/erp/shipping/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScopeConfig holds configuration for scope middleware
type ScopeConfig struct {
	// Logger for middleware logging
	Logger *zap.Logger
	// OnDenied is called when the scope is missing (optional)
	OnDenied func(c *gin.Context, scope string)
}

// RequireScope creates middleware that requires the token to grant scope
func RequireScope(scope string) gin.HandlerFunc {
	return RequireScopeWithConfig(scope, ScopeConfig{})
}

// RequireScopeWithConfig creates scope middleware with custom config
func RequireScopeWithConfig(scope string, cfg ScopeConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetJWTClaims(c)
		if claims == nil {
			handleScopeDenied(c, cfg, scope, "No authentication claims found")
			return
		}

		if !claims.HasScope(scope) {
			handleScopeDenied(c, cfg, scope, "Client lacks required scope")
			return
		}

		c.Next()
	}
}

// StoreAllowed reports whether the authenticated client may act on storeID.
// Requests without claims (auth disabled) and unpinned clients are allowed.
func StoreAllowed(c *gin.Context, storeID string) bool {
	pinned := GetJWTStoreID(c)
	return pinned == "" || pinned == storeID
}

func handleScopeDenied(c *gin.Context, cfg ScopeConfig, scope string, reason string) {
	if cfg.OnDenied != nil {
		cfg.OnDenied(c, scope)
		return
	}

	if cfg.Logger != nil {
		var scopes []string
		if claims := GetJWTClaims(c); claims != nil {
			scopes = claims.Scopes
		}
		cfg.Logger.Warn("Scope denied",
			zap.String("reason", reason),
			zap.String("client_id", GetJWTClientID(c)),
			zap.String("required_scope", scope),
			zap.Strings("client_scopes", scopes),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)
	}

	abortWithError(c, http.StatusForbidden, dto.ErrCodeForbidden, "Access denied: insufficient scope")
}
