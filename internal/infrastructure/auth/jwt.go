package auth

import (
	"errors"
	"slices"
	"time"

	"github.com/erp/shipping/internal/infrastructure/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Scopes granted to API clients
const (
	// ScopeRate allows quoting shipping options and fixed rates
	ScopeRate = "shipping:rate"
	// ScopeAdmin allows managing carriers, methods, rate records and settings
	ScopeAdmin = "shipping:admin"
)

// Common errors
var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrInvalidClaims    = errors.New("invalid token claims")
	ErrTokenNotYetValid = errors.New("token is not yet valid")
	ErrMissingClientID  = errors.New("missing client_id in claims")
	ErrMissingSecret    = errors.New("signing secret is empty")
)

// Claims identifies the calling client. StoreID, when set, pins the client
// to a single store's rate records.
type Claims struct {
	jwt.RegisteredClaims
	ClientID string   `json:"client_id"`
	StoreID  string   `json:"store_id,omitempty"`
	Scopes   []string `json:"scopes,omitempty"`
}

// JWTService signs and validates API client tokens
type JWTService struct {
	secret     []byte
	issuer     string
	expiration time.Duration
}

// NewJWTService creates a new JWT service
func NewJWTService(cfg config.AuthConfig) *JWTService {
	return &JWTService{
		secret:     []byte(cfg.Secret),
		issuer:     cfg.Issuer,
		expiration: cfg.TokenExpiration,
	}
}

// GenerateTokenInput contains input for token generation
type GenerateTokenInput struct {
	ClientID string
	StoreID  uuid.UUID
	Scopes   []string
	// TTL overrides the configured expiration when positive
	TTL time.Duration
}

// IssuedToken is a signed token with its expiry
type IssuedToken struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	TokenType string    `json:"token_type"` // Bearer
}

// GenerateToken signs a token for an API client
func (s *JWTService) GenerateToken(input GenerateTokenInput) (*IssuedToken, error) {
	if len(s.secret) == 0 {
		return nil, ErrMissingSecret
	}
	if input.ClientID == "" {
		return nil, ErrMissingClientID
	}

	ttl := s.expiration
	if input.TTL > 0 {
		ttl = input.TTL
	}
	now := time.Now()

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    s.issuer,
			Subject:   input.ClientID,
			Audience:  jwt.ClaimStrings{s.issuer},
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		ClientID: input.ClientID,
		Scopes:   input.Scopes,
	}
	if input.StoreID != uuid.Nil {
		claims.StoreID = input.StoreID.String()
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, err
	}

	return &IssuedToken{
		Token:     token,
		ExpiresAt: now.Add(ttl),
		TokenType: "Bearer",
	}, nil
}

// ValidateToken validates a token and returns its claims
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithAudience(s.issuer))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		if errors.Is(err, jwt.ErrTokenNotValidYet) {
			return nil, ErrTokenNotYetValid
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidClaims
	}
	if claims.ClientID == "" {
		return nil, ErrMissingClientID
	}
	if claims.StoreID != "" {
		if _, err := uuid.Parse(claims.StoreID); err != nil {
			return nil, ErrInvalidClaims
		}
	}

	return claims, nil
}

// GetStoreUUID returns the pinned store, or uuid.Nil for an unrestricted client
func (c *Claims) GetStoreUUID() uuid.UUID {
	if c.StoreID == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(c.StoreID)
	if err != nil {
		return uuid.Nil
	}
	return id
}

// HasScope checks if the claims grant a scope. ScopeAdmin implies every scope.
func (c *Claims) HasScope(scope string) bool {
	return slices.Contains(c.Scopes, scope) || slices.Contains(c.Scopes, ScopeAdmin)
}

// GetExpiresAtTime returns the token's expiration time as time.Time
func (c *Claims) GetExpiresAtTime() time.Time {
	if c.ExpiresAt != nil {
		return c.ExpiresAt.Time
	}
	return time.Time{}
}

// GetExpiration returns the configured token lifetime
func (s *JWTService) GetExpiration() time.Duration {
	return s.expiration
}
