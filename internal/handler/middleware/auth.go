package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"storefront-checkout/internal/handler/httperr"
	"storefront-checkout/internal/pkg/cookie"
	"storefront-checkout/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxIdentityKey = "identity"

var errUnauthenticated = httperr.Sentinel("authentication required")

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// OptionalAuth resolves the identity when a valid token is present. A missing
// or invalid token leaves the request signed out.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		identity, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Debug("Ignoring invalid access token", "error", err.Error())
			c.Next()
			return
		}

		c.Set(ctxIdentityKey, identity)
		c.Next()
	}
}

// RequireAuth must run after OptionalAuth.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetIdentity(c) == nil {
			httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Sign in required", nil)
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

// GetIdentity returns nil for signed-out requests.
func GetIdentity(c *gin.Context) *uuid.UUID {
	v, exists := c.Get(ctxIdentityKey)
	if !exists {
		return nil
	}
	id, ok := v.(uuid.UUID)
	if !ok || id == uuid.Nil {
		return nil
	}
	return &id
}
