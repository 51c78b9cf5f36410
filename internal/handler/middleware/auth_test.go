//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"storefront-checkout/internal/handler/middleware"
	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/pkg/cookie"
	"storefront-checkout/internal/usecase"
	"storefront-checkout/tests/common/authtest"
	"storefront-checkout/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig()
	tokens := authtest.NewJWTHelper(cfg.JWT)
	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(tokens.Service(t)))

	router := gin.New()
	echo := func(c *gin.Context) {
		identity := middleware.GetIdentity(c)
		if identity == nil {
			c.JSON(http.StatusOK, gin.H{"identity": ""})
			return
		}
		c.JSON(http.StatusOK, gin.H{"identity": identity.String()})
	}
	router.GET("/optional", auth.OptionalAuth(), echo)
	router.GET("/required", auth.OptionalAuth(), auth.RequireAuth(), echo)

	identity := uuid.New()
	valid := tokens.GenerateToken(t, identity)
	foreign := tokens.CreateForeignToken(t, identity)

	tests := []struct {
		name         string
		path         string
		token        string
		viaCookie    bool
		wantStatus   int
		wantIdentity string
	}{
		{name: "optional: anonymous", path: "/optional", wantStatus: http.StatusOK},
		{name: "optional: bearer token", path: "/optional", token: valid, wantStatus: http.StatusOK, wantIdentity: identity.String()},
		{name: "optional: cookie token", path: "/optional", token: valid, viaCookie: true, wantStatus: http.StatusOK, wantIdentity: identity.String()},
		{name: "optional: foreign signature is anonymous", path: "/optional", token: foreign, wantStatus: http.StatusOK},
		{name: "required: anonymous", path: "/required", wantStatus: http.StatusUnauthorized},
		{name: "required: foreign signature", path: "/required", token: foreign, wantStatus: http.StatusUnauthorized},
		{name: "required: valid", path: "/required", token: valid, wantStatus: http.StatusOK, wantIdentity: identity.String()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := tt.token
			var cookies []*http.Cookie
			if tt.viaCookie {
				cookies = []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: tt.token}}
				token = ""
			}
			rec := httptest.PerformRequestWithCookies(t, router, http.MethodGet, tt.path, nil, cookies, token)

			if tt.wantStatus != http.StatusOK {
				httptest.AssertErrorResponse(t, rec, tt.wantStatus, "Sign in required")
				return
			}
			var body map[string]string
			httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
			assert.Equal(t, tt.wantIdentity, body["identity"])
		})
	}
}
