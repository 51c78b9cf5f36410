//go:build unit

package middleware_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"strings"
	"testing"

	"storefront-checkout/internal/handler/middleware"
	"storefront-checkout/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCORS_AlwaysAllowsCheckoutHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.NewCORSMiddleware(config.CORSConfig{
		AllowOrigins:  []string{"https://shop.test"},
		AllowMethods:  []string{http.MethodGet},
		AllowHeaders:  []string{"Accept"},
		ExposeHeaders: []string{"Content-Length"},
	}))
	router.POST("/api/checkout/orders", func(c *gin.Context) { c.Status(http.StatusCreated) })

	preflight := nethttptest.NewRequest(http.MethodOptions, "/api/checkout/orders", nil)
	preflight.Header.Set("Origin", "https://shop.test")
	preflight.Header.Set("Access-Control-Request-Method", http.MethodPost)
	preflight.Header.Set("Access-Control-Request-Headers", "idempotency-key,x-device-id")
	rec := nethttptest.NewRecorder()
	router.ServeHTTP(rec, preflight)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	allowed := strings.ToLower(rec.Header().Get("Access-Control-Allow-Headers"))
	assert.Contains(t, allowed, "idempotency-key")
	assert.Contains(t, allowed, "x-device-id")

	req := nethttptest.NewRequest(http.MethodPost, "/api/checkout/orders", nil)
	req.Header.Set("Origin", "https://shop.test")
	rec = nethttptest.NewRecorder()
	router.ServeHTTP(rec, req)

	exposed := strings.ToLower(rec.Header().Get("Access-Control-Expose-Headers"))
	assert.Contains(t, exposed, "x-device-id")
	assert.Contains(t, exposed, "idempotency-key")
}

func TestCORS_RejectsUnknownOrigin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.NewCORSMiddleware(config.CORSConfig{AllowOrigins: []string{"https://shop.test"}}))
	router.GET("/api/cart", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := nethttptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.Header.Set("Origin", "https://evil.test")
	rec := nethttptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
