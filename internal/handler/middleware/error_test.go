//go:build unit

package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"storefront-checkout/internal/handler/httperr"
	"storefront-checkout/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelopeBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail map[string]any `json:"detail"`
}

func serveErrorRoute(t *testing.T, h gin.HandlerFunc) (int, envelopeBody) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	router.GET("/boom", h)

	w := nethttptest.NewRecorder()
	router.ServeHTTP(w, nethttptest.NewRequest(http.MethodGet, "/boom", nil))

	var body envelopeBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return w.Code, body
}

func TestErrorHandler(t *testing.T) {
	t.Run("handler envelope is written as is", func(t *testing.T) {
		code, body := serveErrorRoute(t, func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusConflict, errors.New("sold out"), "Stock unavailable", gin.H{"lines": 1})
		})

		assert.Equal(t, http.StatusConflict, code)
		assert.Equal(t, "Stock unavailable", body.Error.Message)
		assert.EqualValues(t, 1, body.Detail["lines"])
	})

	t.Run("bare status gets a status text envelope", func(t *testing.T) {
		code, body := serveErrorRoute(t, func(c *gin.Context) {
			c.Status(http.StatusForbidden)
		})

		assert.Equal(t, http.StatusForbidden, code)
		assert.Equal(t, http.StatusText(http.StatusForbidden), body.Error.Message)
	})

	t.Run("silent handler becomes a 500", func(t *testing.T) {
		code, body := serveErrorRoute(t, func(c *gin.Context) {})

		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, http.StatusText(http.StatusInternalServerError), body.Error.Message)
	})
}

func TestCustomRecovery(t *testing.T) {
	code, body := serveErrorRoute(t, func(c *gin.Context) {
		panic("nil cart")
	})

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Internal server error", body.Error.Message)
}
