//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"storefront-checkout/internal/handler/api"
	"storefront-checkout/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ok := pingFunc(func(context.Context) error { return nil })
	down := pingFunc(func(context.Context) error { return errors.New("dial tcp: connection refused") })

	tests := []struct {
		name       string
		deps       map[string]api.Pinger
		path       string
		wantStatus int
	}{
		{name: "live ignores dependencies", deps: map[string]api.Pinger{"database": down}, path: "/health", wantStatus: http.StatusOK},
		{name: "ready when all respond", deps: map[string]api.Pinger{"database": ok, "redis": ok}, path: "/ready", wantStatus: http.StatusOK},
		{name: "not ready when one fails", deps: map[string]api.Pinger{"database": ok, "redis": down}, path: "/ready", wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := api.NewHealthHandler(tt.deps)
			router := gin.New()
			router.GET("/health", h.Live)
			router.GET("/ready", h.Ready)

			rec := httptest.PerformRequest(t, router, http.MethodGet, tt.path, nil, "")
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}
