//go:build unit

package api_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"storefront-checkout/internal/domain/cart"
	"storefront-checkout/internal/handler/middleware"
	"storefront-checkout/internal/pkg/clock"
	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/usecase"
	"storefront-checkout/internal/usecase/cartstore"
	"storefront-checkout/internal/usecase/shared"
	"storefront-checkout/tests/common/authtest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// memoryCarts keeps device carts in process so background writes never outlive a mock controller.
type memoryCarts struct {
	mu    sync.Mutex
	carts map[string][]cart.Line
}

func (m *memoryCarts) LoadCart(_ context.Context, deviceID string) (shared.LocalCart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return shared.LocalCart{Lines: m.carts[deviceID]}, nil
}

func (m *memoryCarts) SetIdentity(context.Context, string, *uuid.UUID) error { return nil }

func (m *memoryCarts) SetCart(_ context.Context, deviceID string, lines []cart.Line) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.carts[deviceID] = lines
	return nil
}

func (m *memoryCarts) ClearCart(_ context.Context, deviceID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, deviceID)
	return nil
}

type noopObserver struct{}

func (noopObserver) Observe(context.Context, *cartstore.Session, *uuid.UUID) bool { return false }

// apiFixture mounts handlers behind the real auth and session middleware.
type apiFixture struct {
	router   *gin.Engine
	api      *gin.RouterGroup
	auth     *middleware.AuthMiddleware
	registry *cartstore.Registry
	tokens   *authtest.JWTHelper
	clock    *clock.MockClock
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	clk := clock.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	registry := cartstore.NewRegistry(&memoryCarts{carts: map[string][]cart.Line{}}, clk, cfg)
	t.Cleanup(registry.Wait)

	tokens := authtest.NewJWTHelper(cfg.JWT)
	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(tokens.Service(t)))
	sessions := middleware.NewSessionMiddleware(registry, noopObserver{}, cfg)

	router := gin.New()
	group := router.Group("/api", auth.OptionalAuth(), sessions.Attach())

	return &apiFixture{
		router:   router,
		api:      group,
		auth:     auth,
		registry: registry,
		tokens:   tokens,
		clock:    clk,
	}
}

// session returns a device session primed before the request under test.
func (f *apiFixture) session(t *testing.T) (string, *cartstore.Session) {
	t.Helper()
	deviceID := uuid.NewString()
	return deviceID, f.registry.Session(context.Background(), deviceID)
}

func deviceHeaders(deviceID string) map[string]string {
	return map[string]string{middleware.DeviceIDHeader: deviceID}
}
