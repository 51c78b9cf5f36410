//go:build unit

package middleware_test

import (
	"context"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"storefront-checkout/internal/domain/cart"
	"storefront-checkout/internal/handler/middleware"
	"storefront-checkout/internal/pkg/clock"
	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/pkg/cookie"
	"storefront-checkout/internal/usecase"
	"storefront-checkout/internal/usecase/cartstore"
	"storefront-checkout/internal/usecase/shared"
	"storefront-checkout/tests/common/authtest"
	"storefront-checkout/tests/common/httptest"
	commandsmock "storefront-checkout/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type emptyStorage struct{}

func (emptyStorage) LoadCart(context.Context, string) (shared.LocalCart, error) {
	return shared.LocalCart{}, nil
}
func (emptyStorage) SetCart(context.Context, string, []cart.Line) error { return nil }
func (emptyStorage) ClearCart(context.Context, string) error { return nil }
func (emptyStorage) SetIdentity(context.Context, string, *uuid.UUID) error { return nil }

func newSessionRouter(t *testing.T, observer *commandsmock.MockIdentityObserver) (*gin.Engine, *authtest.JWTHelper) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig()
	registry := cartstore.NewRegistry(emptyStorage{}, clock.NewMockClock(time.Now()), cfg)
	tokens := authtest.NewJWTHelper(cfg.JWT)
	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(tokens.Service(t)))
	sessions := middleware.NewSessionMiddleware(registry, observer, cfg)

	router := gin.New()
	router.GET("/whoami", auth.OptionalAuth(), sessions.Attach(), func(c *gin.Context) {
		session, ok := middleware.GetSession(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"device": session.DeviceID()})
	})
	router.GET("/bare", func(c *gin.Context) {
		if _, ok := middleware.MustSession(c); ok {
			c.Status(http.StatusOK)
		}
	})
	return router, tokens
}

func TestSessionMiddleware_DeviceResolution(t *testing.T) {
	ctrl := gomock.NewController(t)
	observer := commandsmock.NewMockIdentityObserver(ctrl)
	observer.EXPECT().Observe(gomock.Any(), gomock.Any(), nil).Return(false).AnyTimes()
	router, _ := newSessionRouter(t, observer)

	headerID := uuid.NewString()
	cookieID := uuid.NewString()

	tests := []struct {
		name    string
		header  string
		cookie  string
		want    string
		reissue bool
	}{
		{name: "header wins", header: headerID, cookie: cookieID, want: headerID},
		{name: "cookie fallback", cookie: cookieID, want: cookieID},
		{name: "malformed header falls back to cookie", header: "device-1", cookie: cookieID, want: cookieID},
		{name: "nil uuid is reissued", header: uuid.Nil.String(), reissue: true},
		{name: "nothing presented", reissue: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := map[string]string{}
			if tt.header != "" {
				headers[middleware.DeviceIDHeader] = tt.header
			}
			var cookies []*http.Cookie
			if tt.cookie != "" {
				cookies = append(cookies, &http.Cookie{Name: cookie.DeviceIDCookieName, Value: tt.cookie})
			}

			rec := performWithCookies(t, router, "/whoami", headers, cookies)
			require.Equal(t, http.StatusOK, rec.Code)

			got := rec.Header().Get(middleware.DeviceIDHeader)
			if tt.reissue {
				parsed, err := uuid.Parse(got)
				require.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, parsed)
			} else {
				assert.Equal(t, tt.want, got)
			}
			issued := httptest.ExtractCookie(rec, cookie.DeviceIDCookieName)
			require.NotNil(t, issued)
			assert.Equal(t, got, issued.Value)
		})
	}
}

func TestSessionMiddleware_ObservesIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	observer := commandsmock.NewMockIdentityObserver(ctrl)
	router, tokens := newSessionRouter(t, observer)

	identity := uuid.New()
	deviceID := uuid.NewString()
	observer.EXPECT().Observe(gomock.Any(), gomock.Any(), &identity).
		DoAndReturn(func(_ context.Context, s *cartstore.Session, _ *uuid.UUID) bool {
			assert.Equal(t, deviceID, s.DeviceID())
			return true
		}).Times(1)

	rec := httptest.PerformRequestWithHeaders(t, router, http.MethodGet, "/whoami", nil,
		map[string]string{middleware.DeviceIDHeader: deviceID}, tokens.GenerateToken(t, identity))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionMiddleware_MissingSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, _ := newSessionRouter(t, commandsmock.NewMockIdentityObserver(ctrl))

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/bare", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
}

func performWithCookies(t *testing.T, router *gin.Engine, path string, headers map[string]string, cookies []*http.Cookie) *nethttptest.ResponseRecorder {
	t.Helper()
	req := nethttptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := nethttptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
