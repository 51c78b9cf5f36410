package middleware

import (
	"net/http"
	"strings"

	"storefront-checkout/internal/handler/httperr"
	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/pkg/cookie"
	"storefront-checkout/internal/usecase/cartstore"
	"storefront-checkout/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	DeviceIDHeader       = "X-Device-ID"
	IdempotencyKeyHeader = "Idempotency-Key"
	ctxSessionKey        = "cart_session"
)

var errNoSession = httperr.Sentinel("device session missing")

// SessionMiddleware binds each request to its device session. Devices
// without an id get a fresh one, returned in both header and cookie.
type SessionMiddleware struct {
	registry  *cartstore.Registry
	observer  commands.IdentityObserver
	cookieCfg config.CookieConfig
}

func NewSessionMiddleware(registry *cartstore.Registry, observer commands.IdentityObserver, cfg config.Config) *SessionMiddleware {
	return &SessionMiddleware{
		registry:  registry,
		observer:  observer,
		cookieCfg: cfg.Cookie,
	}
}

// Attach must run after OptionalAuth so the sign-in edge is observed.
func (m *SessionMiddleware) Attach() gin.HandlerFunc {
	return func(c *gin.Context) {
		deviceID := resolveDeviceID(c)
		cookie.SetDeviceID(c, m.cookieCfg, deviceID)
		c.Header(DeviceIDHeader, deviceID)

		session := m.registry.Session(c.Request.Context(), deviceID)
		m.observer.Observe(c.Request.Context(), session, GetIdentity(c))

		c.Set(ctxSessionKey, session)
		c.Next()
	}
}

func resolveDeviceID(c *gin.Context) string {
	candidates := []string{c.GetHeader(DeviceIDHeader), cookie.GetDeviceID(c)}
	for _, raw := range candidates {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if id, err := uuid.Parse(raw); err == nil && id != uuid.Nil {
			return id.String()
		}
	}
	return uuid.NewString()
}

func GetSession(c *gin.Context) (*cartstore.Session, bool) {
	v, exists := c.Get(ctxSessionKey)
	if !exists {
		return nil, false
	}
	s, ok := v.(*cartstore.Session)
	return s, ok
}

// MustSession aborts with 500 when the route was mounted without Attach.
func MustSession(c *gin.Context) (*cartstore.Session, bool) {
	s, ok := GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoSession, "Internal server error", nil)
	}
	return s, ok
}
