package cookie

import (
	"net/http"

	"storefront-checkout/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName = "access_token"
	DeviceIDCookieName    = "device_id"
)

func SetDeviceID(c *gin.Context, cfg config.CookieConfig, deviceID string) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		DeviceIDCookieName,
		deviceID,
		int(cfg.DeviceMaxAge.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func GetDeviceID(c *gin.Context) string {
	id, _ := c.Cookie(DeviceIDCookieName)
	return id
}

// access tokens are minted elsewhere; this service only reads them
func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
