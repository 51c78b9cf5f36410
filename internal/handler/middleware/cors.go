package middleware

import (
	"log/slog"
	"net/http"
	"slices"

	"storefront-checkout/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Browsers must be able to send and read back the device and attempt headers
// whatever the deployment configures.
var (
	requiredAllowHeaders  = []string{"Authorization", "Content-Type", DeviceIDHeader, IdempotencyKeyHeader}
	requiredExposeHeaders = []string{DeviceIDHeader, IdempotencyKeyHeader}
)

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     withRequired(cfg.AllowMethods, []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete}),
		AllowHeaders:     withRequired(cfg.AllowHeaders, requiredAllowHeaders),
		ExposeHeaders:    withRequired(cfg.ExposeHeaders, requiredExposeHeaders),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized",
		"allow_origins", corsCfg.AllowOrigins,
		"expose_headers", corsCfg.ExposeHeaders)
	return cors.New(corsCfg)
}

func withRequired(configured, required []string) []string {
	out := slices.Clone(configured)
	for _, h := range required {
		if !slices.ContainsFunc(out, func(v string) bool { return http.CanonicalHeaderKey(v) == http.CanonicalHeaderKey(h) }) {
			out = append(out, h)
		}
	}
	return out
}
