package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"storefront-checkout/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler writes the envelope for handlers that recorded a public error
// without responding, and gives bare status codes (unknown routes, aborted
// middleware) the same envelope.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		if resp, ok := httperr.Last(c); ok {
			c.JSON(resp.Status, resp)
			return
		}

		status := c.Writer.Status()
		if status == http.StatusOK {
			status = http.StatusInternalServerError
		}
		c.JSON(status, httperr.New(status, http.StatusText(status), nil))
	}
}

// CustomRecovery turns a panic into a 500 carrying the request id the shopper
// can quote to support.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				requestID := GetRequestID(c)
				slog.Error("recovered from panic",
					"error", rec,
					"path", c.Request.URL.Path,
					"request_id", requestID,
					"stack", string(debug.Stack()))

				var detail any
				if requestID != "" {
					detail = gin.H{"requestId": requestID}
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					httperr.New(http.StatusInternalServerError, "Internal server error", detail))
			}
		}()
		c.Next()
	}
}
