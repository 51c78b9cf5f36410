package httperr

import (
	"github.com/gin-gonic/gin"

	"storefront-checkout/internal/pkg/errs"
)

type Message struct {
	Message string `json:"message"`
}

// Response is the error body every endpoint returns.
type Response struct {
	Status int     `json:"-"`
	Error  Message `json:"error"`
	Detail any     `json:"detail,omitempty"`
}

func New(status int, msg string, detail any) Response {
	return Response{Status: status, Error: Message{Message: msg}, Detail: detail}
}

// Sentinel builds an error for failures detected in the handler layer itself.
func Sentinel(msg string) error {
	return errs.New(msg)
}

// AbortWithError records err on the context for the request log and writes the
// envelope. The stored error keeps its stack; the client sees only msg and detail.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}
	resp := New(status, msg, detail)

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Last returns the most recent envelope recorded by AbortWithError.
func Last(c *gin.Context) (Response, bool) {
	for i := len(c.Errors) - 1; i >= 0; i-- {
		if !c.Errors[i].IsType(gin.ErrorTypePublic) {
			continue
		}
		if resp, ok := c.Errors[i].Meta.(Response); ok {
			return resp, true
		}
	}
	return Response{}, false
}
