package api

import (
	"errors"
	"net/http"

	"storefront-checkout/internal/domain/cart"
	"storefront-checkout/internal/domain/catalog"
	"storefront-checkout/internal/domain/coupon"
	"storefront-checkout/internal/domain/loyalty"
	"storefront-checkout/internal/domain/order"
	resdto "storefront-checkout/internal/handler/dto/response"
	"storefront-checkout/internal/handler/httperr"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/usecase/commands"
	"storefront-checkout/internal/usecase/queries"
	"storefront-checkout/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target error
	status int
	// empty uses the target's own message
	message string
}

// First match wins, so wrapped sentinels must come before the sentinels they mark.
var errorMappings = []errorMapping{
	{target: commands.ErrEmptyCart, status: http.StatusUnprocessableEntity},
	{target: commands.ErrLoginRequired, status: http.StatusUnauthorized},
	{target: commands.ErrIdempotencyKeyRequired, status: http.StatusBadRequest},
	{target: commands.ErrStockUnavailable, status: http.StatusConflict},
	{target: commands.ErrStockCheckFailed, status: http.StatusServiceUnavailable},
	{target: commands.ErrCartChanged, status: http.StatusConflict},
	{target: commands.ErrStaleSnapshot, status: http.StatusConflict},
	{target: commands.ErrRedemptionNotUsable, status: http.StatusUnprocessableEntity},
	{target: commands.ErrPaymentUnavailable, status: http.StatusServiceUnavailable},
	{target: commands.ErrAttemptCancelled, status: http.StatusConflict},
	{target: commands.ErrNoPendingPayment, status: http.StatusConflict},
	{target: commands.ErrUnknownItem, status: http.StatusUnprocessableEntity},
	{target: shared.ErrIdempotencyKeyConflict, status: http.StatusConflict},
	{target: shared.ErrOrderNotFound, status: http.StatusNotFound},
	{target: shared.ErrOrderNotPending, status: http.StatusConflict},
	{target: queries.ErrOrderNotFound, status: http.StatusNotFound},
	{target: queries.ErrInvalidCursor, status: http.StatusBadRequest},

	{target: coupon.ErrInvalidCoupon, status: http.StatusUnprocessableEntity},
	{target: coupon.ErrInvalidCouponCode, status: http.StatusUnprocessableEntity, message: coupon.ErrInvalidCoupon.Error()},
	{target: coupon.ErrInactiveCoupon, status: http.StatusUnprocessableEntity},
	{target: coupon.ErrNotYetValid, status: http.StatusUnprocessableEntity},
	{target: coupon.ErrExpired, status: http.StatusUnprocessableEntity},
	{target: coupon.ErrBelowMinimum, status: http.StatusUnprocessableEntity},
	{target: coupon.ErrUsageLimitReached, status: http.StatusUnprocessableEntity},
	{target: coupon.ErrLoginRequired, status: http.StatusUnprocessableEntity},
	{target: coupon.ErrNotFirstOrder, status: http.StatusUnprocessableEntity},
	{target: coupon.ErrPerUserLimitReached, status: http.StatusUnprocessableEntity},

	{target: loyalty.ErrInvalidAmount, status: http.StatusBadRequest},
	{target: loyalty.ErrInsufficientBalance, status: http.StatusUnprocessableEntity},

	{target: order.ErrInvalidAddress, status: http.StatusBadRequest},
	{target: order.ErrInvalidPaymentMethod, status: http.StatusBadRequest},
	{target: order.ErrGiftMessageTooLong, status: http.StatusBadRequest},
	{target: order.ErrAttemptClosed, status: http.StatusConflict},

	{target: cart.ErrInvalidQuantity, status: http.StatusBadRequest},
	{target: cart.ErrInvalidItem, status: http.StatusBadRequest},
	{target: catalog.ErrItemNotAvailable, status: http.StatusNotFound},
}

func lookupError(err error) (errorMapping, bool) {
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			if m.message == "" {
				m.message = m.target.Error()
			}
			return m, true
		}
	}
	return errorMapping{}, false
}

// userMessage is the text shown to shoppers for err; unknown errors are never echoed.
func userMessage(err error) string {
	if m, ok := lookupError(err); ok {
		return m.message
	}
	return "Something went wrong, please try again"
}

// abortWithUsecaseError maps use case errors to a status, a human-readable
// message and, where useful, structured detail.
func abortWithUsecaseError(c *gin.Context, err error) {
	m, ok := lookupError(err)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	var detail any
	var stockErr *commands.StockUnavailableError
	var addrErr *order.AddressError
	switch {
	case errors.As(err, &stockErr):
		detail = gin.H{"lines": resdto.FromStockResults(stockErr.Lines)}
	case errors.As(err, &addrErr):
		detail = gin.H{"missing": addrErr.Missing}
	}

	httperr.AbortWithError(c, m.status, err, m.message, detail)
}
