package response

import (
	"storefront-checkout/internal/domain/order"
	"storefront-checkout/internal/pkg/money"
	"storefront-checkout/internal/usecase/commands"

	"github.com/google/uuid"
)

type TotalsResponse struct {
	Subtotal        string `json:"subtotal"`
	CouponDiscount  string `json:"couponDiscount"`
	LoyaltyDiscount string `json:"loyaltyDiscount"`
	Payable         string `json:"payable"`
	ShippingWaived  bool   `json:"shippingWaived"`
}

// CheckError is the human-readable outcome of one failed preview check.
type CheckError struct {
	Message string `json:"message"`
}

type PreviewResponse struct {
	Version     uint64                    `json:"version"`
	Lines       []CartLineResponse        `json:"lines"`
	Stock       []StockResultResponse     `json:"stock"`
	StockError  *CheckError               `json:"stockError,omitempty"`
	Coupon      *CouponEvaluationResponse `json:"coupon,omitempty"`
	CouponError *CheckError               `json:"couponError,omitempty"`
	// loyalty redemption problems are reported but do not block submission
	LoyaltyError *CheckError    `json:"loyaltyError,omitempty"`
	Totals       TotalsResponse `json:"totals"`
	CanSubmit    bool           `json:"canSubmit"`
}

type AttemptResponse struct {
	IdempotencyKey uuid.UUID `json:"idempotencyKey"`
	State          string    `json:"state"`
	OrderNumber    string    `json:"orderNumber,omitempty"`
}

type PlaceOrderResponse struct {
	OrderID        uuid.UUID                 `json:"orderId"`
	OrderNumber    string                    `json:"orderNumber"`
	Status         string                    `json:"status"`
	PaymentMethod  string                    `json:"paymentMethod"`
	Totals         TotalsResponse            `json:"totals"`
	Coupon         *CouponEvaluationResponse `json:"coupon,omitempty"`
	RedirectURL    string                    `json:"redirectUrl,omitempty"`
	IdempotencyKey uuid.UUID                 `json:"idempotencyKey"`
	Replayed       bool                      `json:"replayed"`
	Confirmed      bool                      `json:"confirmed"`
}

type PaymentReturnResponse struct {
	OrderNumber string `json:"orderNumber"`
	Status      string `json:"status"`
	CartCleared bool   `json:"cartCleared"`
}

func FromTotals(t order.Totals) TotalsResponse {
	return TotalsResponse{
		Subtotal:        money.Format(t.Subtotal),
		CouponDiscount:  money.Format(t.CouponDiscount),
		LoyaltyDiscount: money.Format(t.LoyaltyDiscount),
		Payable:         money.Format(t.Payable),
		ShippingWaived:  t.ShippingWaived,
	}
}

func checkError(err error, message func(error) string) *CheckError {
	if err == nil {
		return nil
	}
	return &CheckError{Message: message(err)}
}

// FromPreview needs a message function so backend errors are never echoed verbatim.
func FromPreview(r *commands.PreviewResult, message func(error) string) *PreviewResponse {
	return &PreviewResponse{
		Version:      r.Version,
		Lines:        FromCartLines(r.Lines),
		Stock:        FromStockResults(r.Stock),
		StockError:   checkError(r.StockError, message),
		Coupon:       FromCouponEvaluation(r.Coupon),
		CouponError:  checkError(r.CouponError, message),
		LoyaltyError: checkError(r.LoyaltyError, message),
		Totals:       FromTotals(r.Totals),
		CanSubmit:    r.CanSubmit(),
	}
}

func FromAttempt(a *order.Attempt) *AttemptResponse {
	return &AttemptResponse{
		IdempotencyKey: a.Key(),
		State:          string(a.State()),
		OrderNumber:    a.OrderNumber(),
	}
}

func FromPlaceOrder(r *commands.PlaceOrderResult) *PlaceOrderResponse {
	return &PlaceOrderResponse{
		OrderID:        r.OrderID,
		OrderNumber:    r.OrderNumber,
		Status:         string(r.Status),
		PaymentMethod:  string(r.PaymentMethod),
		Totals:         FromTotals(r.Totals),
		Coupon:         FromCouponEvaluation(r.Coupon),
		RedirectURL:    r.RedirectURL,
		IdempotencyKey: r.IdempotencyKey,
		Replayed:       r.Replayed,
		Confirmed:      r.Confirmed,
	}
}

func FromPaymentResult(r *commands.PaymentResult) *PaymentReturnResponse {
	return &PaymentReturnResponse{
		OrderNumber: r.OrderNumber,
		Status:      string(r.Status),
		CartCleared: r.CartCleared,
	}
}
