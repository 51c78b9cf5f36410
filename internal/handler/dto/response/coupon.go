package response

import (
	"storefront-checkout/internal/domain/coupon"
	"storefront-checkout/internal/pkg/money"
)

type CouponEvaluationResponse struct {
	Code           string `json:"code"`
	DiscountType   string `json:"discountType"`
	DiscountAmount string `json:"discountAmount"`
	Subtotal       string `json:"subtotal"`
	NewTotal       string `json:"newTotal"`
	ShippingWaived bool   `json:"shippingWaived"`
}

func FromCouponEvaluation(e *coupon.Evaluation) *CouponEvaluationResponse {
	if e == nil {
		return nil
	}
	return &CouponEvaluationResponse{
		Code:           e.Code.String(),
		DiscountType:   string(e.DiscountType),
		DiscountAmount: money.Format(e.DiscountAmount),
		Subtotal:       money.Format(e.Subtotal),
		NewTotal:       money.Format(e.NewTotal),
		ShippingWaived: e.ShippingWaived,
	}
}
