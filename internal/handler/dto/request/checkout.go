package request

import (
	"strings"

	"storefront-checkout/internal/domain/order"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// AddressRequest carries no binding rules; the domain reports every missing field at once.
type AddressRequest struct {
	RecipientName string `json:"recipientName"`
	Phone         string `json:"phone"`
	Line1         string `json:"line1"`
	Line2         string `json:"line2"`
	City          string `json:"city"`
	Region        string `json:"region"`
	PostalCode    string `json:"postalCode"`
	Country       string `json:"country"`
}

type GiftRequest struct {
	Message string `json:"message"`
	Wrap    bool   `json:"wrap"`
}

type PreviewRequest struct {
	CouponCode          string     `json:"couponCode" binding:"max=64"`
	LoyaltyRedemptionID *uuid.UUID `json:"loyaltyRedemptionId"`
}

type BeginAttemptRequest struct {
	IdempotencyKey *uuid.UUID `json:"idempotencyKey"`
}

type PlaceOrderRequest struct {
	Address             AddressRequest `json:"address"`
	PaymentMethod       string         `json:"paymentMethod" binding:"required"`
	CouponCode          string         `json:"couponCode" binding:"max=64"`
	LoyaltyRedemptionID *uuid.UUID     `json:"loyaltyRedemptionId"`
	Gift                *GiftRequest   `json:"gift"`
}

type PaymentReturnRequest struct {
	OrderNumber string `json:"orderNumber"`
	Success     *bool  `json:"success" binding:"required"`
}

func (r PreviewRequest) ToInput(identity *uuid.UUID) commands.PreviewInput {
	return commands.PreviewInput{
		Identity:            identity,
		CouponCode:          strings.TrimSpace(r.CouponCode),
		LoyaltyRedemptionID: r.LoyaltyRedemptionID,
	}
}

func (r PlaceOrderRequest) ToInput(identity *uuid.UUID, idempotencyKey *uuid.UUID) (commands.PlaceOrderInput, error) {
	var address order.Address
	if err := copier.CopyWithOption(&address, &r.Address, copier.Option{IgnoreEmpty: true}); err != nil {
		return commands.PlaceOrderInput{}, errs.Wrap(err, "failed to map address")
	}

	var gift *order.Gift
	if r.Gift != nil {
		gift = &order.Gift{Message: strings.TrimSpace(r.Gift.Message), Wrap: r.Gift.Wrap}
	}

	return commands.PlaceOrderInput{
		Identity:            identity,
		Address:             address,
		PaymentMethod:       r.PaymentMethod,
		CouponCode:          strings.TrimSpace(r.CouponCode),
		LoyaltyRedemptionID: r.LoyaltyRedemptionID,
		Gift:                gift,
		IdempotencyKey:      idempotencyKey,
	}, nil
}
