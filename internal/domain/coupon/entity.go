package coupon

import (
	"errors"
	"time"

	"storefront-checkout/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Rejection reasons, in the order they are checked.
var (
	ErrInvalidCoupon       = errors.New("coupon code does not exist")
	ErrInactiveCoupon      = errors.New("coupon is not active")
	ErrNotYetValid         = errors.New("coupon is not yet valid")
	ErrExpired             = errors.New("coupon has expired")
	ErrBelowMinimum        = errors.New("order is below the coupon minimum")
	ErrUsageLimitReached   = errors.New("coupon usage limit reached")
	ErrLoginRequired       = errors.New("coupon requires a signed-in shopper")
	ErrNotFirstOrder       = errors.New("coupon is only valid on a first order")
	ErrPerUserLimitReached = errors.New("coupon already redeemed the maximum number of times")
)

type Params struct {
	ID             uuid.UUID
	Code           string
	DiscountType   DiscountType
	Value          decimal.Decimal
	Active         bool
	ValidFrom      *time.Time
	ValidUntil     *time.Time
	MinOrderAmount *decimal.Decimal
	MaxUses        *int
	UsedCount      int
	FirstOrderOnly bool
	MaxUsesPerUser *int
}

type Coupon struct {
	id             uuid.UUID
	code           Code
	discount       Discount
	active         bool
	validFrom      *time.Time
	validUntil     *time.Time
	minOrderAmount *decimal.Decimal
	maxUses        *int
	usedCount      int
	firstOrderOnly bool
	maxUsesPerUser *int
}

func ReconstructCoupon(p Params) (*Coupon, error) {
	code, err := NewCouponCode(p.Code)
	if err != nil {
		return nil, err
	}
	discount, err := NewDiscount(p.DiscountType, p.Value)
	if err != nil {
		return nil, err
	}
	return &Coupon{
		id:             p.ID,
		code:           code,
		discount:       discount,
		active:         p.Active,
		validFrom:      p.ValidFrom,
		validUntil:     p.ValidUntil,
		minOrderAmount: p.MinOrderAmount,
		maxUses:        p.MaxUses,
		usedCount:      p.UsedCount,
		firstOrderOnly: p.FirstOrderOnly,
		maxUsesPerUser: p.MaxUsesPerUser,
	}, nil
}

// CheckWindow covers the active flag and the validity window.
func (c *Coupon) CheckWindow(now time.Time) error {
	if !c.active {
		return ErrInactiveCoupon
	}
	if c.validFrom != nil && now.Before(*c.validFrom) {
		return ErrNotYetValid
	}
	if c.validUntil != nil && now.After(*c.validUntil) {
		return ErrExpired
	}
	return nil
}

func (c *Coupon) CheckMinimum(subtotal decimal.Decimal) error {
	if c.minOrderAmount != nil && subtotal.LessThan(*c.minOrderAmount) {
		return ErrBelowMinimum
	}
	return nil
}

func (c *Coupon) CheckUsageCap() error {
	if c.maxUses != nil && c.usedCount >= *c.maxUses {
		return ErrUsageLimitReached
	}
	return nil
}

func (c *Coupon) RequiresIdentity() bool {
	return c.firstOrderOnly || c.maxUsesPerUser != nil
}

// History is what the store knows about one shopper relative to this coupon.
type History struct {
	HasPriorOrder bool
	Redemptions   int
}

func (c *Coupon) CheckHistory(h History) error {
	if c.firstOrderOnly && h.HasPriorOrder {
		return ErrNotFirstOrder
	}
	if c.maxUsesPerUser != nil && h.Redemptions >= *c.maxUsesPerUser {
		return ErrPerUserLimitReached
	}
	return nil
}

type Evaluation struct {
	CouponID       uuid.UUID
	Code           Code
	DiscountType   DiscountType
	DiscountAmount decimal.Decimal
	Subtotal       decimal.Decimal
	NewTotal       decimal.Decimal
	ShippingWaived bool
}

func (c *Coupon) Evaluate(subtotal decimal.Decimal) Evaluation {
	amount := c.discount.AmountFor(subtotal)
	return Evaluation{
		CouponID:       c.id,
		Code:           c.code,
		DiscountType:   c.discount.Type(),
		DiscountAmount: amount,
		Subtotal:       subtotal,
		NewTotal:       money.Round(money.NonNegative(subtotal.Sub(amount))),
		ShippingWaived: c.discount.Type() == DiscountFreeShipping,
	}
}

func (c *Coupon) ID() uuid.UUID                    { return c.id }
func (c *Coupon) Code() Code                       { return c.code }
func (c *Coupon) Discount() Discount               { return c.discount }
func (c *Coupon) Active() bool                     { return c.active }
func (c *Coupon) ValidFrom() *time.Time            { return c.validFrom }
func (c *Coupon) ValidUntil() *time.Time           { return c.validUntil }
func (c *Coupon) MinOrderAmount() *decimal.Decimal { return c.minOrderAmount }
func (c *Coupon) MaxUses() *int                    { return c.maxUses }
func (c *Coupon) UsedCount() int                   { return c.usedCount }
func (c *Coupon) FirstOrderOnly() bool             { return c.firstOrderOnly }
func (c *Coupon) MaxUsesPerUser() *int             { return c.maxUsesPerUser }
