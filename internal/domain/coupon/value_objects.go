package coupon

import (
	"errors"
	"strings"

	"storefront-checkout/internal/pkg/money"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCouponCode      = errors.New("invalid coupon code format")
	ErrInvalidDiscountType    = errors.New("unknown discount type")
	ErrInvalidDiscountAmount  = errors.New("discount amount cannot be negative")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
)

type Code string

// NewCouponCode normalises shopper input so lookups are case-insensitive.
func NewCouponCode(code string) (Code, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" || len(code) > 64 {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type DiscountType string

const (
	DiscountPercentage   DiscountType = "percentage"
	DiscountFixed        DiscountType = "fixed"
	DiscountFreeShipping DiscountType = "free_shipping"
)

func (t DiscountType) IsValid() bool {
	switch t {
	case DiscountPercentage, DiscountFixed, DiscountFreeShipping:
		return true
	default:
		return false
	}
}

type Discount struct {
	kind  DiscountType
	value decimal.Decimal
}

func NewDiscount(kind DiscountType, value decimal.Decimal) (Discount, error) {
	if !kind.IsValid() {
		return Discount{}, ErrInvalidDiscountType
	}
	if value.IsNegative() {
		return Discount{}, ErrInvalidDiscountAmount
	}
	if kind == DiscountPercentage && value.GreaterThan(decimal.NewFromInt(100)) {
		return Discount{}, ErrInvalidDiscountPercent
	}
	return Discount{kind: kind, value: value}, nil
}

func (d Discount) Type() DiscountType     { return d.kind }
func (d Discount) Value() decimal.Decimal { return d.value }

// AmountFor returns the monetary discount on subtotal, rounded to cents.
// Free shipping has no monetary value here; it is signalled by the type.
func (d Discount) AmountFor(subtotal decimal.Decimal) decimal.Decimal {
	switch d.kind {
	case DiscountPercentage:
		return money.Round(subtotal.Mul(d.value).Div(decimal.NewFromInt(100)))
	case DiscountFixed:
		return money.Round(money.Min(d.value, subtotal))
	default:
		return money.Zero
	}
}
