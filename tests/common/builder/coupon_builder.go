//go:build unit || e2e

package builder

import (
	"time"

	"storefront-checkout/internal/domain/coupon"
	"storefront-checkout/internal/pkg/money"

	"github.com/google/uuid"
)

type CouponBuilder struct {
	params coupon.Params
}

// NewCouponBuilder defaults to SAVE10: active, 10% off, no restrictions.
func NewCouponBuilder() *CouponBuilder {
	return &CouponBuilder{params: coupon.Params{
		ID:           uuid.New(),
		Code:         "SAVE10",
		DiscountType: coupon.DiscountPercentage,
		Value:        money.MustParse("10"),
		Active:       true,
	}}
}

func (b *CouponBuilder) WithCode(code string) *CouponBuilder {
	b.params.Code = code
	return b
}

func (b *CouponBuilder) WithPercentage(pct string) *CouponBuilder {
	b.params.DiscountType = coupon.DiscountPercentage
	b.params.Value = money.MustParse(pct)
	return b
}

func (b *CouponBuilder) WithFixed(amount string) *CouponBuilder {
	b.params.DiscountType = coupon.DiscountFixed
	b.params.Value = money.MustParse(amount)
	return b
}

func (b *CouponBuilder) WithFreeShipping() *CouponBuilder {
	b.params.DiscountType = coupon.DiscountFreeShipping
	b.params.Value = money.Zero
	return b
}

func (b *CouponBuilder) Inactive() *CouponBuilder {
	b.params.Active = false
	return b
}

func (b *CouponBuilder) WithWindow(from, until *time.Time) *CouponBuilder {
	b.params.ValidFrom = from
	b.params.ValidUntil = until
	return b
}

func (b *CouponBuilder) WithMinimum(amount string) *CouponBuilder {
	m := money.MustParse(amount)
	b.params.MinOrderAmount = &m
	return b
}

func (b *CouponBuilder) WithUsage(used, max int) *CouponBuilder {
	b.params.UsedCount = used
	b.params.MaxUses = &max
	return b
}

func (b *CouponBuilder) FirstOrderOnly() *CouponBuilder {
	b.params.FirstOrderOnly = true
	return b
}

func (b *CouponBuilder) WithPerUserCap(n int) *CouponBuilder {
	b.params.MaxUsesPerUser = &n
	return b
}

func (b *CouponBuilder) Params() coupon.Params {
	return b.params
}

func (b *CouponBuilder) Build() *coupon.Coupon {
	c, err := coupon.ReconstructCoupon(b.params)
	if err != nil {
		panic("invalid coupon fixture: " + err.Error())
	}
	return c
}
