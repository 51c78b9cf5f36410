//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"storefront-checkout/internal/domain/coupon"
	"storefront-checkout/internal/pkg/money"
	"storefront-checkout/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

func TestCoupon_CheckWindow(t *testing.T) {
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	cases := []struct {
		name  string
		build *builder.CouponBuilder
		errIs error
	}{
		{name: "active without window", build: builder.NewCouponBuilder()},
		{name: "inactive", build: builder.NewCouponBuilder().Inactive(), errIs: coupon.ErrInactiveCoupon},
		{name: "inactive wins over expiry", build: builder.NewCouponBuilder().Inactive().WithWindow(nil, &past), errIs: coupon.ErrInactiveCoupon},
		{name: "not yet valid", build: builder.NewCouponBuilder().WithWindow(&future, nil), errIs: coupon.ErrNotYetValid},
		{name: "expired", build: builder.NewCouponBuilder().WithWindow(nil, &past), errIs: coupon.ErrExpired},
		{name: "inside window", build: builder.NewCouponBuilder().WithWindow(&past, &future)},
		{name: "boundary end is inclusive", build: builder.NewCouponBuilder().WithWindow(nil, &now)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.build.Build().CheckWindow(now)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCoupon_Evaluate(t *testing.T) {
	subtotal := money.MustParse("240.00")

	t.Run("percentage", func(t *testing.T) {
		ev := builder.NewCouponBuilder().Build().Evaluate(subtotal)
		assert.Equal(t, "24.00", money.Format(ev.DiscountAmount))
		assert.Equal(t, "216.00", money.Format(ev.NewTotal))
		assert.Equal(t, coupon.DiscountPercentage, ev.DiscountType)
		assert.False(t, ev.ShippingWaived)
	})

	t.Run("percentage rounds to cents", func(t *testing.T) {
		ev := builder.NewCouponBuilder().WithPercentage("15").Build().Evaluate(money.MustParse("33.33"))
		assert.Equal(t, "5.00", money.Format(ev.DiscountAmount))
	})

	t.Run("fixed is capped at subtotal", func(t *testing.T) {
		ev := builder.NewCouponBuilder().WithFixed("300").Build().Evaluate(subtotal)
		assert.Equal(t, "240.00", money.Format(ev.DiscountAmount))
		assert.True(t, ev.NewTotal.IsZero())
	})

	t.Run("fixed below subtotal", func(t *testing.T) {
		ev := builder.NewCouponBuilder().WithFixed("25.50").Build().Evaluate(subtotal)
		assert.Equal(t, "25.50", money.Format(ev.DiscountAmount))
		assert.Equal(t, "214.50", money.Format(ev.NewTotal))
	})

	t.Run("free shipping has no monetary discount", func(t *testing.T) {
		ev := builder.NewCouponBuilder().WithFreeShipping().Build().Evaluate(subtotal)
		assert.True(t, ev.DiscountAmount.IsZero())
		assert.True(t, ev.ShippingWaived)
		assert.Equal(t, "240.00", money.Format(ev.NewTotal))
	})
}

func TestCoupon_Checks(t *testing.T) {
	t.Run("minimum", func(t *testing.T) {
		c := builder.NewCouponBuilder().WithMinimum("100").Build()
		assert.ErrorIs(t, c.CheckMinimum(money.MustParse("99.99")), coupon.ErrBelowMinimum)
		assert.NoError(t, c.CheckMinimum(money.MustParse("100")))
	})

	t.Run("usage cap", func(t *testing.T) {
		assert.ErrorIs(t, builder.NewCouponBuilder().WithUsage(5, 5).Build().CheckUsageCap(), coupon.ErrUsageLimitReached)
		assert.NoError(t, builder.NewCouponBuilder().WithUsage(4, 5).Build().CheckUsageCap())
	})

	t.Run("identity rules", func(t *testing.T) {
		plain := builder.NewCouponBuilder().Build()
		assert.False(t, plain.RequiresIdentity())

		first := builder.NewCouponBuilder().FirstOrderOnly().Build()
		require.True(t, first.RequiresIdentity())
		assert.ErrorIs(t, first.CheckHistory(coupon.History{HasPriorOrder: true}), coupon.ErrNotFirstOrder)
		assert.NoError(t, first.CheckHistory(coupon.History{}))

		capped := builder.NewCouponBuilder().WithPerUserCap(2).Build()
		require.True(t, capped.RequiresIdentity())
		assert.ErrorIs(t, capped.CheckHistory(coupon.History{Redemptions: 2}), coupon.ErrPerUserLimitReached)
		assert.NoError(t, capped.CheckHistory(coupon.History{Redemptions: 1}))
	})
}

func TestReconstructCoupon_Validation(t *testing.T) {
	_, err := coupon.ReconstructCoupon(builder.NewCouponBuilder().WithPercentage("120").Params())
	assert.ErrorIs(t, err, coupon.ErrInvalidDiscountPercent)

	_, err = coupon.ReconstructCoupon(builder.NewCouponBuilder().WithFixed("-1").Params())
	assert.ErrorIs(t, err, coupon.ErrInvalidDiscountAmount)

	_, err = coupon.ReconstructCoupon(builder.NewCouponBuilder().WithCode("   ").Params())
	assert.ErrorIs(t, err, coupon.ErrInvalidCouponCode)

	c, err := coupon.ReconstructCoupon(builder.NewCouponBuilder().WithCode(" save10 ").Params())
	require.NoError(t, err)
	assert.Equal(t, coupon.Code("SAVE10"), c.Code())
}
