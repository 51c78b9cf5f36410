//go:build unit

package commands_test

import (
	"context"
	"testing"

	"storefront-checkout/internal/domain/cart"
	"storefront-checkout/internal/domain/catalog"
	"storefront-checkout/internal/domain/coupon"
	"storefront-checkout/internal/domain/loyalty"
	"storefront-checkout/internal/domain/stock"
	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/pkg/money"
	"storefront-checkout/internal/usecase/commands"
	"storefront-checkout/tests/common/builder"
	commandsmock "storefront-checkout/tests/mock/commands"
	sharedmock "storefront-checkout/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type previewFixture struct {
	stock   *commandsmock.MockStockChecker
	coupons *commandsmock.MockCouponApplier
	loyalty *sharedmock.MockLoyaltyReader
	preview *commands.CheckoutPreview
	rose    catalog.Item
}

func newPreviewFixture(t *testing.T) (*previewFixture, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &previewFixture{
		stock:   commandsmock.NewMockStockChecker(ctrl),
		coupons: commandsmock.NewMockCouponApplier(ctrl),
		loyalty: sharedmock.NewMockLoyaltyReader(ctrl),
		rose:    builder.NewItemBuilder().Build(),
	}
	catalogReader := sharedmock.NewMockCatalogReader(ctrl)
	catalogReader.EXPECT().ItemsByIDs(gomock.Any(), gomock.Any()).
		Return(map[uuid.UUID]catalog.Item{f.rose.ID(): f.rose}, nil).AnyTimes()
	f.preview = commands.NewCheckoutPreview(f.stock, f.coupons, commands.NewPricer(catalogReader, config.NewTestConfig()), f.loyalty)
	return f, ctrl
}

func TestCheckoutPreview_ReportsEveryCheck(t *testing.T) {
	f, ctrl := newPreviewFixture(t)
	session := newSession(t, ctrl, newLine(t, f.rose, "50ml", 2))
	identity := uuid.New()
	redemptionID := uuid.New()

	f.stock.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(stock.Results{
		{ItemID: f.rose.ID(), Size: "50ml", Requested: 2, Available: 1, OK: false},
	}, nil)
	f.coupons.EXPECT().Apply(gomock.Any(), "EXPIRED", gomock.Any(), &identity).Return(nil, coupon.ErrExpired)
	f.loyalty.EXPECT().RedemptionByID(gomock.Any(), redemptionID).Return(&loyalty.Redemption{
		ID: redemptionID, Identity: identity, Points: 1000, DiscountAmount: money.MustParse("10.00"),
	}, nil)

	res, err := f.preview.Preview(context.Background(), session, commands.PreviewInput{
		Identity:            &identity,
		CouponCode:          "EXPIRED",
		LoyaltyRedemptionID: &redemptionID,
	})

	require.NoError(t, err)
	assert.False(t, res.CanSubmit())
	assert.True(t, res.Stock.HasBlockingIssues())
	assert.ErrorIs(t, res.CouponError, coupon.ErrExpired)
	assert.Nil(t, res.Coupon)
	assert.NoError(t, res.LoyaltyError)
	assert.Equal(t, "240.00", money.Format(res.Totals.Subtotal))
	assert.True(t, res.Totals.CouponDiscount.IsZero())
	assert.Equal(t, "230.00", money.Format(res.Totals.Payable))
}

func TestCheckoutPreview_AppliesCoupon(t *testing.T) {
	f, ctrl := newPreviewFixture(t)
	session := newSession(t, ctrl, newLine(t, f.rose, "50ml", 2))

	f.stock.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(stock.Results{
		stock.Evaluate(f.rose.ID(), "50ml", 2, 0, false),
	}, nil)
	f.coupons.EXPECT().Apply(gomock.Any(), "SHIPFREE", gomock.Any(), nil).Return(&coupon.Evaluation{
		Code:           "SHIPFREE",
		DiscountType:   coupon.DiscountFreeShipping,
		DiscountAmount: money.Zero,
		ShippingWaived: true,
	}, nil)

	res, err := f.preview.Preview(context.Background(), session, commands.PreviewInput{CouponCode: "SHIPFREE"})

	require.NoError(t, err)
	assert.True(t, res.CanSubmit())
	assert.True(t, res.Totals.ShippingWaived)
	assert.Equal(t, "240.00", money.Format(res.Totals.Payable))
	assert.Equal(t, session.Cart().Version(), res.Version)
}

func TestCheckoutPreview_DiscardsStaleSnapshot(t *testing.T) {
	f, ctrl := newPreviewFixture(t)
	session := newSession(t, ctrl, newLine(t, f.rose, "50ml", 2))

	f.stock.EXPECT().Validate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, lines []cart.Line) (stock.Results, error) {
			session.Cart().Remove(f.rose.ID(), "50ml")
			return stock.Results{stock.Evaluate(f.rose.ID(), "50ml", 2, 0, false)}, nil
		})

	res, err := f.preview.Preview(context.Background(), session, commands.PreviewInput{})

	assert.ErrorIs(t, err, commands.ErrStaleSnapshot)
	assert.Nil(t, res)
}

func TestCheckoutPreview_EmptyCart(t *testing.T) {
	f, ctrl := newPreviewFixture(t)

	res, err := f.preview.Preview(context.Background(), newSession(t, ctrl), commands.PreviewInput{CouponCode: "SAVE10"})

	require.NoError(t, err)
	assert.False(t, res.CanSubmit())
	assert.True(t, res.Totals.Payable.IsZero())
}

func TestCheckoutPreview_AttachedRedemption(t *testing.T) {
	f, ctrl := newPreviewFixture(t)
	session := newSession(t, ctrl, newLine(t, f.rose, "50ml", 2))
	identity := uuid.New()
	redemptionID := uuid.New()
	orderID := uuid.New()

	f.stock.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(stock.Results{
		stock.Evaluate(f.rose.ID(), "50ml", 2, 0, false),
	}, nil)
	f.loyalty.EXPECT().RedemptionByID(gomock.Any(), redemptionID).Return(&loyalty.Redemption{
		ID: redemptionID, Identity: identity, Points: 500, DiscountAmount: money.MustParse("5.00"), OrderID: &orderID,
	}, nil)

	res, err := f.preview.Preview(context.Background(), session, commands.PreviewInput{
		Identity:            &identity,
		LoyaltyRedemptionID: &redemptionID,
	})

	require.NoError(t, err)
	assert.ErrorIs(t, res.LoyaltyError, commands.ErrRedemptionNotUsable)
	assert.Equal(t, "240.00", money.Format(res.Totals.Payable))
}
