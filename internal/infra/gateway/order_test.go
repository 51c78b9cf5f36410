//go:build unit

package gateway_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"storefront-checkout/internal/domain/catalog"
	"storefront-checkout/internal/domain/loyalty"
	"storefront-checkout/internal/domain/order"
	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/infra/gateway"
	"storefront-checkout/internal/pkg/clock"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/pkg/money"
	"storefront-checkout/internal/usecase/shared"
	sharedmock "storefront-checkout/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

type fixture struct {
	uow       *sharedmock.MockUnitOfWork
	orders    *sharedmock.MockOrderRepository
	inventory *sharedmock.MockInventoryWriter
	coupons   *sharedmock.MockCouponWriter
	loyalty   *sharedmock.MockLoyaltyRepository
	outbox    *sharedmock.MockOutboxRepository
	gateway   *gateway.OrderGateway
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	tx := sharedmock.NewMockTx(ctrl)
	f := &fixture{
		uow:       sharedmock.NewMockUnitOfWork(ctrl),
		orders:    sharedmock.NewMockOrderRepository(ctrl),
		inventory: sharedmock.NewMockInventoryWriter(ctrl),
		coupons:   sharedmock.NewMockCouponWriter(ctrl),
		loyalty:   sharedmock.NewMockLoyaltyRepository(ctrl),
		outbox:    sharedmock.NewMockOutboxRepository(ctrl),
	}
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, tx)
		}).AnyTimes()
	tx.EXPECT().Orders().Return(f.orders).AnyTimes()
	tx.EXPECT().Inventory().Return(f.inventory).AnyTimes()
	tx.EXPECT().Coupons().Return(f.coupons).AnyTimes()
	tx.EXPECT().Loyalty().Return(f.loyalty).AnyTimes()
	tx.EXPECT().Outbox().Return(f.outbox).AnyTimes()

	f.gateway = gateway.NewOrderGateway(f.uow, clock.NewMockClock(now))
	return f
}

func newOrder(t *testing.T, method order.PaymentMethod, identity, redemptionID *uuid.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(order.NewOrderParams{
		IdempotencyKey: uuid.New(),
		Identity:       identity,
		Lines: []order.Line{
			{ItemID: uuid.New(), Kind: catalog.KindProduct, Name: "Velvet Rose", Size: "50ml", Quantity: 2,
				UnitPrice: money.MustParse("120.00"), LineTotal: money.MustParse("240.00")},
		},
		Address: order.Address{
			RecipientName: "Ada Lovelace", Phone: "+44 20 7946 0000", Line1: "12 St James's Square",
			City: "London", PostalCode: "SW1Y 4LB", Country: "GB",
		},
		RedemptionID: redemptionID,
		Totals: order.Totals{
			Subtotal:        money.MustParse("240.00"),
			CouponDiscount:  money.MustParse("24.00"),
			LoyaltyDiscount: money.Zero,
			Payable:         money.MustParse("216.00"),
		},
		PaymentMethod: method,
	}, now)
	require.NoError(t, err)
	return o
}

func (f *fixture) expectEvent(t *testing.T, eventType string, status order.Status) {
	f.outbox.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e shared.OutboxEvent) error {
			assert.Equal(t, eventType, e.EventType)
			var payload map[string]any
			require.NoError(t, json.Unmarshal(e.Payload, &payload))
			assert.Equal(t, string(status), payload["status"])
			return nil
		})
}

func (f *fixture) expectCredit(t *testing.T, identity uuid.UUID, kind loyalty.TransactionKind, points int64) {
	account, err := loyalty.NewAccount(identity, 100)
	require.NoError(t, err)
	f.loyalty.EXPECT().LockAccount(gomock.Any(), identity).Return(account, nil)
	f.loyalty.EXPECT().SaveBalance(gomock.Any(), account).Return(nil)
	f.loyalty.EXPECT().InsertTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx loyalty.Transaction) error {
			assert.Equal(t, kind, tx.Kind)
			assert.Equal(t, points, tx.Points)
			assert.Equal(t, 100+points, tx.BalanceAfter)
			return nil
		})
}

func TestOrderGateway_SubmitCashOnDelivery(t *testing.T) {
	f := newFixture(t)
	identity := uuid.New()
	redemptionID := uuid.New()
	couponID := uuid.New()
	o := newOrder(t, order.PaymentCOD, &identity, &redemptionID)
	line := o.Lines()[0]

	f.orders.EXPECT().Insert(gomock.Any(), o, shared.OrderMeta{RequestHash: "h1", CouponID: &couponID, EarnedPoints: 216}).Return(true, nil)
	f.inventory.EXPECT().Reserve(gomock.Any(), line.ItemID, "50ml", 2).Return(true, nil)
	f.coupons.EXPECT().IncrementUsage(gomock.Any(), couponID).Return(true, nil)
	f.coupons.EXPECT().RecordRedemption(gomock.Any(), couponID, &identity, o.ID()).Return(nil)
	f.loyalty.EXPECT().AttachRedemption(gomock.Any(), redemptionID, identity, o.ID()).Return(true, nil)
	f.expectCredit(t, identity, loyalty.KindEarn, 216)
	f.expectEvent(t, gateway.EventOrderPlaced, order.StatusPending)

	res, err := f.gateway.Submit(context.Background(), shared.SubmitOrder{
		Order: o, CouponID: &couponID, RequestHash: "h1", EarnedPoints: 216,
	})

	require.NoError(t, err)
	assert.False(t, res.Replayed)
	assert.Equal(t, o.Number(), res.Number)
	assert.Equal(t, order.StatusPending, res.Status)
	assert.Equal(t, "216.00", money.Format(res.Payable))
}

func TestOrderGateway_SubmitCardDefersEarning(t *testing.T) {
	f := newFixture(t)
	identity := uuid.New()
	o := newOrder(t, order.PaymentCard, &identity, nil)

	f.orders.EXPECT().Insert(gomock.Any(), o, gomock.Any()).Return(true, nil)
	f.inventory.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	f.expectEvent(t, gateway.EventOrderPlaced, order.StatusPending)

	res, err := f.gateway.Submit(context.Background(), shared.SubmitOrder{Order: o, RequestHash: "h1", EarnedPoints: 216})

	require.NoError(t, err)
	assert.Equal(t, order.PaymentCard, res.PaymentMethod)
}

func TestOrderGateway_SubmitReplay(t *testing.T) {
	o := newOrder(t, order.PaymentCOD, nil, nil)
	existing := &shared.OrderRecord{
		ID:            uuid.New(),
		Number:        "ORD-EXISTING",
		Status:        order.StatusPending,
		PaymentMethod: order.PaymentCOD,
		Payable:       money.MustParse("216.00"),
		RequestHash:   "h1",
	}

	t.Run("same request replays the stored order", func(t *testing.T) {
		f := newFixture(t)
		f.orders.EXPECT().Insert(gomock.Any(), o, gomock.Any()).Return(false, nil)
		f.orders.EXPECT().FindByIdempotencyKey(gomock.Any(), o.IdempotencyKey()).Return(existing, nil)

		res, err := f.gateway.Submit(context.Background(), shared.SubmitOrder{Order: o, RequestHash: "h1"})

		require.NoError(t, err)
		assert.True(t, res.Replayed)
		assert.Equal(t, "ORD-EXISTING", res.Number)
		assert.Equal(t, existing.ID, res.OrderID)
	})

	t.Run("different request under the same key conflicts", func(t *testing.T) {
		f := newFixture(t)
		f.orders.EXPECT().Insert(gomock.Any(), o, gomock.Any()).Return(false, nil)
		f.orders.EXPECT().FindByIdempotencyKey(gomock.Any(), o.IdempotencyKey()).Return(existing, nil)

		_, err := f.gateway.Submit(context.Background(), shared.SubmitOrder{Order: o, RequestHash: "h2"})

		assert.True(t, errs.Is(err, shared.ErrIdempotencyKeyConflict))
		assert.Contains(t, err.Error(), "ORD-EXISTING")
	})
}

func TestOrderGateway_FindByIdempotencyKey(t *testing.T) {
	key := uuid.New()

	t.Run("stored order is returned", func(t *testing.T) {
		f := newFixture(t)
		stored := &shared.OrderRecord{ID: uuid.New(), Number: "ORD-20260615-QWERTY", RequestHash: "h1"}
		f.orders.EXPECT().FindByIdempotencyKey(gomock.Any(), key).Return(stored, nil)

		rec, err := f.gateway.FindByIdempotencyKey(context.Background(), key)

		require.NoError(t, err)
		assert.Equal(t, stored, rec)
	})

	t.Run("unknown key is reported as not found", func(t *testing.T) {
		f := newFixture(t)
		f.orders.EXPECT().FindByIdempotencyKey(gomock.Any(), key).
			Return(nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound))

		rec, err := f.gateway.FindByIdempotencyKey(context.Background(), key)

		assert.Nil(t, rec)
		assert.True(t, errs.Is(err, shared.ErrOrderNotFound))
	})
}

func TestOrderGateway_SubmitConflicts(t *testing.T) {
	identity := uuid.New()
	couponID := uuid.New()
	redemptionID := uuid.New()

	testCases := []struct {
		name      string
		guest     bool
		setupMock func(f *fixture)
		want      error
	}{
		{
			name: "stock sold out",
			setupMock: func(f *fixture) {
				f.inventory.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
			},
			want: shared.ErrStockConflict,
		},
		{
			name: "coupon cap reached",
			setupMock: func(f *fixture) {
				f.inventory.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				f.coupons.EXPECT().IncrementUsage(gomock.Any(), couponID).Return(false, nil)
			},
			want: shared.ErrCouponExhausted,
		},
		{
			name: "redemption already attached",
			setupMock: func(f *fixture) {
				f.inventory.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				f.coupons.EXPECT().IncrementUsage(gomock.Any(), couponID).Return(true, nil)
				f.coupons.EXPECT().RecordRedemption(gomock.Any(), couponID, gomock.Any(), gomock.Any()).Return(nil)
				f.loyalty.EXPECT().AttachRedemption(gomock.Any(), redemptionID, identity, gomock.Any()).Return(false, nil)
			},
			want: shared.ErrRedemptionUnavailable,
		},
		{
			name:  "guest cannot spend points",
			guest: true,
			setupMock: func(f *fixture) {
				f.inventory.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				f.coupons.EXPECT().IncrementUsage(gomock.Any(), couponID).Return(true, nil)
				f.coupons.EXPECT().RecordRedemption(gomock.Any(), couponID, gomock.Any(), gomock.Any()).Return(nil)
			},
			want: shared.ErrRedemptionUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			who := &identity
			if tc.guest {
				who = nil
			}
			o := newOrder(t, order.PaymentCOD, who, &redemptionID)
			f.orders.EXPECT().Insert(gomock.Any(), o, gomock.Any()).Return(true, nil)
			tc.setupMock(f)

			res, err := f.gateway.Submit(context.Background(), shared.SubmitOrder{Order: o, CouponID: &couponID, RequestHash: "h"})

			assert.True(t, errs.Is(err, tc.want), "want %v, got %v", tc.want, err)
			assert.Nil(t, res)
		})
	}
}

func pendingCardRecord(identity uuid.UUID) *shared.OrderRecord {
	couponID := uuid.New()
	redemptionID := uuid.New()
	return &shared.OrderRecord{
		ID:            uuid.New(),
		Number:        "ORD-CARD",
		Identity:      &identity,
		Status:        order.StatusPending,
		PaymentMethod: order.PaymentCard,
		Payable:       money.MustParse("211.00"),
		CouponID:      &couponID,
		RedemptionID:  &redemptionID,
		EarnedPoints:  211,
		Lines: []order.Line{
			{ItemID: uuid.New(), Size: "50ml", Quantity: 2},
			{ItemID: uuid.New(), Size: "", Quantity: 1},
		},
	}
}

func TestOrderGateway_CompletePaymentSuccess(t *testing.T) {
	f := newFixture(t)
	identity := uuid.New()
	rec := pendingCardRecord(identity)

	f.orders.EXPECT().FindByNumberForUpdate(gomock.Any(), "ORD-CARD").Return(rec, nil)
	f.orders.EXPECT().UpdateStatus(gomock.Any(), rec.ID, order.StatusProcessing).Return(nil)
	f.expectCredit(t, identity, loyalty.KindEarn, 211)
	f.expectEvent(t, gateway.EventOrderPaid, order.StatusProcessing)

	status, err := f.gateway.CompletePayment(context.Background(), "ORD-CARD", true)

	require.NoError(t, err)
	assert.Equal(t, order.StatusProcessing, status)
}

func TestOrderGateway_CompletePaymentFailureReverses(t *testing.T) {
	f := newFixture(t)
	identity := uuid.New()
	rec := pendingCardRecord(identity)

	f.orders.EXPECT().FindByNumberForUpdate(gomock.Any(), "ORD-CARD").Return(rec, nil)
	f.orders.EXPECT().UpdateStatus(gomock.Any(), rec.ID, order.StatusCancelled).Return(nil)
	for _, l := range rec.Lines {
		f.inventory.EXPECT().Release(gomock.Any(), l.ItemID, l.Size, l.Quantity).Return(nil)
	}
	f.coupons.EXPECT().DeleteRedemption(gomock.Any(), rec.ID).Return(nil)
	f.coupons.EXPECT().DecrementUsage(gomock.Any(), *rec.CouponID).Return(nil)
	f.loyalty.EXPECT().RedemptionPoints(gomock.Any(), *rec.RedemptionID).Return(int64(500), nil)
	f.expectCredit(t, identity, loyalty.KindRefund, 500)
	f.expectEvent(t, gateway.EventOrderCancelled, order.StatusCancelled)

	status, err := f.gateway.CompletePayment(context.Background(), "ORD-CARD", false)

	require.NoError(t, err)
	assert.Equal(t, order.StatusCancelled, status)
}

func TestOrderGateway_CompletePaymentRejects(t *testing.T) {
	t.Run("unknown order", func(t *testing.T) {
		f := newFixture(t)
		f.orders.EXPECT().FindByNumberForUpdate(gomock.Any(), "ORD-X").
			Return(nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound))

		_, err := f.gateway.CompletePayment(context.Background(), "ORD-X", true)

		assert.ErrorIs(t, err, shared.ErrOrderNotFound)
	})

	t.Run("already settled", func(t *testing.T) {
		f := newFixture(t)
		rec := pendingCardRecord(uuid.New())
		rec.Status = order.StatusProcessing
		f.orders.EXPECT().FindByNumberForUpdate(gomock.Any(), "ORD-CARD").Return(rec, nil)

		_, err := f.gateway.CompletePayment(context.Background(), "ORD-CARD", true)

		assert.ErrorIs(t, err, shared.ErrOrderNotPending)
	})
}
