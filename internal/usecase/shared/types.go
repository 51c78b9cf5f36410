package shared

import (
	"context"

	"storefront-checkout/internal/domain/cart"
	"storefront-checkout/internal/domain/catalog"
	"storefront-checkout/internal/domain/coupon"
	"storefront-checkout/internal/domain/loyalty"
	"storefront-checkout/internal/domain/order"
	"storefront-checkout/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order submission outcomes decided by the backend inside the insert transaction.
var (
	ErrIdempotencyKeyConflict = errs.New("idempotency key already used for a different order")
	ErrStockConflict          = errs.New("stock changed before the order was stored")
	ErrCouponExhausted        = errs.New("coupon usage cap reached before the order was stored")
	ErrRedemptionUnavailable  = errs.New("loyalty redemption cannot be applied")
	ErrOrderNotFound          = errs.New("order not found")
	ErrOrderNotPending        = errs.New("order is no longer awaiting payment")
)

// LocalCart is one device's stored state. Identity is the last identity
// observed on the device, nil while signed out.
type LocalCart struct {
	Lines    []cart.Line
	Identity *uuid.UUID
}

// LocalCartStorage is the per-device cart cache. A missing or corrupt
// document loads as an empty cart; LoadCart fails only when the store cannot
// be read, so an empty cart is never mistaken for an unknown one. Write
// errors are returned only so callers can log them.
type LocalCartStorage interface {
	LoadCart(ctx context.Context, deviceID string) (LocalCart, error)
	SetCart(ctx context.Context, deviceID string, lines []cart.Line) error
	ClearCart(ctx context.Context, deviceID string) error
	SetIdentity(ctx context.Context, deviceID string, identity *uuid.UUID) error
}

type RemoteCartRepository interface {
	FindLine(ctx context.Context, identity, itemID uuid.UUID, size string) (*cart.RemoteLine, error)
	IncrementQuantity(ctx context.Context, lineID uuid.UUID, delta int) error
	InsertLine(ctx context.Context, identity, itemID uuid.UUID, size string, quantity int) error
	ListByIdentity(ctx context.Context, identity uuid.UUID) ([]cart.RemoteLine, error)
}

type InventoryReader interface {
	// found=false means the item is not stock-tracked.
	Available(ctx context.Context, itemID uuid.UUID, size string) (available int, found bool, err error)
}

type CatalogReader interface {
	ItemByID(ctx context.Context, id uuid.UUID) (catalog.Item, error)
	ItemsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]catalog.Item, error)
}

type CouponReader interface {
	FindByCode(ctx context.Context, code coupon.Code) (*coupon.Coupon, error)
	History(ctx context.Context, couponID, identity uuid.UUID) (coupon.History, error)
}

type LoyaltyReader interface {
	Balance(ctx context.Context, identity uuid.UUID) (int64, error)
	History(ctx context.Context, identity uuid.UUID, limit int) ([]loyalty.Transaction, error)
	RedemptionByID(ctx context.Context, id uuid.UUID) (*loyalty.Redemption, error)
}

type OrderGateway interface {
	// FindByIdempotencyKey returns ErrOrderNotFound when no order owns key.
	FindByIdempotencyKey(ctx context.Context, key uuid.UUID) (*OrderRecord, error)
	Submit(ctx context.Context, sub SubmitOrder) (*SubmitResult, error)
	CompletePayment(ctx context.Context, orderNumber string, success bool) (order.Status, error)
}

type PaymentProvider interface {
	RedirectURL(ctx context.Context, orderNumber string, amount decimal.Decimal) (string, error)
}

type SubmitOrder struct {
	Order        *order.Order
	CouponID     *uuid.UUID
	RequestHash  string
	EarnedPoints int64
}

type SubmitResult struct {
	OrderID       uuid.UUID
	Number        string
	Status        order.Status
	PaymentMethod order.PaymentMethod
	Payable       decimal.Decimal
	Replayed      bool
}

// OrderRecord is the write-side view of a stored order.
type OrderRecord struct {
	ID            uuid.UUID
	Number        string
	Identity      *uuid.UUID
	Status        order.Status
	PaymentMethod order.PaymentMethod
	Payable       decimal.Decimal
	Totals        order.Totals
	RequestHash   string
	CouponID      *uuid.UUID
	RedemptionID  *uuid.UUID
	EarnedPoints  int64
	Lines         []order.Line
}
