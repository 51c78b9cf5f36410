package shared

import (
	"context"
	"time"

	"storefront-checkout/internal/domain/loyalty"
	"storefront-checkout/internal/domain/order"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Orders() OrderRepository
	Inventory() InventoryWriter
	Coupons() CouponWriter
	Loyalty() LoyaltyRepository
	Outbox() OutboxRepository
}

type OrderRepository interface {
	// Insert reports false when an order with the same idempotency key already exists.
	Insert(ctx context.Context, o *order.Order, meta OrderMeta) (bool, error)
	FindByIdempotencyKey(ctx context.Context, key uuid.UUID) (*OrderRecord, error)
	FindByNumberForUpdate(ctx context.Context, number string) (*OrderRecord, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status order.Status) error
}

type InventoryWriter interface {
	// Reserve decrements tracked stock; untracked items always succeed.
	Reserve(ctx context.Context, itemID uuid.UUID, size string, quantity int) (bool, error)
	Release(ctx context.Context, itemID uuid.UUID, size string, quantity int) error
}

type CouponWriter interface {
	// IncrementUsage reports false when the global cap is already reached.
	IncrementUsage(ctx context.Context, couponID uuid.UUID) (bool, error)
	DecrementUsage(ctx context.Context, couponID uuid.UUID) error
	RecordRedemption(ctx context.Context, couponID uuid.UUID, identity *uuid.UUID, orderID uuid.UUID) error
	DeleteRedemption(ctx context.Context, orderID uuid.UUID) error
}

type LoyaltyRepository interface {
	// LockAccount returns the account row locked for update, creating an empty one if needed.
	LockAccount(ctx context.Context, identity uuid.UUID) (*loyalty.Account, error)
	SaveBalance(ctx context.Context, account *loyalty.Account) error
	InsertTransaction(ctx context.Context, t loyalty.Transaction) error
	// AttachRedemption links an unattached spend to an order; false if it is missing, foreign or used.
	AttachRedemption(ctx context.Context, redemptionID, identity, orderID uuid.UUID) (bool, error)
	RedemptionPoints(ctx context.Context, redemptionID uuid.UUID) (int64, error)
}

type OutboxRepository interface {
	Insert(ctx context.Context, event OutboxEvent) error
	FetchUnpublished(ctx context.Context, limit int) ([]OutboxEvent, error)
	MarkPublished(ctx context.Context, id uuid.UUID) error
}

// OrderMeta is stored alongside an order but is not part of the domain aggregate.
type OrderMeta struct {
	RequestHash  string
	CouponID     *uuid.UUID
	EarnedPoints int64
}

type OutboxEvent struct {
	ID          uuid.UUID
	AggregateID uuid.UUID
	EventType   string
	Payload     []byte
	CreatedAt   time.Time
}
