package queries

import (
	"time"

	"storefront-checkout/internal/domain/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderView represents read-optimized order data
type OrderView struct {
	ID              uuid.UUID
	Number          string
	Identity        *uuid.UUID
	IdempotencyKey  uuid.UUID
	Status          string
	PaymentMethod   string
	Address         order.Address
	Gift            *order.Gift
	CouponCode      *string
	Subtotal        decimal.Decimal
	CouponDiscount  decimal.Decimal
	LoyaltyDiscount decimal.Decimal
	Payable         decimal.Decimal
	ShippingWaived  bool
	Lines           []OrderLineView
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type OrderLineView struct {
	ItemID    uuid.UUID
	Kind      string
	Name      string
	Size      string
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// OrderListItem is the summary row of an order history page
type OrderListItem struct {
	ID        uuid.UUID
	Number    string
	Status    string
	Payable   decimal.Decimal
	ItemCount int
	CreatedAt time.Time
}
