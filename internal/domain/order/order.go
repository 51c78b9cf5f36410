package order

import (
	"errors"
	"time"

	"storefront-checkout/internal/domain/catalog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNoLines = errors.New("order needs at least one line")

// Line is the purchase-time snapshot of one cart line.
type Line struct {
	ItemID    uuid.UUID
	Kind      catalog.Kind
	Name      string
	Size      string
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

type Order struct {
	id             uuid.UUID
	number         string
	identity       *uuid.UUID
	idempotencyKey uuid.UUID
	lines          []Line
	address        Address
	gift           *Gift
	couponCode     *string
	redemptionID   *uuid.UUID
	totals         Totals
	paymentMethod  PaymentMethod
	status         Status
	createdAt      time.Time
}

type NewOrderParams struct {
	IdempotencyKey uuid.UUID
	Identity       *uuid.UUID
	Lines          []Line
	Address        Address
	Gift           *Gift
	CouponCode     *string
	RedemptionID   *uuid.UUID
	Totals         Totals
	PaymentMethod  PaymentMethod
}

func NewOrder(p NewOrderParams, now time.Time) (*Order, error) {
	if len(p.Lines) == 0 {
		return nil, ErrNoLines
	}
	if err := p.Address.Validate(); err != nil {
		return nil, err
	}
	if err := p.Gift.Validate(); err != nil {
		return nil, err
	}
	if _, err := ParsePaymentMethod(string(p.PaymentMethod)); err != nil {
		return nil, err
	}
	number, err := NewNumber(now)
	if err != nil {
		return nil, err
	}
	return &Order{
		id:             uuid.New(),
		number:         number,
		identity:       p.Identity,
		idempotencyKey: p.IdempotencyKey,
		lines:          p.Lines,
		address:        p.Address,
		gift:           p.Gift,
		couponCode:     p.CouponCode,
		redemptionID:   p.RedemptionID,
		totals:         p.Totals,
		paymentMethod:  p.PaymentMethod,
		status:         StatusPending,
		createdAt:      now,
	}, nil
}

type ReconstructParams struct {
	ID             uuid.UUID
	Number         string
	Identity       *uuid.UUID
	IdempotencyKey uuid.UUID
	Lines          []Line
	Address        Address
	Gift           *Gift
	CouponCode     *string
	RedemptionID   *uuid.UUID
	Totals         Totals
	PaymentMethod  PaymentMethod
	Status         Status
	CreatedAt      time.Time
}

func ReconstructOrder(p ReconstructParams) *Order {
	return &Order{
		id:             p.ID,
		number:         p.Number,
		identity:       p.Identity,
		idempotencyKey: p.IdempotencyKey,
		lines:          p.Lines,
		address:        p.Address,
		gift:           p.Gift,
		couponCode:     p.CouponCode,
		redemptionID:   p.RedemptionID,
		totals:         p.Totals,
		paymentMethod:  p.PaymentMethod,
		status:         p.Status,
		createdAt:      p.CreatedAt,
	}
}

func (o *Order) TransitionTo(next Status) error {
	if !o.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	o.status = next
	return nil
}

func (o *Order) ID() uuid.UUID                { return o.id }
func (o *Order) Number() string               { return o.number }
func (o *Order) Identity() *uuid.UUID         { return o.identity }
func (o *Order) IdempotencyKey() uuid.UUID    { return o.idempotencyKey }
func (o *Order) Lines() []Line                { return o.lines }
func (o *Order) Address() Address             { return o.address }
func (o *Order) Gift() *Gift                  { return o.gift }
func (o *Order) CouponCode() *string          { return o.couponCode }
func (o *Order) RedemptionID() *uuid.UUID     { return o.redemptionID }
func (o *Order) Totals() Totals               { return o.totals }
func (o *Order) PaymentMethod() PaymentMethod { return o.paymentMethod }
func (o *Order) Status() Status               { return o.status }
func (o *Order) CreatedAt() time.Time         { return o.createdAt }
