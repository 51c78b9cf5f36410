package loyalty

import (
	"errors"
	"time"

	"storefront-checkout/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount       = errors.New("points must be a positive whole number")
	ErrInsufficientBalance = errors.New("not enough loyalty points")
	ErrNegativeBalance     = errors.New("loyalty balance cannot be negative")
	ErrInvalidPointValue   = errors.New("point value must be positive")
)

type Account struct {
	identity uuid.UUID
	balance  int64
}

func NewAccount(identity uuid.UUID, balance int64) (*Account, error) {
	if balance < 0 {
		return nil, ErrNegativeBalance
	}
	return &Account{identity: identity, balance: balance}, nil
}

// Debit removes points, leaving the balance untouched on failure.
func (a *Account) Debit(points int64) error {
	if points <= 0 {
		return ErrInvalidAmount
	}
	if points > a.balance {
		return ErrInsufficientBalance
	}
	a.balance -= points
	return nil
}

func (a *Account) Credit(points int64) error {
	if points <= 0 {
		return ErrInvalidAmount
	}
	a.balance += points
	return nil
}

func (a *Account) Identity() uuid.UUID { return a.identity }
func (a *Account) Balance() int64      { return a.balance }

// ExchangeRate converts points to currency and payable amounts back to earned points.
type ExchangeRate struct {
	pointValue    decimal.Decimal
	pointsPerUnit int64
}

func NewExchangeRate(pointValue decimal.Decimal, pointsPerUnit int64) (ExchangeRate, error) {
	if !pointValue.IsPositive() {
		return ExchangeRate{}, ErrInvalidPointValue
	}
	if pointsPerUnit < 0 {
		pointsPerUnit = 0
	}
	return ExchangeRate{pointValue: pointValue, pointsPerUnit: pointsPerUnit}, nil
}

func (r ExchangeRate) ToMoney(points int64) decimal.Decimal {
	return money.Round(r.pointValue.Mul(decimal.NewFromInt(points)))
}

// EarnedFor awards points per whole currency unit paid.
func (r ExchangeRate) EarnedFor(payable decimal.Decimal) int64 {
	return payable.Floor().IntPart() * r.pointsPerUnit
}

func (r ExchangeRate) PointValue() decimal.Decimal { return r.pointValue }

type TransactionKind string

const (
	KindEarn   TransactionKind = "earn"
	KindSpend  TransactionKind = "spend"
	KindRefund TransactionKind = "refund"
)

type Transaction struct {
	ID           uuid.UUID
	Identity     uuid.UUID
	Kind         TransactionKind
	Points       int64
	Amount       decimal.Decimal
	BalanceAfter int64
	OrderID      *uuid.UUID
	CreatedAt    time.Time
}

// Redemption is a spend transaction that can be attached to one order.
type Redemption struct {
	ID             uuid.UUID
	Identity       uuid.UUID
	Points         int64
	DiscountAmount decimal.Decimal
	BalanceAfter   int64
	OrderID        *uuid.UUID
	CreatedAt      time.Time
}

func (r Redemption) IsAttached() bool {
	return r.OrderID != nil
}

// TotalPayable is subtotal minus every discount, never below zero.
func TotalPayable(subtotal decimal.Decimal, discounts ...decimal.Decimal) decimal.Decimal {
	total := subtotal
	for _, d := range discounts {
		total = total.Sub(d)
	}
	return money.Round(money.NonNegative(total))
}
