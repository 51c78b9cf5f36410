package order

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAddress       = errors.New("shipping address is incomplete")
	ErrInvalidPaymentMethod = errors.New("unsupported payment method")
	ErrGiftMessageTooLong   = errors.New("gift message is too long")
	ErrInvalidTransition    = errors.New("order status transition not allowed")
)

const MaxGiftMessageLength = 300

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

var transitions = map[Status][]Status{
	StatusPending:    {StatusProcessing, StatusShipped, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered},
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type PaymentMethod string

const (
	// PaymentCard hands off to the external payment page.
	PaymentCard PaymentMethod = "card"
	// PaymentCOD is cash on delivery; the order is confirmed immediately.
	PaymentCOD PaymentMethod = "cod"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(strings.ToLower(strings.TrimSpace(s))) {
	case PaymentCard:
		return PaymentCard, nil
	case PaymentCOD:
		return PaymentCOD, nil
	default:
		return "", ErrInvalidPaymentMethod
	}
}

func (m PaymentMethod) Redirects() bool {
	return m == PaymentCard
}

type Address struct {
	RecipientName string `json:"recipientName"`
	Phone         string `json:"phone"`
	Line1         string `json:"line1"`
	Line2         string `json:"line2,omitempty"`
	City          string `json:"city"`
	Region        string `json:"region,omitempty"`
	PostalCode    string `json:"postalCode"`
	Country       string `json:"country"`
}

// Validate lists every missing required field instead of stopping at the first.
func (a Address) Validate() error {
	var missing []string
	required := []struct {
		name  string
		value string
	}{
		{"recipientName", a.RecipientName},
		{"phone", a.Phone},
		{"line1", a.Line1},
		{"city", a.City},
		{"postalCode", a.PostalCode},
		{"country", a.Country},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &AddressError{Missing: missing}
	}
	return nil
}

type AddressError struct {
	Missing []string
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("%s: missing %s", ErrInvalidAddress.Error(), strings.Join(e.Missing, ", "))
}

func (e *AddressError) Is(target error) bool {
	return target == ErrInvalidAddress
}

type Gift struct {
	Message string `json:"message,omitempty"`
	Wrap    bool   `json:"wrap"`
}

func (g *Gift) Validate() error {
	if g == nil {
		return nil
	}
	if len([]rune(g.Message)) > MaxGiftMessageLength {
		return ErrGiftMessageTooLong
	}
	return nil
}

type Totals struct {
	Subtotal        decimal.Decimal
	CouponDiscount  decimal.Decimal
	LoyaltyDiscount decimal.Decimal
	Payable         decimal.Decimal
	ShippingWaived  bool
}

func (t Totals) TotalDiscount() decimal.Decimal {
	return t.CouponDiscount.Add(t.LoyaltyDiscount)
}

const numberAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// NewNumber returns a human-readable order number such as ORD-20260510-7KQ2MX.
func NewNumber(now time.Time) (string, error) {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	suffix := make([]byte, len(buf))
	for i, b := range buf {
		suffix[i] = numberAlphabet[int(b)%len(numberAlphabet)]
	}
	return fmt.Sprintf("ORD-%s-%s", now.UTC().Format("20060102"), suffix), nil
}
