package cart

import (
	"errors"
	"time"

	"storefront-checkout/internal/domain/catalog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrInvalidItem     = errors.New("cart line requires an item")
)

// Key identifies a line: one entry per (item, size).
type Key struct {
	ItemID uuid.UUID
	Size   string
}

// Line holds the item as it was priced when the shopper added it.
type Line struct {
	item     catalog.Item
	size     string
	quantity int
	addedAt  time.Time
}

func NewLine(item catalog.Item, size string, quantity int, addedAt time.Time) (Line, error) {
	if item.ID() == uuid.Nil {
		return Line{}, ErrInvalidItem
	}
	if quantity < 1 {
		return Line{}, ErrInvalidQuantity
	}
	return Line{
		item:     item,
		size:     size,
		quantity: quantity,
		addedAt:  addedAt,
	}, nil
}

func (l Line) Key() Key {
	return Key{ItemID: l.item.ID(), Size: l.size}
}

func (l Line) UnitPrice() decimal.Decimal {
	return l.item.UnitPrice(l.size)
}

func (l Line) Total() decimal.Decimal {
	return l.UnitPrice().Mul(decimal.NewFromInt(int64(l.quantity)))
}

func (l Line) Item() catalog.Item { return l.item }
func (l Line) ItemID() uuid.UUID  { return l.item.ID() }
func (l Line) Size() string       { return l.size }
func (l Line) Quantity() int      { return l.quantity }
func (l Line) AddedAt() time.Time { return l.addedAt }

// RemoteLine is a row of the server-side cart kept per identity.
type RemoteLine struct {
	ID        uuid.UUID
	Identity  uuid.UUID
	ItemID    uuid.UUID
	Size      string
	Quantity  int
	UpdatedAt time.Time
}
