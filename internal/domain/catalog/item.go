package catalog

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidItemID    = errors.New("item id is required")
	ErrInvalidItemKind  = errors.New("item kind must be product or bundle")
	ErrInvalidItemName  = errors.New("item name is required")
	ErrNegativePrice    = errors.New("price cannot be negative")
	ErrDuplicateSize    = errors.New("size listed more than once")
	ErrItemNotAvailable = errors.New("item not available")
)

type Kind string

const (
	KindProduct Kind = "product"
	KindBundle  Kind = "bundle"
)

func (k Kind) IsValid() bool {
	return k == KindProduct || k == KindBundle
}

type SizePrice struct {
	Size  string
	Price decimal.Decimal
}

// Item is a purchasable product or bundle with its price table.
type Item struct {
	id        uuid.UUID
	kind      Kind
	name      string
	basePrice decimal.Decimal
	sizes     []SizePrice
}

func NewItem(id uuid.UUID, kind Kind, name string, basePrice decimal.Decimal, sizes []SizePrice) (Item, error) {
	if id == uuid.Nil {
		return Item{}, ErrInvalidItemID
	}
	if !kind.IsValid() {
		return Item{}, ErrInvalidItemKind
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Item{}, ErrInvalidItemName
	}
	if basePrice.IsNegative() {
		return Item{}, ErrNegativePrice
	}

	seen := make(map[string]struct{}, len(sizes))
	table := make([]SizePrice, 0, len(sizes))
	for _, sp := range sizes {
		if sp.Price.IsNegative() {
			return Item{}, ErrNegativePrice
		}
		if _, dup := seen[sp.Size]; dup {
			return Item{}, ErrDuplicateSize
		}
		seen[sp.Size] = struct{}{}
		table = append(table, sp)
	}

	return Item{
		id:        id,
		kind:      kind,
		name:      name,
		basePrice: basePrice,
		sizes:     table,
	}, nil
}

// UnitPrice resolves the price for size, falling back to the base price
// when the size is not in the item's table.
func (i Item) UnitPrice(size string) decimal.Decimal {
	for _, sp := range i.sizes {
		if sp.Size == size {
			return sp.Price
		}
	}
	return i.basePrice
}

func (i Item) HasSize(size string) bool {
	for _, sp := range i.sizes {
		if sp.Size == size {
			return true
		}
	}
	return false
}

func (i Item) ID() uuid.UUID              { return i.id }
func (i Item) Kind() Kind                 { return i.kind }
func (i Item) Name() string               { return i.name }
func (i Item) BasePrice() decimal.Decimal { return i.basePrice }

func (i Item) Sizes() []SizePrice {
	out := make([]SizePrice, len(i.sizes))
	copy(out, i.sizes)
	return out
}
