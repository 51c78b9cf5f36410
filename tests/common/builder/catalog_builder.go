//go:build unit || e2e

package builder

import (
	"storefront-checkout/internal/domain/catalog"
	"storefront-checkout/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ItemBuilder struct {
	id        uuid.UUID
	kind      catalog.Kind
	name      string
	basePrice decimal.Decimal
	sizes     []catalog.SizePrice
}

// NewItemBuilder defaults to the "Velvet Rose" eau de parfum sold in 50ml at 120.00.
func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		id:        uuid.New(),
		kind:      catalog.KindProduct,
		name:      "Velvet Rose",
		basePrice: money.MustParse("95.00"),
		sizes: []catalog.SizePrice{
			{Size: "50ml", Price: money.MustParse("120.00")},
			{Size: "100ml", Price: money.MustParse("180.00")},
		},
	}
}

func (b *ItemBuilder) WithID(id uuid.UUID) *ItemBuilder {
	b.id = id
	return b
}

func (b *ItemBuilder) WithName(name string) *ItemBuilder {
	b.name = name
	return b
}

func (b *ItemBuilder) WithKind(kind catalog.Kind) *ItemBuilder {
	b.kind = kind
	return b
}

func (b *ItemBuilder) WithBasePrice(price string) *ItemBuilder {
	b.basePrice = money.MustParse(price)
	return b
}

func (b *ItemBuilder) WithSize(size, price string) *ItemBuilder {
	b.sizes = append(b.sizes, catalog.SizePrice{Size: size, Price: money.MustParse(price)})
	return b
}

func (b *ItemBuilder) WithoutSizes() *ItemBuilder {
	b.sizes = nil
	return b
}

func (b *ItemBuilder) Build() catalog.Item {
	item, err := catalog.NewItem(b.id, b.kind, b.name, b.basePrice, b.sizes)
	if err != nil {
		panic("invalid item fixture: " + err.Error())
	}
	return item
}
