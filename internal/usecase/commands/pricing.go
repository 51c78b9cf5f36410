package commands

import (
	"context"

	"storefront-checkout/internal/domain/cart"
	"storefront-checkout/internal/domain/catalog"
	"storefront-checkout/internal/domain/order"
	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/pkg/money"
	"storefront-checkout/internal/pkg/retry"
	"storefront-checkout/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrUnknownItem = errs.New("cart references an item that is not in the catalog")

type PricedCart struct {
	Lines    []order.Line
	Subtotal decimal.Decimal
}

// Pricer reprices cart lines from the catalog. Only item id, size and
// quantity are taken from the cart; prices held in the lines are ignored.
type Pricer struct {
	catalog shared.CatalogReader
	policy  retry.Policy
}

func NewPricer(catalog shared.CatalogReader, cfg config.Config) *Pricer {
	return &Pricer{catalog: catalog, policy: readPolicy(cfg)}
}

func (p *Pricer) Price(ctx context.Context, lines []cart.Line) (*PricedCart, error) {
	items, err := p.items(ctx, lines)
	if err != nil {
		return nil, err
	}

	priced := &PricedCart{Lines: make([]order.Line, 0, len(lines)), Subtotal: money.Zero}
	for _, l := range lines {
		item := items[l.ItemID()]
		unit := money.Round(item.UnitPrice(l.Size()))
		total := money.Round(unit.Mul(decimal.NewFromInt(int64(l.Quantity()))))
		priced.Lines = append(priced.Lines, order.Line{
			ItemID:    item.ID(),
			Kind:      item.Kind(),
			Name:      item.Name(),
			Size:      l.Size(),
			Quantity:  l.Quantity(),
			UnitPrice: unit,
			LineTotal: total,
		})
		priced.Subtotal = priced.Subtotal.Add(total)
	}
	priced.Subtotal = money.Round(priced.Subtotal)
	return priced, nil
}

func (p *Pricer) items(ctx context.Context, lines []cart.Line) (map[uuid.UUID]catalog.Item, error) {
	ids := make([]uuid.UUID, 0, len(lines))
	seen := make(map[uuid.UUID]struct{}, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.ItemID()]; ok {
			continue
		}
		seen[l.ItemID()] = struct{}{}
		ids = append(ids, l.ItemID())
	}

	var items map[uuid.UUID]catalog.Item
	err := retry.Do(ctx, p.policy, "catalog prices", func(ctx context.Context) error {
		found, err := p.catalog.ItemsByIDs(ctx, ids)
		if err != nil {
			return transient(err)
		}
		items = found
		return nil
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to load catalog prices")
	}

	for _, id := range ids {
		if _, ok := items[id]; !ok {
			return nil, errs.Mark(errs.New("unknown item "+id.String()), ErrUnknownItem)
		}
	}
	return items, nil
}
