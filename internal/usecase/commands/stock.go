package commands

import (
	"context"

	"storefront-checkout/internal/domain/cart"
	"storefront-checkout/internal/domain/stock"
	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/pkg/retry"
	"storefront-checkout/internal/usecase/shared"

	"golang.org/x/sync/errgroup"
)

var ErrStockCheckFailed = errs.New("could not verify stock")

// StockValidator compares each line with current inventory. Results are never cached.
type StockValidator struct {
	inventory   shared.InventoryReader
	concurrency int
	policy      retry.Policy
}

func NewStockValidator(inventory shared.InventoryReader, cfg config.Config) *StockValidator {
	n := cfg.Checkout.StockConcurrency
	if n < 1 {
		n = 1
	}
	return &StockValidator{
		inventory:   inventory,
		concurrency: n,
		policy:      readPolicy(cfg),
	}
}

func (v *StockValidator) Validate(ctx context.Context, lines []cart.Line) (stock.Results, error) {
	results := make(stock.Results, len(lines))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(v.concurrency)
	for i, l := range lines {
		g.Go(func() error {
			var (
				available int
				found     bool
			)
			err := retry.Do(gctx, v.policy, "inventory lookup", func(ctx context.Context) error {
				a, f, err := v.inventory.Available(ctx, l.ItemID(), l.Size())
				if err != nil {
					return transient(err)
				}
				available, found = a, f
				return nil
			})
			if err != nil {
				return errs.Mark(err, ErrStockCheckFailed)
			}
			results[i] = stock.Evaluate(l.ItemID(), l.Size(), l.Quantity(), available, found)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
