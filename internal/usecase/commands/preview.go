package commands

import (
	"context"
	"strings"

	"storefront-checkout/internal/domain/cart"
	"storefront-checkout/internal/domain/coupon"
	"storefront-checkout/internal/domain/loyalty"
	"storefront-checkout/internal/domain/order"
	"storefront-checkout/internal/domain/stock"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/pkg/money"
	"storefront-checkout/internal/usecase/cartstore"
	"storefront-checkout/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var ErrStaleSnapshot = errs.New("cart changed while the preview was computed")

type PreviewInput struct {
	Identity            *uuid.UUID
	CouponCode          string
	LoyaltyRedemptionID *uuid.UUID
}

// PreviewResult is advisory. Per-check failures are reported in their own
// fields so one failing check does not hide the others.
type PreviewResult struct {
	Version      uint64
	Lines        []cart.Line
	Stock        stock.Results
	StockError   error
	Coupon       *coupon.Evaluation
	CouponError  error
	LoyaltyError error
	Totals       order.Totals
}

func (r *PreviewResult) CanSubmit() bool {
	return len(r.Lines) > 0 && r.StockError == nil && !r.Stock.HasBlockingIssues()
}

type CheckoutPreview struct {
	stock   StockChecker
	coupons CouponApplier
	pricer  *Pricer
	loyalty shared.LoyaltyReader
}

func NewCheckoutPreview(stockChecker StockChecker, coupons CouponApplier, pricer *Pricer, loyaltyReader shared.LoyaltyReader) *CheckoutPreview {
	return &CheckoutPreview{
		stock:   stockChecker,
		coupons: coupons,
		pricer:  pricer,
		loyalty: loyaltyReader,
	}
}

// Preview runs the stock and coupon checks concurrently against one cart
// snapshot and discards the outcome if the cart moved on meanwhile.
func (p *CheckoutPreview) Preview(ctx context.Context, session *cartstore.Session, in PreviewInput) (*PreviewResult, error) {
	snap := session.Cart().Snapshot()
	res := &PreviewResult{
		Version: snap.Version,
		Lines:   snap.Lines,
		Totals: order.Totals{
			Subtotal:        money.Zero,
			CouponDiscount:  money.Zero,
			LoyaltyDiscount: money.Zero,
			Payable:         money.Zero,
		},
	}
	if len(snap.Lines) == 0 {
		return res, nil
	}

	var priced *PricedCart
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		results, err := p.stock.Validate(gctx, snap.Lines)
		if err != nil {
			res.StockError = err
			return nil
		}
		res.Stock = results
		return nil
	})
	g.Go(func() error {
		pc, err := p.pricer.Price(gctx, snap.Lines)
		if err != nil {
			return err
		}
		priced = pc
		return nil
	})
	if strings.TrimSpace(in.CouponCode) != "" {
		g.Go(func() error {
			eval, err := p.coupons.Apply(gctx, in.CouponCode, snap.Lines, in.Identity)
			if err != nil {
				res.CouponError = err
				return nil
			}
			res.Coupon = eval
			return nil
		})
	}
	if in.LoyaltyRedemptionID != nil {
		g.Go(func() error {
			red, err := ownedRedemption(gctx, p.loyalty, in.Identity, *in.LoyaltyRedemptionID)
			if err == nil && red.IsAttached() {
				err = ErrRedemptionNotUsable
			}
			if err != nil {
				res.LoyaltyError = err
				return nil
			}
			res.Totals.LoyaltyDiscount = red.DiscountAmount
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if session.Cart().Version() != snap.Version {
		return nil, ErrStaleSnapshot
	}

	res.Totals.Subtotal = priced.Subtotal
	if res.Coupon != nil {
		res.Totals.CouponDiscount = res.Coupon.DiscountAmount
		res.Totals.ShippingWaived = res.Coupon.ShippingWaived
	}
	res.Totals.Payable = loyalty.TotalPayable(res.Totals.Subtotal, res.Totals.CouponDiscount, res.Totals.LoyaltyDiscount)
	return res, nil
}
