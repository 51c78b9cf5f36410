package commands

import (
	"context"

	"storefront-checkout/internal/domain/cart"
	"storefront-checkout/internal/domain/coupon"
	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/pkg/clock"
	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/pkg/retry"
	"storefront-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

// CouponEngine evaluates a code against a cart using only catalog prices.
type CouponEngine struct {
	coupons shared.CouponReader
	pricer  *Pricer
	clock   clock.Clock
	policy  retry.Policy
}

func NewCouponEngine(coupons shared.CouponReader, pricer *Pricer, clk clock.Clock, cfg config.Config) *CouponEngine {
	return &CouponEngine{
		coupons: coupons,
		pricer:  pricer,
		clock:   clk,
		policy:  readPolicy(cfg),
	}
}

// Apply checks, in order: existence, active flag, validity window, minimum
// order, global cap, identity requirements, then computes the discount.
func (e *CouponEngine) Apply(ctx context.Context, code string, lines []cart.Line, identity *uuid.UUID) (*coupon.Evaluation, error) {
	normalized, err := coupon.NewCouponCode(code)
	if err != nil {
		return nil, coupon.ErrInvalidCoupon
	}

	c, err := e.findCoupon(ctx, normalized)
	if err != nil {
		return nil, err
	}

	if err := c.CheckWindow(e.clock.Now()); err != nil {
		return nil, err
	}

	priced, err := e.pricer.Price(ctx, lines)
	if err != nil {
		return nil, err
	}
	subtotal := priced.Subtotal
	if err := c.CheckMinimum(subtotal); err != nil {
		return nil, err
	}

	if err := c.CheckUsageCap(); err != nil {
		return nil, err
	}

	if c.RequiresIdentity() {
		if identity == nil {
			return nil, coupon.ErrLoginRequired
		}
		var history coupon.History
		err := retry.Do(ctx, e.policy, "coupon history", func(ctx context.Context) error {
			h, err := e.coupons.History(ctx, c.ID(), *identity)
			if err != nil {
				return transient(err)
			}
			history = h
			return nil
		})
		if err != nil {
			return nil, errs.Wrap(err, "failed to read coupon history")
		}
		if err := c.CheckHistory(history); err != nil {
			return nil, err
		}
	}

	eval := c.Evaluate(subtotal)
	return &eval, nil
}

func (e *CouponEngine) findCoupon(ctx context.Context, code coupon.Code) (*coupon.Coupon, error) {
	var found *coupon.Coupon
	err := retry.Do(ctx, e.policy, "coupon lookup", func(ctx context.Context) error {
		c, err := e.coupons.FindByCode(ctx, code)
		if err != nil {
			return transient(err)
		}
		found = c
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, coupon.ErrInvalidCoupon
		}
		return nil, errs.Wrap(err, "failed to look up coupon")
	}
	return found, nil
}
