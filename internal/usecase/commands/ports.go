package commands

import (
	"context"

	"storefront-checkout/internal/domain/cart"
	"storefront-checkout/internal/domain/coupon"
	"storefront-checkout/internal/domain/loyalty"
	"storefront-checkout/internal/domain/stock"
	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/pkg/retry"
	"storefront-checkout/internal/usecase/cartstore"

	"github.com/google/uuid"
)

type CartCommands interface {
	AddItem(ctx context.Context, session *cartstore.Session, itemID uuid.UUID, size string, quantity int) error
	RemoteCart(ctx context.Context, identity uuid.UUID) ([]cart.RemoteLine, error)
}

type IdentityObserver interface {
	Observe(ctx context.Context, session *cartstore.Session, identity *uuid.UUID) bool
}

type StockChecker interface {
	Validate(ctx context.Context, lines []cart.Line) (stock.Results, error)
}

type CouponApplier interface {
	Apply(ctx context.Context, code string, lines []cart.Line, identity *uuid.UUID) (*coupon.Evaluation, error)
}

type LoyaltyCommands interface {
	Redeem(ctx context.Context, identity uuid.UUID, points int64) (*loyalty.Redemption, error)
	Balance(ctx context.Context, identity uuid.UUID) (int64, error)
	History(ctx context.Context, identity uuid.UUID, limit int) ([]loyalty.Transaction, error)
	Rate() loyalty.ExchangeRate
}

type CheckoutCommands interface {
	PlaceOrder(ctx context.Context, session *cartstore.Session, in PlaceOrderInput) (*PlaceOrderResult, error)
	CompletePayment(ctx context.Context, session *cartstore.Session, orderNumber string, success bool) (*PaymentResult, error)
}

type PreviewCommands interface {
	Preview(ctx context.Context, session *cartstore.Session, in PreviewInput) (*PreviewResult, error)
}

func readPolicy(cfg config.Config) retry.Policy {
	p := retry.DefaultPolicy()
	if cfg.Checkout.RetryInitial > 0 {
		p.InitialInterval = cfg.Checkout.RetryInitial
	}
	p.MaxRetries = cfg.Checkout.RetryMax
	return p
}

// transient lets retry.Do repeat only infrastructure failures.
func transient(err error) error {
	if err == nil || infra.IsKind(err, infra.KindDBFailure) {
		return err
	}
	return retry.Permanent(err)
}
