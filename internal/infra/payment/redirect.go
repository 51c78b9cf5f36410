package payment

import (
	"context"
	"net/url"

	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// RedirectProvider builds the hosted payment page URL for card orders.
// The provider calls back with the order number once the shopper returns.
type RedirectProvider struct {
	base      *url.URL
	returnURL string
}

func NewRedirectProvider(cfg config.PaymentConfig) (*RedirectProvider, error) {
	base, err := url.Parse(cfg.RedirectBaseURL)
	if err != nil {
		return nil, errs.Wrap(err, "invalid payment redirect base url")
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, errs.New("payment redirect base url must be absolute")
	}
	return &RedirectProvider{base: base, returnURL: cfg.ReturnURL}, nil
}

func (p *RedirectProvider) RedirectURL(ctx context.Context, orderNumber string, amount decimal.Decimal) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if orderNumber == "" {
		return "", errs.New("order number is required for payment redirect")
	}

	u := *p.base
	q := u.Query()
	q.Set("order", orderNumber)
	q.Set("amount", amount.StringFixed(2))
	if p.returnURL != "" {
		q.Set("return", p.returnURL)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}
