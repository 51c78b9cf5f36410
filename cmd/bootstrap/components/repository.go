package components

import (
	"storefront-checkout/internal/infra/gateway"
	"storefront-checkout/internal/infra/localstore"
	"storefront-checkout/internal/infra/payment"
	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// RepositoryModule wires the non-relational adapters behind the use case ports.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			gateway.NewOrderGateway,
			fx.As(new(shared.OrderGateway)),
		),
		fx.Annotate(
			NewLocalCartStorage,
			fx.As(new(shared.LocalCartStorage)),
		),
		fx.Annotate(
			NewPaymentProvider,
			fx.As(new(shared.PaymentProvider)),
		),
	),
)

func NewLocalCartStorage(client *redis.Client, cfg config.Config) *localstore.RedisCartStorage {
	return localstore.NewRedisCartStorage(client, cfg.Redis.CartTTL)
}

func NewPaymentProvider(cfg config.Config) (*payment.RedirectProvider, error) {
	return payment.NewRedirectProvider(cfg.Payment)
}
