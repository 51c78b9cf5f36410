package components

import (
	"context"

	"storefront-checkout/internal/handler"
	"storefront-checkout/internal/handler/api"
	"storefront-checkout/internal/handler/middleware"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewHealthHandler,
		api.NewCartHandler,
		api.NewCouponHandler,
		api.NewLoyaltyHandler,
		api.NewCheckoutHandler,
		api.NewOrderHandler,
		middleware.NewAuthMiddleware,
		middleware.NewSessionMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHealthHandler(pool *pgxpool.Pool, client *redis.Client) *api.HealthHandler {
	return api.NewHealthHandler(map[string]api.Pinger{
		"database": pool,
		"redis":    redisPinger{client},
	})
}

type redisPinger struct {
	client *redis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}
