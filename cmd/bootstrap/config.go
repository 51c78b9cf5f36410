package bootstrap

import (
	"log/slog"

	"storefront-checkout/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logEffectiveConfig),
)

// Secrets and DSNs stay out of the log.
func logEffectiveConfig(logger *slog.Logger, cfg config.Config) {
	logger.Info("configuration loaded",
		slog.String("port", cfg.Server.Port),
		slog.String("db_host", cfg.DB.Host),
		slog.Bool("db_auto_migrate", cfg.DB.AutoMigrate),
		slog.String("redis_addr", cfg.Redis.Addr),
		slog.Bool("outbox_publisher", len(cfg.Kafka.Brokers) > 0),
		slog.Bool("checkout_require_auth", cfg.Checkout.RequireAuth),
		slog.String("loyalty_point_value", cfg.Loyalty.PointValue.String()),
		slog.Duration("session_idle_ttl", cfg.Checkout.SessionIdleTTL),
	)
}
