package bootstrap

import (
	"context"
	"log/slog"

	"storefront-checkout/internal/infra/db"
	"storefront-checkout/internal/infra/publisher"
	"storefront-checkout/internal/infra/repository"
	"storefront-checkout/internal/pkg/config"

	"go.uber.org/fx"
)

var KafkaModule = fx.Module("kafka",
	fx.Provide(
		NewOutboxPoller,
	),
	fx.Invoke(func(*publisher.OutboxPoller) {}),
)

// NewOutboxPoller returns nil when no brokers are configured; events then
// stay in the outbox table until a publisher runs.
func NewOutboxPoller(lc fx.Lifecycle, cfg config.Config, dbtx db.DBTX) *publisher.OutboxPoller {
	brokers := make([]string, 0, len(cfg.Kafka.Brokers))
	for _, b := range cfg.Kafka.Brokers {
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	if len(brokers) == 0 {
		slog.Info("outbox publisher disabled: no Kafka brokers configured")
		return nil
	}

	kcfg := cfg.Kafka
	kcfg.Brokers = brokers
	poller := publisher.NewOutboxPoller(repository.NewOutboxRepository(dbtx), publisher.NewKafkaWriter(kcfg), kcfg)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			poller.Start()
			slog.Info("outbox publisher started", "topic", kcfg.Topic, "brokers", brokers)
			return nil
		},
		OnStop: func(_ context.Context) error {
			return poller.Stop()
		},
	})
	return poller
}
