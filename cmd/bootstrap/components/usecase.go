package components

import (
	"context"
	"log/slog"
	"time"

	"storefront-checkout/internal/pkg/clock"
	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/usecase"
	"storefront-checkout/internal/usecase/cartstore"
	"storefront-checkout/internal/usecase/commands"
	"storefront-checkout/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
	fx.Invoke(registerSessionLifecycle),
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	cartstore.NewRegistry,
	commands.NewPricer,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCartUseCase,
		commands.NewIdentityBridge,
		func(b *commands.IdentityBridge) commands.IdentityObserver { return b },
		fx.Annotate(
			commands.NewStockValidator,
			fx.As(new(commands.StockChecker)),
		),
		fx.Annotate(
			commands.NewCouponEngine,
			fx.As(new(commands.CouponApplier)),
		),
		fx.Annotate(
			commands.NewLoyaltyLedger,
			fx.As(new(commands.LoyaltyCommands)),
		),
		fx.Annotate(
			commands.NewOrderPlacer,
			fx.As(new(commands.CheckoutCommands)),
		),
		fx.Annotate(
			commands.NewCheckoutPreview,
			fx.As(new(commands.PreviewCommands)),
		),
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewOrderQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// registerSessionLifecycle evicts idle device sessions periodically and, on
// shutdown, waits for pending cart writes and guest cart merges.
func registerSessionLifecycle(lc fx.Lifecycle, registry *cartstore.Registry, bridge *commands.IdentityBridge, cfg config.Config) {
	interval := cfg.Checkout.SessionIdleTTL / 2
	if interval < time.Minute {
		interval = time.Minute
	}
	stop := make(chan struct{})
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(interval)
				defer ticker.Stop()
				for {
					select {
					case <-stop:
						return
					case <-ticker.C:
						if n := registry.Sweep(); n > 0 {
							slog.Debug("evicted idle device sessions", "count", n, "remaining", registry.Len())
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			close(stop)
			<-done
			bridge.Wait()
			registry.Wait()
			return nil
		},
	})
}
