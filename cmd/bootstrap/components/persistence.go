package components

import (
	"storefront-checkout/internal/infra/readstore"
	"storefront-checkout/internal/infra/repository"
	"storefront-checkout/internal/infra/uow"
	"storefront-checkout/internal/usecase/queries"
	"storefront-checkout/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	repositoryModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Catalog
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(shared.CatalogReader)),
		),
		// Inventory
		fx.Annotate(
			readstore.NewInventoryReadStore,
			fx.As(new(shared.InventoryReader)),
		),
		// Coupon
		fx.Annotate(
			readstore.NewCouponReadStore,
			fx.As(new(shared.CouponReader)),
		),
		// Loyalty
		fx.Annotate(
			readstore.NewLoyaltyReadStore,
			fx.As(new(shared.LoyaltyReader)),
		),
		// Order
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// Remote cart
		fx.Annotate(
			repository.NewRemoteCartRepository,
			fx.As(new(shared.RemoteCartRepository)),
		),
	),
)
