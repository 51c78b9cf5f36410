package commands

import (
	"context"

	"storefront-checkout/internal/domain/cart"
	"storefront-checkout/internal/domain/catalog"
	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/usecase/cartstore"
	"storefront-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

type cartUseCaseImpl struct {
	catalog shared.CatalogReader
	remote  shared.RemoteCartRepository
}

func NewCartUseCase(catalog shared.CatalogReader, remote shared.RemoteCartRepository) CartCommands {
	return &cartUseCaseImpl{catalog: catalog, remote: remote}
}

// AddItem snapshots the catalog price into the device cart.
func (u *cartUseCaseImpl) AddItem(ctx context.Context, session *cartstore.Session, itemID uuid.UUID, size string, quantity int) error {
	if quantity <= 0 {
		quantity = 1
	}
	item, err := u.catalog.ItemByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return catalog.ErrItemNotAvailable
		}
		return errs.Wrap(err, "failed to load catalog item")
	}
	return session.Cart().Add(item, size, quantity)
}

func (u *cartUseCaseImpl) RemoteCart(ctx context.Context, identity uuid.UUID) ([]cart.RemoteLine, error) {
	return u.remote.ListByIdentity(ctx, identity)
}
