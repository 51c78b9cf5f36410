package readstore

import (
	"context"

	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/infra/db"
	"storefront-checkout/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const availableSQL = `SELECT available FROM inventory WHERE item_id = $1 AND size = $2`

type InventoryReadStore struct {
	db db.DBTX
}

func NewInventoryReadStore(db db.DBTX) *InventoryReadStore {
	return &InventoryReadStore{db: db}
}

func (r *InventoryReadStore) Available(ctx context.Context, itemID uuid.UUID, size string) (int, bool, error) {
	var available int
	err := r.db.QueryRow(ctx, availableSQL, itemID, size).Scan(&available)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, false, nil
		}
		return 0, false, infra.WrapRepoErr("failed to read inventory", err)
	}
	return available, true, nil
}
