package repository

import (
	"context"

	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/infra/db"

	"github.com/google/uuid"
)

const (
	reserveStockSQL = `
UPDATE inventory SET available = available - $3, updated_at = now()
WHERE item_id = $1 AND size = $2 AND available >= $3`

	stockTrackedSQL = `SELECT EXISTS (SELECT 1 FROM inventory WHERE item_id = $1 AND size = $2)`

	releaseStockSQL = `
UPDATE inventory SET available = available + $3, updated_at = now()
WHERE item_id = $1 AND size = $2`
)

type InventoryRepository struct {
	db db.DBTX
}

func NewInventoryRepository(db db.DBTX) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// Reserve is a conditional decrement, so concurrent orders can never oversell.
func (r *InventoryRepository) Reserve(ctx context.Context, itemID uuid.UUID, size string, quantity int) (bool, error) {
	tag, err := r.db.Exec(ctx, reserveStockSQL, itemID, size, quantity)
	if err != nil {
		return false, infra.WrapRepoErr("failed to reserve stock", err)
	}
	if tag.RowsAffected() == 1 {
		return true, nil
	}

	var tracked bool
	if err := r.db.QueryRow(ctx, stockTrackedSQL, itemID, size).Scan(&tracked); err != nil {
		return false, infra.WrapRepoErr("failed to check stock tracking", err)
	}
	return !tracked, nil
}

func (r *InventoryRepository) Release(ctx context.Context, itemID uuid.UUID, size string, quantity int) error {
	if _, err := r.db.Exec(ctx, releaseStockSQL, itemID, size, quantity); err != nil {
		return infra.WrapRepoErr("failed to release stock", err)
	}
	return nil
}
