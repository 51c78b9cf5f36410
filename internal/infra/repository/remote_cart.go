package repository

import (
	"context"

	"storefront-checkout/internal/domain/cart"
	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/infra/db"
	"storefront-checkout/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	findRemoteLineSQL = `
SELECT id, identity, item_id, size, quantity, updated_at
FROM remote_cart_lines
WHERE identity = $1 AND item_id = $2 AND size = $3`

	incrementRemoteLineSQL = `
UPDATE remote_cart_lines SET quantity = quantity + $2, updated_at = now() WHERE id = $1`

	insertRemoteLineSQL = `
INSERT INTO remote_cart_lines (id, identity, item_id, size, quantity) VALUES ($1, $2, $3, $4, $5)`

	listRemoteLinesSQL = `
SELECT id, identity, item_id, size, quantity, updated_at
FROM remote_cart_lines
WHERE identity = $1
ORDER BY updated_at, id`
)

// RemoteCartRepository is the server-side cart keyed by identity.
type RemoteCartRepository struct {
	db db.DBTX
}

func NewRemoteCartRepository(db db.DBTX) *RemoteCartRepository {
	return &RemoteCartRepository{db: db}
}

func (r *RemoteCartRepository) FindLine(ctx context.Context, identity, itemID uuid.UUID, size string) (*cart.RemoteLine, error) {
	var l cart.RemoteLine
	err := r.db.QueryRow(ctx, findRemoteLineSQL, identity, itemID, size).Scan(
		&l.ID, &l.Identity, &l.ItemID, &l.Size, &l.Quantity, &l.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("remote cart line not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find remote cart line", err)
	}
	return &l, nil
}

func (r *RemoteCartRepository) IncrementQuantity(ctx context.Context, lineID uuid.UUID, delta int) error {
	tag, err := r.db.Exec(ctx, incrementRemoteLineSQL, lineID, delta)
	if err != nil {
		return infra.WrapRepoErr("failed to increment remote cart line", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("remote cart line not found", nil, infra.KindNotFound)
	}
	return nil
}

// InsertLine fails with KindDuplicateKey when a concurrent merge created the line first.
func (r *RemoteCartRepository) InsertLine(ctx context.Context, identity, itemID uuid.UUID, size string, quantity int) error {
	if _, err := r.db.Exec(ctx, insertRemoteLineSQL, uuid.New(), identity, itemID, size, quantity); err != nil {
		return infra.WrapRepoErr("failed to insert remote cart line", err)
	}
	return nil
}

func (r *RemoteCartRepository) ListByIdentity(ctx context.Context, identity uuid.UUID) ([]cart.RemoteLine, error) {
	rows, err := r.db.Query(ctx, listRemoteLinesSQL, identity)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list remote cart", err)
	}
	defer rows.Close()

	var lines []cart.RemoteLine
	for rows.Next() {
		var l cart.RemoteLine
		if err := rows.Scan(&l.ID, &l.Identity, &l.ItemID, &l.Size, &l.Quantity, &l.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan remote cart line", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate remote cart", err)
	}
	return lines, nil
}
