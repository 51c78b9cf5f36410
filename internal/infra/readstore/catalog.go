package readstore

import (
	"context"

	"storefront-checkout/internal/domain/catalog"
	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/infra/db"
	"storefront-checkout/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const itemsByIDsSQL = `
SELECT i.id, i.kind, i.name, i.base_price, s.size, s.price
FROM catalog_items i
LEFT JOIN item_sizes s ON s.item_id = i.id
WHERE i.id = ANY($1::uuid[])
ORDER BY i.id, s.size`

type CatalogReadStore struct {
	db db.DBTX
}

func NewCatalogReadStore(db db.DBTX) *CatalogReadStore {
	return &CatalogReadStore{db: db}
}

func (r *CatalogReadStore) ItemByID(ctx context.Context, id uuid.UUID) (catalog.Item, error) {
	items, err := r.ItemsByIDs(ctx, []uuid.UUID{id})
	if err != nil {
		return catalog.Item{}, err
	}
	item, ok := items[id]
	if !ok {
		return catalog.Item{}, infra.WrapRepoErr("catalog item not found", nil, infra.KindNotFound)
	}
	return item, nil
}

// ItemsByIDs omits ids with no catalog row; callers decide whether that is an error.
func (r *CatalogReadStore) ItemsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]catalog.Item, error) {
	result := make(map[uuid.UUID]catalog.Item, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = id.String()
	}

	rows, err := r.db.Query(ctx, itemsByIDsSQL, keys)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query catalog items", err)
	}
	defer rows.Close()

	type itemRow struct {
		kind  string
		name  string
		base  decimal.Decimal
		sizes []catalog.SizePrice
	}
	order := make([]uuid.UUID, 0, len(ids))
	collected := make(map[uuid.UUID]*itemRow, len(ids))

	for rows.Next() {
		var (
			id    uuid.UUID
			kind  string
			name  string
			base  pgtype.Numeric
			size  pgtype.Text
			price pgtype.Numeric
		)
		if err := rows.Scan(&id, &kind, &name, &base, &size, &price); err != nil {
			return nil, infra.WrapRepoErr("failed to scan catalog item", err)
		}

		row, seen := collected[id]
		if !seen {
			basePrice, err := pgconv.DecimalFromNumeric(base)
			if err != nil {
				return nil, infra.WrapRepoErr("invalid base price", err)
			}
			row = &itemRow{kind: kind, name: name, base: basePrice}
			collected[id] = row
			order = append(order, id)
		}
		if size.Valid {
			p, err := pgconv.DecimalFromNumeric(price)
			if err != nil {
				return nil, infra.WrapRepoErr("invalid size price", err)
			}
			row.sizes = append(row.sizes, catalog.SizePrice{Size: size.String, Price: p})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate catalog items", err)
	}

	for _, id := range order {
		row := collected[id]
		item, err := catalog.NewItem(id, catalog.Kind(row.kind), row.name, row.base, row.sizes)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid catalog row", err)
		}
		result[id] = item
	}
	return result, nil
}
