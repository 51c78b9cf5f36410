package readstore

import (
	"context"

	"storefront-checkout/internal/domain/loyalty"
	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/infra/db"
	"storefront-checkout/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	loyaltyBalanceSQL = `SELECT balance FROM loyalty_accounts WHERE identity = $1`

	loyaltyHistorySQL = `
SELECT id, identity, kind, points, amount, balance_after, order_id, created_at
FROM loyalty_transactions
WHERE identity = $1
ORDER BY created_at DESC, id
LIMIT $2`

	redemptionByIDSQL = `
SELECT t.id, t.identity, t.points, t.amount, t.order_id, t.created_at, t.balance_after
FROM loyalty_transactions t
WHERE t.id = $1 AND t.kind = 'spend'`
)

type LoyaltyReadStore struct {
	db db.DBTX
}

func NewLoyaltyReadStore(db db.DBTX) *LoyaltyReadStore {
	return &LoyaltyReadStore{db: db}
}

// Balance is zero for identities that never earned points.
func (r *LoyaltyReadStore) Balance(ctx context.Context, identity uuid.UUID) (int64, error) {
	var balance int64
	err := r.db.QueryRow(ctx, loyaltyBalanceSQL, identity).Scan(&balance)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, nil
		}
		return 0, infra.WrapRepoErr("failed to read loyalty balance", err)
	}
	return balance, nil
}

func (r *LoyaltyReadStore) History(ctx context.Context, identity uuid.UUID, limit int) ([]loyalty.Transaction, error) {
	rows, err := r.db.Query(ctx, loyaltyHistorySQL, identity, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list loyalty transactions", err)
	}
	defer rows.Close()

	var out []loyalty.Transaction
	for rows.Next() {
		var (
			t       loyalty.Transaction
			kind    string
			amount  pgtype.Numeric
			orderID pgtype.UUID
		)
		if err := rows.Scan(&t.ID, &t.Identity, &kind, &t.Points, &amount, &t.BalanceAfter, &orderID, &t.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan loyalty transaction", err)
		}
		t.Kind = loyalty.TransactionKind(kind)
		if t.Amount, err = pgconv.DecimalFromNumeric(amount); err != nil {
			return nil, infra.WrapRepoErr("invalid loyalty amount", err)
		}
		t.OrderID = pgconv.UUIDPtrFromPgtype(orderID)
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate loyalty transactions", err)
	}
	return out, nil
}

func (r *LoyaltyReadStore) RedemptionByID(ctx context.Context, id uuid.UUID) (*loyalty.Redemption, error) {
	var (
		red     loyalty.Redemption
		amount  pgtype.Numeric
		orderID pgtype.UUID
	)
	err := r.db.QueryRow(ctx, redemptionByIDSQL, id).Scan(
		&red.ID, &red.Identity, &red.Points, &amount, &orderID, &red.CreatedAt, &red.BalanceAfter,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("loyalty redemption not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read loyalty redemption", err)
	}
	if red.DiscountAmount, err = pgconv.DecimalFromNumeric(amount); err != nil {
		return nil, infra.WrapRepoErr("invalid redemption amount", err)
	}
	red.OrderID = pgconv.UUIDPtrFromPgtype(orderID)
	return &red, nil
}
