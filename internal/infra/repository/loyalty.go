package repository

import (
	"context"

	"storefront-checkout/internal/domain/loyalty"
	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/infra/db"
	"storefront-checkout/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	ensureLoyaltyAccountSQL = `
INSERT INTO loyalty_accounts (identity, balance) VALUES ($1, 0)
ON CONFLICT (identity) DO NOTHING`

	lockLoyaltyAccountSQL = `SELECT balance FROM loyalty_accounts WHERE identity = $1 FOR UPDATE`

	saveLoyaltyBalanceSQL = `UPDATE loyalty_accounts SET balance = $2, updated_at = now() WHERE identity = $1`

	insertLoyaltyTransactionSQL = `
INSERT INTO loyalty_transactions (id, identity, kind, points, amount, balance_after, order_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	attachRedemptionSQL = `
UPDATE loyalty_transactions SET order_id = $3
WHERE id = $1 AND identity = $2 AND kind = 'spend' AND order_id IS NULL`

	redemptionPointsSQL = `SELECT points FROM loyalty_transactions WHERE id = $1 AND kind = 'spend'`
)

type LoyaltyRepository struct {
	db db.DBTX
}

func NewLoyaltyRepository(db db.DBTX) *LoyaltyRepository {
	return &LoyaltyRepository{db: db}
}

func (r *LoyaltyRepository) LockAccount(ctx context.Context, identity uuid.UUID) (*loyalty.Account, error) {
	if _, err := r.db.Exec(ctx, ensureLoyaltyAccountSQL, identity); err != nil {
		return nil, infra.WrapRepoErr("failed to ensure loyalty account", err)
	}

	var balance int64
	if err := r.db.QueryRow(ctx, lockLoyaltyAccountSQL, identity).Scan(&balance); err != nil {
		return nil, infra.WrapRepoErr("failed to lock loyalty account", err)
	}

	account, err := loyalty.NewAccount(identity, balance)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid loyalty account row", err)
	}
	return account, nil
}

func (r *LoyaltyRepository) SaveBalance(ctx context.Context, account *loyalty.Account) error {
	if _, err := r.db.Exec(ctx, saveLoyaltyBalanceSQL, account.Identity(), account.Balance()); err != nil {
		return infra.WrapRepoErr("failed to save loyalty balance", err)
	}
	return nil
}

func (r *LoyaltyRepository) InsertTransaction(ctx context.Context, t loyalty.Transaction) error {
	_, err := r.db.Exec(ctx, insertLoyaltyTransactionSQL,
		t.ID, t.Identity, string(t.Kind), t.Points, pgconv.DecimalToNumeric(t.Amount), t.BalanceAfter,
		pgconv.UUIDPtrToPgtype(t.OrderID), t.CreatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert loyalty transaction", err)
	}
	return nil
}

func (r *LoyaltyRepository) AttachRedemption(ctx context.Context, redemptionID, identity, orderID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, attachRedemptionSQL, redemptionID, identity, orderID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to attach loyalty redemption", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *LoyaltyRepository) RedemptionPoints(ctx context.Context, redemptionID uuid.UUID) (int64, error) {
	var points int64
	if err := r.db.QueryRow(ctx, redemptionPointsSQL, redemptionID).Scan(&points); err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("loyalty redemption not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to read redemption points", err)
	}
	return points, nil
}
