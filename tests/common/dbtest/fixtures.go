//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"storefront-checkout/internal/domain/catalog"
	"storefront-checkout/internal/domain/coupon"
	"storefront-checkout/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateCatalogItem(t *testing.T, conn db.DBTX, item catalog.Item) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	_, err := conn.Exec(ctx, "INSERT INTO catalog_items (id, kind, name, base_price) VALUES ($1, $2, $3, $4)",
		item.ID(), string(item.Kind()), item.Name(), item.BasePrice())
	require.NoError(t, err)

	for _, sp := range item.Sizes() {
		_, err := conn.Exec(ctx, "INSERT INTO item_sizes (item_id, size, price) VALUES ($1, $2, $3)",
			item.ID(), sp.Size, sp.Price)
		require.NoError(t, err)
	}
	return item.ID()
}

func SetInventory(t *testing.T, conn db.DBTX, itemID uuid.UUID, size string, available int) {
	t.Helper()
	_, err := conn.Exec(context.Background(), `
		INSERT INTO inventory (item_id, size, available) VALUES ($1, $2, $3)
		ON CONFLICT (item_id, size) DO UPDATE SET available = EXCLUDED.available, updated_at = now()`,
		itemID, size, available)
	require.NoError(t, err)
}

func Inventory(t *testing.T, conn db.DBTX, itemID uuid.UUID, size string) int {
	t.Helper()
	var available int
	err := conn.QueryRow(context.Background(),
		"SELECT available FROM inventory WHERE item_id = $1 AND size = $2", itemID, size).Scan(&available)
	require.NoError(t, err)
	return available
}

func CreateCoupon(t *testing.T, conn db.DBTX, p coupon.Params) uuid.UUID {
	t.Helper()
	_, err := conn.Exec(context.Background(), `
		INSERT INTO coupons (id, code, discount_type, value, active, valid_from, valid_until,
		                     min_order_amount, max_uses, used_count, first_order_only, max_uses_per_user)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		p.ID, p.Code, string(p.DiscountType), p.Value, p.Active, p.ValidFrom, p.ValidUntil,
		p.MinOrderAmount, p.MaxUses, p.UsedCount, p.FirstOrderOnly, p.MaxUsesPerUser)
	require.NoError(t, err)
	return p.ID
}

func CouponUsedCount(t *testing.T, conn db.DBTX, code string) int {
	t.Helper()
	var used int
	err := conn.QueryRow(context.Background(), "SELECT used_count FROM coupons WHERE code = $1", code).Scan(&used)
	require.NoError(t, err)
	return used
}

func SetLoyaltyBalance(t *testing.T, conn db.DBTX, identity uuid.UUID, balance int64) {
	t.Helper()
	_, err := conn.Exec(context.Background(), `
		INSERT INTO loyalty_accounts (identity, balance) VALUES ($1, $2)
		ON CONFLICT (identity) DO UPDATE SET balance = EXCLUDED.balance, updated_at = now()`,
		identity, balance)
	require.NoError(t, err)
}

func LoyaltyBalance(t *testing.T, conn db.DBTX, identity uuid.UUID) int64 {
	t.Helper()
	var balance int64
	err := conn.QueryRow(context.Background(),
		"SELECT COALESCE((SELECT balance FROM loyalty_accounts WHERE identity = $1), 0)", identity).Scan(&balance)
	require.NoError(t, err)
	return balance
}

func OrderStatus(t *testing.T, conn db.DBTX, number string) string {
	t.Helper()
	var status string
	err := conn.QueryRow(context.Background(), "SELECT status FROM orders WHERE number = $1", number).Scan(&status)
	require.NoError(t, err)
	return status
}

func CountRows(t *testing.T, conn db.DBTX, table string) int {
	t.Helper()
	var n int
	err := conn.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables, including the seeded catalog
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
