package readstore

import (
	"context"
	"encoding/json"
	"time"

	"storefront-checkout/internal/domain/order"
	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/infra/db"
	"storefront-checkout/internal/infra/repository"
	"storefront-checkout/internal/pkg/pgconv"
	"storefront-checkout/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	orderByNumberSQL = `
SELECT id, number, identity, idempotency_key, status, payment_method, address, gift_message, gift_wrap,
       coupon_code, subtotal, coupon_discount, loyalty_discount, payable, shipping_waived, created_at, updated_at
FROM orders
WHERE number = $1`

	ordersByIdentitySQL = `
SELECT o.id, o.number, o.status, o.payable, COALESCE(sum(l.quantity), 0), o.created_at
FROM orders o
LEFT JOIN order_lines l ON l.order_id = o.id
WHERE o.identity = $1
  AND ($2::timestamptz IS NULL OR (o.created_at, o.id) < ($2, $3))
GROUP BY o.id
ORDER BY o.created_at DESC, o.id DESC
LIMIT $4`
)

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(db db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: db}
}

func (r *OrderReadStore) FindByNumber(ctx context.Context, number string) (*queries.OrderView, error) {
	var (
		v               queries.OrderView
		identity        pgtype.UUID
		address         []byte
		giftMessage     pgtype.Text
		giftWrap        bool
		couponCode      pgtype.Text
		subtotal        pgtype.Numeric
		couponDiscount  pgtype.Numeric
		loyaltyDiscount pgtype.Numeric
		payable         pgtype.Numeric
	)
	err := r.db.QueryRow(ctx, orderByNumberSQL, number).Scan(
		&v.ID, &v.Number, &identity, &v.IdempotencyKey, &v.Status, &v.PaymentMethod, &address,
		&giftMessage, &giftWrap, &couponCode, &subtotal, &couponDiscount, &loyaltyDiscount, &payable,
		&v.ShippingWaived, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by number", err)
	}

	v.Identity = pgconv.UUIDPtrFromPgtype(identity)
	v.CouponCode = pgconv.StringPtrFromPgtype(couponCode)
	if giftMessage.Valid || giftWrap {
		v.Gift = &order.Gift{Message: giftMessage.String, Wrap: giftWrap}
	}
	if err := json.Unmarshal(address, &v.Address); err != nil {
		return nil, infra.WrapRepoErr("invalid stored address", err)
	}
	if v.Subtotal, err = pgconv.DecimalFromNumeric(subtotal); err != nil {
		return nil, infra.WrapRepoErr("invalid subtotal", err)
	}
	if v.CouponDiscount, err = pgconv.DecimalFromNumeric(couponDiscount); err != nil {
		return nil, infra.WrapRepoErr("invalid coupon discount", err)
	}
	if v.LoyaltyDiscount, err = pgconv.DecimalFromNumeric(loyaltyDiscount); err != nil {
		return nil, infra.WrapRepoErr("invalid loyalty discount", err)
	}
	if v.Payable, err = pgconv.DecimalFromNumeric(payable); err != nil {
		return nil, infra.WrapRepoErr("invalid payable", err)
	}

	lines, err := repository.ListOrderLines(ctx, r.db, v.ID)
	if err != nil {
		return nil, err
	}
	for _, l := range lines {
		v.Lines = append(v.Lines, queries.OrderLineView{
			ItemID:    l.ItemID,
			Kind:      string(l.Kind),
			Name:      l.Name,
			Size:      l.Size,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			LineTotal: l.LineTotal,
		})
	}
	return &v, nil
}

func (r *OrderReadStore) FindByIdentity(ctx context.Context, identity uuid.UUID, afterTime *time.Time, afterID uuid.UUID, limit int) ([]*queries.OrderListItem, error) {
	var after pgtype.Timestamptz
	if afterTime != nil {
		after = pgtype.Timestamptz{Time: *afterTime, Valid: true}
	}

	rows, err := r.db.Query(ctx, ordersByIdentitySQL, identity, after, afterID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	var items []*queries.OrderListItem
	for rows.Next() {
		var (
			item    queries.OrderListItem
			payable pgtype.Numeric
			count   int64
		)
		if err := rows.Scan(&item.ID, &item.Number, &item.Status, &payable, &count, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order", err)
		}
		if item.Payable, err = pgconv.DecimalFromNumeric(payable); err != nil {
			return nil, infra.WrapRepoErr("invalid payable", err)
		}
		item.ItemCount = int(count)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate orders", err)
	}
	return items, nil
}
