package repository

import (
	"context"
	"encoding/json"

	"storefront-checkout/internal/domain/catalog"
	"storefront-checkout/internal/domain/order"
	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/infra/db"
	"storefront-checkout/internal/pkg/pgconv"
	"storefront-checkout/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const (
	insertOrderSQL = `
INSERT INTO orders (
    id, number, identity, idempotency_key, request_hash, address, gift_message, gift_wrap,
    coupon_code, coupon_id, redemption_id, subtotal, coupon_discount, loyalty_discount, payable,
    shipping_waived, payment_method, status, earned_points, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $20)
ON CONFLICT (idempotency_key) DO NOTHING`

	insertOrderLineSQL = `
INSERT INTO order_lines (order_id, position, item_id, kind, name, size, quantity, unit_price, line_total)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	orderRecordColumns = `
SELECT id, number, identity, status, payment_method, subtotal, coupon_discount, loyalty_discount, payable,
       shipping_waived, request_hash, coupon_id, redemption_id, earned_points
FROM orders`

	orderLinesSQL = `
SELECT item_id, kind, name, size, quantity, unit_price, line_total
FROM order_lines
WHERE order_id = $1
ORDER BY position`

	updateOrderStatusSQL = `UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`
)

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(db db.DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Insert(ctx context.Context, o *order.Order, meta shared.OrderMeta) (bool, error) {
	address, err := json.Marshal(o.Address())
	if err != nil {
		return false, infra.WrapRepoErr("failed to encode address", err)
	}

	var (
		giftMessage *string
		giftWrap    bool
	)
	if g := o.Gift(); g != nil {
		giftWrap = g.Wrap
		if g.Message != "" {
			msg := g.Message
			giftMessage = &msg
		}
	}

	totals := o.Totals()
	tag, err := r.db.Exec(ctx, insertOrderSQL,
		o.ID(), o.Number(), pgconv.UUIDPtrToPgtype(o.Identity()), o.IdempotencyKey(), meta.RequestHash,
		address, pgconv.StringPtrToPgtype(giftMessage), giftWrap,
		pgconv.StringPtrToPgtype(o.CouponCode()), pgconv.UUIDPtrToPgtype(meta.CouponID), pgconv.UUIDPtrToPgtype(o.RedemptionID()),
		pgconv.DecimalToNumeric(totals.Subtotal), pgconv.DecimalToNumeric(totals.CouponDiscount),
		pgconv.DecimalToNumeric(totals.LoyaltyDiscount), pgconv.DecimalToNumeric(totals.Payable),
		totals.ShippingWaived, string(o.PaymentMethod()), string(o.Status()), meta.EarnedPoints, o.CreatedAt(),
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert order", err)
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}

	for i, l := range o.Lines() {
		_, err := r.db.Exec(ctx, insertOrderLineSQL,
			o.ID(), i, l.ItemID, string(l.Kind), l.Name, l.Size, l.Quantity,
			pgconv.DecimalToNumeric(l.UnitPrice), pgconv.DecimalToNumeric(l.LineTotal),
		)
		if err != nil {
			return false, infra.WrapRepoErr("failed to insert order line", err)
		}
	}
	return true, nil
}

func (r *OrderRepository) FindByIdempotencyKey(ctx context.Context, key uuid.UUID) (*shared.OrderRecord, error) {
	return r.findOne(ctx, orderRecordColumns+` WHERE idempotency_key = $1`, key)
}

func (r *OrderRepository) FindByNumberForUpdate(ctx context.Context, number string) (*shared.OrderRecord, error) {
	return r.findOne(ctx, orderRecordColumns+` WHERE number = $1 FOR UPDATE`, number)
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status order.Status) error {
	tag, err := r.db.Exec(ctx, updateOrderStatusSQL, id, string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OrderRepository) findOne(ctx context.Context, query string, arg any) (*shared.OrderRecord, error) {
	var (
		rec          shared.OrderRecord
		identity     pgtype.UUID
		status       string
		method       string
		subtotal     pgtype.Numeric
		couponDisc   pgtype.Numeric
		loyaltyDisc  pgtype.Numeric
		payable      pgtype.Numeric
		couponID     pgtype.UUID
		redemptionID pgtype.UUID
	)
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&rec.ID, &rec.Number, &identity, &status, &method, &subtotal, &couponDisc, &loyaltyDisc, &payable,
		&rec.Totals.ShippingWaived, &rec.RequestHash, &couponID, &redemptionID, &rec.EarnedPoints,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order", err)
	}
	rec.Identity = pgconv.UUIDPtrFromPgtype(identity)
	rec.Status = order.Status(status)
	rec.PaymentMethod = order.PaymentMethod(method)
	rec.CouponID = pgconv.UUIDPtrFromPgtype(couponID)
	rec.RedemptionID = pgconv.UUIDPtrFromPgtype(redemptionID)
	for _, n := range []struct {
		dst *decimal.Decimal
		src pgtype.Numeric
	}{
		{&rec.Totals.Subtotal, subtotal},
		{&rec.Totals.CouponDiscount, couponDisc},
		{&rec.Totals.LoyaltyDiscount, loyaltyDisc},
		{&rec.Totals.Payable, payable},
	} {
		if *n.dst, err = pgconv.DecimalFromNumeric(n.src); err != nil {
			return nil, infra.WrapRepoErr("invalid order totals", err)
		}
	}
	rec.Payable = rec.Totals.Payable

	lines, err := ListOrderLines(ctx, r.db, rec.ID)
	if err != nil {
		return nil, err
	}
	rec.Lines = lines
	return &rec, nil
}

// ListOrderLines is shared with the order read store.
func ListOrderLines(ctx context.Context, q db.DBTX, orderID uuid.UUID) ([]order.Line, error) {
	rows, err := q.Query(ctx, orderLinesSQL, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query order lines", err)
	}
	defer rows.Close()

	var lines []order.Line
	for rows.Next() {
		var (
			l         order.Line
			kind      string
			unitPrice pgtype.Numeric
			lineTotal pgtype.Numeric
		)
		if err := rows.Scan(&l.ItemID, &kind, &l.Name, &l.Size, &l.Quantity, &unitPrice, &lineTotal); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order line", err)
		}
		l.Kind = catalog.Kind(kind)
		if l.UnitPrice, err = pgconv.DecimalFromNumeric(unitPrice); err != nil {
			return nil, infra.WrapRepoErr("invalid unit price", err)
		}
		if l.LineTotal, err = pgconv.DecimalFromNumeric(lineTotal); err != nil {
			return nil, infra.WrapRepoErr("invalid line total", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order lines", err)
	}
	return lines, nil
}
