package readstore

import (
	"context"

	"storefront-checkout/internal/domain/coupon"
	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/infra/db"
	"storefront-checkout/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const couponByCodeSQL = `
SELECT id, code, discount_type, value, active, valid_from, valid_until, min_order_amount,
       max_uses, used_count, first_order_only, max_uses_per_user
FROM coupons
WHERE code = $1`

const couponHistorySQL = `
SELECT
    EXISTS (SELECT 1 FROM orders WHERE identity = $2 AND status <> 'cancelled'),
    (SELECT count(*) FROM coupon_redemptions WHERE coupon_id = $1 AND identity = $2)`

type CouponReadStore struct {
	db db.DBTX
}

func NewCouponReadStore(db db.DBTX) *CouponReadStore {
	return &CouponReadStore{db: db}
}

func (r *CouponReadStore) FindByCode(ctx context.Context, code coupon.Code) (*coupon.Coupon, error) {
	var (
		p              coupon.Params
		discountType   string
		value          pgtype.Numeric
		validFrom      pgtype.Timestamptz
		validUntil     pgtype.Timestamptz
		minOrderAmount pgtype.Numeric
		maxUses        pgtype.Int4
		maxUsesPerUser pgtype.Int4
	)
	err := r.db.QueryRow(ctx, couponByCodeSQL, code.String()).Scan(
		&p.ID, &p.Code, &discountType, &value, &p.Active, &validFrom, &validUntil, &minOrderAmount,
		&maxUses, &p.UsedCount, &p.FirstOrderOnly, &maxUsesPerUser,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}

	p.DiscountType = coupon.DiscountType(discountType)
	if p.Value, err = pgconv.DecimalFromNumeric(value); err != nil {
		return nil, infra.WrapRepoErr("invalid coupon value", err)
	}
	if p.MinOrderAmount, err = pgconv.DecimalPtrFromNumeric(minOrderAmount); err != nil {
		return nil, infra.WrapRepoErr("invalid coupon minimum", err)
	}
	p.ValidFrom = pgconv.TimePtrFromPgtype(validFrom)
	p.ValidUntil = pgconv.TimePtrFromPgtype(validUntil)
	p.MaxUses = pgconv.IntPtrFromPgtype(maxUses)
	p.MaxUsesPerUser = pgconv.IntPtrFromPgtype(maxUsesPerUser)

	c, err := coupon.ReconstructCoupon(p)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid coupon row", err)
	}
	return c, nil
}

func (r *CouponReadStore) History(ctx context.Context, couponID, identity uuid.UUID) (coupon.History, error) {
	var (
		h     coupon.History
		count int64
	)
	if err := r.db.QueryRow(ctx, couponHistorySQL, couponID, identity).Scan(&h.HasPriorOrder, &count); err != nil {
		return coupon.History{}, infra.WrapRepoErr("failed to read coupon history", err)
	}
	h.Redemptions = int(count)
	return h, nil
}
