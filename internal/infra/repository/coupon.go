package repository

import (
	"context"

	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/infra/db"
	"storefront-checkout/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	incrementCouponUsageSQL = `
UPDATE coupons SET used_count = used_count + 1
WHERE id = $1 AND (max_uses IS NULL OR used_count < max_uses)`

	decrementCouponUsageSQL = `
UPDATE coupons SET used_count = used_count - 1
WHERE id = $1 AND used_count > 0`

	insertCouponRedemptionSQL = `
INSERT INTO coupon_redemptions (id, coupon_id, identity, order_id) VALUES ($1, $2, $3, $4)`

	deleteCouponRedemptionSQL = `DELETE FROM coupon_redemptions WHERE order_id = $1`
)

type CouponRepository struct {
	db db.DBTX
}

func NewCouponRepository(db db.DBTX) *CouponRepository {
	return &CouponRepository{db: db}
}

func (r *CouponRepository) IncrementUsage(ctx context.Context, couponID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, incrementCouponUsageSQL, couponID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to increment coupon usage", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *CouponRepository) DecrementUsage(ctx context.Context, couponID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, decrementCouponUsageSQL, couponID); err != nil {
		return infra.WrapRepoErr("failed to decrement coupon usage", err)
	}
	return nil
}

func (r *CouponRepository) RecordRedemption(ctx context.Context, couponID uuid.UUID, identity *uuid.UUID, orderID uuid.UUID) error {
	_, err := r.db.Exec(ctx, insertCouponRedemptionSQL, uuid.New(), couponID, pgconv.UUIDPtrToPgtype(identity), orderID)
	if err != nil {
		return infra.WrapRepoErr("failed to record coupon redemption", err)
	}
	return nil
}

func (r *CouponRepository) DeleteRedemption(ctx context.Context, orderID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, deleteCouponRedemptionSQL, orderID); err != nil {
		return infra.WrapRepoErr("failed to delete coupon redemption", err)
	}
	return nil
}
