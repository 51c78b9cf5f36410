package gateway

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"storefront-checkout/internal/domain/loyalty"
	"storefront-checkout/internal/domain/order"
	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/pkg/clock"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/pkg/money"
	"storefront-checkout/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	EventOrderPlaced    = "order.placed"
	EventOrderPaid      = "order.paid"
	EventOrderCancelled = "order.cancelled"
)

type orderEvent struct {
	OrderID       uuid.UUID  `json:"orderId"`
	Number        string     `json:"number"`
	Identity      *uuid.UUID `json:"identity,omitempty"`
	Status        string     `json:"status"`
	PaymentMethod string     `json:"paymentMethod"`
	Payable       string     `json:"payable"`
	OccurredAt    time.Time  `json:"occurredAt"`
}

// OrderGateway stores orders and every side effect of placing them in one transaction.
type OrderGateway struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewOrderGateway(uow shared.UnitOfWork, clk clock.Clock) *OrderGateway {
	return &OrderGateway{uow: uow, clock: clk}
}

func (g *OrderGateway) FindByIdempotencyKey(ctx context.Context, key uuid.UUID) (*shared.OrderRecord, error) {
	var rec *shared.OrderRecord
	err := g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Orders().FindByIdempotencyKey(ctx, key)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return shared.ErrOrderNotFound
			}
			return err
		}
		rec = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (g *OrderGateway) Submit(ctx context.Context, sub shared.SubmitOrder) (*shared.SubmitResult, error) {
	o := sub.Order
	var result *shared.SubmitResult

	err := g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		meta := shared.OrderMeta{RequestHash: sub.RequestHash, CouponID: sub.CouponID, EarnedPoints: sub.EarnedPoints}
		inserted, err := tx.Orders().Insert(ctx, o, meta)
		if err != nil {
			return err
		}
		if !inserted {
			existing, err := tx.Orders().FindByIdempotencyKey(ctx, o.IdempotencyKey())
			if err != nil {
				return err
			}
			if existing.RequestHash != sub.RequestHash {
				return idempotencyConflict(existing.Number)
			}
			result = &shared.SubmitResult{
				OrderID:       existing.ID,
				Number:        existing.Number,
				Status:        existing.Status,
				PaymentMethod: existing.PaymentMethod,
				Payable:       existing.Payable,
				Replayed:      true,
			}
			return nil
		}

		for _, l := range o.Lines() {
			ok, err := tx.Inventory().Reserve(ctx, l.ItemID, l.Size, l.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return errs.Mark(errs.New("insufficient stock for "+l.Name+" "+l.Size), shared.ErrStockConflict)
			}
		}

		if sub.CouponID != nil {
			ok, err := tx.Coupons().IncrementUsage(ctx, *sub.CouponID)
			if err != nil {
				return err
			}
			if !ok {
				return shared.ErrCouponExhausted
			}
			if err := tx.Coupons().RecordRedemption(ctx, *sub.CouponID, o.Identity(), o.ID()); err != nil {
				return err
			}
		}

		if rid := o.RedemptionID(); rid != nil {
			if o.Identity() == nil {
				return shared.ErrRedemptionUnavailable
			}
			ok, err := tx.Loyalty().AttachRedemption(ctx, *rid, *o.Identity(), o.ID())
			if err != nil {
				return err
			}
			if !ok {
				return shared.ErrRedemptionUnavailable
			}
		}

		// Card orders earn once the payment is confirmed.
		if !o.PaymentMethod().Redirects() && o.Identity() != nil && sub.EarnedPoints > 0 {
			if err := g.credit(ctx, tx, *o.Identity(), loyalty.KindEarn, sub.EarnedPoints, o.ID()); err != nil {
				return err
			}
		}

		if err := g.publish(ctx, tx, EventOrderPlaced, o.ID(), o.Number(), o.Identity(), o.Status(), o.PaymentMethod(), o.Totals().Payable); err != nil {
			return err
		}

		result = &shared.SubmitResult{
			OrderID:       o.ID(),
			Number:        o.Number(),
			Status:        o.Status(),
			PaymentMethod: o.PaymentMethod(),
			Payable:       o.Totals().Payable,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("order submitted", "number", result.Number, "replayed", result.Replayed, "payment_method", result.PaymentMethod)
	return result, nil
}

// CompletePayment settles a pending card order after the shopper returns from the provider.
func (g *OrderGateway) CompletePayment(ctx context.Context, orderNumber string, success bool) (order.Status, error) {
	var status order.Status

	err := g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rec, err := tx.Orders().FindByNumberForUpdate(ctx, orderNumber)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return shared.ErrOrderNotFound
			}
			return err
		}
		if rec.Status != order.StatusPending {
			return shared.ErrOrderNotPending
		}

		if success {
			status = order.StatusProcessing
			if err := tx.Orders().UpdateStatus(ctx, rec.ID, status); err != nil {
				return err
			}
			if rec.Identity != nil && rec.EarnedPoints > 0 {
				if err := g.credit(ctx, tx, *rec.Identity, loyalty.KindEarn, rec.EarnedPoints, rec.ID); err != nil {
					return err
				}
			}
			return g.publish(ctx, tx, EventOrderPaid, rec.ID, rec.Number, rec.Identity, status, rec.PaymentMethod, rec.Payable)
		}

		status = order.StatusCancelled
		if err := tx.Orders().UpdateStatus(ctx, rec.ID, status); err != nil {
			return err
		}
		if err := g.reverse(ctx, tx, rec); err != nil {
			return err
		}
		return g.publish(ctx, tx, EventOrderCancelled, rec.ID, rec.Number, rec.Identity, status, rec.PaymentMethod, rec.Payable)
	})
	if err != nil {
		return "", err
	}

	slog.Info("payment completed", "number", orderNumber, "success", success, "status", status)
	return status, nil
}

// reverse undoes the stock, coupon and loyalty effects of a cancelled order.
func (g *OrderGateway) reverse(ctx context.Context, tx shared.Tx, rec *shared.OrderRecord) error {
	for _, l := range rec.Lines {
		if err := tx.Inventory().Release(ctx, l.ItemID, l.Size, l.Quantity); err != nil {
			return err
		}
	}
	if rec.CouponID != nil {
		if err := tx.Coupons().DeleteRedemption(ctx, rec.ID); err != nil {
			return err
		}
		if err := tx.Coupons().DecrementUsage(ctx, *rec.CouponID); err != nil {
			return err
		}
	}
	if rec.RedemptionID != nil && rec.Identity != nil {
		points, err := tx.Loyalty().RedemptionPoints(ctx, *rec.RedemptionID)
		if err != nil {
			return err
		}
		if err := g.credit(ctx, tx, *rec.Identity, loyalty.KindRefund, points, rec.ID); err != nil {
			return err
		}
	}
	return nil
}

func (g *OrderGateway) credit(ctx context.Context, tx shared.Tx, identity uuid.UUID, kind loyalty.TransactionKind, points int64, orderID uuid.UUID) error {
	account, err := tx.Loyalty().LockAccount(ctx, identity)
	if err != nil {
		return err
	}
	if err := account.Credit(points); err != nil {
		return err
	}
	if err := tx.Loyalty().SaveBalance(ctx, account); err != nil {
		return err
	}
	return tx.Loyalty().InsertTransaction(ctx, loyalty.Transaction{
		ID:           uuid.New(),
		Identity:     identity,
		Kind:         kind,
		Points:       points,
		Amount:       money.Zero,
		BalanceAfter: account.Balance(),
		OrderID:      &orderID,
		CreatedAt:    g.clock.Now(),
	})
}

func (g *OrderGateway) publish(ctx context.Context, tx shared.Tx, eventType string, orderID uuid.UUID, number string, identity *uuid.UUID, status order.Status, method order.PaymentMethod, payable decimal.Decimal) error {
	now := g.clock.Now()
	payload, err := json.Marshal(orderEvent{
		OrderID:       orderID,
		Number:        number,
		Identity:      identity,
		Status:        string(status),
		PaymentMethod: string(method),
		Payable:       money.Format(payable),
		OccurredAt:    now,
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode order event")
	}
	return tx.Outbox().Insert(ctx, shared.OutboxEvent{
		ID:          uuid.New(),
		AggregateID: orderID,
		EventType:   eventType,
		Payload:     payload,
		CreatedAt:   now,
	})
}

// idempotencyConflict names the order that already owns the key.
func idempotencyConflict(number string) error {
	return errs.Mark(errs.New("idempotency key belongs to order "+number), shared.ErrIdempotencyKeyConflict)
}
