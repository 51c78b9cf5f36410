package commands

import (
	"context"

	"storefront-checkout/internal/domain/loyalty"
	"storefront-checkout/internal/pkg/clock"
	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/pkg/retry"
	"storefront-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

const defaultHistoryLimit = 50

type LoyaltyLedger struct {
	uow    shared.UnitOfWork
	reader shared.LoyaltyReader
	rate   loyalty.ExchangeRate
	clock  clock.Clock
	policy retry.Policy
}

func NewLoyaltyLedger(uow shared.UnitOfWork, reader shared.LoyaltyReader, clk clock.Clock, cfg config.Config) (*LoyaltyLedger, error) {
	rate, err := loyalty.NewExchangeRate(cfg.Loyalty.PointValue, cfg.Loyalty.PointsPerUnit)
	if err != nil {
		return nil, errs.Wrap(err, "invalid loyalty configuration")
	}
	return &LoyaltyLedger{
		uow:    uow,
		reader: reader,
		rate:   rate,
		clock:  clk,
		policy: readPolicy(cfg),
	}, nil
}

// Redeem debits points and returns their monetary value in one transaction.
// The redemption stays unattached until an order references it.
func (l *LoyaltyLedger) Redeem(ctx context.Context, identity uuid.UUID, points int64) (*loyalty.Redemption, error) {
	if points <= 0 {
		return nil, loyalty.ErrInvalidAmount
	}

	var redemption *loyalty.Redemption
	err := l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		account, err := tx.Loyalty().LockAccount(ctx, identity)
		if err != nil {
			return err
		}
		if err := account.Debit(points); err != nil {
			return err
		}
		if err := tx.Loyalty().SaveBalance(ctx, account); err != nil {
			return err
		}

		spend := loyalty.Transaction{
			ID:           uuid.New(),
			Identity:     identity,
			Kind:         loyalty.KindSpend,
			Points:       points,
			Amount:       l.rate.ToMoney(points),
			BalanceAfter: account.Balance(),
			CreatedAt:    l.clock.Now(),
		}
		if err := tx.Loyalty().InsertTransaction(ctx, spend); err != nil {
			return err
		}

		redemption = &loyalty.Redemption{
			ID:             spend.ID,
			Identity:       identity,
			Points:         points,
			DiscountAmount: spend.Amount,
			BalanceAfter:   spend.BalanceAfter,
			CreatedAt:      spend.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return redemption, nil
}

func (l *LoyaltyLedger) Balance(ctx context.Context, identity uuid.UUID) (int64, error) {
	var balance int64
	err := retry.Do(ctx, l.policy, "loyalty balance", func(ctx context.Context) error {
		b, err := l.reader.Balance(ctx, identity)
		if err != nil {
			return transient(err)
		}
		balance = b
		return nil
	})
	return balance, err
}

func (l *LoyaltyLedger) History(ctx context.Context, identity uuid.UUID, limit int) ([]loyalty.Transaction, error) {
	if limit <= 0 || limit > defaultHistoryLimit {
		limit = defaultHistoryLimit
	}
	var history []loyalty.Transaction
	err := retry.Do(ctx, l.policy, "loyalty history", func(ctx context.Context) error {
		h, err := l.reader.History(ctx, identity, limit)
		if err != nil {
			return transient(err)
		}
		history = h
		return nil
	})
	return history, err
}

func (l *LoyaltyLedger) Rate() loyalty.ExchangeRate {
	return l.rate
}
