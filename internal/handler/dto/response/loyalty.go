package response

import (
	"time"

	"storefront-checkout/internal/domain/loyalty"
	"storefront-checkout/internal/pkg/money"

	"github.com/google/uuid"
)

type LoyaltyTransactionResponse struct {
	ID           uuid.UUID  `json:"id"`
	Kind         string     `json:"kind"`
	Points       int64      `json:"points"`
	Amount       string     `json:"amount"`
	BalanceAfter int64      `json:"balanceAfter"`
	OrderID      *uuid.UUID `json:"orderId,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

type LoyaltySummaryResponse struct {
	Balance    int64                        `json:"balance"`
	PointValue string                       `json:"pointValue"`
	History    []LoyaltyTransactionResponse `json:"history"`
}

type RedemptionResponse struct {
	RedemptionID   uuid.UUID `json:"redemptionId"`
	Points         int64     `json:"points"`
	DiscountAmount string    `json:"discountAmount"`
	BalanceAfter   int64     `json:"balanceAfter"`
}

func FromLoyaltyHistory(balance int64, rate loyalty.ExchangeRate, history []loyalty.Transaction) *LoyaltySummaryResponse {
	res := &LoyaltySummaryResponse{
		Balance:    balance,
		PointValue: rate.PointValue().String(),
		History:    make([]LoyaltyTransactionResponse, len(history)),
	}
	for i, t := range history {
		res.History[i] = LoyaltyTransactionResponse{
			ID:           t.ID,
			Kind:         string(t.Kind),
			Points:       t.Points,
			Amount:       money.Format(t.Amount),
			BalanceAfter: t.BalanceAfter,
			OrderID:      t.OrderID,
			CreatedAt:    t.CreatedAt,
		}
	}
	return res
}

func FromRedemption(r *loyalty.Redemption) *RedemptionResponse {
	return &RedemptionResponse{
		RedemptionID:   r.ID,
		Points:         r.Points,
		DiscountAmount: money.Format(r.DiscountAmount),
		BalanceAfter:   r.BalanceAfter,
	}
}
