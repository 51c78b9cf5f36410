//go:build unit

package loyalty_test

import (
	"math/rand"
	"testing"

	"storefront-checkout/internal/domain/loyalty"
	"storefront-checkout/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccount_Debit(t *testing.T) {
	cases := []struct {
		name        string
		balance     int64
		points      int64
		errIs       error
		wantBalance int64
	}{
		{name: "partial spend", balance: 300, points: 100, wantBalance: 200},
		{name: "spend everything", balance: 300, points: 300, wantBalance: 0},
		{name: "more than balance", balance: 300, points: 500, errIs: loyalty.ErrInsufficientBalance, wantBalance: 300},
		{name: "zero points", balance: 300, points: 0, errIs: loyalty.ErrInvalidAmount, wantBalance: 300},
		{name: "negative points", balance: 300, points: -5, errIs: loyalty.ErrInvalidAmount, wantBalance: 300},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			acc, err := loyalty.NewAccount(uuid.New(), tc.balance)
			require.NoError(t, err)

			err = acc.Debit(tc.points)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.wantBalance, acc.Balance())
		})
	}
}

func TestNewAccount_RejectsNegativeBalance(t *testing.T) {
	_, err := loyalty.NewAccount(uuid.New(), -1)
	assert.ErrorIs(t, err, loyalty.ErrNegativeBalance)
}

func TestExchangeRate(t *testing.T) {
	rate, err := loyalty.NewExchangeRate(money.MustParse("0.01"), 1)
	require.NoError(t, err)

	assert.Equal(t, "5.00", money.Format(rate.ToMoney(500)))
	assert.Equal(t, "0.01", money.Format(rate.ToMoney(1)))
	assert.Equal(t, int64(216), rate.EarnedFor(money.MustParse("216.99")))

	_, err = loyalty.NewExchangeRate(decimal.Zero, 1)
	assert.ErrorIs(t, err, loyalty.ErrInvalidPointValue)
}

func TestTotalPayable_NeverNegative(t *testing.T) {
	assert.Equal(t, "211.00", money.Format(loyalty.TotalPayable(money.MustParse("240"), money.MustParse("24"), money.MustParse("5"))))
	assert.True(t, loyalty.TotalPayable(money.MustParse("10"), money.MustParse("8"), money.MustParse("8")).IsZero())

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		subtotal := money.FromCents(rng.Int63n(100_000))
		coupon := money.FromCents(rng.Int63n(200_000))
		points := money.FromCents(rng.Int63n(200_000))
		got := loyalty.TotalPayable(subtotal, coupon, points)
		require.False(t, got.IsNegative(), "payable went negative for %s - %s - %s", subtotal, coupon, points)
	}
}
