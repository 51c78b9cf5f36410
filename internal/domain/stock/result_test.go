//go:build unit

package stock_test

import (
	"testing"

	"storefront-checkout/internal/domain/stock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	id := uuid.New()

	cases := []struct {
		name      string
		requested int
		available int
		found     bool
		wantOK    bool
		wantAvail int
	}{
		{name: "no record is unlimited", requested: 10_000, found: false, wantOK: true, wantAvail: stock.Unlimited},
		{name: "exactly enough", requested: 3, available: 3, found: true, wantOK: true, wantAvail: 3},
		{name: "more than enough", requested: 1, available: 9, found: true, wantOK: true, wantAvail: 9},
		{name: "short by one", requested: 4, available: 3, found: true, wantOK: false, wantAvail: 3},
		{name: "sold out", requested: 1, available: 0, found: true, wantOK: false, wantAvail: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := stock.Evaluate(id, "50ml", tc.requested, tc.available, tc.found)
			assert.Equal(t, tc.wantOK, got.OK)
			assert.Equal(t, tc.wantAvail, got.Available)
			assert.Equal(t, tc.requested, got.Requested)
			assert.Equal(t, !tc.found, got.IsUnlimited())
		})
	}
}

func TestResults_HasBlockingIssues(t *testing.T) {
	ok := stock.Evaluate(uuid.New(), "50ml", 1, 5, true)
	short := stock.Evaluate(uuid.New(), "100ml", 2, 1, true)

	assert.False(t, stock.Results{}.HasBlockingIssues())
	assert.False(t, stock.Results{ok}.HasBlockingIssues())
	assert.True(t, stock.Results{ok, short}.HasBlockingIssues())
	assert.Equal(t, stock.Results{short}, stock.Results{ok, short}.Blocking())
}
