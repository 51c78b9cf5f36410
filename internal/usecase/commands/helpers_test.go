//go:build unit

package commands_test

import (
	"errors"
	"testing"
	"time"

	"storefront-checkout/internal/domain/cart"
	"storefront-checkout/internal/domain/catalog"
	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/pkg/clock"
	"storefront-checkout/internal/usecase/cartstore"
	sharedmock "storefront-checkout/tests/mock/shared"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

// newSession builds a device session whose background writes go to a permissive mock.
func newSession(t *testing.T, ctrl *gomock.Controller, lines ...cart.Line) *cartstore.Session {
	t.Helper()
	storage := sharedmock.NewMockLocalCartStorage(ctrl)
	storage.EXPECT().SetCart(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	storage.EXPECT().ClearCart(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	storage.EXPECT().SetIdentity(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	clk := clock.NewMockClock(testNow)
	store := cartstore.NewStore("device-1", cart.Restore(lines), storage, clk)
	t.Cleanup(store.Wait)
	return cartstore.NewSession("device-1", store, testNow)
}

func newLine(t *testing.T, item catalog.Item, size string, quantity int) cart.Line {
	t.Helper()
	l, err := cart.NewLine(item, size, quantity, testNow)
	require.NoError(t, err)
	return l
}

func notFound() error {
	return infra.WrapRepoErr("not found", nil, infra.KindNotFound)
}

func dbFailure() error {
	return infra.WrapRepoErr("query failed", errors.New("connection reset"))
}

func duplicateKey() error {
	return infra.WrapRepoErr("duplicate", nil, infra.KindDuplicateKey)
}
