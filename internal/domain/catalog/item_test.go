//go:build unit

package catalog_test

import (
	"testing"

	"storefront-checkout/internal/domain/catalog"
	"storefront-checkout/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItem_UnitPrice(t *testing.T) {
	item, err := catalog.NewItem(uuid.New(), catalog.KindProduct, "Velvet Rose", money.MustParse("95"), []catalog.SizePrice{
		{Size: "50ml", Price: money.MustParse("120")},
		{Size: "100ml", Price: money.MustParse("180")},
	})
	require.NoError(t, err)

	assert.Equal(t, "120.00", money.Format(item.UnitPrice("50ml")))
	assert.Equal(t, "180.00", money.Format(item.UnitPrice("100ml")))
	assert.Equal(t, "95.00", money.Format(item.UnitPrice("30ml")), "unknown size falls back to base price")
	assert.Equal(t, "95.00", money.Format(item.UnitPrice("")))
}

func TestNewItem_Validation(t *testing.T) {
	cases := []struct {
		name  string
		id    uuid.UUID
		kind  catalog.Kind
		title string
		price string
		sizes []catalog.SizePrice
		errIs error
	}{
		{name: "nil id", id: uuid.Nil, kind: catalog.KindProduct, title: "x", price: "1", errIs: catalog.ErrInvalidItemID},
		{name: "bad kind", id: uuid.New(), kind: "gift-card", title: "x", price: "1", errIs: catalog.ErrInvalidItemKind},
		{name: "blank name", id: uuid.New(), kind: catalog.KindBundle, title: "  ", price: "1", errIs: catalog.ErrInvalidItemName},
		{name: "negative base", id: uuid.New(), kind: catalog.KindProduct, title: "x", price: "-1", errIs: catalog.ErrNegativePrice},
		{
			name: "duplicate size", id: uuid.New(), kind: catalog.KindProduct, title: "x", price: "1",
			sizes: []catalog.SizePrice{{Size: "50ml", Price: money.MustParse("1")}, {Size: "50ml", Price: money.MustParse("2")}},
			errIs: catalog.ErrDuplicateSize,
		},
		{name: "bundle without sizes", id: uuid.New(), kind: catalog.KindBundle, title: "Discovery Set", price: "40"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := catalog.NewItem(tc.id, tc.kind, tc.title, money.MustParse(tc.price), tc.sizes)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}
