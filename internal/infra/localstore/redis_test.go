//go:build unit

package localstore

import (
	"context"
	"testing"
	"time"

	"storefront-checkout/internal/domain/cart"
	"storefront-checkout/internal/domain/catalog"
	"storefront-checkout/internal/usecase/shared"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*RedisCartStorage, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisCartStorage(client, time.Hour), mr
}

func testLine(t *testing.T, size string, qty int) cart.Line {
	t.Helper()
	item, err := catalog.NewItem(uuid.New(), catalog.KindProduct, "Velvet Rose", decimal.NewFromInt(95), []catalog.SizePrice{
		{Size: "50ml", Price: decimal.NewFromInt(120)},
		{Size: "100ml", Price: decimal.NewFromInt(180)},
	})
	require.NoError(t, err)
	line, err := cart.NewLine(item, size, qty, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return line
}

func load(t *testing.T, store *RedisCartStorage, deviceID string) shared.LocalCart {
	t.Helper()
	local, err := store.LoadCart(context.Background(), deviceID)
	require.NoError(t, err)
	return local
}

func TestRedisCartStorage_RoundTrip(t *testing.T) {
	store, mr := setupTestRedis(t)
	ctx := context.Background()
	lines := []cart.Line{testLine(t, "50ml", 2), testLine(t, "100ml", 1)}

	require.NoError(t, store.SetCart(ctx, "device-1", lines))
	assert.True(t, mr.Exists("cart:device:device-1"))
	assert.Equal(t, time.Hour, mr.TTL("cart:device:device-1"))

	got := load(t, store, "device-1").Lines
	require.Len(t, got, 2)
	assert.Equal(t, lines[0].ItemID(), got[0].ItemID())
	assert.Equal(t, "50ml", got[0].Size())
	assert.Equal(t, 2, got[0].Quantity())
	assert.True(t, decimal.NewFromInt(120).Equal(got[0].UnitPrice()))
	assert.True(t, decimal.NewFromInt(180).Equal(got[1].UnitPrice()))
	assert.True(t, lines[0].AddedAt().Equal(got[0].AddedAt()))
}

func TestRedisCartStorage_MissingReadsEmpty(t *testing.T) {
	store, _ := setupTestRedis(t)

	local := load(t, store, "nobody")
	assert.Empty(t, local.Lines)
	assert.Nil(t, local.Identity)
}

func TestRedisCartStorage_CorruptReadsEmpty(t *testing.T) {
	store, mr := setupTestRedis(t)
	require.NoError(t, mr.Set("cart:device:device-2", `{"lines":[{"item":`))
	require.NoError(t, mr.Set("cart:device:device-2:identity", "alice"))

	local := load(t, store, "device-2")
	assert.Empty(t, local.Lines)
	assert.Nil(t, local.Identity)
}

func TestRedisCartStorage_SkipsInvalidLines(t *testing.T) {
	store, mr := setupTestRedis(t)
	doc := `{"lines":[` +
		`{"item":{"id":"00000000-0000-0000-0000-000000000000","kind":"product","name":"x","basePrice":"1"},"size":"","quantity":1},` +
		`{"item":{"id":"3f1c6a1e-1b7a-4c57-9a55-6d1f6f1e2a10","kind":"product","name":"Cedar Smoke","basePrice":"80"},"size":"","quantity":0},` +
		`{"item":{"id":"3f1c6a1e-1b7a-4c57-9a55-6d1f6f1e2a11","kind":"bundle","name":"Discovery Set","basePrice":"45"},"size":"","quantity":3}` +
		`]}`
	require.NoError(t, mr.Set("cart:device:device-3", doc))

	got := load(t, store, "device-3").Lines
	require.Len(t, got, 1)
	assert.Equal(t, catalog.KindBundle, got[0].Item().Kind())
	assert.Equal(t, 3, got[0].Quantity())
}

func TestRedisCartStorage_Clear(t *testing.T) {
	store, mr := setupTestRedis(t)
	ctx := context.Background()
	require.NoError(t, store.SetCart(ctx, "device-4", []cart.Line{testLine(t, "50ml", 1)}))

	require.NoError(t, store.ClearCart(ctx, "device-4"))
	assert.False(t, mr.Exists("cart:device:device-4"))
	assert.Empty(t, load(t, store, "device-4").Lines)
}

func TestRedisCartStorage_Identity(t *testing.T) {
	store, mr := setupTestRedis(t)
	ctx := context.Background()
	alice := uuid.New()

	require.NoError(t, store.SetIdentity(ctx, "device-6", &alice))
	require.NoError(t, store.SetCart(ctx, "device-6", []cart.Line{testLine(t, "50ml", 1)}))
	require.NoError(t, store.ClearCart(ctx, "device-6"))

	local := load(t, store, "device-6")
	assert.Empty(t, local.Lines)
	require.NotNil(t, local.Identity, "identity outlives a cleared cart")
	assert.Equal(t, alice, *local.Identity)
	assert.Equal(t, time.Hour, mr.TTL("cart:device:device-6:identity"))

	require.NoError(t, store.SetIdentity(ctx, "device-6", nil))
	assert.False(t, mr.Exists("cart:device:device-6:identity"))
	assert.Nil(t, load(t, store, "device-6").Identity)
}

func TestRedisCartStorage_SetCartRefreshesIdentityTTL(t *testing.T) {
	store, mr := setupTestRedis(t)
	ctx := context.Background()
	alice := uuid.New()
	require.NoError(t, store.SetIdentity(ctx, "device-7", &alice))

	mr.FastForward(50 * time.Minute)
	require.NoError(t, store.SetCart(ctx, "device-7", []cart.Line{testLine(t, "50ml", 1)}))

	assert.Equal(t, time.Hour, mr.TTL("cart:device:device-7:identity"))
}

func TestRedisCartStorage_UnavailableIsReported(t *testing.T) {
	store, mr := setupTestRedis(t)
	mr.Close()

	_, err := store.LoadCart(context.Background(), "device-5")
	assert.Error(t, err, "an unreachable store must not read as an empty cart")
	assert.Error(t, store.SetCart(context.Background(), "device-5", nil))
}
