//go:build unit

package cartstore_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"storefront-checkout/internal/domain/cart"
	"storefront-checkout/internal/pkg/clock"
	"storefront-checkout/internal/usecase/cartstore"
	"storefront-checkout/internal/usecase/shared"
	"storefront-checkout/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStorage is a goroutine-safe LocalCartStorage double.
type memoryStorage struct {
	mu      sync.Mutex
	carts   map[string][]cart.Line
	writes  int
	clears  int
	failSet error
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{carts: make(map[string][]cart.Line)}
}

func (m *memoryStorage) LoadCart(_ context.Context, deviceID string) (shared.LocalCart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return shared.LocalCart{Lines: m.carts[deviceID]}, nil
}

func (m *memoryStorage) SetIdentity(context.Context, string, *uuid.UUID) error { return nil }

func (m *memoryStorage) SetCart(_ context.Context, deviceID string, lines []cart.Line) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes++
	if m.failSet != nil {
		return m.failSet
	}
	m.carts[deviceID] = lines
	return nil
}

func (m *memoryStorage) ClearCart(_ context.Context, deviceID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clears++
	delete(m.carts, deviceID)
	return nil
}

func (m *memoryStorage) stored(deviceID string) []cart.Line {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.carts[deviceID]
}

func newStore(storage *memoryStorage) *cartstore.Store {
	clk := clock.NewMockClock(time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC))
	return cartstore.NewStore("device-1", nil, storage, clk)
}

func TestStore_MutationsPersistInBackground(t *testing.T) {
	storage := newMemoryStorage()
	store := newStore(storage)
	rose := builder.NewItemBuilder().Build()

	require.NoError(t, store.Add(rose, "50ml", 2))
	require.NoError(t, store.AddOne(rose, "50ml"))
	store.Wait()

	lines := storage.stored("device-1")
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity())
	assert.Equal(t, 3, store.ItemCount())
	assert.Equal(t, "360.00", store.Subtotal().StringFixed(2))
}

func TestStore_InvalidAddIsRejectedAndNotPersisted(t *testing.T) {
	storage := newMemoryStorage()
	store := newStore(storage)

	err := store.Add(builder.NewItemBuilder().Build(), "50ml", 0)
	store.Wait()

	assert.ErrorIs(t, err, cart.ErrInvalidQuantity)
	assert.True(t, store.IsEmpty())
	assert.Zero(t, storage.writes)
}

func TestStore_LatestSnapshotWins(t *testing.T) {
	storage := newMemoryStorage()
	store := newStore(storage)
	items := make([]string, 0)
	for i := 0; i < 20; i++ {
		items = append(items, "size-"+string(rune('a'+i)))
	}
	rose := builder.NewItemBuilder().Build()

	var wg sync.WaitGroup
	for _, size := range items {
		wg.Add(1)
		go func(size string) {
			defer wg.Done()
			assert.NoError(t, store.Add(rose, size, 1))
		}(size)
	}
	wg.Wait()
	store.Wait()

	assert.Len(t, storage.stored("device-1"), len(items))
	assert.Equal(t, uint64(len(items)), store.Version())
}

func TestStore_RemoveAndUpdate(t *testing.T) {
	storage := newMemoryStorage()
	store := newStore(storage)
	rose := builder.NewItemBuilder().Build()
	oud := builder.NewItemBuilder().WithName("Midnight Oud").Build()

	require.NoError(t, store.Add(rose, "50ml", 1))
	require.NoError(t, store.Add(oud, "100ml", 1))
	store.UpdateQuantity(rose.ID(), "50ml", 4)
	store.Remove(oud.ID(), "100ml")
	store.Wait()

	lines := storage.stored("device-1")
	require.Len(t, lines, 1)
	assert.Equal(t, 4, lines[0].Quantity())

	before := storage.writes
	store.Remove(oud.ID(), "100ml")
	store.Wait()
	assert.Equal(t, before, storage.writes, "no-op mutation must not write")

	store.UpdateQuantity(rose.ID(), "50ml", 0)
	store.Wait()
	assert.True(t, store.IsEmpty())
	assert.Empty(t, storage.stored("device-1"))
}

func TestStore_ClearAlwaysErasesPersistedCopy(t *testing.T) {
	storage := newMemoryStorage()
	storage.carts["device-1"] = []cart.Line{}
	store := newStore(storage)

	store.Clear()
	store.Wait()

	assert.Equal(t, 1, storage.clears)
	_, ok := storage.carts["device-1"]
	assert.False(t, ok)
}

func TestStore_PersistFailureKeepsMemoryState(t *testing.T) {
	storage := newMemoryStorage()
	storage.failSet = errors.New("redis down")
	store := newStore(storage)

	require.NoError(t, store.Add(builder.NewItemBuilder().Build(), "50ml", 1))
	store.Wait()

	assert.Equal(t, 1, store.ItemCount())
	assert.Equal(t, 1, storage.writes)
}
