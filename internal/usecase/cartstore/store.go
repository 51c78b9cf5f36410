package cartstore

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront-checkout/internal/domain/cart"
	"storefront-checkout/internal/domain/catalog"
	"storefront-checkout/internal/pkg/clock"
	"storefront-checkout/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const persistTimeout = 5 * time.Second

// Store is the authoritative in-memory cart of one device session.
// Mutations apply synchronously; the local copy is written in the background.
type Store struct {
	deviceID string
	storage  shared.LocalCartStorage
	clock    clock.Clock

	mu   sync.Mutex
	cart *cart.Cart

	// detached stores never write, so they cannot clobber a copy they failed to read
	detached bool

	persistMu sync.Mutex
	attempted uint64
	inflight  sync.WaitGroup
}

func NewStore(deviceID string, c *cart.Cart, storage shared.LocalCartStorage, clk clock.Clock) *Store {
	if c == nil {
		c = cart.New()
	}
	return &Store{
		deviceID:  deviceID,
		storage:   storage,
		clock:     clk,
		cart:      c,
		attempted: c.Version(),
	}
}

func (s *Store) Add(item catalog.Item, size string, quantity int) error {
	s.mu.Lock()
	if err := s.cart.Add(item, size, quantity, s.clock.Now()); err != nil {
		s.mu.Unlock()
		return err
	}
	snap := s.cart.Snapshot()
	s.mu.Unlock()

	s.persist(snap)
	return nil
}

// AddOne adds a single unit.
func (s *Store) AddOne(item catalog.Item, size string) error {
	return s.Add(item, size, 1)
}

// UpdateQuantity with quantity <= 0 removes the line.
func (s *Store) UpdateQuantity(itemID uuid.UUID, size string, quantity int) {
	s.mutate(func(c *cart.Cart) bool { return c.UpdateQuantity(itemID, size, quantity) })
}

func (s *Store) Remove(itemID uuid.UUID, size string) {
	s.mutate(func(c *cart.Cart) bool { return c.Remove(itemID, size) })
}

// Clear empties the cart and always erases the persisted copy.
func (s *Store) Clear() {
	s.mu.Lock()
	s.cart.Clear()
	snap := s.cart.Snapshot()
	s.mu.Unlock()

	s.persist(snap)
}

func (s *Store) Lines() []cart.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines()
}

func (s *Store) Snapshot() cart.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Snapshot()
}

func (s *Store) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Version()
}

func (s *Store) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.IsEmpty()
}

func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.ItemCount()
}

func (s *Store) Subtotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Subtotal()
}

// PersistIdentity records the identity last observed on this device.
func (s *Store) PersistIdentity(ctx context.Context, identity *uuid.UUID) error {
	if s.detached {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
	defer cancel()
	return s.storage.SetIdentity(ctx, s.deviceID, identity)
}

// Wait blocks until every background write started so far has finished.
func (s *Store) Wait() {
	s.inflight.Wait()
}

func (s *Store) mutate(fn func(c *cart.Cart) bool) {
	s.mu.Lock()
	changed := fn(s.cart)
	snap := s.cart.Snapshot()
	s.mu.Unlock()

	if changed {
		s.persist(snap)
	}
}

func (s *Store) persist(snap cart.Snapshot) {
	if s.detached {
		return
	}
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()

		s.persistMu.Lock()
		defer s.persistMu.Unlock()

		// a newer snapshot was already written
		if snap.Version < s.attempted {
			return
		}
		s.attempted = snap.Version

		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()

		var err error
		if len(snap.Lines) == 0 {
			err = s.storage.ClearCart(ctx, s.deviceID)
		} else {
			err = s.storage.SetCart(ctx, s.deviceID, snap.Lines)
		}
		if err != nil {
			slog.Warn("local cart persistence failed",
				"device_id", s.deviceID,
				"version", snap.Version,
				"error", err.Error())
		}
	}()
}
