package cartstore

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront-checkout/internal/domain/cart"
	"storefront-checkout/internal/pkg/clock"
	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/usecase/shared"

	"golang.org/x/sync/singleflight"
)

const loadTimeout = 3 * time.Second

// Registry owns one Session per device id.
type Registry struct {
	storage shared.LocalCartStorage
	clock   clock.Clock
	idleTTL time.Duration

	mu       sync.Mutex
	sessions map[string]*Session
	loads    singleflight.Group
}

func NewRegistry(storage shared.LocalCartStorage, clk clock.Clock, cfg config.Config) *Registry {
	return &Registry{
		storage:  storage,
		clock:    clk,
		idleTTL:  cfg.Checkout.SessionIdleTTL,
		sessions: make(map[string]*Session),
	}
}

// Session returns the device's session, loading its cart and last observed
// identity from local storage on first use. A missing or corrupt copy yields
// an empty cart. When the copy cannot be read at all the caller gets a
// transient session that is neither cached nor written back, and the next
// request tries the load again.
func (r *Registry) Session(ctx context.Context, deviceID string) *Session {
	now := r.clock.Now()
	if s := r.lookup(deviceID); s != nil {
		s.touch(now)
		return s
	}

	v, _, _ := r.loads.Do(deviceID, func() (any, error) {
		if s := r.lookup(deviceID); s != nil {
			return s, nil
		}

		lctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()
		local, err := r.storage.LoadCart(lctx, deviceID)
		if err != nil {
			slog.Warn("local cart unavailable, serving a transient session",
				"device_id", deviceID,
				"error", err.Error())
			return r.transient(deviceID, now), nil
		}

		s := NewSession(deviceID, NewStore(deviceID, cart.Restore(local.Lines), r.storage, r.clock), now)
		s.previousIdentity = cloneID(local.Identity)

		r.mu.Lock()
		r.sessions[deviceID] = s
		r.mu.Unlock()
		return s, nil
	})
	s := v.(*Session)
	s.touch(now)
	return s
}

func (r *Registry) transient(deviceID string, now time.Time) *Session {
	store := NewStore(deviceID, nil, r.storage, r.clock)
	store.detached = true
	s := NewSession(deviceID, store, now)
	s.identityUnknown = true
	return s
}

// Sweep drops sessions idle longer than the configured TTL after their
// pending writes finish. It returns the number evicted.
func (r *Registry) Sweep() int {
	if r.idleTTL <= 0 {
		return 0
	}
	now := r.clock.Now()

	r.mu.Lock()
	var idle []*Session
	for id, s := range r.sessions {
		if s.idleSince(now) > r.idleTTL {
			idle = append(idle, s)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, s := range idle {
		s.Cart().Wait()
	}
	if len(idle) > 0 {
		slog.Debug("evicted idle cart sessions", "count", len(idle))
	}
	return len(idle)
}

// Wait flushes background writes of every live session.
func (r *Registry) Wait() {
	r.mu.Lock()
	sessions := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		sessions = append(sessions, s)
	}
	r.mu.Unlock()

	for _, s := range sessions {
		s.Cart().Wait()
	}
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *Registry) lookup(deviceID string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessions[deviceID]
}
