package cartstore

import (
	"sync"
	"time"

	"storefront-checkout/internal/domain/order"

	"github.com/google/uuid"
)

// Session is everything the engine keeps per device: the cart, the last
// identity it observed and the open checkout attempt.
type Session struct {
	deviceID string
	store    *Store

	mu               sync.Mutex
	previousIdentity *uuid.UUID
	identityUnknown  bool
	attempt          *order.Attempt
	confirmed        *order.Attempt
	pendingPayment   string
	lastSeen         time.Time

	checkoutMu sync.Mutex
}

func NewSession(deviceID string, store *Store, now time.Time) *Session {
	return &Session{deviceID: deviceID, store: store, lastSeen: now}
}

func (s *Session) DeviceID() string { return s.deviceID }
func (s *Session) Cart() *Store     { return s.store }

// SwapIdentity records current as the observed identity and returns the
// previous one. known is false when the previous identity could not be loaded.
func (s *Session) SwapIdentity(current *uuid.UUID) (previous *uuid.UUID, known bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	previous, known = s.previousIdentity, !s.identityUnknown
	s.previousIdentity = cloneID(current)
	s.identityUnknown = false
	return previous, known
}

func cloneID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

// BeginCheckout returns the open attempt, creating one when none is open.
// A client-supplied key that differs from the open attempt starts a new attempt.
func (s *Session) BeginCheckout(clientKey *uuid.UUID) *order.Attempt {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attempt != nil && s.attempt.State() != order.AttemptConfirmed {
		if clientKey == nil || *clientKey == s.attempt.Key() {
			return s.attempt
		}
	}

	key := uuid.New()
	if clientKey != nil && *clientKey != uuid.Nil {
		key = *clientKey
	}
	s.attempt = order.NewAttempt(key)
	return s.attempt
}

func (s *Session) CurrentAttempt() *order.Attempt {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempt
}

// ConfirmedAttempt is the most recent attempt that produced an order, kept
// after EndCheckout so a retry of it can still be recognised.
func (s *Session) ConfirmedAttempt() *order.Attempt {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.confirmed
}

// EndCheckout closes the open attempt. A confirmed attempt is remembered.
func (s *Session) EndCheckout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.attempt != nil && s.attempt.State() == order.AttemptConfirmed {
		s.confirmed = s.attempt
	}
	s.attempt = nil
	s.pendingPayment = ""
}

// LockCheckout serializes order placement for this device.
func (s *Session) LockCheckout() (unlock func()) {
	s.checkoutMu.Lock()
	return s.checkoutMu.Unlock
}

func (s *Session) SetPendingPayment(orderNumber string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingPayment = orderNumber
}

func (s *Session) PendingPayment() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingPayment
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}
