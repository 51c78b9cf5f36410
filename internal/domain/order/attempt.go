package order

import (
	"errors"

	"github.com/google/uuid"
)

var ErrAttemptClosed = errors.New("checkout attempt already confirmed")

type AttemptState string

const (
	AttemptSubmitting AttemptState = "submitting"
	AttemptConfirmed  AttemptState = "confirmed"
	AttemptRejected   AttemptState = "rejected"
)

// Attempt is one checkout try. Its idempotency key is fixed at creation and
// reused by every retry until the attempt is confirmed.
type Attempt struct {
	key         uuid.UUID
	state       AttemptState
	orderNumber string
}

func NewAttempt(key uuid.UUID) *Attempt {
	return &Attempt{key: key, state: AttemptSubmitting}
}

// Submit moves a new or rejected attempt into Submitting.
func (a *Attempt) Submit() error {
	if a.state == AttemptConfirmed {
		return ErrAttemptClosed
	}
	a.state = AttemptSubmitting
	return nil
}

func (a *Attempt) Confirm(orderNumber string) error {
	if a.state != AttemptSubmitting {
		return ErrInvalidTransition
	}
	a.state = AttemptConfirmed
	a.orderNumber = orderNumber
	return nil
}

func (a *Attempt) Reject() {
	if a.state == AttemptSubmitting {
		a.state = AttemptRejected
	}
}

func (a *Attempt) Key() uuid.UUID      { return a.key }
func (a *Attempt) State() AttemptState { return a.state }
func (a *Attempt) OrderNumber() string { return a.orderNumber }
