package queries

import (
	"context"
	"time"

	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound = errs.New("order not found")
	ErrInvalidCursor = errs.New("invalid cursor")
)

type OrderQueries interface {
	// GetByNumber returns an identity's own order, or a guest order when the
	// caller presents the idempotency key it was placed with.
	GetByNumber(ctx context.Context, identity *uuid.UUID, number string, guestKey *uuid.UUID) (*OrderView, error)
	ListByIdentity(ctx context.Context, identity uuid.UUID, after *Cursor, limit int) ([]*OrderListItem, *Cursor, error)
}

type OrderReadStore interface {
	FindByNumber(ctx context.Context, number string) (*OrderView, error)
	FindByIdentity(ctx context.Context, identity uuid.UUID, afterTime *time.Time, afterID uuid.UUID, limit int) ([]*OrderListItem, error)
}

type orderQueriesImpl struct {
	readStore OrderReadStore
}

func NewOrderQueries(readStore OrderReadStore) OrderQueries {
	return &orderQueriesImpl{readStore: readStore}
}

func (q *orderQueriesImpl) GetByNumber(ctx context.Context, identity *uuid.UUID, number string, guestKey *uuid.UUID) (*OrderView, error) {
	view, err := q.readStore.FindByNumber(ctx, number)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	// Foreign orders are reported as missing.
	switch {
	case view.Identity != nil:
		if identity == nil || *identity != *view.Identity {
			return nil, ErrOrderNotFound
		}
	case guestKey == nil || *guestKey != view.IdempotencyKey:
		return nil, ErrOrderNotFound
	}
	return view, nil
}

func (q *orderQueriesImpl) ListByIdentity(ctx context.Context, identity uuid.UUID, after *Cursor, limit int) ([]*OrderListItem, *Cursor, error) {
	limit = ValidateLimit(limit)

	var (
		afterTime *time.Time
		afterID   uuid.UUID
	)
	if after != nil && after.After != "" {
		t, id, err := DecodeAfterCursor(after.After)
		if err != nil {
			return nil, nil, errs.Mark(err, ErrInvalidCursor)
		}
		afterTime, afterID = &t, id
	}

	// One extra row tells whether another page exists.
	rows, err := q.readStore.FindByIdentity(ctx, identity, afterTime, afterID, limit+1)
	if err != nil {
		return nil, nil, err
	}
	if len(rows) <= limit {
		return rows, nil, nil
	}

	rows = rows[:limit]
	last := rows[len(rows)-1]
	return rows, &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}, nil
}
