package repository

import (
	"context"

	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/infra/db"
	"storefront-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	insertOutboxEventSQL = `
INSERT INTO outbox_events (id, aggregate_id, event_type, payload, created_at)
VALUES ($1, $2, $3, $4, $5)`

	fetchOutboxEventsSQL = `
SELECT id, aggregate_id, event_type, payload, created_at
FROM outbox_events
WHERE published_at IS NULL
ORDER BY created_at, id
LIMIT $1`

	markOutboxPublishedSQL = `UPDATE outbox_events SET published_at = now() WHERE id = $1`
)

type OutboxRepository struct {
	db db.DBTX
}

func NewOutboxRepository(db db.DBTX) *OutboxRepository {
	return &OutboxRepository{db: db}
}

func (r *OutboxRepository) Insert(ctx context.Context, e shared.OutboxEvent) error {
	_, err := r.db.Exec(ctx, insertOutboxEventSQL, e.ID, e.AggregateID, e.EventType, e.Payload, e.CreatedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to insert outbox event", err)
	}
	return nil
}

func (r *OutboxRepository) FetchUnpublished(ctx context.Context, limit int) ([]shared.OutboxEvent, error) {
	rows, err := r.db.Query(ctx, fetchOutboxEventsSQL, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to fetch outbox events", err)
	}
	defer rows.Close()

	var events []shared.OutboxEvent
	for rows.Next() {
		var e shared.OutboxEvent
		if err := rows.Scan(&e.ID, &e.AggregateID, &e.EventType, &e.Payload, &e.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan outbox event", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate outbox events", err)
	}
	return events, nil
}

func (r *OutboxRepository) MarkPublished(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.Exec(ctx, markOutboxPublishedSQL, id); err != nil {
		return infra.WrapRepoErr("failed to mark outbox event published", err)
	}
	return nil
}
