package publisher

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type OutboxStore interface {
	FetchUnpublished(ctx context.Context, limit int) ([]shared.OutboxEvent, error)
	MarkPublished(ctx context.Context, id uuid.UUID) error
}

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OutboxPoller relays order events written in the order transaction to Kafka.
// Delivery is at least once: an event is marked only after the write succeeds.
type OutboxPoller struct {
	store     OutboxStore
	writer    MessageWriter
	tick      time.Duration
	batchSize int

	cancel context.CancelFunc
	done   sync.WaitGroup
}

func NewKafkaWriter(cfg config.KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
}

func NewOutboxPoller(store OutboxStore, writer MessageWriter, cfg config.KafkaConfig) *OutboxPoller {
	tick := cfg.PollInterval
	if tick <= 0 {
		tick = 2 * time.Second
	}
	batch := cfg.BatchSize
	if batch <= 0 {
		batch = 100
	}
	return &OutboxPoller{store: store, writer: writer, tick: tick, batchSize: batch}
}

func (p *OutboxPoller) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.done.Add(1)
	go func() {
		defer p.done.Done()
		p.Run(ctx)
	}()
}

func (p *OutboxPoller) Stop() error {
	if p.cancel != nil {
		p.cancel()
	}
	p.done.Wait()
	return p.writer.Close()
}

func (p *OutboxPoller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.tick)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			p.PublishPending(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// PublishPending relays one batch and returns how many events were marked published.
func (p *OutboxPoller) PublishPending(ctx context.Context) int {
	events, err := p.store.FetchUnpublished(ctx, p.batchSize)
	if err != nil {
		slog.Error("failed to fetch outbox events", "error", err)
		return 0
	}

	published := 0
	for _, event := range events {
		msg := kafka.Message{
			Key:   []byte(event.AggregateID.String()),
			Value: event.Payload,
			Headers: []kafka.Header{
				{Key: "event_type", Value: []byte(event.EventType)},
				{Key: "event_id", Value: []byte(event.ID.String())},
			},
			Time: event.CreatedAt,
		}
		if err := p.writer.WriteMessages(ctx, msg); err != nil {
			slog.Warn("failed to publish outbox event", "event_id", event.ID, "error", err)
			outboxPublished.WithLabelValues("failed").Inc()
			// keep per-order ordering: later events of the batch wait for the next tick
			return published
		}
		if err := p.store.MarkPublished(ctx, event.ID); err != nil {
			slog.Warn("failed to mark outbox event published", "event_id", event.ID, "error", err)
			return published
		}
		outboxPublished.WithLabelValues("ok").Inc()
		published++
	}
	return published
}
