package localstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"storefront-checkout/internal/domain/cart"
	"storefront-checkout/internal/domain/catalog"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// RedisCartStorage keeps each device's cart as a JSON document next to the
// identity last seen on the device. A missing, expired or unreadable document
// reads as an empty cart.
type RedisCartStorage struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCartStorage(client *redis.Client, ttl time.Duration) *RedisCartStorage {
	return &RedisCartStorage{client: client, ttl: ttl}
}

type storedSize struct {
	Size  string          `json:"size"`
	Price decimal.Decimal `json:"price"`
}

type storedItem struct {
	ID        uuid.UUID       `json:"id"`
	Kind      string          `json:"kind"`
	Name      string          `json:"name"`
	BasePrice decimal.Decimal `json:"basePrice"`
	Sizes     []storedSize    `json:"sizes,omitempty"`
}

type storedLine struct {
	Item     storedItem `json:"item"`
	Size     string     `json:"size"`
	Quantity int        `json:"quantity"`
	AddedAt  time.Time  `json:"addedAt"`
}

type storedCart struct {
	Lines []storedLine `json:"lines"`
}

// LoadCart reads the cart and the last observed identity in one round trip.
// Only a failed read is an error.
func (s *RedisCartStorage) LoadCart(ctx context.Context, deviceID string) (shared.LocalCart, error) {
	vals, err := s.client.MGet(ctx, cartKey(deviceID), identityKey(deviceID)).Result()
	if err != nil {
		return shared.LocalCart{}, errs.Wrap(err, "redis read failed")
	}

	var local shared.LocalCart
	if raw, ok := vals[0].(string); ok {
		local.Lines = decodeLines(deviceID, raw)
	}
	if raw, ok := vals[1].(string); ok {
		if id, err := uuid.Parse(raw); err == nil {
			local.Identity = &id
		} else {
			slog.Warn("stored device identity is corrupt", "device_id", deviceID, "error", err)
		}
	}
	return local, nil
}

func decodeLines(deviceID, raw string) []cart.Line {
	var doc storedCart
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		slog.Warn("local cart document is corrupt", "device_id", deviceID, "error", err)
		return nil
	}

	lines := make([]cart.Line, 0, len(doc.Lines))
	for _, sl := range doc.Lines {
		line, err := sl.toLine()
		if err != nil {
			slog.Debug("skipping unreadable cart line", "device_id", deviceID, "error", err)
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func (s *RedisCartStorage) SetCart(ctx context.Context, deviceID string, lines []cart.Line) error {
	doc := storedCart{Lines: make([]storedLine, 0, len(lines))}
	for _, l := range lines {
		doc.Lines = append(doc.Lines, fromLine(l))
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return errs.Wrap(err, "marshal cart failed")
	}
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, cartKey(deviceID), data, s.ttl)
	pipe.Expire(ctx, identityKey(deviceID), s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return errs.Wrap(err, "redis set failed")
	}
	return nil
}

func (s *RedisCartStorage) ClearCart(ctx context.Context, deviceID string) error {
	if err := s.client.Del(ctx, cartKey(deviceID)).Err(); err != nil {
		return errs.Wrap(err, "redis delete failed")
	}
	return nil
}

// SetIdentity records the identity last seen on the device. It outlives
// ClearCart so a placed order does not reopen the sign-in edge.
func (s *RedisCartStorage) SetIdentity(ctx context.Context, deviceID string, identity *uuid.UUID) error {
	var err error
	if identity == nil {
		err = s.client.Del(ctx, identityKey(deviceID)).Err()
	} else {
		err = s.client.Set(ctx, identityKey(deviceID), identity.String(), s.ttl).Err()
	}
	if err != nil {
		return errs.Wrap(err, "redis identity write failed")
	}
	return nil
}

func fromLine(l cart.Line) storedLine {
	item := l.Item()
	si := storedItem{
		ID:        item.ID(),
		Kind:      string(item.Kind()),
		Name:      item.Name(),
		BasePrice: item.BasePrice(),
	}
	for _, sp := range item.Sizes() {
		si.Sizes = append(si.Sizes, storedSize{Size: sp.Size, Price: sp.Price})
	}
	return storedLine{Item: si, Size: l.Size(), Quantity: l.Quantity(), AddedAt: l.AddedAt()}
}

func (sl storedLine) toLine() (cart.Line, error) {
	sizes := make([]catalog.SizePrice, 0, len(sl.Item.Sizes))
	for _, sz := range sl.Item.Sizes {
		sizes = append(sizes, catalog.SizePrice{Size: sz.Size, Price: sz.Price})
	}
	item, err := catalog.NewItem(sl.Item.ID, catalog.Kind(sl.Item.Kind), sl.Item.Name, sl.Item.BasePrice, sizes)
	if err != nil {
		return cart.Line{}, err
	}
	return cart.NewLine(item, sl.Size, sl.Quantity, sl.AddedAt)
}

func cartKey(deviceID string) string {
	return fmt.Sprintf("cart:device:%s", deviceID)
}

func identityKey(deviceID string) string {
	return fmt.Sprintf("cart:device:%s:identity", deviceID)
}
