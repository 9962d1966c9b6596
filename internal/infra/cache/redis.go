package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"restaurant-crm/internal/domain/booking"
	"restaurant-crm/internal/domain/slot"
	"restaurant-crm/internal/pkg/errs"
	"restaurant-crm/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

type RedisSlotCache struct {
	client  *redis.Client
	catalog slot.Catalog
}

func NewRedisClient(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errs.Wrap(err, "invalid redis url")
	}
	return redis.NewClient(opts), nil
}

// NewRedisSlotCache only serves entries shaped like catalog; anything else is a miss.
func NewRedisSlotCache(client *redis.Client, catalog slot.Catalog) *RedisSlotCache {
	return &RedisSlotCache{client: client, catalog: catalog}
}

func (c *RedisSlotCache) Get(ctx context.Context, restaurantID int64, date booking.Date) ([]slot.Slot, error) {
	key := SlotKey(restaurantID, date)
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, shared.ErrCacheMiss
		}
		return nil, errs.Wrap(err, "failed to read slot cache")
	}

	var slots []slot.Slot
	if err := json.Unmarshal(raw, &slots); err != nil {
		slog.Warn("discarding undecodable slot cache entry", "key", key, "error", err.Error())
		return nil, shared.ErrCacheMiss
	}
	if !c.catalog.Matches(slots) {
		slog.Warn("discarding slot cache entry that does not match the catalog", "key", key, "entries", len(slots))
		return nil, shared.ErrCacheMiss
	}
	return slots, nil
}

func (c *RedisSlotCache) Set(ctx context.Context, restaurantID int64, date booking.Date, slots []slot.Slot, ttl time.Duration) error {
	raw, err := json.Marshal(slots)
	if err != nil {
		return errs.Wrap(err, "failed to encode slots")
	}
	if err := c.client.Set(ctx, SlotKey(restaurantID, date), raw, ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to write slot cache")
	}
	return nil
}
