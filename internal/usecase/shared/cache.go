package shared

import (
	"context"
	"time"

	"restaurant-crm/internal/domain/booking"
	"restaurant-crm/internal/domain/slot"
	"restaurant-crm/internal/pkg/errs"
)

//go:generate mockgen -source=cache.go -destination=../../../tests/mock/shared/cache.go -package=sharedmock

// ErrCacheMiss covers absent, expired and undecodable entries alike.
var ErrCacheMiss = errs.New("slot cache miss")

// SlotCache holds derived per-date slot arrays. It is never authoritative.
type SlotCache interface {
	Get(ctx context.Context, restaurantID int64, date booking.Date) ([]slot.Slot, error)
	Set(ctx context.Context, restaurantID int64, date booking.Date, slots []slot.Slot, ttl time.Duration) error
}
