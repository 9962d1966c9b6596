package queries

import (
	"context"
	"log/slog"
	"time"

	"restaurant-crm/internal/domain/booking"
	"restaurant-crm/internal/domain/slot"
	"restaurant-crm/internal/infra"
	"restaurant-crm/internal/pkg/config"
	"restaurant-crm/internal/pkg/errs"
	"restaurant-crm/internal/usecase/shared"
)

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/availability.go -package=queriesmock

var (
	ErrRestaurantNotFound = errs.New("restaurant not found")
)

type AvailabilityQueries interface {
	// GetSlots serves from the slot cache and falls back to the capacity store on a miss.
	GetSlots(ctx context.Context, restaurantID int64, date string) (*SlotSnapshotView, error)
	// Refresh recomputes from the capacity store and overwrites the cache entry.
	Refresh(ctx context.Context, restaurantID int64, date booking.Date) (*SlotSnapshotView, error)
}

type RestaurantReadStore interface {
	FindByID(ctx context.Context, id int64) (*RestaurantView, error)
}

type BookingReadStore interface {
	CountBySlot(ctx context.Context, restaurantID int64, date booking.Date) (map[string]int, error)
}

type availabilityQueriesImpl struct {
	restaurants RestaurantReadStore
	bookings    BookingReadStore
	cache       shared.SlotCache
	catalog     slot.Catalog
	ttl         time.Duration
}

func NewAvailabilityQueries(
	restaurants RestaurantReadStore,
	bookings BookingReadStore,
	cache shared.SlotCache,
	catalog slot.Catalog,
	cfg config.Config,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		restaurants: restaurants,
		bookings:    bookings,
		cache:       cache,
		catalog:     catalog,
		ttl:         cfg.Cache.SlotTTL,
	}
}

func (q *availabilityQueriesImpl) GetSlots(ctx context.Context, restaurantID int64, rawDate string) (*SlotSnapshotView, error) {
	date, err := booking.ParseDate(rawDate)
	if err != nil {
		return nil, err
	}

	cached, err := q.cache.Get(ctx, restaurantID, date)
	if err == nil {
		return &SlotSnapshotView{RestaurantID: restaurantID, Date: date.String(), Slots: cached}, nil
	}
	if !errs.Is(err, shared.ErrCacheMiss) {
		slog.Warn("slot cache read failed, computing from store",
			"restaurant_id", restaurantID,
			"date", date.String(),
			"error", err.Error())
	}

	return q.Refresh(ctx, restaurantID, date)
}

func (q *availabilityQueriesImpl) Refresh(ctx context.Context, restaurantID int64, date booking.Date) (*SlotSnapshotView, error) {
	restaurant, err := q.restaurants.FindByID(ctx, restaurantID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	counts, err := q.bookings.CountBySlot(ctx, restaurantID, date)
	if err != nil {
		return nil, err
	}

	slots := slot.Compute(q.catalog, int(restaurant.DefaultTableCount), counts)

	if err := q.cache.Set(ctx, restaurantID, date, slots, q.ttl); err != nil {
		slog.Warn("slot cache write failed",
			"restaurant_id", restaurantID,
			"date", date.String(),
			"error", err.Error())
	}

	return &SlotSnapshotView{RestaurantID: restaurantID, Date: date.String(), Slots: slots}, nil
}
