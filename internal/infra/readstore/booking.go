package readstore

import (
	"context"

	"restaurant-crm/internal/domain/booking"
	"restaurant-crm/internal/infra"
	sqlc "restaurant-crm/internal/infra/sqlc/generated"
	"restaurant-crm/internal/pkg/pgconv"
)

type BookingReadQueries interface {
	CountBookingsBySlot(ctx context.Context, db sqlc.DBTX, arg sqlc.CountBookingsBySlotParams) ([]sqlc.CountBookingsBySlotRow, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

// CountBySlot runs one grouped aggregate; slots without bookings are absent from the map.
func (r *BookingReadStore) CountBySlot(ctx context.Context, restaurantID int64, date booking.Date) (map[string]int, error) {
	rows, err := r.queries.CountBookingsBySlot(ctx, r.db, sqlc.CountBookingsBySlotParams{
		RestaurantID: restaurantID,
		Date:         pgconv.DateToPgtype(date.Time()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count bookings by slot", err, infra.KindDBFailure)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.TimeSlot] = int(row.Booked)
	}
	return counts, nil
}
