package converter

import (
	"fmt"

	"restaurant-crm/internal/domain/booking"
	"restaurant-crm/internal/domain/restaurant"
	sqlc "restaurant-crm/internal/infra/sqlc/generated"
	"restaurant-crm/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	tags := b.Tags()
	if tags == nil {
		tags = []string{}
	}
	return sqlc.CreateBookingParams{
		RestaurantID: b.RestaurantID(),
		Date:         pgconv.DateToPgtype(b.Date().Time()),
		TimeSlot:     b.TimeSlot(),
		ClientName:   b.ClientName(),
		StartTime:    pgconv.StringPtrToPgtype(b.StartTime()),
		EndTime:      pgconv.StringPtrToPgtype(b.EndTime()),
		Phone:        pgconv.StringPtrToPgtype(b.Phone()),
		GuestCount:   pgconv.Int32PtrToPgtype(b.GuestCount()),
		Comment:      pgconv.StringPtrToPgtype(b.Comment()),
		Tags:         tags,
		Deposit:      b.Deposit(),
	}
}

func SlotKeyToCountParams(key booking.SlotKey) sqlc.CountBookingsForSlotParams {
	return sqlc.CountBookingsForSlotParams{
		RestaurantID: key.RestaurantID,
		Date:         pgconv.DateToPgtype(key.Date.Time()),
		TimeSlot:     key.TimeSlot,
	}
}

// SlotLockKey is hashed server-side into the advisory lock id.
func SlotLockKey(key booking.SlotKey) string {
	return fmt.Sprintf("slot:%d:%s:%s", key.RestaurantID, key.Date.String(), key.TimeSlot)
}

func SettingsToUpsertParams(s restaurant.Settings) sqlc.UpsertRestaurantSettingsParams {
	return sqlc.UpsertRestaurantSettingsParams{
		RestaurantID: s.RestaurantID,
		HostChoice:   pgconv.StringPtrToPgtype(s.HostChoice),
		GreetingText: pgconv.StringPtrToPgtype(s.GreetingText),
		InfoText:     pgconv.StringPtrToPgtype(s.InfoText),
	}
}

func SettingsFromRow(row sqlc.RestaurantSettings) *restaurant.Settings {
	return &restaurant.Settings{
		RestaurantID: row.RestaurantID,
		HostChoice:   pgconv.StringPtrFromPgtype(row.HostChoice),
		GreetingText: pgconv.StringPtrFromPgtype(row.GreetingText),
		InfoText:     pgconv.StringPtrFromPgtype(row.InfoText),
	}
}
