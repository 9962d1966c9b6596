//go:build unit

package booking_test

import (
	"testing"

	"restaurant-crm/internal/domain/booking"
	"restaurant-crm/internal/domain/slot"
	"restaurant-crm/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFactory(t *testing.T) *booking.Factory {
	t.Helper()
	catalog, err := slot.NewCatalog([]string{"12:00", "19:00"})
	require.NoError(t, err)
	return booking.NewFactory(catalog)
}

func int32Ptr(v int32) *int32 {
	return &v
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "valid date", input: "2024-06-01", want: "2024-06-01"},
		{name: "leap day", input: "2024-02-29", want: "2024-02-29"},
		{name: "invalid month and day", input: "2024-13-40", wantErr: true},
		{name: "non leap year", input: "2023-02-29", wantErr: true},
		{name: "wrong layout", input: "01/06/2024", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := booking.ParseDate(tt.input)
			if tt.wantErr {
				assert.True(t, errs.Is(err, errs.ErrInvalidDate))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestFactory_CreateBooking(t *testing.T) {
	f := newFactory(t)
	date, err := booking.ParseDate("2024-06-01")
	require.NoError(t, err)

	t.Run("基本成功ケース", func(t *testing.T) {
		b, err := f.CreateBooking(1, date, "19:00", "  Alice ", booking.Details{
			GuestCount: int32Ptr(2),
			Tags:       []string{"vip", " ", "window"},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), b.RestaurantID())
		assert.Equal(t, "Alice", b.ClientName())
		assert.Equal(t, "19:00", b.TimeSlot())
		assert.Equal(t, []string{"vip", "window"}, b.Tags())
		assert.Equal(t, int32(2), *b.GuestCount())
		assert.False(t, b.Deposit())
		assert.Equal(t, booking.SlotKey{RestaurantID: 1, Date: date, TimeSlot: "19:00"}, b.Key())
	})

	errCases := []struct {
		name         string
		restaurantID int64
		timeSlot     string
		clientName   string
		details      booking.Details
		errIs        error
	}{
		{name: "time slot outside catalog", restaurantID: 1, timeSlot: "23:00", clientName: "Bob", errIs: errs.ErrInvalidTimeSlot},
		{name: "blank client name", restaurantID: 1, timeSlot: "12:00", clientName: "   ", errIs: errs.ErrInvalidClientName},
		{name: "zero guests", restaurantID: 1, timeSlot: "12:00", clientName: "Bob", details: booking.Details{GuestCount: int32Ptr(0)}, errIs: errs.ErrInvalidGuestCount},
		{name: "non positive restaurant", restaurantID: 0, timeSlot: "12:00", clientName: "Bob", errIs: errs.ErrInvalidRestaurant},
	}
	for _, tc := range errCases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := f.CreateBooking(tc.restaurantID, date, tc.timeSlot, tc.clientName, tc.details)
			assert.Nil(t, b)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}

	t.Run("zero date rejected", func(t *testing.T) {
		_, err := f.CreateBooking(1, booking.Date{}, "12:00", "Bob", booking.Details{})
		assert.ErrorIs(t, err, errs.ErrInvalidDate)
	})
}
