//go:build unit || e2e

package builder

import (
	"restaurant-crm/internal/domain/booking"
	"restaurant-crm/internal/domain/slot"
	reqdto "restaurant-crm/internal/handler/dto/request"
	"restaurant-crm/internal/usecase/commands"
)

var DefaultTimeSlots = []string{"12:00", "13:00", "14:00", "15:00", "16:00", "17:00", "18:00", "19:00", "20:00", "21:00", "22:00"}

type BookingBuilder struct {
	RestaurantID int64
	Date         string
	TimeSlot     string
	ClientName   string
	Phone        *string
	GuestCount   *int32
	Comment      *string
	Tags         []string
	Deposit      bool
}

func NewBookingBuilder() *BookingBuilder {
	phone := "+10000000000"
	guests := int32(2)
	return &BookingBuilder{
		RestaurantID: 1,
		Date:         "2030-01-01",
		TimeSlot:     "19:00",
		ClientName:   "Alice",
		Phone:        &phone,
		GuestCount:   &guests,
		Tags:         []string{"window"},
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) details() booking.Details {
	return booking.Details{
		Phone:      b.Phone,
		GuestCount: b.GuestCount,
		Comment:    b.Comment,
		Tags:       b.Tags,
		Deposit:    b.Deposit,
	}
}

func NewCatalog() slot.Catalog {
	catalog, err := slot.NewCatalog(DefaultTimeSlots)
	if err != nil {
		panic(err)
	}
	return catalog
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	date, err := booking.ParseDate(b.Date)
	if err != nil {
		return nil, err
	}
	return booking.NewFactory(NewCatalog()).CreateBooking(b.RestaurantID, date, b.TimeSlot, b.ClientName, b.details())
}

func (b *BookingBuilder) BuildCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		RestaurantID: b.RestaurantID,
		Date:         b.Date,
		TimeSlot:     b.TimeSlot,
		ClientName:   b.ClientName,
		Details:      b.details(),
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	deposit := b.Deposit
	restaurantID := b.RestaurantID
	return reqdto.CreateBookingRequest{
		RestaurantID: &restaurantID,
		Date:         b.Date,
		TimeSlot:     b.TimeSlot,
		ClientName:   b.ClientName,
		Phone:        b.Phone,
		GuestCount:   b.GuestCount,
		Comment:      b.Comment,
		Tags:         b.Tags,
		Deposit:      &deposit,
	}
}
