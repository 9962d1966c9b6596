package booking

import (
	"restaurant-crm/internal/domain/slot"
	"restaurant-crm/internal/pkg/errs"
)

type Factory struct {
	Catalog slot.Catalog
}

func NewFactory(catalog slot.Catalog) *Factory {
	return &Factory{Catalog: catalog}
}

// CreateBooking validates the request shape against the slot catalog.
// Capacity is checked by the caller inside the write transaction.
func (f *Factory) CreateBooking(
	restaurantID int64,
	date Date,
	timeSlot string,
	clientName string,
	details Details,
) (*Booking, error) {
	if !f.Catalog.Contains(timeSlot) {
		return nil, errs.ErrInvalidTimeSlot
	}
	return newBooking(restaurantID, date, timeSlot, clientName, details)
}
