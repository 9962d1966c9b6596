package booking

import (
	"restaurant-crm/internal/pkg/errs"
)

type Details struct {
	StartTime  *string
	EndTime    *string
	Phone      *string
	GuestCount *int32
	Comment    *string
	Tags       []string
	Deposit    bool
}

type Booking struct {
	restaurantID int64
	date         Date
	timeSlot     string
	clientName   ClientName
	startTime    *string
	endTime      *string
	phone        *string
	guestCount   GuestCount
	comment      *string
	tags         Tags
	deposit      bool
}

func (b *Booking) RestaurantID() int64 {
	return b.restaurantID
}

func (b *Booking) Date() Date {
	return b.date
}

func (b *Booking) TimeSlot() string {
	return b.timeSlot
}

func (b *Booking) ClientName() string {
	return b.clientName.Value()
}

func (b *Booking) StartTime() *string {
	return b.startTime
}

func (b *Booking) EndTime() *string {
	return b.endTime
}

func (b *Booking) Phone() *string {
	return b.phone
}

func (b *Booking) GuestCount() *int32 {
	return b.guestCount.Value()
}

func (b *Booking) Comment() *string {
	return b.comment
}

func (b *Booking) Tags() []string {
	return b.tags
}

func (b *Booking) Deposit() bool {
	return b.deposit
}

func (b *Booking) Key() SlotKey {
	return SlotKey{RestaurantID: b.restaurantID, Date: b.date, TimeSlot: b.timeSlot}
}

// SlotKey identifies the capacity bucket a booking consumes.
type SlotKey struct {
	RestaurantID int64
	Date         Date
	TimeSlot     string
}

func newBooking(restaurantID int64, date Date, timeSlot string, clientName string, d Details) (*Booking, error) {
	if restaurantID < 1 {
		return nil, errs.ErrInvalidRestaurant
	}
	if date.IsZero() {
		return nil, errs.ErrInvalidDate
	}

	name, err := NewClientName(clientName)
	if err != nil {
		return nil, err
	}

	guests, err := NewGuestCount(d.GuestCount)
	if err != nil {
		return nil, err
	}

	return &Booking{
		restaurantID: restaurantID,
		date:         date,
		timeSlot:     timeSlot,
		clientName:   name,
		startTime:    d.StartTime,
		endTime:      d.EndTime,
		phone:        d.Phone,
		guestCount:   guests,
		comment:      d.Comment,
		tags:         NewTags(d.Tags),
		deposit:      d.Deposit,
	}, nil
}
