package request

import (
	"restaurant-crm/internal/domain/booking"
	"restaurant-crm/internal/usecase/commands"
)

type CreateBookingRequest struct {
	RestaurantID *int64   `json:"restaurant_id" binding:"required"`
	Date         string   `json:"date" binding:"required"`
	TimeSlot     string   `json:"time_slot" binding:"required"`
	ClientName   string   `json:"client_name" binding:"required"`
	StartTime    *string  `json:"start_time"`
	EndTime      *string  `json:"end_time"`
	Phone        *string  `json:"phone"`
	GuestCount   *int32   `json:"guest_count"`
	Comment      *string  `json:"comment"`
	Tags         []string `json:"tags"`
	Deposit      *bool    `json:"deposit"`
}

func (r *CreateBookingRequest) ToCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		RestaurantID: *r.RestaurantID,
		Date:         r.Date,
		TimeSlot:     r.TimeSlot,
		ClientName:   r.ClientName,
		Details: booking.Details{
			StartTime:  r.StartTime,
			EndTime:    r.EndTime,
			Phone:      r.Phone,
			GuestCount: r.GuestCount,
			Comment:    r.Comment,
			Tags:       r.Tags,
			Deposit:    r.Deposit != nil && *r.Deposit,
		},
	}
}
