package response

import (
	"restaurant-crm/internal/domain/slot"
	"restaurant-crm/internal/usecase/queries"
)

const StatusOK = "ok"

type CreateBookingResponse struct {
	Status    string `json:"status"`
	BookingID int64  `json:"booking_id"`
}

type SlotResponse struct {
	Time   string `json:"time"`
	Booked int    `json:"booked"`
	Free   int    `json:"free"`
}

type SlotsResponse struct {
	RestaurantID int64          `json:"restaurant_id"`
	Date         string         `json:"date"`
	Slots        []SlotResponse `json:"slots"`
}

func FromSlotSnapshotView(v *queries.SlotSnapshotView) *SlotsResponse {
	return &SlotsResponse{
		RestaurantID: v.RestaurantID,
		Date:         v.Date,
		Slots:        fromSlots(v.Slots),
	}
}

func fromSlots(slots []slot.Slot) []SlotResponse {
	out := make([]SlotResponse, len(slots))
	for i, s := range slots {
		out[i] = SlotResponse{Time: s.Time, Booked: s.Booked, Free: s.Free}
	}
	return out
}
