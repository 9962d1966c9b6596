package cache

import (
	"fmt"

	"restaurant-crm/internal/domain/booking"
)

func SlotKey(restaurantID int64, date booking.Date) string {
	return fmt.Sprintf("slots:%d:%s", restaurantID, date.String())
}
