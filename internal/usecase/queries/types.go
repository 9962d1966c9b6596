package queries

import (
	"restaurant-crm/internal/domain/slot"
)

// RestaurantView represents read-optimized restaurant data
type RestaurantView struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	DefaultTableCount int32  `json:"default_table_count"`
}

// SlotSnapshotView is the availability of every catalog slot on one date
type SlotSnapshotView struct {
	RestaurantID int64       `json:"restaurant_id"`
	Date         string      `json:"date"`
	Slots        []slot.Slot `json:"slots"`
}

// SettingsView has nil fields when nothing was saved yet
type SettingsView struct {
	RestaurantID int64   `json:"restaurant_id"`
	HostChoice   *string `json:"host_choice"`
	GreetingText *string `json:"greeting_text"`
	InfoText     *string `json:"info_text"`
}
