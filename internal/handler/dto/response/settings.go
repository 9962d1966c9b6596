package response

import (
	"restaurant-crm/internal/domain/restaurant"
	"restaurant-crm/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type SettingsResponse struct {
	RestaurantID int64   `json:"restaurant_id"`
	HostChoice   *string `json:"host_choice"`
	GreetingText *string `json:"greeting_text"`
	InfoText     *string `json:"info_text"`
}

func FromSettingsView(v *queries.SettingsView) (*SettingsResponse, error) {
	var out SettingsResponse
	if err := copier.Copy(&out, v); err != nil {
		return nil, err
	}
	return &out, nil
}

func FromSettings(s *restaurant.Settings) (*SettingsResponse, error) {
	var out SettingsResponse
	if err := copier.Copy(&out, s); err != nil {
		return nil, err
	}
	return &out, nil
}
