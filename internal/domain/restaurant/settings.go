package restaurant

// Settings is free-text configuration shown to guests. A PUT replaces all three fields.
type Settings struct {
	RestaurantID int64
	HostChoice   *string
	GreetingText *string
	InfoText     *string
}

func EmptySettings(restaurantID int64) Settings {
	return Settings{RestaurantID: restaurantID}
}
