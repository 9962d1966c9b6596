package queries

import (
	"context"

	"restaurant-crm/internal/infra"
)

//go:generate mockgen -source=settings.go -destination=../../../tests/mock/queries/settings.go -package=queriesmock

type SettingsQueries interface {
	GetSettings(ctx context.Context, restaurantID int64) (*SettingsView, error)
}

type SettingsReadStore interface {
	FindByRestaurantID(ctx context.Context, restaurantID int64) (*SettingsView, error)
}

type settingsQueriesImpl struct {
	restaurants RestaurantReadStore
	settings    SettingsReadStore
}

func NewSettingsQueries(restaurants RestaurantReadStore, settings SettingsReadStore) SettingsQueries {
	return &settingsQueriesImpl{
		restaurants: restaurants,
		settings:    settings,
	}
}

func (q *settingsQueriesImpl) GetSettings(ctx context.Context, restaurantID int64) (*SettingsView, error) {
	if _, err := q.restaurants.FindByID(ctx, restaurantID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	view, err := q.settings.FindByRestaurantID(ctx, restaurantID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &SettingsView{RestaurantID: restaurantID}, nil
		}
		return nil, err
	}
	return view, nil
}
