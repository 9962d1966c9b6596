package commands

import (
	"context"

	"restaurant-crm/internal/domain/restaurant"
	"restaurant-crm/internal/infra"
	"restaurant-crm/internal/usecase/queries"
	"restaurant-crm/internal/usecase/shared"
)

//go:generate mockgen -source=settings.go -destination=../../../tests/mock/commands/settings.go -package=commandsmock

type UpdateSettingsRequest struct {
	HostChoice   *string
	GreetingText *string
	InfoText     *string
}

type SettingsCommands interface {
	// UpdateSettings replaces all three fields; nil clears a field.
	UpdateSettings(ctx context.Context, restaurantID int64, req UpdateSettingsRequest) (*restaurant.Settings, error)
}

type settingsUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewSettingsUseCase(uow shared.UnitOfWork) SettingsCommands {
	return &settingsUseCaseImpl{uow: uow}
}

func (uc *settingsUseCaseImpl) UpdateSettings(ctx context.Context, restaurantID int64, req UpdateSettingsRequest) (*restaurant.Settings, error) {
	var saved *restaurant.Settings
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().RestaurantByID(ctx, restaurantID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return queries.ErrRestaurantNotFound
			}
			return derr
		}

		s := restaurant.EmptySettings(restaurantID)
		s.HostChoice = req.HostChoice
		s.GreetingText = req.GreetingText
		s.InfoText = req.InfoText

		out, derr := tx.Settings().Upsert(ctx, tx.DB(), s)
		if derr != nil {
			if infra.IsKind(derr, infra.KindForeignKeyViolated) {
				return queries.ErrRestaurantNotFound
			}
			return derr
		}
		saved = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}
