package repository

import (
	"context"

	"restaurant-crm/internal/domain/restaurant"
	"restaurant-crm/internal/infra"
	"restaurant-crm/internal/infra/repository/converter"
	sqlc "restaurant-crm/internal/infra/sqlc/generated"
)

//go:generate mockgen -source=settings.go -destination=../../../tests/mock/repository/settings.go -package=repositorymock

type SettingsWriteQueries interface {
	UpsertRestaurantSettings(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertRestaurantSettingsParams) (sqlc.RestaurantSettings, error)
}

type SettingsRepository struct {
	queries SettingsWriteQueries
}

func NewSettingsRepository(queries SettingsWriteQueries) *SettingsRepository {
	return &SettingsRepository{
		queries: queries,
	}
}

func (r *SettingsRepository) Upsert(ctx context.Context, tx sqlc.DBTX, s restaurant.Settings) (*restaurant.Settings, error) {
	row, err := r.queries.UpsertRestaurantSettings(ctx, tx, converter.SettingsToUpsertParams(s))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to upsert restaurant settings", err)
	}
	return converter.SettingsFromRow(row), nil
}
