package readstore

import (
	"context"

	"restaurant-crm/internal/infra"
	sqlc "restaurant-crm/internal/infra/sqlc/generated"
	"restaurant-crm/internal/pkg/pgconv"
	"restaurant-crm/internal/usecase/queries"
)

type SettingsReadQueries interface {
	GetRestaurantSettings(ctx context.Context, db sqlc.DBTX, restaurantID int64) (sqlc.RestaurantSettings, error)
}

type SettingsReadStore struct {
	queries SettingsReadQueries
	db      sqlc.DBTX
}

func NewSettingsReadStore(queries SettingsReadQueries, db sqlc.DBTX) *SettingsReadStore {
	return &SettingsReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SettingsReadStore) FindByRestaurantID(ctx context.Context, restaurantID int64) (*queries.SettingsView, error) {
	row, err := r.queries.GetRestaurantSettings(ctx, r.db, restaurantID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("restaurant settings not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find restaurant settings", err, infra.KindDBFailure)
	}

	return SettingsRowToView(row), nil
}

func SettingsRowToView(row sqlc.RestaurantSettings) *queries.SettingsView {
	return &queries.SettingsView{
		RestaurantID: row.RestaurantID,
		HostChoice:   pgconv.StringPtrFromPgtype(row.HostChoice),
		GreetingText: pgconv.StringPtrFromPgtype(row.GreetingText),
		InfoText:     pgconv.StringPtrFromPgtype(row.InfoText),
	}
}
