package readstore

import (
	"context"

	"restaurant-crm/internal/infra"
	sqlc "restaurant-crm/internal/infra/sqlc/generated"
	"restaurant-crm/internal/pkg/pgconv"
	"restaurant-crm/internal/usecase/queries"
)

type RestaurantReadQueries interface {
	GetRestaurantByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Restaurants, error)
}

type RestaurantReadStore struct {
	queries RestaurantReadQueries
	db      sqlc.DBTX
}

func NewRestaurantReadStore(queries RestaurantReadQueries, db sqlc.DBTX) *RestaurantReadStore {
	return &RestaurantReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RestaurantReadStore) FindByID(ctx context.Context, id int64) (*queries.RestaurantView, error) {
	row, err := r.queries.GetRestaurantByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("restaurant not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find restaurant by ID", err, infra.KindDBFailure)
	}

	return &queries.RestaurantView{
		ID:                row.ID,
		Name:              row.Name,
		DefaultTableCount: row.DefaultTableCount,
	}, nil
}
