//go:build unit || e2e

package builder

import (
	"time"

	"restaurant-crm/internal/domain/restaurant"
	sqlc "restaurant-crm/internal/infra/sqlc/generated"
	"restaurant-crm/internal/usecase/queries"
	"restaurant-crm/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type RestaurantBuilder struct {
	ID         int64
	Name       string
	TableCount int32
}

func NewRestaurantBuilder() *RestaurantBuilder {
	return &RestaurantBuilder{
		ID:         1,
		Name:       "Default Restaurant",
		TableCount: 5,
	}
}

func (r *RestaurantBuilder) With(mutate func(*RestaurantBuilder)) *RestaurantBuilder {
	mutate(r)
	return r
}

func (r *RestaurantBuilder) BuildDomain() (*restaurant.Restaurant, error) {
	return restaurant.NewRestaurant(r.ID, r.Name, r.TableCount)
}

func (r *RestaurantBuilder) BuildInfra() sqlc.Restaurants {
	return sqlc.Restaurants{
		ID:                r.ID,
		Name:              r.Name,
		DefaultTableCount: r.TableCount,
		CreatedAt:         pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
}

func (r *RestaurantBuilder) BuildView() *queries.RestaurantView {
	return &queries.RestaurantView{
		ID:                r.ID,
		Name:              r.Name,
		DefaultTableCount: r.TableCount,
	}
}

func (r *RestaurantBuilder) BuildSnapshot() *shared.RestaurantSnapshot {
	return &shared.RestaurantSnapshot{
		ID:       r.ID,
		Name:     r.Name,
		Capacity: int(r.TableCount),
	}
}
