package bootstrap

import (
	"context"

	"restaurant-crm/internal/infra/db"
	sqlc "restaurant-crm/internal/infra/sqlc/generated"
	"restaurant-crm/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
	fx.Invoke(EnsureSchema),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

func EnsureSchema(lc fx.Lifecycle, pool *pgxpool.Pool, cfg config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return db.EnsureSchema(ctx, pool, sqlc.New(), db.Seed{
				RestaurantID:   cfg.Admin.RestaurantID,
				RestaurantName: cfg.Booking.RestaurantName,
				TableCount:     cfg.Booking.DefaultTableCount,
			})
		},
	})
}
