//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"restaurant-crm/internal/infra/db"
	sqlc "restaurant-crm/internal/infra/sqlc/generated"
	"restaurant-crm/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestRestaurant(t *testing.T, db DBLike, name string, tableCount int32) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO restaurants (name, default_table_count) VALUES ($1, $2) RETURNING id",
		name, tableCount).Scan(&id)
	require.NoError(t, err)
	return id
}

func CountBookings(t *testing.T, db DBLike, restaurantID int64, date, timeSlot string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM bookings WHERE restaurant_id = $1 AND date = $2::date AND time_slot = $3",
		restaurantID, date, timeSlot).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts the default restaurant the application expects
func SeedReferenceData(pool *pgxpool.Pool, cfg config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return db.EnsureSchema(ctx, pool, sqlc.New(), db.Seed{
		RestaurantID:   cfg.Admin.RestaurantID,
		RestaurantName: cfg.Booking.RestaurantName,
		TableCount:     cfg.Booking.DefaultTableCount,
	})
}

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool, cfg config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := pool.Exec(ctx, "TRUNCATE bookings, restaurant_settings, restaurants RESTART IDENTITY CASCADE"); err != nil {
		return err
	}

	return SeedReferenceData(pool, cfg)
}
