package db

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"

	sqlc "restaurant-crm/internal/infra/sqlc/generated"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema/schema.sql
var schemaSQL string

type Seed struct {
	RestaurantID   int64
	RestaurantName string
	TableCount     int32
}

// EnsureSchema creates missing tables and columns, then seeds the default restaurant if absent.
// Safe to run concurrently from several instances: the DDL is wrapped in a transaction-scoped advisory lock.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, q *sqlc.Queries, seed Seed) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin schema transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock(hashtextextended('schema:restaurant-crm', 0))"); err != nil {
		return fmt.Errorf("failed to acquire schema lock: %w", err)
	}

	if _, err := tx.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	inserted, err := q.EnsureRestaurant(ctx, tx, sqlc.EnsureRestaurantParams{
		ID:                seed.RestaurantID,
		Name:              seed.RestaurantName,
		DefaultTableCount: seed.TableCount,
	})
	if err != nil {
		return fmt.Errorf("failed to seed default restaurant: %w", err)
	}

	if err := q.SyncRestaurantSequence(ctx, tx); err != nil {
		return fmt.Errorf("failed to sync restaurant sequence: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit schema: %w", err)
	}

	slog.Info("database schema ensured",
		"restaurant_id", seed.RestaurantID,
		"seeded", inserted > 0)
	return nil
}
