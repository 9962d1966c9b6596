package bootstrap

import (
	"context"
	"log/slog"

	"restaurant-crm/internal/domain/slot"
	"restaurant-crm/internal/infra/cache"
	"restaurant-crm/internal/pkg/clock"
	"restaurant-crm/internal/pkg/config"
	"restaurant-crm/internal/usecase/shared"

	"go.uber.org/fx"
)

const cacheBackendMemory = "memory"

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewSlotCache,
	),
)

func NewSlotCache(lc fx.Lifecycle, cfg config.Config, catalog slot.Catalog) (shared.SlotCache, error) {
	if cfg.Cache.Backend == cacheBackendMemory {
		slog.Info("slot cache: in-process memory backend")
		return cache.NewMemorySlotCache(clock.NewRealClock()), nil
	}

	client, err := cache.NewRedisClient(cfg.Cache.URL)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// Reads fall back to the database, so an unreachable cache is not fatal.
			if err := client.Ping(ctx).Err(); err != nil {
				slog.Warn("redis ping failed; slot cache degraded", "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return cache.NewRedisSlotCache(client, catalog), nil
}
