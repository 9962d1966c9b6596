package shared

import (
	"context"

	"restaurant-crm/internal/domain/booking"
	"restaurant-crm/internal/domain/restaurant"
	sqlc "restaurant-crm/internal/infra/sqlc/generated"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Settings() SettingsRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	RestaurantByID(ctx context.Context, id int64) (*RestaurantSnapshot, error)
}

// Minimal snapshot for command read operations
type RestaurantSnapshot struct {
	ID       int64
	Name     string
	Capacity int
}

type BookingRepository interface {
	// LockSlot serializes admission for one (restaurant, date, time slot) until the transaction ends.
	LockSlot(ctx context.Context, tx sqlc.DBTX, key booking.SlotKey) error
	CountForSlot(ctx context.Context, tx sqlc.DBTX, key booking.SlotKey) (int, error)
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (int64, error)
}

type SettingsRepository interface {
	Upsert(ctx context.Context, tx sqlc.DBTX, s restaurant.Settings) (*restaurant.Settings, error)
}
