package repository

import (
	"context"

	"restaurant-crm/internal/domain/booking"
	"restaurant-crm/internal/infra"
	"restaurant-crm/internal/infra/repository/converter"
	sqlc "restaurant-crm/internal/infra/sqlc/generated"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/repository/booking.go -package=repositorymock

// Only this constraint means the same client already holds the slot.
const bookingDedupConstraint = "uq_booking_dedup"

type BookingWriteQueries interface {
	LockBookingSlot(ctx context.Context, db sqlc.DBTX, slotKey string) error
	CountBookingsForSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.CountBookingsForSlotParams) (int32, error)
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
}

func NewBookingRepository(queries BookingWriteQueries) *BookingRepository {
	return &BookingRepository{
		queries: queries,
	}
}

func (r *BookingRepository) LockSlot(ctx context.Context, tx sqlc.DBTX, key booking.SlotKey) error {
	if err := r.queries.LockBookingSlot(ctx, tx, converter.SlotLockKey(key)); err != nil {
		return infra.WrapRepoErr("failed to lock booking slot", err, infra.KindDBFailure)
	}
	return nil
}

func (r *BookingRepository) CountForSlot(ctx context.Context, tx sqlc.DBTX, key booking.SlotKey) (int, error) {
	booked, err := r.queries.CountBookingsForSlot(ctx, tx, converter.SlotKeyToCountParams(key))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count bookings for slot", err, infra.KindDBFailure)
	}
	return int(booked), nil
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (int64, error) {
	id, err := r.queries.CreateBooking(ctx, tx, converter.BookingToCreateParams(b))
	if err != nil {
		wrapped := infra.WrapRepoErr("failed to create booking", err)
		if infra.IsKind(wrapped, infra.KindDuplicateKey) && infra.ConstraintName(err) != bookingDedupConstraint {
			return 0, infra.WrapRepoErr("failed to create booking", err, infra.KindDBFailure)
		}
		return 0, wrapped
	}
	return id, nil
}
