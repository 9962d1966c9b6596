package commands

import (
	"context"
	"log/slog"

	"restaurant-crm/internal/domain/booking"
	"restaurant-crm/internal/infra"
	"restaurant-crm/internal/pkg/errs"
	"restaurant-crm/internal/usecase/queries"
	"restaurant-crm/internal/usecase/shared"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

var (
	ErrCapacityExceeded = errs.New("no free tables for selected slot")
	ErrDuplicateBooking = errs.New("booking already exists for this client and slot")
)

type CreateBookingRequest struct {
	RestaurantID int64
	Date         string
	TimeSlot     string
	ClientName   string
	Details      booking.Details
}

type CreateBookingResult struct {
	BookingID int64
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*CreateBookingResult, error)
}

type bookingUseCaseImpl struct {
	uow          shared.UnitOfWork
	factory      *booking.Factory
	availability queries.AvailabilityQueries
}

func NewBookingUseCase(uow shared.UnitOfWork, factory *booking.Factory, availability queries.AvailabilityQueries) BookingCommands {
	return &bookingUseCaseImpl{
		uow:          uow,
		factory:      factory,
		availability: availability,
	}
}

func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, req CreateBookingRequest) (*CreateBookingResult, error) {
	date, err := booking.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	rest, err := uc.uow.CommandReads().RestaurantByID(ctx, req.RestaurantID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, queries.ErrRestaurantNotFound
		}
		return nil, err
	}

	b, err := uc.factory.CreateBooking(rest.ID, date, req.TimeSlot, req.ClientName, req.Details)
	if err != nil {
		return nil, err
	}

	var bookingID int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		key := b.Key()
		if derr := tx.Bookings().LockSlot(ctx, tx.DB(), key); derr != nil {
			return derr
		}

		booked, derr := tx.Bookings().CountForSlot(ctx, tx.DB(), key)
		if derr != nil {
			return derr
		}
		if booked >= rest.Capacity {
			return ErrCapacityExceeded
		}

		id, derr := tx.Bookings().Create(ctx, tx.DB(), b)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrDuplicateBooking
			}
			// restaurant removed after the lookup
			if infra.IsKind(derr, infra.KindForeignKeyViolated) {
				return queries.ErrRestaurantNotFound
			}
			return derr
		}
		bookingID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	// The booking is committed; a cancelled request must not leave a stale cache entry behind.
	if _, rerr := uc.availability.Refresh(context.WithoutCancel(ctx), rest.ID, date); rerr != nil {
		slog.Warn("failed to refresh slot cache after booking",
			"restaurant_id", rest.ID,
			"date", date.String(),
			"booking_id", bookingID,
			"error", rerr.Error())
	}

	return &CreateBookingResult{BookingID: bookingID}, nil
}
