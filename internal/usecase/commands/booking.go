package commands

import (
	"context"
	"encoding/json"

	"adspace-booking/internal/infra"
	"adspace-booking/internal/pkg/clock"
	"adspace-booking/internal/pkg/errs"
	"adspace-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

// ProgressReport counts the calendar transitions applied by one sweep.
type ProgressReport struct {
	Activated int
	Completed int
}

type BookingCommands interface {
	Cancel(ctx context.Context, bookingID uuid.UUID) error
	// ProgressCalendar moves reserved bookings whose period has started to
	// active, and active bookings whose period has ended to completed.
	ProgressCalendar(ctx context.Context) (ProgressReport, error)
}

type bookingUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, clock: clk}
}

// Cancel releases the booking's range. Idempotent: cancelling a cancelled
// booking succeeds without effect.
func (b *bookingUseCaseImpl) Cancel(ctx context.Context, bookingID uuid.UUID) error {
	return b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		bk, err := tx.Bookings().FindByID(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		before := bk.Status()
		if err := bk.Cancel(); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}
		if bk.Status() == before {
			return nil
		}
		if err := tx.Bookings().UpdateState(ctx, bk); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		payload, err := json.Marshal(map[string]any{
			"booking_id": bk.ID(),
			"type":       "booking_cancelled",
		})
		if err != nil {
			return err
		}
		if err := tx.Notifications().CreateJob(ctx, "email", "booking_cancelled", payload, b.clock.Now()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (b *bookingUseCaseImpl) ProgressCalendar(ctx context.Context) (ProgressReport, error) {
	today := clock.Today(b.clock)
	var report ProgressReport

	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		report = ProgressReport{}

		due, err := tx.Bookings().DueForActivation(ctx, today)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		for _, bk := range due {
			if err := bk.Activate(today); err != nil {
				return errs.Mark(err, ErrInvalidTransition)
			}
			if !bk.Period().StartedBy(today) {
				continue
			}
			if err := tx.Bookings().UpdateState(ctx, bk); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			report.Activated++
		}

		ended, err := tx.Bookings().DueForCompletion(ctx, today)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		for _, bk := range ended {
			if err := bk.Complete(today); err != nil {
				return errs.Mark(err, ErrInvalidTransition)
			}
			if !bk.Period().EndedBy(today) {
				continue
			}
			if err := tx.Bookings().UpdateState(ctx, bk); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			report.Completed++
		}
		return nil
	})
	if err != nil {
		return ProgressReport{}, err
	}
	return report, nil
}
