package commands

import (
	"context"
	"encoding/json"
	"time"

	"adspace-booking/internal/domain/booking"
	"adspace-booking/internal/domain/daterange"
	"adspace-booking/internal/domain/pricing"
	"adspace-booking/internal/domain/request"
	"adspace-booking/internal/infra"
	"adspace-booking/internal/pkg/clock"
	"adspace-booking/internal/pkg/errs"
	"adspace-booking/internal/usecase/queries"
	"adspace-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSupportNotFound         = errs.New("support not found")
	ErrSupportInactive         = errs.New("support is not bookable")
	ErrRequestNotFound         = errs.New("request not found")
	ErrInvalidMonths           = errs.New("months must be at least 1")
	ErrPastStartDate           = errs.New("start date cannot be in the past")
	ErrInvalidTransition       = errs.New("invalid request state transition")
	ErrBookingConflict         = errs.New("booking conflict")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// ConflictError carries the blocking booking so callers can report which
// range is taken. Matched via errors.Is(err, ErrBookingConflict).
type ConflictError struct {
	Conflict booking.Conflict
}

func (e *ConflictError) Error() string {
	return "requested range conflicts with booking " + e.Conflict.Number + " " + e.Conflict.Period.String()
}

type Decision string

const (
	DecisionAccept Decision = "accept"
	DecisionReject Decision = "reject"
)

type CreateRequestParams struct {
	SupportID   uuid.UUID
	RequesterID uuid.UUID
	StartDate   time.Time
	Months      int
	Message     string
}

// DecideResult is the outcome of a decision: a booking view on accept,
// nothing on reject.
type DecideResult struct {
	Booking *queries.BookingView
}

type RequestCommands interface {
	Create(ctx context.Context, params CreateRequestParams) (*queries.RequestView, error)
	MarkViewed(ctx context.Context, requestID uuid.UUID) error
	Decide(ctx context.Context, requestID uuid.UUID, decision Decision) (*DecideResult, error)
}

type requestUseCaseImpl struct {
	uow            shared.UnitOfWork
	snapshotter    *pricing.Snapshotter
	bookingFactory *booking.Factory
	requestQueries queries.RequestQueries
	bookingQueries queries.BookingQueries
	clock          clock.Clock
}

func NewRequestUseCase(
	uow shared.UnitOfWork,
	snapshotter *pricing.Snapshotter,
	bookingFactory *booking.Factory,
	requestQueries queries.RequestQueries,
	bookingQueries queries.BookingQueries,
	clk clock.Clock,
) RequestCommands {
	return &requestUseCaseImpl{
		uow:            uow,
		snapshotter:    snapshotter,
		bookingFactory: bookingFactory,
		requestQueries: requestQueries,
		bookingQueries: bookingQueries,
		clock:          clk,
	}
}

// Create validates the proposal, freezes its price and persists it as
// pending. Deliberately no overlap check here: a request is non-binding,
// several brands may court the same window and the owner picks one.
func (r *requestUseCaseImpl) Create(ctx context.Context, params CreateRequestParams) (*queries.RequestView, error) {
	if params.Months < 1 {
		return nil, ErrInvalidMonths
	}
	if daterange.Day(params.StartDate).Before(clock.Today(r.clock)) {
		return nil, ErrPastStartDate
	}

	sup, err := r.uow.CommandReads().SupportByID(ctx, params.SupportID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSupportNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !sup.Active {
		return nil, ErrSupportInactive
	}

	period, err := daterange.FromMonths(params.StartDate, params.Months)
	if err != nil {
		return nil, ErrInvalidMonths
	}

	price, err := r.snapshotter.Take(sup.MonthlyRate, params.Months)
	if err != nil {
		return nil, errs.Wrap(err, "failed to take price snapshot")
	}

	req := request.New(params.SupportID, params.RequesterID, period, params.Months, price, params.Message)

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Requests().Create(ctx, req); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return createNotificationJob(ctx, tx, "request_created", req.ID(), r.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	return r.requestQueries.GetByID(ctx, req.ID())
}

// MarkViewed records the owner-side read receipt. Viewing an already
// viewed request is a no-op; viewing a decided one is refused.
func (r *requestUseCaseImpl) MarkViewed(ctx context.Context, requestID uuid.UUID) error {
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, err := tx.Requests().FindByID(ctx, requestID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRequestNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		before := req.Status()
		if err := req.MarkViewed(); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}
		if req.Status() == before {
			return nil
		}
		if err := tx.Requests().UpdateState(ctx, req); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (r *requestUseCaseImpl) Decide(ctx context.Context, requestID uuid.UUID, decision Decision) (*DecideResult, error) {
	switch decision {
	case DecisionAccept:
		return r.accept(ctx, requestID)
	case DecisionReject:
		return &DecideResult{}, r.reject(ctx, requestID)
	default:
		return nil, errs.New("unknown decision " + string(decision))
	}
}

// accept is the single synchronization point of the whole lifecycle. The
// support row lock is held across "re-check overlap, write booking, flip
// request state", so two competing accepts for one support serialize and
// the loser sees the winner's booking.
func (r *requestUseCaseImpl) accept(ctx context.Context, requestID uuid.UUID) (*DecideResult, error) {
	var bookingID uuid.UUID

	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, err := tx.Requests().FindByID(ctx, requestID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRequestNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !req.Status().Decidable() {
			return ErrInvalidTransition
		}

		if err := tx.Supports().Lock(ctx, req.SupportID()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		existing, err := tx.Bookings().BlockingBySupport(ctx, req.SupportID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if conflict := booking.FindConflict(existing, req.Period(), uuid.Nil); conflict != nil {
			return errs.Mark(&ConflictError{Conflict: *conflict}, ErrBookingConflict)
		}

		bk, err := r.bookingFactory.Materialize(req)
		if err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}
		if err := req.Accept(bk.ID()); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}

		if err := tx.Bookings().Create(ctx, bk); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Requests().UpdateState(ctx, req); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		bookingID = bk.ID()
		return createNotificationJob(ctx, tx, "request_accepted", req.ID(), r.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	view, err := r.bookingQueries.GetByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return &DecideResult{Booking: view}, nil
}

// reject closes the request without touching availability. Rejecting an
// already-rejected request succeeds without effect.
func (r *requestUseCaseImpl) reject(ctx context.Context, requestID uuid.UUID) error {
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, err := tx.Requests().FindByID(ctx, requestID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRequestNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if req.Status() == request.StatusRejected {
			return nil
		}
		if err := req.Reject(); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}
		if err := tx.Requests().UpdateState(ctx, req); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return createNotificationJob(ctx, tx, "request_rejected", req.ID(), r.clock.Now())
	})
}

func createNotificationJob(ctx context.Context, tx shared.Tx, topic string, requestID uuid.UUID, runAt time.Time) error {
	payload, err := json.Marshal(map[string]any{
		"request_id": requestID,
		"type":       topic,
	})
	if err != nil {
		return err
	}
	if err := tx.Notifications().CreateJob(ctx, "email", topic, payload, runAt); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
