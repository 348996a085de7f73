// Package request models a brand's non-binding proposal to rent a support
// for a run of calendar months. Requests hold a frozen price snapshot and
// move through an explicit state machine; only acceptance produces a
// binding booking.
package request

import (
	"errors"
	"time"

	"adspace-booking/internal/domain/daterange"
	"adspace-booking/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errors.New("invalid request state transition")
	ErrNotDecidable      = errors.New("request is already decided")
)

type Request struct {
	id              uuid.UUID
	supportID       uuid.UUID
	requesterID     uuid.UUID
	period          daterange.Period
	months          int
	price           pricing.Snapshot
	status          Status
	message         string
	acceptedBooking *uuid.UUID
	createdAt       time.Time
	updatedAt       time.Time
}

// New creates a pending request. The caller has already validated the
// start date against the clock and taken the price snapshot.
func New(supportID, requesterID uuid.UUID, period daterange.Period, months int, price pricing.Snapshot, message string) *Request {
	return &Request{
		id:          uuid.New(),
		supportID:   supportID,
		requesterID: requesterID,
		period:      period,
		months:      months,
		price:       price,
		status:      StatusPending,
		message:     message,
	}
}

// Reconstruct rebuilds a request from persisted state.
func Reconstruct(
	id, supportID, requesterID uuid.UUID,
	period daterange.Period,
	months int,
	price pricing.Snapshot,
	status Status,
	message string,
	acceptedBooking *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Request {
	return &Request{
		id:              id,
		supportID:       supportID,
		requesterID:     requesterID,
		period:          period,
		months:          months,
		price:           price,
		status:          status,
		message:         message,
		acceptedBooking: acceptedBooking,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// MarkViewed records the read receipt. Already-viewed requests are a
// no-op; decided requests refuse the transition.
func (r *Request) MarkViewed() error {
	if r.status == StatusViewed {
		return nil
	}
	if !r.status.CanTransitionTo(StatusViewed) {
		return ErrInvalidTransition
	}
	r.status = StatusViewed
	return nil
}

// Accept moves the request to its accepted terminal state, keeping a
// back-reference to the booking materialized from it.
func (r *Request) Accept(bookingID uuid.UUID) error {
	if !r.status.CanTransitionTo(StatusAccepted) {
		return ErrInvalidTransition
	}
	r.status = StatusAccepted
	r.acceptedBooking = &bookingID
	return nil
}

// Reject moves the request to its rejected terminal state. Rejecting an
// already-rejected request is a sanctioned no-op.
func (r *Request) Reject() error {
	if r.status == StatusRejected {
		return nil
	}
	if !r.status.CanTransitionTo(StatusRejected) {
		return ErrInvalidTransition
	}
	r.status = StatusRejected
	return nil
}

func (r *Request) ID() uuid.UUID                 { return r.id }
func (r *Request) SupportID() uuid.UUID          { return r.supportID }
func (r *Request) RequesterID() uuid.UUID        { return r.requesterID }
func (r *Request) Period() daterange.Period      { return r.period }
func (r *Request) Months() int                   { return r.months }
func (r *Request) Price() pricing.Snapshot       { return r.price }
func (r *Request) Status() Status                { return r.status }
func (r *Request) Message() string               { return r.message }
func (r *Request) AcceptedBookingID() *uuid.UUID { return r.acceptedBooking }
func (r *Request) CreatedAt() time.Time          { return r.createdAt }
func (r *Request) UpdatedAt() time.Time          { return r.updatedAt }
