// Package booking models the confirmed, binding allocation of a support
// to a requester. The central invariant: for any support, bookings in a
// blocking status are pairwise non-overlapping on their half-open ranges.
package booking

import (
	"errors"
	"time"

	"adspace-booking/internal/domain/daterange"
	"adspace-booking/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errors.New("invalid booking state transition")
)

type Booking struct {
	id          uuid.UUID
	number      string
	supportID   uuid.UUID
	requesterID uuid.UUID
	sourceReq   uuid.UUID
	period      daterange.Period
	price       pricing.Snapshot
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

// Reconstruct rebuilds a booking from persisted state.
func Reconstruct(
	id uuid.UUID,
	number string,
	supportID, requesterID, sourceRequestID uuid.UUID,
	period daterange.Period,
	price pricing.Snapshot,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		number:      number,
		supportID:   supportID,
		requesterID: requesterID,
		sourceReq:   sourceRequestID,
		period:      period,
		price:       price,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Activate flips a reserved booking whose period has begun. No-op while
// the start date is still ahead.
func (b *Booking) Activate(today time.Time) error {
	if !b.period.StartedBy(today) {
		return nil
	}
	if !b.status.CanTransitionTo(StatusActive) {
		return ErrInvalidTransition
	}
	b.status = StatusActive
	return nil
}

// Complete closes an active booking whose period is over.
func (b *Booking) Complete(today time.Time) error {
	if !b.period.EndedBy(today) {
		return nil
	}
	if !b.status.CanTransitionTo(StatusCompleted) {
		return ErrInvalidTransition
	}
	b.status = StatusCompleted
	return nil
}

// Cancel frees the slot. Cancelling an already-cancelled booking is a
// no-op; completed bookings cannot be cancelled.
func (b *Booking) Cancel() error {
	if b.status == StatusCancelled {
		return nil
	}
	if !b.status.CanTransitionTo(StatusCancelled) {
		return ErrInvalidTransition
	}
	b.status = StatusCancelled
	return nil
}

func (b *Booking) ID() uuid.UUID               { return b.id }
func (b *Booking) Number() string              { return b.number }
func (b *Booking) SupportID() uuid.UUID        { return b.supportID }
func (b *Booking) RequesterID() uuid.UUID      { return b.requesterID }
func (b *Booking) SourceRequestID() uuid.UUID  { return b.sourceReq }
func (b *Booking) Period() daterange.Period    { return b.period }
func (b *Booking) Price() pricing.Snapshot     { return b.price }
func (b *Booking) Status() Status              { return b.status }
func (b *Booking) CreatedAt() time.Time        { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time        { return b.updatedAt }
