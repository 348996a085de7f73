package queries

import (
	"context"
	"time"

	"adspace-booking/internal/domain/booking"
	"adspace-booking/internal/domain/daterange"
	"adspace-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	ConflictReasonOverlap         = "overlap"
	ConflictReasonSupportNotFound = "support_not_found"
)

// Candidate is one (support code, date range) pair to pre-validate.
type Candidate struct {
	SupportCode string
	StartDate   time.Time
	EndDate     time.Time
}

// ConflictItem reports one problem found during batch validation. Either
// the support code is unknown, or the range collides with the identified
// booking.
type ConflictItem struct {
	SupportCode  string     `json:"support_code"`
	Reason       string     `json:"reason"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      time.Time  `json:"end_date"`
	BookingID    *uuid.UUID `json:"booking_id,omitempty"`
	BookingNum   *string    `json:"booking_number,omitempty"`
	BookingStart *time.Time `json:"booking_start,omitempty"`
	BookingEnd   *time.Time `json:"booking_end,omitempty"`
}

type AvailabilityQueries interface {
	// ValidateBatch checks every candidate against the committed schedule
	// and returns all problems in candidate order. Purely advisory: no
	// persistence changes, errors are data. Shape-invalid candidates
	// (empty code, inverted or zero-length range) are skipped, not
	// reported.
	ValidateBatch(ctx context.Context, candidates []Candidate) ([]ConflictItem, error)
}

// ScheduleReader is the slice of the booking repository the validator
// needs: the blocking bookings of one support.
type ScheduleReader interface {
	BlockingBySupport(ctx context.Context, supportID uuid.UUID) ([]*booking.Booking, error)
}

type availabilityQueriesImpl struct {
	reads    shared.CommandReads
	schedule ScheduleReader
}

func NewAvailabilityQueries(reads shared.CommandReads, schedule ScheduleReader) AvailabilityQueries {
	return &availabilityQueriesImpl{reads: reads, schedule: schedule}
}

func (q *availabilityQueriesImpl) ValidateBatch(ctx context.Context, candidates []Candidate) ([]ConflictItem, error) {
	valid := make([]Candidate, 0, len(candidates))
	codes := make([]string, 0, len(candidates))
	seen := make(map[string]bool)
	for _, c := range candidates {
		if c.SupportCode == "" || c.StartDate.IsZero() || c.EndDate.IsZero() {
			continue
		}
		if !daterange.Day(c.EndDate).After(daterange.Day(c.StartDate)) {
			continue
		}
		valid = append(valid, c)
		if !seen[c.SupportCode] {
			seen[c.SupportCode] = true
			codes = append(codes, c.SupportCode)
		}
	}

	if len(valid) == 0 {
		return []ConflictItem{}, nil
	}

	// One batched code lookup up front, never N round-trips.
	supports, err := q.reads.SupportsByCode(ctx, codes)
	if err != nil {
		return nil, err
	}

	// The schedule of each referenced support is loaded once and reused
	// across candidates targeting it.
	schedules := make(map[uuid.UUID][]*booking.Booking)

	conflicts := []ConflictItem{}
	for _, c := range valid {
		sup, ok := supports[c.SupportCode]
		if !ok {
			conflicts = append(conflicts, ConflictItem{
				SupportCode: c.SupportCode,
				Reason:      ConflictReasonSupportNotFound,
				StartDate:   daterange.Day(c.StartDate),
				EndDate:     daterange.Day(c.EndDate),
			})
			continue
		}

		existing, ok := schedules[sup.ID]
		if !ok {
			existing, err = q.schedule.BlockingBySupport(ctx, sup.ID)
			if err != nil {
				return nil, err
			}
			schedules[sup.ID] = existing
		}

		period, perr := daterange.New(c.StartDate, c.EndDate)
		if perr != nil {
			continue
		}

		if conflict := booking.FindConflict(existing, period, uuid.Nil); conflict != nil {
			start := conflict.Period.Start()
			end := conflict.Period.End()
			id := conflict.BookingID
			num := conflict.Number
			conflicts = append(conflicts, ConflictItem{
				SupportCode:  c.SupportCode,
				Reason:       ConflictReasonOverlap,
				StartDate:    period.Start(),
				EndDate:      period.End(),
				BookingID:    &id,
				BookingNum:   &num,
				BookingStart: &start,
				BookingEnd:   &end,
			})
		}
	}

	return conflicts, nil
}
