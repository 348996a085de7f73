package booking

import (
	"adspace-booking/internal/domain/daterange"

	"github.com/google/uuid"
)

// Conflict identifies the booking that blocks a candidate range.
type Conflict struct {
	BookingID uuid.UUID
	Number    string
	Period    daterange.Period
}

// FindConflict scans a support's committed schedule for the first booking
// whose range intersects the candidate. The caller passes only bookings in
// a blocking status; excludeID skips a booking being re-validated against
// itself. Pure read, safe to call repeatedly.
func FindConflict(existing []*Booking, candidate daterange.Period, excludeID uuid.UUID) *Conflict {
	for _, b := range existing {
		if excludeID != uuid.Nil && b.id == excludeID {
			continue
		}
		if !b.status.Blocking() {
			continue
		}
		if b.period.Overlaps(candidate) {
			return &Conflict{BookingID: b.id, Number: b.number, Period: b.period}
		}
	}
	return nil
}

// FindAllConflicts returns every blocking booking intersecting the
// candidate, in schedule order.
func FindAllConflicts(existing []*Booking, candidate daterange.Period, excludeID uuid.UUID) []Conflict {
	var conflicts []Conflict
	for _, b := range existing {
		if excludeID != uuid.Nil && b.id == excludeID {
			continue
		}
		if !b.status.Blocking() {
			continue
		}
		if b.period.Overlaps(candidate) {
			conflicts = append(conflicts, Conflict{BookingID: b.id, Number: b.number, Period: b.period})
		}
	}
	return conflicts
}
