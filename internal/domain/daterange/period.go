// Package daterange models the half-open calendar-day intervals that
// supports are rented for. Start is inclusive, End is exclusive, both are
// UTC midnights.
package daterange

import (
	"errors"
	"time"
)

var (
	ErrEmptyRange   = errors.New("end date must be after start date")
	ErrPastStart    = errors.New("start date cannot be in the past")
	ErrMonthsTooLow = errors.New("months must be at least 1")
)

type Period struct {
	start time.Time
	end   time.Time
}

// New builds a period from explicit bounds. Zero-length and inverted
// ranges are rejected.
func New(start, end time.Time) (Period, error) {
	start = Day(start)
	end = Day(end)
	if !end.After(start) {
		return Period{}, ErrEmptyRange
	}
	return Period{start: start, end: end}, nil
}

// FromMonths derives the exclusive end date as start plus a whole number
// of calendar months, e.g. 2024-03-01 + 2 months -> [2024-03-01, 2024-05-01).
func FromMonths(start time.Time, months int) (Period, error) {
	if months < 1 {
		return Period{}, ErrMonthsTooLow
	}
	start = Day(start)
	return Period{start: start, end: start.AddDate(0, months, 0)}, nil
}

// Day truncates t to its UTC calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (p Period) Start() time.Time { return p.start }
func (p Period) End() time.Time   { return p.end }

func (p Period) IsZero() bool {
	return p.start.IsZero() && p.end.IsZero()
}

// Overlaps reports whether two half-open ranges intersect. A range ending
// on day N never overlaps one starting on day N.
func (p Period) Overlaps(other Period) bool {
	return p.start.Before(other.end) && other.start.Before(p.end)
}

func (p Period) Contains(day time.Time) bool {
	day = Day(day)
	return !day.Before(p.start) && day.Before(p.end)
}

// StartedBy reports whether the period has begun as of the given day.
func (p Period) StartedBy(day time.Time) bool {
	return !Day(day).Before(p.start)
}

// EndedBy reports whether the period is fully in the past as of the given day.
func (p Period) EndedBy(day time.Time) bool {
	return !Day(day).Before(p.end)
}

func (p Period) String() string {
	return "[" + p.start.Format(time.DateOnly) + "," + p.end.Format(time.DateOnly) + ")"
}
