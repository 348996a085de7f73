//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"adspace-booking/internal/domain/booking"
	"adspace-booking/internal/domain/daterange"
	"adspace-booking/internal/domain/pricing"
	"adspace-booking/internal/usecase/queries"
	"adspace-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type stubReads struct {
	supports map[string]shared.SupportSnapshot
	calls    int
}

func (r *stubReads) SupportByID(_ context.Context, _ uuid.UUID) (*shared.SupportSnapshot, error) {
	panic("not used")
}

func (r *stubReads) SupportsByCode(_ context.Context, codes []string) (map[string]shared.SupportSnapshot, error) {
	r.calls++
	result := map[string]shared.SupportSnapshot{}
	for _, code := range codes {
		if snap, ok := r.supports[code]; ok {
			result[code] = snap
		}
	}
	return result, nil
}

type stubSchedule struct {
	bookings map[uuid.UUID][]*booking.Booking
	calls    int
}

func (s *stubSchedule) BlockingBySupport(_ context.Context, supportID uuid.UUID) ([]*booking.Booking, error) {
	s.calls++
	return s.bookings[supportID], nil
}

func blockingBooking(t *testing.T, number string, start, end time.Time) *booking.Booking {
	t.Helper()
	period, err := daterange.New(start, end)
	require.NoError(t, err)

	snapshotter, err := pricing.NewSnapshotter(decimal.RequireFromString("15"))
	require.NoError(t, err)
	price, err := snapshotter.Take(decimal.RequireFromString("300"), 1)
	require.NoError(t, err)

	now := time.Now()
	return booking.Reconstruct(
		uuid.New(), number,
		uuid.New(), uuid.New(), uuid.New(),
		period, price, booking.StatusReserved,
		now, now,
	)
}

func TestValidateBatch(t *testing.T) {
	supportA := shared.SupportSnapshot{ID: uuid.New(), Code: "SPC-A", Active: true}
	supportB := shared.SupportSnapshot{ID: uuid.New(), Code: "SPC-B", Active: true}

	taken := blockingBooking(t, "BK-11111111", day(2026, 3, 1), day(2026, 5, 1))

	newValidator := func() (queries.AvailabilityQueries, *stubReads, *stubSchedule) {
		reads := &stubReads{supports: map[string]shared.SupportSnapshot{
			"SPC-A": supportA,
			"SPC-B": supportB,
		}}
		schedule := &stubSchedule{bookings: map[uuid.UUID][]*booking.Booking{
			supportA.ID: {taken},
		}}
		return queries.NewAvailabilityQueries(reads, schedule), reads, schedule
	}

	t.Run("clean batch returns empty non-nil slice", func(t *testing.T) {
		validator, _, _ := newValidator()
		conflicts, err := validator.ValidateBatch(context.Background(), []queries.Candidate{
			{SupportCode: "SPC-B", StartDate: day(2026, 3, 1), EndDate: day(2026, 5, 1)},
		})
		require.NoError(t, err)
		require.NotNil(t, conflicts)
		assert.Empty(t, conflicts)
	})

	t.Run("overlap reported with blocking booking details", func(t *testing.T) {
		validator, _, _ := newValidator()
		conflicts, err := validator.ValidateBatch(context.Background(), []queries.Candidate{
			{SupportCode: "SPC-A", StartDate: day(2026, 4, 1), EndDate: day(2026, 6, 1)},
		})
		require.NoError(t, err)
		require.Len(t, conflicts, 1)

		c := conflicts[0]
		assert.Equal(t, "SPC-A", c.SupportCode)
		assert.Equal(t, queries.ConflictReasonOverlap, c.Reason)
		require.NotNil(t, c.BookingID)
		assert.Equal(t, taken.ID(), *c.BookingID)
		require.NotNil(t, c.BookingNum)
		assert.Equal(t, "BK-11111111", *c.BookingNum)
	})

	t.Run("adjacent candidate passes", func(t *testing.T) {
		validator, _, _ := newValidator()
		conflicts, err := validator.ValidateBatch(context.Background(), []queries.Candidate{
			{SupportCode: "SPC-A", StartDate: day(2026, 5, 1), EndDate: day(2026, 7, 1)},
		})
		require.NoError(t, err)
		assert.Empty(t, conflicts)
	})

	t.Run("unknown support code reported", func(t *testing.T) {
		validator, _, _ := newValidator()
		conflicts, err := validator.ValidateBatch(context.Background(), []queries.Candidate{
			{SupportCode: "SPC-MISSING", StartDate: day(2026, 3, 1), EndDate: day(2026, 4, 1)},
		})
		require.NoError(t, err)
		require.Len(t, conflicts, 1)
		assert.Equal(t, queries.ConflictReasonSupportNotFound, conflicts[0].Reason)
	})

	t.Run("shape-invalid candidates are skipped", func(t *testing.T) {
		validator, _, _ := newValidator()
		conflicts, err := validator.ValidateBatch(context.Background(), []queries.Candidate{
			{SupportCode: "", StartDate: day(2026, 3, 1), EndDate: day(2026, 4, 1)},
			{SupportCode: "SPC-A", StartDate: day(2026, 4, 1), EndDate: day(2026, 3, 1)},
			{SupportCode: "SPC-A", StartDate: day(2026, 4, 1), EndDate: day(2026, 4, 1)},
			{SupportCode: "SPC-A"},
		})
		require.NoError(t, err)
		assert.Empty(t, conflicts)
	})

	t.Run("conflicts preserve candidate order", func(t *testing.T) {
		validator, _, _ := newValidator()
		conflicts, err := validator.ValidateBatch(context.Background(), []queries.Candidate{
			{SupportCode: "SPC-MISSING", StartDate: day(2026, 1, 1), EndDate: day(2026, 2, 1)},
			{SupportCode: "SPC-A", StartDate: day(2026, 3, 1), EndDate: day(2026, 4, 1)},
		})
		require.NoError(t, err)
		require.Len(t, conflicts, 2)
		assert.Equal(t, "SPC-MISSING", conflicts[0].SupportCode)
		assert.Equal(t, "SPC-A", conflicts[1].SupportCode)
	})

	t.Run("one code lookup and one schedule read per support", func(t *testing.T) {
		validator, reads, schedule := newValidator()
		_, err := validator.ValidateBatch(context.Background(), []queries.Candidate{
			{SupportCode: "SPC-A", StartDate: day(2026, 1, 1), EndDate: day(2026, 2, 1)},
			{SupportCode: "SPC-A", StartDate: day(2026, 2, 1), EndDate: day(2026, 3, 1)},
			{SupportCode: "SPC-A", StartDate: day(2026, 6, 1), EndDate: day(2026, 7, 1)},
			{SupportCode: "SPC-B", StartDate: day(2026, 1, 1), EndDate: day(2026, 2, 1)},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, reads.calls, "codes are resolved in one batch")
		assert.Equal(t, 2, schedule.calls, "each support's schedule is loaded once")
	})
}
