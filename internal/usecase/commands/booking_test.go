//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"adspace-booking/internal/domain/booking"
	"adspace-booking/internal/domain/daterange"
	"adspace-booking/internal/domain/pricing"
	"adspace-booking/internal/pkg/clock"
	"adspace-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	uow      *fakeUoW
	clk      *clock.MockClock
	commands commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.uow = newFakeUoW()
	s.clk = clock.NewMockClock(testToday)
	s.commands = commands.NewBookingUseCase(s.uow, s.clk)
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) seedBooking(status booking.Status, start time.Time, months int) *booking.Booking {
	period, err := daterange.FromMonths(start, months)
	s.Require().NoError(err)

	snapshotter, err := pricing.NewSnapshotter(decimal.RequireFromString("15"))
	s.Require().NoError(err)
	price, err := snapshotter.Take(decimal.RequireFromString("400"), months)
	s.Require().NoError(err)

	bk := booking.Reconstruct(
		uuid.New(), "BK-"+uuid.NewString()[:8],
		uuid.New(), uuid.New(), uuid.New(),
		period, price, status,
		testToday, testToday,
	)
	s.uow.tx.bookings.store[bk.ID()] = bk
	return bk
}

func (s *BookingCommandsTestSuite) TestCancel() {
	bk := s.seedBooking(booking.StatusReserved, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), 2)

	s.Require().NoError(s.commands.Cancel(context.Background(), bk.ID()))
	s.Equal(booking.StatusCancelled, bk.Status())
	s.Equal(1, s.uow.tx.bookings.updateCalls)

	s.Require().Len(s.uow.tx.notifications.jobs, 1)
	s.Equal("booking_cancelled", s.uow.tx.notifications.jobs[0].topic)
}

func (s *BookingCommandsTestSuite) TestCancelIdempotent() {
	bk := s.seedBooking(booking.StatusCancelled, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), 2)

	s.Require().NoError(s.commands.Cancel(context.Background(), bk.ID()))
	s.Equal(0, s.uow.tx.bookings.updateCalls, "repeat cancel must not write")
	s.Empty(s.uow.tx.notifications.jobs)
}

func (s *BookingCommandsTestSuite) TestCancelCompleted() {
	bk := s.seedBooking(booking.StatusCompleted, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), 2)

	err := s.commands.Cancel(context.Background(), bk.ID())
	s.ErrorIs(err, commands.ErrInvalidTransition)
}

func (s *BookingCommandsTestSuite) TestCancelMissing() {
	err := s.commands.Cancel(context.Background(), uuid.New())
	s.ErrorIs(err, commands.ErrBookingNotFound)
}

func (s *BookingCommandsTestSuite) TestProgressCalendar() {
	// testToday is 2026-08-01.
	started := s.seedBooking(booking.StatusReserved, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), 2)
	upcoming := s.seedBooking(booking.StatusReserved, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), 2)
	ended := s.seedBooking(booking.StatusActive, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), 3)
	running := s.seedBooking(booking.StatusActive, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), 3)

	report, err := s.commands.ProgressCalendar(context.Background())
	s.Require().NoError(err)

	s.Equal(1, report.Activated)
	s.Equal(1, report.Completed)

	s.Equal(booking.StatusActive, started.Status())
	s.Equal(booking.StatusReserved, upcoming.Status())
	s.Equal(booking.StatusCompleted, ended.Status())
	s.Equal(booking.StatusActive, running.Status())
}

func (s *BookingCommandsTestSuite) TestProgressCalendarEmpty() {
	report, err := s.commands.ProgressCalendar(context.Background())
	s.Require().NoError(err)
	s.Equal(0, report.Activated)
	s.Equal(0, report.Completed)
}
