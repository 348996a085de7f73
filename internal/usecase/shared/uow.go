package shared

import (
	"context"
	"time"

	"adspace-booking/internal/domain/booking"
	"adspace-booking/internal/domain/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: command-side lookups outside a transaction.
	CommandReads() CommandReads
}

// Tx exposes the repositories bound to one open transaction.
type Tx interface {
	Supports() SupportRepository
	Requests() RequestRepository
	Bookings() BookingRepository
	Notifications() NotificationRepository
}

// CommandReads are the minimal lookups the write side needs before (or
// inside) a transaction.
type CommandReads interface {
	SupportByID(ctx context.Context, id uuid.UUID) (*SupportSnapshot, error)
	SupportsByCode(ctx context.Context, codes []string) (map[string]SupportSnapshot, error)
}

// SupportSnapshot is the command-side projection of a support record.
type SupportSnapshot struct {
	ID          uuid.UUID
	Code        string
	Name        string
	MonthlyRate decimal.Decimal
	Active      bool
}

type SupportRepository interface {
	// Lock acquires the per-support row lock that serializes the
	// conflict-check-and-create sequence of accept.
	Lock(ctx context.Context, id uuid.UUID) error
}

type RequestRepository interface {
	Create(ctx context.Context, req *request.Request) error
	FindByID(ctx context.Context, id uuid.UUID) (*request.Request, error)
	UpdateState(ctx context.Context, req *request.Request) error
}

type BookingRepository interface {
	Create(ctx context.Context, bk *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// BlockingBySupport loads the committed schedule (reserved/active
	// bookings) of one support, ordered by start date.
	BlockingBySupport(ctx context.Context, supportID uuid.UUID) ([]*booking.Booking, error)
	UpdateState(ctx context.Context, bk *booking.Booking) error
	// DueForActivation / DueForCompletion feed the calendar sweeper.
	DueForActivation(ctx context.Context, today time.Time) ([]*booking.Booking, error)
	DueForCompletion(ctx context.Context, today time.Time) ([]*booking.Booking, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
