package repository

import (
	"context"
	"errors"
	"time"

	"adspace-booking/internal/domain/booking"
	"adspace-booking/internal/domain/daterange"
	"adspace-booking/internal/infra"
	"adspace-booking/internal/infra/db"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingRepository struct {
	dbtx db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{dbtx: dbtx}
}

var bookingColumns = []string{
	"id", "number", "support_id", "requester_id", "source_request_id",
	"start_date", "end_date",
	"monthly_rate", "commission_pct", "subtotal", "commission", "total",
	"status", "created_at", "updated_at",
}

func (r *BookingRepository) Create(ctx context.Context, bk *booking.Booking) error {
	args := []any{
		bk.ID(), bk.Number(), bk.SupportID(), bk.RequesterID(), bk.SourceRequestID(),
		bk.Period().Start(), bk.Period().End(),
	}
	args = append(args, priceArgs(bk.Price())...)
	args = append(args, bk.Status().String())

	query, sqlArgs, err := psql.Insert("bookings").
		Columns(
			"id", "number", "support_id", "requester_id", "source_request_id",
			"start_date", "end_date",
			"monthly_rate", "commission_pct", "subtotal", "commission", "total",
			"status",
		).
		Values(args...).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build booking insert", err)
	}

	if _, err := r.dbtx.Exec(ctx, query, sqlArgs...); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	query, args, err := psql.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking query", err)
	}

	bk, err := scanBooking(r.dbtx.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by id", err)
	}
	return bk, nil
}

// BlockingBySupport loads the committed schedule for one support: every
// reserved or active booking, in start-date order. This is the read the
// overlap check runs against, under the support row lock during accept.
func (r *BookingRepository) BlockingBySupport(ctx context.Context, supportID uuid.UUID) ([]*booking.Booking, error) {
	query, args, err := psql.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"support_id": supportID}).
		Where(squirrel.Eq{"status": statusStrings(booking.BlockingStatuses)}).
		OrderBy("start_date").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build blocking bookings query", err)
	}

	return r.queryBookings(ctx, query, args)
}

func (r *BookingRepository) UpdateState(ctx context.Context, bk *booking.Booking) error {
	query, args, err := psql.Update("bookings").
		Set("status", bk.Status().String()).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": bk.ID()}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build booking update", err)
	}

	tag, err := r.dbtx.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking state", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

// DueForActivation returns reserved bookings whose period has begun.
func (r *BookingRepository) DueForActivation(ctx context.Context, today time.Time) ([]*booking.Booking, error) {
	query, args, err := psql.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"status": booking.StatusReserved.String()}).
		Where(squirrel.LtOrEq{"start_date": daterange.Day(today)}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build due-for-activation query", err)
	}
	return r.queryBookings(ctx, query, args)
}

// DueForCompletion returns active bookings whose period is over.
func (r *BookingRepository) DueForCompletion(ctx context.Context, today time.Time) ([]*booking.Booking, error) {
	query, args, err := psql.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"status": booking.StatusActive.String()}).
		Where(squirrel.LtOrEq{"end_date": daterange.Day(today)}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build due-for-completion query", err)
	}
	return r.queryBookings(ctx, query, args)
}

func (r *BookingRepository) queryBookings(ctx context.Context, query string, args []any) ([]*booking.Booking, error) {
	rows, err := r.dbtx.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query bookings", err)
	}
	defer rows.Close()

	var result []*booking.Booking
	for rows.Next() {
		bk, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, bk)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return result, nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id, supportID, requesterID, sourceRequestID uuid.UUID
		number                                      string
		startDate, endDate                          time.Time
		price                                       priceRow
		status                                      string
		createdAt, updatedAt                        time.Time
	)

	err := row.Scan(
		&id, &number, &supportID, &requesterID, &sourceRequestID,
		&startDate, &endDate,
		&price.monthlyRate, &price.commissionPct, &price.subtotal, &price.commission, &price.total,
		&status, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	period, err := daterange.New(startDate, endDate)
	if err != nil {
		return nil, err
	}
	snapshot, err := price.toSnapshot()
	if err != nil {
		return nil, err
	}

	return booking.Reconstruct(
		id, number, supportID, requesterID, sourceRequestID,
		period, snapshot, booking.Status(status),
		createdAt, updatedAt,
	), nil
}

func statusStrings(statuses []booking.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = s.String()
	}
	return out
}
