package readstore

import (
	"context"
	"errors"

	"adspace-booking/internal/infra"
	"adspace-booking/internal/infra/db"
	"adspace-booking/internal/usecase/queries"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingReadStore struct {
	dbtx db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{dbtx: dbtx}
}

var bookingViewColumns = []string{
	"b.id", "b.number", "b.support_id", "s.code", "s.name",
	"b.requester_id", "b.source_request_id",
	"b.start_date", "b.end_date",
	"b.monthly_rate", "b.commission_pct", "b.subtotal", "b.commission", "b.total",
	"b.status", "b.created_at", "b.updated_at",
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	query, args, err := psql.Select(bookingViewColumns...).
		From("bookings b").
		Join("supports s ON s.id = b.support_id").
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking view query", err)
	}

	view, err := scanBookingView(r.dbtx.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking view", err)
	}
	return view, nil
}

func (r *BookingReadStore) FindBySupport(ctx context.Context, supportID uuid.UUID) ([]*queries.BookingView, error) {
	query, args, err := psql.Select(bookingViewColumns...).
		From("bookings b").
		Join("supports s ON s.id = b.support_id").
		Where(squirrel.Eq{"b.support_id": supportID}).
		OrderBy("b.start_date").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking list query", err)
	}

	rows, err := r.dbtx.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query bookings", err)
	}
	defer rows.Close()

	result := []*queries.BookingView{}
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking view", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return result, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var (
		view  queries.BookingView
		price priceViewCols
	)
	err := row.Scan(
		&view.ID, &view.Number, &view.SupportID, &view.SupportCode, &view.SupportName,
		&view.RequesterID, &view.SourceRequestID,
		&view.StartDate, &view.EndDate,
		&price.monthlyRate, &price.commissionPct, &price.subtotal, &price.commission, &price.total,
		&view.Status, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := price.apply(&view.MonthlyRate, &view.CommissionPct, &view.Subtotal, &view.Commission, &view.Total); err != nil {
		return nil, err
	}
	return &view, nil
}
