package repository

import (
	"context"
	"errors"
	"time"

	"adspace-booking/internal/domain/daterange"
	"adspace-booking/internal/domain/request"
	"adspace-booking/internal/infra"
	"adspace-booking/internal/infra/db"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RequestRepository struct {
	dbtx db.DBTX
}

func NewRequestRepository(dbtx db.DBTX) *RequestRepository {
	return &RequestRepository{dbtx: dbtx}
}

var requestColumns = []string{
	"id", "support_id", "requester_id", "start_date", "end_date", "months",
	"monthly_rate", "commission_pct", "subtotal", "commission", "total",
	"status", "message", "accepted_booking_id", "created_at", "updated_at",
}

func (r *RequestRepository) Create(ctx context.Context, req *request.Request) error {
	cols := []string{
		"id", "support_id", "requester_id", "start_date", "end_date", "months",
		"monthly_rate", "commission_pct", "subtotal", "commission", "total",
		"status", "message",
	}

	args := []any{
		req.ID(), req.SupportID(), req.RequesterID(),
		req.Period().Start(), req.Period().End(), req.Months(),
	}
	args = append(args, priceArgs(req.Price())...)
	args = append(args, req.Status().String(), nullableText(req.Message()))

	query, sqlArgs, err := psql.Insert("requests").
		Columns(cols...).
		Values(args...).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build request insert", err)
	}

	if _, err := r.dbtx.Exec(ctx, query, sqlArgs...); err != nil {
		return infra.WrapRepoErr("failed to create request", err)
	}
	return nil
}

func (r *RequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*request.Request, error) {
	query, args, err := psql.Select(requestColumns...).
		From("requests").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build request query", err)
	}

	req, err := scanRequest(r.dbtx.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find request by id", err)
	}
	return req, nil
}

// UpdateState persists a state transition (and the booking back-reference
// on acceptance). Other request fields are immutable after creation.
func (r *RequestRepository) UpdateState(ctx context.Context, req *request.Request) error {
	query, args, err := psql.Update("requests").
		Set("status", req.Status().String()).
		Set("accepted_booking_id", req.AcceptedBookingID()).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": req.ID()}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build request update", err)
	}

	tag, err := r.dbtx.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update request state", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("request not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func scanRequest(row pgx.Row) (*request.Request, error) {
	var (
		id, supportID, requesterID uuid.UUID
		startDate, endDate         time.Time
		months                     int
		price                      priceRow
		status                     string
		message                    *string
		acceptedBookingID          *uuid.UUID
		createdAt, updatedAt       time.Time
	)

	err := row.Scan(
		&id, &supportID, &requesterID, &startDate, &endDate, &months,
		&price.monthlyRate, &price.commissionPct, &price.subtotal, &price.commission, &price.total,
		&status, &message, &acceptedBookingID, &createdAt, &updatedAt,
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

	msg := ""
	if message != nil {
		msg = *message
	}

	return request.Reconstruct(
		id, supportID, requesterID,
		period, months, snapshot,
		request.Status(status), msg,
		acceptedBookingID, createdAt, updatedAt,
	), nil
}

func nullableText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
