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
	"github.com/shopspring/decimal"
)

type RequestReadStore struct {
	dbtx db.DBTX
}

func NewRequestReadStore(dbtx db.DBTX) *RequestReadStore {
	return &RequestReadStore{dbtx: dbtx}
}

var requestViewColumns = []string{
	"r.id", "r.support_id", "s.code", "s.name", "r.requester_id",
	"r.start_date", "r.end_date", "r.months",
	"r.monthly_rate", "r.commission_pct", "r.subtotal", "r.commission", "r.total",
	"r.status", "r.message", "r.accepted_booking_id",
	"r.created_at", "r.updated_at",
}

func (r *RequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RequestView, error) {
	query, args, err := psql.Select(requestViewColumns...).
		From("requests r").
		Join("supports s ON s.id = r.support_id").
		Where(squirrel.Eq{"r.id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build request view query", err)
	}

	view, err := scanRequestView(r.dbtx.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find request view", err)
	}
	return view, nil
}

func (r *RequestReadStore) FindByRequester(ctx context.Context, requesterID uuid.UUID) ([]*queries.RequestListItem, error) {
	query, args, err := psql.Select(
		"r.id", "r.support_id", "s.code",
		"r.start_date", "r.end_date", "r.total", "r.status", "r.created_at",
	).
		From("requests r").
		Join("supports s ON s.id = r.support_id").
		Where(squirrel.Eq{"r.requester_id": requesterID}).
		OrderBy("r.created_at DESC").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build request list query", err)
	}

	rows, err := r.dbtx.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query requests", err)
	}
	defer rows.Close()

	result := []*queries.RequestListItem{}
	for rows.Next() {
		var (
			item  queries.RequestListItem
			total string
		)
		err := rows.Scan(
			&item.ID, &item.SupportID, &item.SupportCode,
			&item.StartDate, &item.EndDate, &total, &item.Status, &item.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan request list item", err)
		}
		if item.Total, err = decimal.NewFromString(total); err != nil {
			return nil, infra.WrapRepoErr("failed to parse request total", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read request rows", err)
	}
	return result, nil
}

func scanRequestView(row pgx.Row) (*queries.RequestView, error) {
	var (
		view  queries.RequestView
		price priceViewCols
	)
	err := row.Scan(
		&view.ID, &view.SupportID, &view.SupportCode, &view.SupportName, &view.RequesterID,
		&view.StartDate, &view.EndDate, &view.Months,
		&price.monthlyRate, &price.commissionPct, &price.subtotal, &price.commission, &price.total,
		&view.Status, &view.Message, &view.AcceptedBookingID,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := price.apply(&view.MonthlyRate, &view.CommissionPct, &view.Subtotal, &view.Commission, &view.Total); err != nil {
		return nil, err
	}
	return &view, nil
}
