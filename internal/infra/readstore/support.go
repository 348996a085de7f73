// Package readstore implements the query-side projections. Read stores
// join across tables and return view structs directly, bypassing domain
// reconstruction.
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

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type SupportReadStore struct {
	dbtx db.DBTX
}

func NewSupportReadStore(dbtx db.DBTX) *SupportReadStore {
	return &SupportReadStore{dbtx: dbtx}
}

var supportViewColumns = []string{
	"id", "code", "name", "monthly_rate", "active", "created_at", "updated_at",
}

func (r *SupportReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SupportView, error) {
	query, args, err := psql.Select(supportViewColumns...).
		From("supports").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build support view query", err)
	}

	view, err := scanSupportView(r.dbtx.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("support not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find support view", err)
	}
	return view, nil
}

func (r *SupportReadStore) FindAll(ctx context.Context) ([]*queries.SupportView, error) {
	query, args, err := psql.Select(supportViewColumns...).
		From("supports").
		OrderBy("code").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build support list query", err)
	}

	rows, err := r.dbtx.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query supports", err)
	}
	defer rows.Close()

	result := []*queries.SupportView{}
	for rows.Next() {
		view, err := scanSupportView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan support view", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read support rows", err)
	}
	return result, nil
}

func scanSupportView(row pgx.Row) (*queries.SupportView, error) {
	var (
		view queries.SupportView
		rate string
	)
	err := row.Scan(&view.ID, &view.Code, &view.Name, &rate, &view.Active, &view.CreatedAt, &view.UpdatedAt)
	if err != nil {
		return nil, err
	}
	view.MonthlyRate, err = decimal.NewFromString(rate)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// priceViewCols scans the five snapshot columns shared by the request and
// booking views.
type priceViewCols struct {
	monthlyRate   string
	commissionPct string
	subtotal      string
	commission    string
	total         string
}

func (p priceViewCols) apply(rate, pct, sub, comm, total *decimal.Decimal) error {
	var err error
	if *rate, err = decimal.NewFromString(p.monthlyRate); err != nil {
		return err
	}
	if *pct, err = decimal.NewFromString(p.commissionPct); err != nil {
		return err
	}
	if *sub, err = decimal.NewFromString(p.subtotal); err != nil {
		return err
	}
	if *comm, err = decimal.NewFromString(p.commission); err != nil {
		return err
	}
	if *total, err = decimal.NewFromString(p.total); err != nil {
		return err
	}
	return nil
}
