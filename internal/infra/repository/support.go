package repository

import (
	"context"
	"errors"

	"adspace-booking/internal/infra"
	"adspace-booking/internal/infra/db"
	"adspace-booking/internal/usecase/shared"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type SupportRepository struct {
	dbtx db.DBTX
}

func NewSupportRepository(dbtx db.DBTX) *SupportRepository {
	return &SupportRepository{dbtx: dbtx}
}

// Lock takes the per-support row lock. Every accept holds this lock for
// the duration of "check conflict, write booking, flip request state", so
// two competing accepts for the same support serialize here.
func (r *SupportRepository) Lock(ctx context.Context, id uuid.UUID) error {
	query, args, err := psql.Select("id").
		From("supports").
		Where(squirrel.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build support lock query", err)
	}

	var locked uuid.UUID
	if err := r.dbtx.QueryRow(ctx, query, args...).Scan(&locked); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return infra.WrapRepoErr("support not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to lock support", err)
	}
	return nil
}

// CommandReads implements the command-side support lookups.
type CommandReads struct {
	dbtx db.DBTX
}

func NewCommandReads(dbtx db.DBTX) *CommandReads {
	return &CommandReads{dbtx: dbtx}
}

var supportColumns = []string{"id", "code", "name", "monthly_rate", "active"}

func (r *CommandReads) SupportByID(ctx context.Context, id uuid.UUID) (*shared.SupportSnapshot, error) {
	query, args, err := psql.Select(supportColumns...).
		From("supports").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build support query", err)
	}

	snap, err := scanSupport(r.dbtx.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("support not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find support by id", err)
	}
	return snap, nil
}

// SupportsByCode resolves many codes in one round-trip; unknown codes are
// simply absent from the returned map.
func (r *CommandReads) SupportsByCode(ctx context.Context, codes []string) (map[string]shared.SupportSnapshot, error) {
	result := make(map[string]shared.SupportSnapshot, len(codes))
	if len(codes) == 0 {
		return result, nil
	}

	query, args, err := psql.Select(supportColumns...).
		From("supports").
		Where(squirrel.Eq{"code": codes}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build supports-by-code query", err)
	}

	rows, err := r.dbtx.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query supports by code", err)
	}
	defer rows.Close()

	for rows.Next() {
		snap, err := scanSupport(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan support row", err)
		}
		result[snap.Code] = *snap
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read support rows", err)
	}
	return result, nil
}

func scanSupport(row pgx.Row) (*shared.SupportSnapshot, error) {
	var (
		snap shared.SupportSnapshot
		rate string
	)
	if err := row.Scan(&snap.ID, &snap.Code, &snap.Name, &rate, &snap.Active); err != nil {
		return nil, err
	}
	monthlyRate, err := decimal.NewFromString(rate)
	if err != nil {
		return nil, err
	}
	snap.MonthlyRate = monthlyRate
	return &snap, nil
}
