//go:build e2e

// Package dbtest holds database helpers shared by the e2e suites.
package dbtest

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ResetDB truncates all mutable tables so each subtest starts from a
// clean slate. Supports are reference data and are truncated too; the
// test reseeds what it needs.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, `
		TRUNCATE TABLE notification_jobs, requests, bookings, supports
		RESTART IDENTITY CASCADE
	`)
	return err
}

// SeedSupport inserts an advertising support and returns its ID.
func SeedSupport(pool *pgxpool.Pool, code, name, monthlyRate string, active bool) (uuid.UUID, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id := uuid.New()
	_, err := pool.Exec(ctx, `
		INSERT INTO supports (id, code, name, monthly_rate, active)
		VALUES ($1, $2, $3, $4, $5)
	`, id, code, name, monthlyRate, active)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}
