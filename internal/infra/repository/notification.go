package repository

import (
	"context"
	"time"

	"adspace-booking/internal/infra"
	"adspace-booking/internal/infra/db"
)

// NotificationRepository writes outbox jobs in the same transaction as the
// state change they announce. Delivery is a separate system's concern.
type NotificationRepository struct {
	dbtx db.DBTX
}

func NewNotificationRepository(dbtx db.DBTX) *NotificationRepository {
	return &NotificationRepository{dbtx: dbtx}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	query, args, err := psql.Insert("notification_jobs").
		Columns("kind", "topic", "payload", "run_at").
		Values(kind, topic, payload, runAt).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build notification job insert", err)
	}

	if _, err := r.dbtx.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}
