package queries

import (
	"context"

	"github.com/google/uuid"
)

type RequestQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*RequestListItem, error)
}

type RequestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	FindByRequester(ctx context.Context, requesterID uuid.UUID) ([]*RequestListItem, error)
}

type requestQueriesImpl struct {
	store RequestReadStore
}

func NewRequestQueries(store RequestReadStore) RequestQueries {
	return &requestQueriesImpl{store: store}
}

func (q *requestQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RequestView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *requestQueriesImpl) ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*RequestListItem, error) {
	return q.store.FindByRequester(ctx, requesterID)
}
