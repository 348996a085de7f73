package queries

import (
	"context"

	"github.com/google/uuid"
)

type SupportQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*SupportView, error)
	List(ctx context.Context) ([]*SupportView, error)
}

type SupportReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SupportView, error)
	FindAll(ctx context.Context) ([]*SupportView, error)
}

type supportQueriesImpl struct {
	store SupportReadStore
}

func NewSupportQueries(store SupportReadStore) SupportQueries {
	return &supportQueriesImpl{store: store}
}

func (q *supportQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SupportView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *supportQueriesImpl) List(ctx context.Context) ([]*SupportView, error) {
	return q.store.FindAll(ctx)
}
