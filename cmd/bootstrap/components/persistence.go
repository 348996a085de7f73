package components

import (
	"adspace-booking/internal/infra/db"
	"adspace-booking/internal/infra/readstore"
	"adspace-booking/internal/infra/repository"
	"adspace-booking/internal/infra/uow"
	"adspace-booking/internal/usecase/queries"
	"adspace-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			repository.NewCommandReads,
			fx.As(new(shared.CommandReads)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(queries.ScheduleReader)),
		),
		fx.Annotate(
			readstore.NewRequestReadStore,
			fx.As(new(queries.RequestReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewSupportReadStore,
			fx.As(new(queries.SupportReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
