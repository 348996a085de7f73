package components

import (
	"adspace-booking/internal/domain/booking"
	"adspace-booking/internal/domain/pricing"
	"adspace-booking/internal/pkg/clock"
	"adspace-booking/internal/pkg/config"
	"adspace-booking/internal/usecase/commands"
	"adspace-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	booking.NewFactory,
	NewSnapshotter,
)

func NewSnapshotter(cfg config.Config) (*pricing.Snapshotter, error) {
	pct, err := cfg.Booking.Commission()
	if err != nil {
		return nil, err
	}
	return pricing.NewSnapshotter(pct)
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewRequestUseCase,
		commands.NewBookingUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRequestQueries,
		queries.NewBookingQueries,
		queries.NewSupportQueries,
		queries.NewAvailabilityQueries,
	),
)
