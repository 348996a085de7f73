package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"adspace-booking/internal/pkg/config"
	"adspace-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

// SweeperModule runs the calendar sweeper: a ticker that advances booking
// statuses along the calendar (reserved -> active -> completed).
var SweeperModule = fx.Module("sweeper",
	fx.Invoke(StartSweeper),
)

func StartSweeper(lc fx.Lifecycle, cfg config.Config, bookingCommands commands.BookingCommands, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(cfg.Booking.SweepInterval)
				defer ticker.Stop()

				sweep(ctx, bookingCommands, logger)
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						sweep(ctx, bookingCommands, logger)
					}
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			<-done
			return nil
		},
	})
}

func sweep(ctx context.Context, bookingCommands commands.BookingCommands, logger *slog.Logger) {
	report, err := bookingCommands.ProgressCalendar(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		logger.Error("calendar sweep failed", "error", err)
		return
	}
	if report.Activated > 0 || report.Completed > 0 {
		logger.Info("calendar sweep applied transitions",
			"activated", report.Activated,
			"completed", report.Completed)
	}
}
