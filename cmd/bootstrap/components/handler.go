package components

import (
	"adspace-booking/internal/handler"
	"adspace-booking/internal/handler/api"
	"adspace-booking/internal/handler/middleware"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRequestHandler,
		api.NewBookingHandler,
		api.NewAvailabilityHandler,
		api.NewSupportHandler,
		NewMetrics,
	),
	fx.Invoke(handler.NewRouter),
)

func NewMetrics() *middleware.Metrics {
	return middleware.NewMetrics(prometheus.DefaultRegisterer)
}
