package components

import (
	"physio-scheduler/internal/handler"
	"physio-scheduler/internal/handler/api"
	"physio-scheduler/internal/handler/middleware"
	"physio-scheduler/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewBookingHandler,
		api.NewScheduleHandler,
		api.NewPaymentWebhookHandler,
		middleware.NewAuthMiddleware,
		NewRateLimiter,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewRateLimiter(cfg config.Config) *middleware.RateLimiter {
	return middleware.NewRateLimiter(cfg.RateLimit)
}

func NewHandlers(
	availability *api.AvailabilityHandler,
	booking *api.BookingHandler,
	schedule *api.ScheduleHandler,
	payment *api.PaymentWebhookHandler,
) handler.Handlers {
	return handler.Handlers{
		Availability: availability,
		Booking:      booking,
		Schedule:     schedule,
		Payment:      payment,
	}
}
