package components

import (
	"fleet-booking/internal/handler"
	"fleet-booking/internal/handler/api"
	"fleet-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewResourceHandler,
		api.NewAvailabilityHandler,
		api.NewReservationHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
