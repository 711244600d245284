package bootstrap

import (
	"fleet-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	TelemetryModule,
	MetricsModule,
	StoreModule,
	EventsModule,
	JWTModule,
	components.UseCaseModule,
	components.HandlerModule,
)
