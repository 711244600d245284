package components

import (
	"fleet-booking/internal/pkg/clock"
	"fleet-booking/internal/usecase"
	"fleet-booking/internal/usecase/commands"
	"fleet-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
	usecaseAuthModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewResourceQueries,
	),
)

var usecaseAuthModule = fx.Module("usecase/auth",
	fx.Provide(
		usecase.NewPrincipalResolver,
	),
)
