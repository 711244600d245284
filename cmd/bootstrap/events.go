package bootstrap

import (
	"context"
	"log/slog"

	"fleet-booking/internal/infra/events"
	"fleet-booking/internal/pkg/config"
	"fleet-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewEventPublisher,
	),
)

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (commands.EventPublisher, error) {
	if cfg.Events.NATSURL == "" {
		logger.Info("NATS_URL not set, reservation events are disabled")
		return events.NoopPublisher{}, nil
	}

	publisher, err := events.Connect(cfg.Events)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			publisher.Close()
			return nil
		},
	})
	logger.Info("publishing reservation events", "subject", cfg.Events.Subject)
	return publisher, nil
}
