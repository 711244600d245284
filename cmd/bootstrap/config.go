package bootstrap

import (
	"log/slog"

	"fleet-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logEffectiveConfig),
)

// logEffectiveConfig records the non-secret settings the process started with.
func logEffectiveConfig(cfg config.Config, logger *slog.Logger) {
	logger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"store_driver", cfg.Store.Driver,
		"events_enabled", cfg.Events.NATSURL != "",
		"trace_enabled", cfg.Trace.Enabled,
		"log_level", cfg.Log.Level)
}
