package bootstrap

import (
	"fleet-booking/internal/pkg/metrics"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.New,
	),
)
