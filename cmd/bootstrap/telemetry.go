package bootstrap

import (
	"context"
	"fmt"
	"os"

	"fleet-booking/internal/pkg/config"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/fx"
)

var TelemetryModule = fx.Module("telemetry",
	fx.Invoke(
		SetupTracing,
	),
)

// SetupTracing installs a global tracer provider writing spans to stderr.
// With tracing disabled the otel no-op provider stays in place.
func SetupTracing(lc fx.Lifecycle, cfg config.Config) error {
	if !cfg.Trace.Enabled {
		return nil
	}

	exporter, err := stdouttrace.New(stdouttrace.WithWriter(os.Stderr))
	if err != nil {
		return fmt.Errorf("failed to create trace exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", cfg.Trace.ServiceName),
		)),
	)
	otel.SetTracerProvider(tp)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return tp.Shutdown(ctx)
		},
	})
	return nil
}
