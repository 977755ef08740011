package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"go.uber.org/zap"
)

const (
	serviceVersion  = "1.0.0"
	shutdownTimeout = 10 * time.Second
)

// newResource describes this service to every OTLP pipeline
func newResource(serviceName string) (*resource.Resource, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("telemetry resource: %w", err)
	}
	return res, nil
}

// collectorOptions builds the gRPC exporter options shared by traces,
// metrics and logs; each exporter package has its own option type.
func collectorOptions[O any](endpoint string, insecure bool, withEndpoint func(string) O, withInsecure func() O) []O {
	opts := []O{withEndpoint(endpoint)}
	if insecure {
		opts = append(opts, withInsecure())
	}
	return opts
}

// shutdownSignal bounds an SDK provider shutdown by shutdownTimeout.
func shutdownSignal(ctx context.Context, signal string, log *zap.Logger, shutdown func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := shutdown(ctx); err != nil {
		log.Error("Telemetry shutdown failed", zap.String("signal", signal), zap.Error(err))
		return fmt.Errorf("shutdown %s provider: %w", signal, err)
	}
	log.Debug("Telemetry flushed", zap.String("signal", signal))
	return nil
}
