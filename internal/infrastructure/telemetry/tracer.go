// Package telemetry wires OpenTelemetry tracing, metrics and logs plus
// Pyroscope profiling for the rating service.
package telemetry

import (
	"context"
	"fmt"
	"sync"

	otelpyroscope "github.com/grafana/otel-profiling-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Config holds tracing configuration.
type Config struct {
	Enabled           bool
	CollectorEndpoint string
	SamplingRatio     float64
	ServiceName       string
	Insecure          bool
}

// sampler keeps every trace at ratio 1, none at 0 and otherwise follows
// the parent decision before sampling by trace id.
func (c Config) sampler() sdktrace.Sampler {
	if c.SamplingRatio >= 1 {
		return sdktrace.AlwaysSample()
	}
	if c.SamplingRatio <= 0 {
		return sdktrace.NeverSample()
	}
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(c.SamplingRatio))
}

// TracerProvider owns the SDK tracer provider. A disabled provider leaves
// the global no-op provider in place.
type TracerProvider struct {
	sdk    *sdktrace.TracerProvider
	log    *zap.Logger
	config Config

	mu           sync.RWMutex
	spanProfiles bool
}

func NewTracerProvider(ctx context.Context, cfg Config, logger *zap.Logger) (*TracerProvider, error) {
	tp := &TracerProvider{log: logger, config: cfg}
	if !cfg.Enabled {
		logger.Info("Tracing disabled")
		return tp, nil
	}

	exporter, err := otlptracegrpc.New(ctx, collectorOptions(cfg.CollectorEndpoint, cfg.Insecure,
		otlptracegrpc.WithEndpoint, otlptracegrpc.WithInsecure)...)
	if err != nil {
		return nil, fmt.Errorf("trace exporter: %w", err)
	}
	res, err := newResource(cfg.ServiceName)
	if err != nil {
		return nil, err
	}

	tp.sdk = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(cfg.sampler()),
	)
	otel.SetTracerProvider(tp.sdk)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	logger.Info("Tracing enabled",
		zap.String("collector_endpoint", cfg.CollectorEndpoint),
		zap.Float64("sampling_ratio", cfg.SamplingRatio),
	)
	return tp, nil
}

// EnableSpanProfiles labels CPU samples with the active span id. The
// profiler must already be running.
func (tp *TracerProvider) EnableSpanProfiles() {
	tp.mu.Lock()
	defer tp.mu.Unlock()
	if tp.sdk == nil || tp.spanProfiles {
		return
	}
	otel.SetTracerProvider(otelpyroscope.NewTracerProvider(tp.sdk))
	tp.spanProfiles = true
	tp.log.Info("Span profiles enabled")
}

func (tp *TracerProvider) IsSpanProfilesEnabled() bool {
	tp.mu.RLock()
	defer tp.mu.RUnlock()
	return tp.spanProfiles
}

func (tp *TracerProvider) Shutdown(ctx context.Context) error {
	if tp.sdk == nil {
		return nil
	}
	return shutdownSignal(ctx, "traces", tp.log, tp.sdk.Shutdown)
}

func (tp *TracerProvider) Tracer(name string, opts ...trace.TracerOption) trace.Tracer {
	if tp.sdk == nil {
		return otel.GetTracerProvider().Tracer(name, opts...)
	}
	return tp.sdk.Tracer(name, opts...)
}

func (tp *TracerProvider) IsEnabled() bool {
	return tp.config.Enabled && tp.sdk != nil
}

// ForceFlush exports buffered spans without shutting down.
func (tp *TracerProvider) ForceFlush(ctx context.Context) error {
	if tp.sdk == nil {
		return nil
	}
	return tp.sdk.ForceFlush(ctx)
}
