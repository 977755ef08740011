// Package telemetry provides OpenTelemetry integration for metrics collection.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"
)

const defaultExportInterval = time.Minute

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	Enabled           bool
	CollectorEndpoint string
	ExportInterval    time.Duration
	ServiceName       string
	Insecure          bool
}

// MeterProvider owns the SDK meter provider. When metrics are disabled
// Meter hands out the global no-op meter.
type MeterProvider struct {
	sdk    *sdkmetric.MeterProvider
	log    *zap.Logger
	config MetricsConfig
}

func NewMeterProvider(ctx context.Context, cfg MetricsConfig, logger *zap.Logger) (*MeterProvider, error) {
	mp := &MeterProvider{log: logger, config: cfg}
	if !cfg.Enabled {
		logger.Info("Metrics disabled")
		return mp, nil
	}
	if cfg.ExportInterval <= 0 {
		cfg.ExportInterval = defaultExportInterval
	}

	exporter, err := otlpmetricgrpc.New(ctx, collectorOptions(cfg.CollectorEndpoint, cfg.Insecure,
		otlpmetricgrpc.WithEndpoint, otlpmetricgrpc.WithInsecure)...)
	if err != nil {
		return nil, fmt.Errorf("metric exporter: %w", err)
	}
	res, err := newResource(cfg.ServiceName)
	if err != nil {
		return nil, err
	}

	reader := sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(cfg.ExportInterval))
	mp.sdk = sdkmetric.NewMeterProvider(sdkmetric.WithResource(res), sdkmetric.WithReader(reader))
	otel.SetMeterProvider(mp.sdk)

	logger.Info("Metrics enabled",
		zap.String("collector_endpoint", cfg.CollectorEndpoint),
		zap.Duration("export_interval", cfg.ExportInterval),
	)
	return mp, nil
}

func (mp *MeterProvider) Shutdown(ctx context.Context) error {
	if mp.sdk == nil {
		return nil
	}
	return shutdownSignal(ctx, "metrics", mp.log, mp.sdk.Shutdown)
}

func (mp *MeterProvider) Meter(name string, opts ...metric.MeterOption) metric.Meter {
	if mp.sdk == nil {
		return otel.GetMeterProvider().Meter(name, opts...)
	}
	return mp.sdk.Meter(name, opts...)
}

func (mp *MeterProvider) IsEnabled() bool {
	return mp.config.Enabled && mp.sdk != nil
}
