// Package telemetry provides OpenTelemetry integration for logs collection.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/log/global"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogsConfig holds logs bridge configuration.
type LogsConfig struct {
	Enabled           bool
	CollectorEndpoint string
	ServiceName       string
	Insecure          bool
}

// LoggerProvider owns the OTLP log pipeline that Bridge tees zap into.
type LoggerProvider struct {
	sdk    *sdklog.LoggerProvider
	log    *zap.Logger
	config LogsConfig
}

func NewLoggerProvider(ctx context.Context, cfg LogsConfig, logger *zap.Logger) (*LoggerProvider, error) {
	lp := &LoggerProvider{log: logger, config: cfg}
	if !cfg.Enabled {
		logger.Info("OTLP logs disabled")
		return lp, nil
	}

	exporter, err := otlploggrpc.New(ctx, collectorOptions(cfg.CollectorEndpoint, cfg.Insecure,
		otlploggrpc.WithEndpoint, otlploggrpc.WithInsecure)...)
	if err != nil {
		return nil, fmt.Errorf("log exporter: %w", err)
	}
	res, err := newResource(cfg.ServiceName)
	if err != nil {
		return nil, err
	}

	lp.sdk = sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
	)
	global.SetLoggerProvider(lp.sdk)
	logger.Info("OTLP logs enabled", zap.String("collector_endpoint", cfg.CollectorEndpoint))
	return lp, nil
}

func (lp *LoggerProvider) Shutdown(ctx context.Context) error {
	if lp.sdk == nil {
		return nil
	}
	return shutdownSignal(ctx, "logs", lp.log, lp.sdk.Shutdown)
}

func (lp *LoggerProvider) IsEnabled() bool {
	return lp.config.Enabled && lp.sdk != nil
}

// Bridge returns logger teed into the OTLP pipeline at minLevel and above.
// With logs disabled it returns logger unchanged.
func (lp *LoggerProvider) Bridge(logger *zap.Logger, minLevel zapcore.Level) *zap.Logger {
	if !lp.IsEnabled() {
		return logger
	}
	otelCore := &levelFilterCore{
		Core:     otelzap.NewCore(lp.config.ServiceName, otelzap.WithLoggerProvider(lp.sdk)),
		minLevel: minLevel,
	}
	return logger.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return zapcore.NewTee(core, otelCore)
	}))
}

// levelFilterCore adds a minimum level to a core that has none
type levelFilterCore struct {
	zapcore.Core
	minLevel zapcore.Level
}

func (c *levelFilterCore) Enabled(lvl zapcore.Level) bool {
	return lvl >= c.minLevel && c.Core.Enabled(lvl)
}

func (c *levelFilterCore) Check(entry zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !c.Enabled(entry.Level) {
		return ce
	}
	return c.Core.Check(entry, ce)
}

func (c *levelFilterCore) With(fields []zapcore.Field) zapcore.Core {
	return &levelFilterCore{Core: c.Core.With(fields), minLevel: c.minLevel}
}
