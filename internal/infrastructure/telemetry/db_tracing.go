// Package telemetry provides OpenTelemetry integration for distributed tracing.
package telemetry

import (
	"context"
	"errors"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DBTracingConfig holds configuration for database tracing.
type DBTracingConfig struct {
	Enabled         bool
	LogFullSQL      bool          // Include query variables in spans (dev only)
	SlowQueryThresh time.Duration // Default: 200ms
	DBSystem        string        // Default: "postgresql"
}

// DefaultDBTracingConfig returns secure defaults with tracing off.
func DefaultDBTracingConfig() DBTracingConfig {
	return DBTracingConfig{
		SlowQueryThresh: 200 * time.Millisecond,
		DBSystem:        "postgresql",
	}
}

type contextKey string

const queryStartTimeKey contextKey = "otel_query_start_time"

// gormRegister is satisfied by gorm's callback builders
type gormRegister interface {
	Register(name string, fn func(*gorm.DB)) error
}

type gormHook struct {
	callback gormRegister
	name     string
	fn       func(*gorm.DB)
}

func registerHooks(hooks []gormHook) error {
	errs := make([]error, 0, len(hooks))
	for _, h := range hooks {
		errs = append(errs, h.callback.Register(h.name, h.fn))
	}
	return errors.Join(errs...)
}

// DBTracingPlugin registers otelgorm plus slow-query and error annotation.
type DBTracingPlugin struct {
	config DBTracingConfig
	logger *zap.Logger
}

// NewDBTracingPlugin creates a database tracing plugin.
func NewDBTracingPlugin(cfg DBTracingConfig, logger *zap.Logger) *DBTracingPlugin {
	if cfg.SlowQueryThresh == 0 {
		cfg.SlowQueryThresh = 200 * time.Millisecond
	}
	if cfg.DBSystem == "" {
		cfg.DBSystem = "postgresql"
	}
	return &DBTracingPlugin{config: cfg, logger: logger}
}

// Register installs the plugin on db. Disabled config is a no-op.
func (p *DBTracingPlugin) Register(db *gorm.DB) error {
	if !p.config.Enabled {
		p.logger.Debug("Database tracing disabled, skipping otelgorm registration")
		return nil
	}

	opts := []otelgorm.Option{otelgorm.WithDBName(p.config.DBSystem)}
	if !p.config.LogFullSQL {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}
	if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
		return err
	}

	// annotations must land before otelgorm's after hook ends the span
	cb := db.Callback()
	err := registerHooks([]gormHook{
		{cb.Create().Before("gorm:create"), "otel_timing:before_create", markQueryStart},
		{cb.Query().Before("gorm:query"), "otel_timing:before_query", markQueryStart},
		{cb.Update().Before("gorm:update"), "otel_timing:before_update", markQueryStart},
		{cb.Delete().Before("gorm:delete"), "otel_timing:before_delete", markQueryStart},
		{cb.Row().Before("gorm:row"), "otel_timing:before_row", markQueryStart},
		{cb.Raw().Before("gorm:raw"), "otel_timing:before_raw", markQueryStart},
		{cb.Create().After("gorm:create").Before("otel:after:create"), "otel_timing:after_create", p.annotateSpan},
		{cb.Query().After("gorm:query").Before("otel:after:select"), "otel_timing:after_query", p.annotateSpan},
		{cb.Update().After("gorm:update").Before("otel:after:update"), "otel_timing:after_update", p.annotateSpan},
		{cb.Delete().After("gorm:delete").Before("otel:after:delete"), "otel_timing:after_delete", p.annotateSpan},
		{cb.Row().After("gorm:row").Before("otel:after:row"), "otel_timing:after_row", p.annotateSpan},
		{cb.Raw().After("gorm:raw").Before("otel:after:raw"), "otel_timing:after_raw", p.annotateSpan},
	})
	if err != nil {
		return err
	}

	p.logger.Info("Database tracing enabled",
		zap.Bool("log_full_sql", p.config.LogFullSQL),
		zap.Duration("slow_query_threshold", p.config.SlowQueryThresh),
	)
	return nil
}

func markQueryStart(db *gorm.DB) {
	if db.Statement.Context != nil {
		db.Statement.Context = context.WithValue(db.Statement.Context, queryStartTimeKey, time.Now())
	}
}

// annotateSpan adds table, row count, error status and slow-query marks
func (p *DBTracingPlugin) annotateSpan(db *gorm.DB) {
	ctx := db.Statement.Context
	if ctx == nil {
		return
	}
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	if db.Statement.RowsAffected >= 0 {
		span.SetAttributes(attribute.Int64("db.rows_affected", db.Statement.RowsAffected))
	}
	if db.Statement.Table != "" {
		span.SetAttributes(attribute.String("db.sql.table", db.Statement.Table))
	}
	if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		span.SetStatus(codes.Error, db.Error.Error())
		span.RecordError(db.Error)
	}

	if start, ok := ctx.Value(queryStartTimeKey).(time.Time); ok {
		if elapsed := time.Since(start); elapsed > p.config.SlowQueryThresh {
			span.SetAttributes(
				attribute.Bool("db.slow_query", true),
				attribute.Int64("db.query_duration_ms", elapsed.Milliseconds()),
			)
			span.AddEvent("slow_query_warning", trace.WithAttributes(
				attribute.Int64("duration_ms", elapsed.Milliseconds()),
				attribute.Int64("threshold_ms", p.config.SlowQueryThresh.Milliseconds()),
			))
		}
	}
}
