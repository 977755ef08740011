package logger

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	gormlogger "gorm.io/gorm/logger"
)

const defaultSlowThreshold = 200 * time.Millisecond

// GormLogger routes GORM output into zap under the "gorm" name, enriched
// with the request scope carried by ctx.
type GormLogger struct {
	logger                    *zap.Logger
	logLevel                  gormlogger.LogLevel
	slowThreshold             time.Duration
	ignoreRecordNotFoundError bool
}

var _ gormlogger.Interface = (*GormLogger)(nil)

type GormLoggerOption func(*GormLogger)

// WithSlowThreshold sets when a query is reported as slow; 0 disables it.
func WithSlowThreshold(threshold time.Duration) GormLoggerOption {
	return func(l *GormLogger) { l.slowThreshold = threshold }
}

// WithIgnoreRecordNotFoundError drops gorm.ErrRecordNotFound from error
// logs. Lookups for unknown rate records are routine.
func WithIgnoreRecordNotFoundError(ignore bool) GormLoggerOption {
	return func(l *GormLogger) { l.ignoreRecordNotFoundError = ignore }
}

func NewGormLogger(zapLogger *zap.Logger, level gormlogger.LogLevel, opts ...GormLoggerOption) *GormLogger {
	l := &GormLogger{
		logger:                    zapLogger.Named("gorm"),
		logLevel:                  level,
		slowThreshold:             defaultSlowThreshold,
		ignoreRecordNotFoundError: true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.logLevel = level
	return &clone
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...any) {
	l.printf(ctx, gormlogger.Info, msg, data)
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...any) {
	l.printf(ctx, gormlogger.Warn, msg, data)
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...any) {
	l.printf(ctx, gormlogger.Error, msg, data)
}

func (l *GormLogger) printf(ctx context.Context, level gormlogger.LogLevel, msg string, data []any) {
	if l.logLevel < level {
		return
	}
	sugar := Enrich(ctx, l.logger).Sugar()
	switch level {
	case gormlogger.Error:
		sugar.Errorf(msg, data...)
	case gormlogger.Warn:
		sugar.Warnf(msg, data...)
	default:
		sugar.Infof(msg, data...)
	}
}

// Trace logs failed statements at error, slow ones at warn and, at the
// Info level, every statement at debug.
func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.logLevel <= gormlogger.Silent {
		return
	}
	elapsed := time.Since(begin)

	var (
		level zapcore.Level
		msg   string
	)
	switch {
	case err != nil && l.logLevel >= gormlogger.Error:
		if l.ignoreRecordNotFoundError && errors.Is(err, gormlogger.ErrRecordNotFound) {
			return
		}
		level, msg = zapcore.ErrorLevel, "SQL Error"
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.logLevel >= gormlogger.Warn:
		level, msg = zapcore.WarnLevel, "SLOW SQL >= "+l.slowThreshold.String()
	case l.logLevel >= gormlogger.Info:
		level, msg = zapcore.DebugLevel, "SQL Query"
	default:
		return
	}

	ce := Enrich(ctx, l.logger).Check(level, msg)
	if ce == nil {
		return
	}
	sql, rows := fc()
	fields := []zap.Field{
		zap.Duration("elapsed", elapsed),
		zap.Int64("rows", rows),
		zap.String("sql", sql),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	ce.Write(fields...)
}

// MapGormLogLevel maps the application log level to a GORM log level.
// SQL statements are only traced at debug.
func MapGormLogLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "debug":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}
