// Package telemetry provides OpenTelemetry integration for database metrics collection.
package telemetry

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultSlowQueryThreshold = 200 * time.Millisecond

// DBMetricsConfig tunes database metrics. Zero values take defaults.
type DBMetricsConfig struct {
	SlowQueryThreshold time.Duration
}

// DBMetrics is a gorm plugin counting and timing statements. Pool state is
// observed from sql.DB.Stats on each collection.
type DBMetrics struct {
	queries      *Counter
	slowQueries  *Counter
	latency      *Histogram
	registration metric.Registration

	slowThreshold time.Duration
	logger        *zap.Logger
}

// NewDBMetrics creates the instruments on meter. sqlDB may be nil, in which
// case no pool gauges are reported.
func NewDBMetrics(meter metric.Meter, sqlDB *sql.DB, cfg DBMetricsConfig, logger *zap.Logger) (*DBMetrics, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &DBMetrics{slowThreshold: cfg.SlowQueryThreshold, logger: logger}
	if m.slowThreshold <= 0 {
		m.slowThreshold = defaultSlowQueryThreshold
	}

	var err error
	if m.queries, err = NewCounter(meter, "db_query_total",
		"Database statements by operation", "{query}"); err != nil {
		return nil, err
	}
	if m.slowQueries, err = NewCounter(meter, "db_slow_query_total",
		"Database statements slower than the slow query threshold", "{query}"); err != nil {
		return nil, err
	}
	if m.latency, err = NewHistogram(meter, HistogramOpts{
		Name:        "db_query_duration_seconds",
		Description: "Database statement latency",
		Unit:        "s",
		Boundaries:  DBDurationBuckets,
	}); err != nil {
		return nil, err
	}

	if sqlDB != nil {
		if m.registration, err = observePool(meter, sqlDB); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func observePool(meter metric.Meter, sqlDB *sql.DB) (metric.Registration, error) {
	conns, err := meter.Int64ObservableGauge("db_pool_connections",
		metric.WithDescription("Pool connections by state"), metric.WithUnit("{connection}"))
	if err != nil {
		return nil, instrumentErr("gauge", "db_pool_connections", err)
	}
	limit, err := meter.Int64ObservableGauge("db_pool_connections_max",
		metric.WithDescription("Configured pool size"), metric.WithUnit("{connection}"))
	if err != nil {
		return nil, instrumentErr("gauge", "db_pool_connections_max", err)
	}

	return meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		s := sqlDB.Stats()
		o.ObserveInt64(limit, int64(s.MaxOpenConnections))
		o.ObserveInt64(conns, int64(s.Idle), metric.WithAttributes(AttrDBState.String("idle")))
		o.ObserveInt64(conns, int64(s.InUse), metric.WithAttributes(AttrDBState.String("in_use")))
		o.ObserveInt64(conns, int64(s.OpenConnections), metric.WithAttributes(AttrDBState.String("open")))
		return nil
	}, conns, limit)
}

// Close stops pool observation.
func (m *DBMetrics) Close() error {
	if m.registration == nil {
		return nil
	}
	return m.registration.Unregister()
}

// RecordQuery records one finished statement. Statements over the slow
// threshold are also counted per table.
func (m *DBMetrics) RecordQuery(ctx context.Context, operation, table string, elapsed time.Duration) {
	op := AttrDBOperation.String(valueOr(strings.ToUpper(operation), "UNKNOWN"))
	m.queries.Inc(ctx, op)
	m.latency.RecordDuration(ctx, elapsed, op)
	if elapsed > m.slowThreshold {
		m.slowQueries.Inc(ctx, AttrDBTable.String(valueOr(table, "unknown")))
	}
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

type statementStartKey struct{}

func (m *DBMetrics) Name() string {
	return "db_metrics"
}

// Initialize wraps every gorm statement chain with start and finish hooks.
func (m *DBMetrics) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	chains := []struct {
		op            string
		before, after gormRegister
	}{
		{"create", cb.Create().Before("gorm:create"), cb.Create().After("gorm:create")},
		{"query", cb.Query().Before("gorm:query"), cb.Query().After("gorm:query")},
		{"update", cb.Update().Before("gorm:update"), cb.Update().After("gorm:update")},
		{"delete", cb.Delete().Before("gorm:delete"), cb.Delete().After("gorm:delete")},
		{"row", cb.Row().Before("gorm:row"), cb.Row().After("gorm:row")},
		{"raw", cb.Raw().Before("gorm:raw"), cb.Raw().After("gorm:raw")},
	}

	hooks := make([]gormHook, 0, 2*len(chains))
	for _, ch := range chains {
		hooks = append(hooks,
			gormHook{ch.before, "db_metrics:before_" + ch.op, startStatement},
			gormHook{ch.after, "db_metrics:after_" + ch.op, m.finishStatement},
		)
	}
	return registerHooks(hooks)
}

func startStatement(tx *gorm.DB) {
	ctx := tx.Statement.Context
	if ctx == nil {
		ctx = context.Background()
	}
	tx.Statement.Context = context.WithValue(ctx, statementStartKey{}, time.Now())
}

func (m *DBMetrics) finishStatement(tx *gorm.DB) {
	ctx := tx.Statement.Context
	if ctx == nil {
		ctx = context.Background()
	}
	var elapsed time.Duration
	if start, ok := ctx.Value(statementStartKey{}).(time.Time); ok {
		elapsed = time.Since(start)
	}
	m.RecordQuery(ctx, detectOperationType(tx.Statement.SQL.String()), tx.Statement.Table, elapsed)
}

// detectOperationType returns the leading SQL verb, or OTHER.
func detectOperationType(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "OTHER"
	}
	switch verb := strings.ToUpper(fields[0]); verb {
	case "SELECT", "INSERT", "UPDATE", "DELETE":
		return verb
	}
	return "OTHER"
}

// RegisterDBMetrics installs the plugin on db when the meter provider
// exports. It returns nil otherwise.
func RegisterDBMetrics(db *gorm.DB, mp *MeterProvider, cfg DBMetricsConfig, logger *zap.Logger) (*DBMetrics, error) {
	if mp == nil || !mp.IsEnabled() {
		return nil, nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	m, err := NewDBMetrics(mp.Meter("db.client"), sqlDB, cfg, logger)
	if err != nil {
		return nil, err
	}
	if err := db.Use(m); err != nil {
		return nil, err
	}
	logger.Info("Database metrics registered", zap.Duration("slow_query_threshold", m.slowThreshold))
	return m, nil
}
