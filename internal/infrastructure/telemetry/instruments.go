package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys.
var (
	AttrDBOperation = attribute.Key("db.operation")
	AttrDBTable     = attribute.Key("db.table")
	AttrDBState     = attribute.Key("db.pool.state")

	AttrHTTPMethod     = attribute.Key("http.method")
	AttrHTTPRoute      = attribute.Key("http.route")
	AttrHTTPStatusCode = attribute.Key("http.status_code")
	AttrClientID       = attribute.Key("client_id")

	AttrRatingMode   = attribute.Key("rating.mode")
	AttrRatingResult = attribute.Key("rating.result")
	AttrRatingStage  = attribute.Key("rating.stage")
)

// Bucket boundaries in seconds.
var (
	HTTPDurationBuckets   = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}
	DBDurationBuckets     = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5}
	RatingDurationBuckets = []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}
)

func instrumentErr(kind, name string, err error) error {
	return fmt.Errorf("%s %s: %w", kind, name, err)
}

// Counter is a monotonic int64 sum.
type Counter struct {
	inst metric.Int64Counter
}

func NewCounter(meter metric.Meter, name, description, unit string) (*Counter, error) {
	inst, err := meter.Int64Counter(name, metric.WithDescription(description), metric.WithUnit(unit))
	if err != nil {
		return nil, instrumentErr("counter", name, err)
	}
	return &Counter{inst: inst}, nil
}

func (c *Counter) Add(ctx context.Context, n int64, attrs ...attribute.KeyValue) {
	c.inst.Add(ctx, n, metric.WithAttributes(attrs...))
}

func (c *Counter) Inc(ctx context.Context, attrs ...attribute.KeyValue) {
	c.Add(ctx, 1, attrs...)
}

// HistogramOpts names a histogram; empty Boundaries keeps the SDK defaults.
type HistogramOpts struct {
	Name        string
	Description string
	Unit        string
	Boundaries  []float64
}

// Histogram is a float64 distribution.
type Histogram struct {
	inst metric.Float64Histogram
}

func NewHistogram(meter metric.Meter, opts HistogramOpts) (*Histogram, error) {
	options := []metric.Float64HistogramOption{
		metric.WithDescription(opts.Description),
		metric.WithUnit(opts.Unit),
	}
	if len(opts.Boundaries) > 0 {
		options = append(options, metric.WithExplicitBucketBoundaries(opts.Boundaries...))
	}
	inst, err := meter.Float64Histogram(opts.Name, options...)
	if err != nil {
		return nil, instrumentErr("histogram", opts.Name, err)
	}
	return &Histogram{inst: inst}, nil
}

func (h *Histogram) Record(ctx context.Context, v float64, attrs ...attribute.KeyValue) {
	h.inst.Record(ctx, v, metric.WithAttributes(attrs...))
}

// RecordDuration records d in seconds.
func (h *Histogram) RecordDuration(ctx context.Context, d time.Duration, attrs ...attribute.KeyValue) {
	h.Record(ctx, d.Seconds(), attrs...)
}
