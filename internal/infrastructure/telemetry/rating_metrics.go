// Package telemetry provides OpenTelemetry integration for metrics collection.
package telemetry

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// Rating modes reported on AttrRatingMode.
const (
	RatingModeWeight = "weight"
	RatingModeFixed  = "fixed"
)

// Candidate-count stages reported on AttrRatingStage.
const (
	StageMatched        = "matched"
	StageWeightFiltered = "weight_filtered"
	StageOptions        = "options"
)

// RatingMetrics holds the instruments of the rating pipeline.
// A nil *RatingMetrics records nothing.
type RatingMetrics struct {
	requests   *Counter
	failures   *Counter
	options    *Counter
	noMatch    *Counter
	duration   *Histogram
	candidates *Histogram
	logger     *zap.Logger
}

// NewRatingMetrics creates the rating instruments on meter
func NewRatingMetrics(meter metric.Meter, logger *zap.Logger) (*RatingMetrics, error) {
	if meter == nil {
		return nil, errors.New("NewRatingMetrics: meter cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	requests, err := NewCounter(meter, "shipping_rating_requests_total",
		"Rating requests by mode", "{request}")
	if err != nil {
		return nil, err
	}
	failures, err := NewCounter(meter, "shipping_rating_failures_total",
		"Rating requests that returned an error", "{request}")
	if err != nil {
		return nil, err
	}
	options, err := NewCounter(meter, "shipping_options_total",
		"Shipping options returned by result kind", "{option}")
	if err != nil {
		return nil, err
	}
	noMatch, err := NewCounter(meter, "shipping_rating_no_match_total",
		"Rating requests for which no rate record matched", "{request}")
	if err != nil {
		return nil, err
	}
	duration, err := NewHistogram(meter, HistogramOpts{
		Name:        "shipping_rating_duration_seconds",
		Description: "Latency of one rating request",
		Unit:        "s",
		Boundaries:  RatingDurationBuckets,
	})
	if err != nil {
		return nil, err
	}
	candidates, err := NewHistogram(meter, HistogramOpts{
		Name:        "shipping_rating_candidates",
		Description: "Rate records surviving each pipeline stage",
		Unit:        "{record}",
		Boundaries:  []float64{0, 1, 2, 5, 10, 25, 50, 100},
	})
	if err != nil {
		return nil, err
	}

	return &RatingMetrics{
		requests:   requests,
		failures:   failures,
		options:    options,
		noMatch:    noMatch,
		duration:   duration,
		candidates: candidates,
		logger:     logger,
	}, nil
}

// RecordRequest records one finished rating request
func (m *RatingMetrics) RecordRequest(ctx context.Context, mode string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	m.requests.Inc(ctx, AttrRatingMode.String(mode))
	m.duration.RecordDuration(ctx, elapsed, AttrRatingMode.String(mode))
	if err != nil {
		m.failures.Inc(ctx, AttrRatingMode.String(mode))
	}
}

// RecordCandidates records how many records survived a stage
func (m *RatingMetrics) RecordCandidates(ctx context.Context, stage string, n int) {
	if m == nil {
		return
	}
	m.candidates.Record(ctx, float64(n), AttrRatingStage.String(stage))
}

// RecordOption counts one returned option by its result kind
func (m *RatingMetrics) RecordOption(ctx context.Context, result string) {
	if m == nil {
		return
	}
	m.options.Inc(ctx, AttrRatingResult.String(result))
}

// RecordNoMatch counts a request that matched no rate record
func (m *RatingMetrics) RecordNoMatch(ctx context.Context) {
	if m == nil {
		return
	}
	m.noMatch.Inc(ctx)
}
