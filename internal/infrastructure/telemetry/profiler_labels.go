// Package telemetry provides Pyroscope continuous profiling integration.
package telemetry

import (
	"context"

	"github.com/grafana/pyroscope-go"
)

// Profiling label keys.
const (
	LabelOperation = "operation"
	LabelMode      = "rating_mode"
	LabelMethod    = "method"
	LabelRoute     = "route"
	LabelResource  = "resource"
	LabelClientID  = "client_id"
)

// RatingLabels labels CPU samples taken inside one rating operation.
func RatingLabels(operation, mode string) []string {
	labels := []string{LabelOperation, operation}
	if mode != "" {
		labels = append(labels, LabelMode, mode)
	}
	return labels
}

// WithProfilingLabels runs fn with pprof labels attached so Pyroscope can
// break profiles down by operation. Labels are key/value pairs; an odd
// trailing key is dropped.
func WithProfilingLabels(ctx context.Context, labels []string, fn func(context.Context)) {
	if len(labels)%2 == 1 {
		labels = labels[:len(labels)-1]
	}
	if len(labels) == 0 {
		fn(ctx)
		return
	}
	pyroscope.TagWrapper(ctx, pyroscope.Labels(labels...), fn)
}
