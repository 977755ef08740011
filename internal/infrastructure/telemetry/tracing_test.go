package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/erp/shipping/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

// setupTestTracer installs an in-memory span recorder as the global provider.
func setupTestTracer(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))

	original := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(original)
		_ = tp.Shutdown(context.Background())
	})
	return sr
}

func attrMap(attrs []attribute.KeyValue) map[string]attribute.Value {
	m := make(map[string]attribute.Value, len(attrs))
	for _, a := range attrs {
		m[string(a.Key)] = a.Value
	}
	return m
}

func TestStartServiceSpan(t *testing.T) {
	sr := setupTestTracer(t)
	storeID := uuid.New()

	_, span := telemetry.StartServiceSpan(context.Background(), "rating", "get_shipping_options",
		telemetry.SpanAttrStoreID, storeID,
		telemetry.SpanAttrItemCount, 3,
	)
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "rating.get_shipping_options", spans[0].Name())
	assert.Equal(t, trace.SpanKindInternal, spans[0].SpanKind())

	attrs := attrMap(spans[0].Attributes())
	assert.Equal(t, storeID.String(), attrs[telemetry.SpanAttrStoreID].AsString())
	assert.Equal(t, int64(3), attrs[telemetry.SpanAttrItemCount].AsInt64())
}

func TestSetAttributes_SkipsMalformedPairs(t *testing.T) {
	sr := setupTestTracer(t)

	_, span := telemetry.StartServiceSpan(context.Background(), "rating", "x")
	telemetry.SetAttributes(span, "ok", true, 42, "bad key", "dangling")
	span.End()

	attrs := attrMap(sr.Ended()[0].Attributes())
	assert.Len(t, attrs, 1)
	assert.True(t, attrs["ok"].AsBool())
}

func TestRecordError(t *testing.T) {
	sr := setupTestTracer(t)

	_, span := telemetry.StartServiceSpan(context.Background(), "rating", "fail")
	telemetry.RecordError(span, errors.New("boom"))
	telemetry.RecordError(span, nil)
	telemetry.AddEvent(span, "retry", "attempt", 2)
	span.End()

	ended := sr.Ended()[0]
	assert.Equal(t, codes.Error, ended.Status().Code)
	assert.Equal(t, "boom", ended.Status().Description)

	names := make([]string, 0, len(ended.Events()))
	for _, e := range ended.Events() {
		names = append(names, e.Name)
	}
	assert.Contains(t, names, "exception")
	assert.Contains(t, names, "retry")

	assert.NotPanics(t, func() {
		telemetry.RecordError(nil, errors.New("x"))
		telemetry.SetAttributes(nil, "k", "v")
		telemetry.AddEvent(nil, "e")
	})
}

func TestGetTraceID(t *testing.T) {
	setupTestTracer(t)

	assert.Empty(t, telemetry.GetTraceID(context.Background()))

	ctx, span := telemetry.StartServiceSpan(context.Background(), "rating", "trace")
	defer span.End()
	assert.Equal(t, span.SpanContext().TraceID().String(), telemetry.GetTraceID(ctx))
}
