package telemetry_test

import (
	"context"
	"testing"

	"github.com/erp/shipping/internal/infrastructure/telemetry"
	"github.com/grafana/pyroscope-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewTracerProvider_Disabled(t *testing.T) {
	tp, err := telemetry.NewTracerProvider(context.Background(), telemetry.Config{
		Enabled:     false,
		ServiceName: "test-service",
	}, zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.False(t, tp.IsEnabled())
	assert.NotNil(t, tp.Tracer("test"))

	tp.EnableSpanProfiles()
	assert.False(t, tp.IsSpanProfilesEnabled())

	assert.NoError(t, tp.ForceFlush(context.Background()))
	assert.NoError(t, tp.Shutdown(context.Background()))
}

func TestNewTracerProvider_Enabled(t *testing.T) {
	original := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(original) })

	// the OTLP exporter connects lazily, so no collector is needed
	tp, err := telemetry.NewTracerProvider(context.Background(), telemetry.Config{
		Enabled:           true,
		CollectorEndpoint: "localhost:4317",
		SamplingRatio:     0.5,
		ServiceName:       "test-service",
		Insecure:          true,
	}, zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	assert.True(t, tp.IsEnabled())

	tp.EnableSpanProfiles()
	tp.EnableSpanProfiles()
	assert.True(t, tp.IsSpanProfilesEnabled())
}

func TestNewProfiler(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		p, err := telemetry.NewProfiler(telemetry.ProfilerConfig{Enabled: false}, zaptest.NewLogger(t))
		require.NoError(t, err)
		assert.False(t, p.IsEnabled())
		assert.NoError(t, p.Stop())
		assert.NoError(t, p.Stop())
	})

	t.Run("requires server address", func(t *testing.T) {
		_, err := telemetry.NewProfiler(telemetry.ProfilerConfig{
			Enabled:         true,
			ApplicationName: "shipping",
		}, zaptest.NewLogger(t))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server address")
	})

	t.Run("requires application name", func(t *testing.T) {
		_, err := telemetry.NewProfiler(telemetry.ProfilerConfig{
			Enabled:       true,
			ServerAddress: "http://localhost:4040",
		}, zaptest.NewLogger(t))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "application name")
	})

	t.Run("default profile types", func(t *testing.T) {
		assert.Contains(t, telemetry.DefaultProfileTypes, pyroscope.ProfileCPU)
		assert.Len(t, telemetry.DefaultProfileTypes, 4)
	})
}

func TestRatingLabels(t *testing.T) {
	assert.Equal(t,
		[]string{telemetry.LabelOperation, "get_shipping_options", telemetry.LabelMode, "weight"},
		telemetry.RatingLabels("get_shipping_options", "weight"))
	assert.Equal(t,
		[]string{telemetry.LabelOperation, "get_fixed_rate"},
		telemetry.RatingLabels("get_fixed_rate", ""))
}

func TestWithProfilingLabels(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "v")

	tests := []struct {
		name   string
		labels []string
	}{
		{"no labels", nil},
		{"pairs", telemetry.RatingLabels("get_shipping_options", "fixed")},
		{"odd trailing key", []string{"operation", "x", "dangling"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			telemetry.WithProfilingLabels(ctx, tt.labels, func(inner context.Context) {
				called = true
				assert.Equal(t, "v", inner.Value(key{}))
			})
			assert.True(t, called)
		})
	}
}

func TestLoggerProvider_Disabled(t *testing.T) {
	lp, err := telemetry.NewLoggerProvider(context.Background(), telemetry.LogsConfig{
		Enabled:     false,
		ServiceName: "test-service",
	}, zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.False(t, lp.IsEnabled())
	logger := zap.NewNop()
	assert.Same(t, logger, lp.Bridge(logger, zapcore.InfoLevel))
	assert.NoError(t, lp.Shutdown(context.Background()))
}

func TestLoggerProvider_BridgeKeepsOriginalCore(t *testing.T) {
	lp, err := telemetry.NewLoggerProvider(context.Background(), telemetry.LogsConfig{
		Enabled:           true,
		CollectorEndpoint: "localhost:4317",
		ServiceName:       "test-service",
		Insecure:          true,
	}, zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = lp.Shutdown(context.Background()) })
	require.True(t, lp.IsEnabled())

	core, logs := observer.New(zapcore.DebugLevel)
	bridged := lp.Bridge(zap.New(core), zapcore.WarnLevel)

	bridged.Info("rated", zap.Int("options", 3))
	bridged.Warn("no carrier")

	assert.Equal(t, 2, logs.Len())
}
