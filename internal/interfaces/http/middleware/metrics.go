// Package middleware provides HTTP middleware for the shipping rates API.
package middleware

import (
	"time"

	"github.com/erp/shipping/internal/infrastructure/telemetry"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// HTTPMetricsConfig configures HTTPMetrics.
type HTTPMetricsConfig struct {
	MeterProvider *telemetry.MeterProvider
	Enabled       bool
	// Logger reports instrument setup failures. Optional.
	Logger *zap.Logger
}

// AttrStatusClass groups status codes into 2xx/3xx/4xx/5xx.
var AttrStatusClass = attribute.Key("http.status_class")

// Rate requests and responses are small JSON documents
var bodySizeBuckets = []float64{100, 500, 1000, 5000, 10000, 50000, 100000, 500000, 1000000}

type httpInstruments struct {
	requests *telemetry.Counter
	latency  *telemetry.Histogram
	reqBody  *telemetry.Histogram
	respBody *telemetry.Histogram
	inFlight metric.Int64UpDownCounter
}

func newHTTPInstruments(meter metric.Meter) (*httpInstruments, error) {
	requests, err := telemetry.NewCounter(meter, "http_server_request_total", "HTTP requests served", "{request}")
	if err != nil {
		return nil, err
	}
	ins := &httpInstruments{requests: requests}

	histograms := []struct {
		target **telemetry.Histogram
		opts   telemetry.HistogramOpts
	}{
		{&ins.latency, telemetry.HistogramOpts{
			Name: "http_server_request_duration_seconds", Description: "HTTP request latency",
			Unit: "s", Boundaries: telemetry.HTTPDurationBuckets,
		}},
		{&ins.reqBody, telemetry.HistogramOpts{
			Name: "http_server_request_size_bytes", Description: "HTTP request body size",
			Unit: "By", Boundaries: bodySizeBuckets,
		}},
		{&ins.respBody, telemetry.HistogramOpts{
			Name: "http_server_response_size_bytes", Description: "HTTP response body size",
			Unit: "By", Boundaries: bodySizeBuckets,
		}},
	}
	for _, h := range histograms {
		if *h.target, err = telemetry.NewHistogram(meter, h.opts); err != nil {
			return nil, err
		}
	}

	ins.inFlight, err = meter.Int64UpDownCounter("http_server_active_requests",
		metric.WithDescription("HTTP requests in flight"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}
	return ins, nil
}

func passthrough(c *gin.Context) { c.Next() }

// HTTPMetrics records request count, latency, body sizes and in-flight
// requests through the provider's "http.server" meter. It is a passthrough
// when metrics are disabled.
func HTTPMetrics(cfg HTTPMetricsConfig) gin.HandlerFunc {
	if !cfg.Enabled || cfg.MeterProvider == nil || !cfg.MeterProvider.IsEnabled() {
		return passthrough
	}
	ins, err := newHTTPInstruments(cfg.MeterProvider.Meter("http.server"))
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Warn("HTTP metrics disabled", zap.Error(err))
		}
		return passthrough
	}
	return ins.handle
}

// HTTPMetricsWithMeter is HTTPMetrics on an existing meter.
func HTTPMetricsWithMeter(meter metric.Meter, enabled bool) gin.HandlerFunc {
	if !enabled {
		return passthrough
	}
	ins, err := newHTTPInstruments(meter)
	if err != nil {
		return passthrough
	}
	return ins.handle
}

func (m *httpInstruments) handle(c *gin.Context) {
	ctx := c.Request.Context()
	start := time.Now()
	reqSize := c.Request.ContentLength

	m.inFlight.Add(ctx, 1)
	c.Next()
	m.inFlight.Add(ctx, -1)

	status := c.Writer.Status()
	route := []attribute.KeyValue{
		telemetry.AttrHTTPMethod.String(c.Request.Method),
		telemetry.AttrHTTPRoute.String(getRoutePattern(c)),
	}

	counted := append(route[:len(route):len(route)],
		telemetry.AttrHTTPStatusCode.Int(status),
		AttrStatusClass.String(HTTPMetricsStatusGroup(status)),
	)
	if clientID := GetJWTClientID(c); clientID != "" {
		counted = append(counted, telemetry.AttrClientID.String(clientID))
	}
	m.requests.Inc(ctx, counted...)
	m.latency.RecordDuration(ctx, time.Since(start), route...)

	if reqSize > 0 {
		m.reqBody.Record(ctx, float64(reqSize), route...)
	}
	if size := c.Writer.Size(); size > 0 {
		m.respBody.Record(ctx, float64(size), route...)
	}
}

// getRoutePattern keeps the route label bounded to registered patterns.
func getRoutePattern(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return "unknown"
}

// HTTPMetricsStatusGroup returns the class of a status code.
func HTTPMetricsStatusGroup(statusCode int) string {
	switch statusCode / 100 {
	case 2:
		return "2xx"
	case 3:
		return "3xx"
	case 4:
		return "4xx"
	}
	if statusCode >= 500 {
		return "5xx"
	}
	return "other"
}
