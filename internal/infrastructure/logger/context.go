package logger

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type contextKey string

const (
	loggerKey    contextKey = "logger"
	requestIDKey contextKey = "request_id"
	storeIDKey   contextKey = "store_id"
	vendorIDKey  contextKey = "vendor_id"
	clientIDKey  contextKey = "client_id"
)

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext retrieves the logger from context, or a no-op logger
func FromContext(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(loggerKey).(*zap.Logger); ok {
		return logger
	}
	return zap.NewNop()
}

// WithRequestID stores the request ID in the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// WithRatingScope stores the store and vendor a rating request runs for.
// Empty values are not stored.
func WithRatingScope(ctx context.Context, storeID, vendorID string) context.Context {
	if storeID != "" {
		ctx = context.WithValue(ctx, storeIDKey, storeID)
	}
	if vendorID != "" {
		ctx = context.WithValue(ctx, vendorIDKey, vendorID)
	}
	return ctx
}

// WithClientID stores the authenticated API client in the context
func WithClientID(ctx context.Context, clientID string) context.Context {
	if clientID == "" {
		return ctx
	}
	return context.WithValue(ctx, clientIDKey, clientID)
}

// GetRequestID retrieves request ID from context
func GetRequestID(ctx context.Context) string {
	return stringValue(ctx, requestIDKey)
}

func stringValue(ctx context.Context, key contextKey) string {
	if v, ok := ctx.Value(key).(string); ok {
		return v
	}
	return ""
}

// GetTraceID extracts the trace ID from the context's span.
func GetTraceID(ctx context.Context) string {
	spanCtx := trace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() {
		return ""
	}
	return spanCtx.TraceID().String()
}

// L returns the context logger enriched with trace_id, span_id, request_id,
// client_id and the rating scope when they are present.
//
//	logger.L(ctx).Info("Options calculated", zap.Int("count", n))
func L(ctx context.Context) *zap.Logger {
	return Enrich(ctx, FromContext(ctx))
}

// Enrich adds the correlation fields found in ctx to l.
func Enrich(ctx context.Context, l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	var fields []zap.Field
	if spanCtx := trace.SpanContextFromContext(ctx); spanCtx.IsValid() {
		fields = append(fields,
			zap.String("trace_id", spanCtx.TraceID().String()),
			zap.String("span_id", spanCtx.SpanID().String()),
		)
	}
	for _, key := range []contextKey{requestIDKey, clientIDKey, storeIDKey, vendorIDKey} {
		if v := stringValue(ctx, key); v != "" {
			fields = append(fields, zap.String(string(key), v))
		}
	}
	if len(fields) == 0 {
		return l
	}
	return l.With(fields...)
}
