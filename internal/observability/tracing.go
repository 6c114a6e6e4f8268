// Package observability wires OpenTelemetry tracing for generation runs.
package observability

import (
	"context"
	"strings"
	"sync"
	"time"

	"quiz-crew/internal/config"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.27.0"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "quiz-crew"

var (
	tracingOnce     sync.Once
	tracingShutdown = func(context.Context) error { return nil }
)

// InitTracing installs the global tracer provider once. With tracing disabled
// the global no-op provider stays in place. The returned func flushes spans.
func InitTracing(ctx context.Context, log *zap.Logger, cfg config.TracingConfig) func(context.Context) error {
	tracingOnce.Do(func() {
		if !cfg.Enabled {
			return
		}
		serviceName := strings.TrimSpace(cfg.ServiceName)
		if serviceName == "" {
			serviceName = tracerName
		}
		res, err := resource.New(ctx,
			resource.WithAttributes(
				semconv.ServiceNameKey.String(serviceName),
				attribute.String("service.component", "generation"),
			),
		)
		if err != nil {
			log.Warn("otel resource init failed (continuing)", zap.Error(err))
		}

		exporter, err := buildExporter(ctx, cfg)
		if err != nil {
			log.Warn("otel exporter init failed, tracing stays disabled", zap.Error(err))
			return
		}
		tp := sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(5*time.Second)),
			sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))),
			sdktrace.WithResource(res),
		)
		otel.SetTracerProvider(tp)
		otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		))
		tracingShutdown = tp.Shutdown
		log.Info("otel tracing initialized",
			zap.String("service", serviceName),
			zap.String("endpoint", cfg.Endpoint))
	})
	return tracingShutdown
}

func buildExporter(ctx context.Context, cfg config.TracingConfig) (sdktrace.SpanExporter, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	}
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	return otlptracehttp.New(ctx, opts...)
}

// Tracer returns the package tracer from the current global provider.
func Tracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// StartSpan opens a span on the global tracer.
func StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return Tracer().Start(ctx, name, trace.WithAttributes(attrs...))
}

// FinishSpan records *errp on the span, if set, and ends it. Use with defer.
func FinishSpan(span trace.Span, errp *error) {
	if errp != nil && *errp != nil {
		span.RecordError(*errp)
		span.SetStatus(codes.Error, (*errp).Error())
	}
	span.End()
}

func AttributeKind(kind string) attribute.KeyValue {
	return attribute.String("quiz.kind", kind)
}

func AttributeTask(id string) attribute.KeyValue {
	return attribute.String("pipeline.task_id", id)
}
