package adapter

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Trace exporters accepted by NewTracer.
const (
	ExporterNone     = "none"
	ExporterStdout   = "stdout"
	ExporterOTLP     = "otlp"
	ExporterLangfuse = "langfuse"
)

const (
	tracerName       = "applyeval"
	langfuseOTelPath = "/api/public/otel/v1/traces"
)

// ErrUnknownExporter is returned for an unsupported trace exporter name.
var ErrUnknownExporter = errors.New("unknown trace exporter")

// TraceInput describes the root of one example trace.
type TraceInput struct {
	Name     string
	Input    map[string]string
	Metadata map[string]string
}

// Span is one unit of traced work.
type Span interface {
	StartChild(ctx context.Context, name string, input map[string]string) (context.Context, Span)
	SetOutput(key, value string)
	Score(name string, value float64, comment string)
	// Fail marks the span as errored without ending it.
	Fail(err error)
	End()
}

// Tracer opens example traces and flushes them on shutdown.
type Tracer interface {
	StartExample(ctx context.Context, in TraceInput) (context.Context, Span)
	Shutdown(ctx context.Context) error
}

// TracerConfig selects and configures the trace exporter.
type TracerConfig struct {
	Exporter          string
	OTLPEndpoint      string
	OTLPInsecure      bool
	LangfuseBaseURL   string
	LangfusePublicKey string
	LangfuseSecretKey string
	ServiceVersion    string
}

// NewTracer chooses the tracer once at startup. Langfuse without credentials
// and the "none" exporter both yield a NoopTracer.
func NewTracer(ctx context.Context, cfg TracerConfig, log *zap.Logger) (Tracer, error) {
	exporterName := strings.ToLower(strings.TrimSpace(cfg.Exporter))
	if exporterName == "" {
		exporterName = ExporterNone
		if cfg.LangfusePublicKey != "" && cfg.LangfuseSecretKey != "" {
			exporterName = ExporterLangfuse
		}
	}

	var (
		exporter sdktrace.SpanExporter
		err      error
	)

	switch exporterName {
	case ExporterNone:
		return NoopTracer{}, nil

	case ExporterStdout:
		exporter, err = stdouttrace.New(stdouttrace.WithPrettyPrint())

	case ExporterOTLP:
		opts := []otlptracegrpc.Option{}
		if cfg.OTLPEndpoint != "" {
			opts = append(opts, otlptracegrpc.WithEndpoint(cfg.OTLPEndpoint))
		}

		if cfg.OTLPInsecure {
			opts = append(opts, otlptracegrpc.WithInsecure())
		}

		exporter, err = otlptracegrpc.New(ctx, opts...)

	case ExporterLangfuse:
		if cfg.LangfusePublicKey == "" || cfg.LangfuseSecretKey == "" {
			log.Warn("langfuse credentials missing, tracing disabled")
			return NoopTracer{}, nil
		}

		exporter, err = otlptracehttp.New(ctx,
			otlptracehttp.WithEndpointURL(strings.TrimSuffix(cfg.LangfuseBaseURL, "/")+langfuseOTelPath),
			otlptracehttp.WithHeaders(map[string]string{
				"Authorization": "Basic " + basicAuth(cfg.LangfusePublicKey, cfg.LangfuseSecretKey),
			}),
		)

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownExporter, cfg.Exporter)
	}

	if err != nil {
		return nil, fmt.Errorf("create exporter: %w", err)
	}

	res := resource.NewWithAttributes(
		"",
		attribute.String("service.name", tracerName),
		attribute.String("service.version", cfg.ServiceVersion),
	)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	log.Debug("tracing enabled", zap.String("exporter", exporterName))

	return NewOTelTracer(tp), nil
}

func basicAuth(user, password string) string {
	return base64.StdEncoding.EncodeToString([]byte(user + ":" + password))
}

// OTelTracer records example traces on an OpenTelemetry tracer provider.
type OTelTracer struct {
	provider *sdktrace.TracerProvider
	tracer   trace.Tracer
}

// NewOTelTracer wraps an existing provider.
func NewOTelTracer(provider *sdktrace.TracerProvider) *OTelTracer {
	return &OTelTracer{provider: provider, tracer: provider.Tracer(tracerName)}
}

// StartExample implements Tracer.
func (t *OTelTracer) StartExample(ctx context.Context, in TraceInput) (context.Context, Span) {
	attrs := prefixed("input.", in.Input)
	attrs = append(attrs, prefixed("metadata.", in.Metadata)...)
	attrs = append(attrs, attribute.String("langfuse.trace.name", in.Name))

	ctx, span := t.tracer.Start(ctx, in.Name, trace.WithAttributes(attrs...))

	return ctx, &otelSpan{tracer: t.tracer, span: span}
}

// Shutdown flushes pending spans.
func (t *OTelTracer) Shutdown(ctx context.Context) error {
	return t.provider.Shutdown(ctx)
}

type otelSpan struct {
	tracer trace.Tracer
	span   trace.Span
}

func (s *otelSpan) StartChild(ctx context.Context, name string, input map[string]string) (context.Context, Span) {
	ctx, span := s.tracer.Start(ctx, name, trace.WithAttributes(prefixed("input.", input)...))

	return ctx, &otelSpan{tracer: s.tracer, span: span}
}

func (s *otelSpan) SetOutput(key, value string) {
	s.span.SetAttributes(attribute.String("output."+key, value))
}

func (s *otelSpan) Score(name string, value float64, comment string) {
	s.span.SetAttributes(attribute.Float64("score."+name, value))
	s.span.AddEvent("score", trace.WithAttributes(
		attribute.String("score.name", name),
		attribute.Float64("score.value", value),
		attribute.String("score.comment", comment),
	))
}

func (s *otelSpan) Fail(err error) {
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

func (s *otelSpan) End() {
	s.span.End()
}

func prefixed(prefix string, values map[string]string) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, len(values))
	for k, v := range values {
		attrs = append(attrs, attribute.String(prefix+k, v))
	}

	return attrs
}

// NoopTracer discards everything.
type NoopTracer struct{}

// StartExample implements Tracer.
func (NoopTracer) StartExample(ctx context.Context, _ TraceInput) (context.Context, Span) {
	return ctx, noopSpan{}
}

// Shutdown implements Tracer.
func (NoopTracer) Shutdown(context.Context) error {
	return nil
}

type noopSpan struct{}

func (noopSpan) StartChild(ctx context.Context, _ string, _ map[string]string) (context.Context, Span) {
	return ctx, noopSpan{}
}

func (noopSpan) SetOutput(string, string)       {}
func (noopSpan) Score(string, float64, string) {}
func (noopSpan) Fail(error)                    {}
func (noopSpan) End()                          {}
