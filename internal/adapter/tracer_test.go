package adapter

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
)

func TestNewTracer_Selection(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		cfg  TracerConfig
		noop bool
		err  error
	}{
		{name: "default without keys", cfg: TracerConfig{}, noop: true},
		{name: "explicit none", cfg: TracerConfig{Exporter: " None "}, noop: true},
		{name: "langfuse without keys", cfg: TracerConfig{Exporter: ExporterLangfuse, LangfusePublicKey: "pk"}, noop: true},
		{name: "unknown", cfg: TracerConfig{Exporter: "zipkin"}, err: ErrUnknownExporter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracer, err := NewTracer(ctx, tt.cfg, zap.NewNop())
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}

			require.NoError(t, err)

			_, isNoop := tracer.(NoopTracer)
			assert.Equal(t, tt.noop, isNoop)
		})
	}
}

func TestNewTracer_Stdout(t *testing.T) {
	tracer, err := NewTracer(context.Background(), TracerConfig{Exporter: ExporterStdout}, zap.NewNop())
	require.NoError(t, err)

	_, ok := tracer.(*OTelTracer)
	assert.True(t, ok)
	assert.NoError(t, tracer.Shutdown(context.Background()))
}

func TestBasicAuth(t *testing.T) {
	assert.Equal(t, "cGs6c2s=", basicAuth("pk", "sk"))
}

func TestOTelTracer_Spans(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tracer := NewOTelTracer(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec)))

	ctx, root := tracer.StartExample(context.Background(), TraceInput{
		Name:     "apply_evaluation",
		Input:    map[string]string{"example_id": "3"},
		Metadata: map[string]string{"difficulty": "hard"},
	})

	_, child := root.StartChild(ctx, "apply_change", map[string]string{"function_name": "foo"})
	child.SetOutput("applied_file", "def foo(): pass")
	child.Score("exact_match", 1, "")
	child.Score("syntax_valid", 0, "Line 1: invalid syntax")
	child.End()

	root.Fail(errors.New("boom"))
	root.End()

	require.NoError(t, tracer.Shutdown(context.Background()))

	spans := rec.Ended()
	require.Len(t, spans, 2)

	applySpan, rootSpan := spans[0], spans[1]
	assert.Equal(t, "apply_change", applySpan.Name())
	assert.Equal(t, "apply_evaluation", rootSpan.Name())
	assert.Equal(t, rootSpan.SpanContext().SpanID(), applySpan.Parent().SpanID())

	attrs := map[string]string{}
	for _, kv := range rootSpan.Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}

	assert.Equal(t, "3", attrs["input.example_id"])
	assert.Equal(t, "hard", attrs["metadata.difficulty"])
	assert.Equal(t, "apply_evaluation", attrs["langfuse.trace.name"])
	assert.Equal(t, codes.Error, rootSpan.Status().Code)

	childAttrs := map[string]string{}
	for _, kv := range applySpan.Attributes() {
		childAttrs[string(kv.Key)] = kv.Value.Emit()
	}

	assert.Equal(t, "foo", childAttrs["input.function_name"])
	assert.Equal(t, "def foo(): pass", childAttrs["output.applied_file"])
	assert.Equal(t, "1", childAttrs["score.exact_match"])
	assert.Equal(t, "0", childAttrs["score.syntax_valid"])
	assert.Len(t, applySpan.Events(), 2)
}

func TestNoopTracer(t *testing.T) {
	ctx := context.Background()

	gotCtx, span := NoopTracer{}.StartExample(ctx, TraceInput{Name: "x"})
	assert.Equal(t, ctx, gotCtx)

	_, child := span.StartChild(ctx, "y", nil)
	child.Score("s", 1, "")
	child.SetOutput("k", "v")
	child.Fail(errors.New("ignored"))
	child.End()
	span.End()

	assert.NoError(t, NoopTracer{}.Shutdown(ctx))
}
