package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/mouse-blink/applyeval/internal/adapter"
	"github.com/mouse-blink/applyeval/internal/adapter/mocks"
	m "github.com/mouse-blink/applyeval/internal/model"
)

func simpleExample() m.Example {
	return m.Example{
		ID:              42,
		OriginalFile:    "import os\n\ndef foo():\n    return 1\n",
		TargetFile:      "import os\n\ndef foo():\n    return 2\n",
		UserPrompt:      "return 2",
		FunctionName:    "foo",
		ModelOutput:     "def foo():\n    return 2\n",
		Difficulty:      m.DifficultyEasy,
		ExpectedSuccess: true,
		FailureReason:   "should not be copied",
		Tags:            []string{"simple"},
	}
}

func newRecordingTracer(t *testing.T) (*adapter.OTelTracer, *tracetest.SpanRecorder) {
	t.Helper()

	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))

	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
	})

	return adapter.NewOTelTracer(tp), rec
}

func endedSpan(t *testing.T, rec *tracetest.SpanRecorder, name string) sdktrace.ReadOnlySpan {
	t.Helper()

	for _, span := range rec.Ended() {
		if span.Name() == name {
			return span
		}
	}

	t.Fatalf("span %q not recorded", name)

	return nil
}

func spanAttr(span sdktrace.ReadOnlySpan, key string) (attribute.Value, bool) {
	for _, kv := range span.Attributes() {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}

	return attribute.Value{}, false
}

func TestOrchestrator_SimulatedExactMatch(t *testing.T) {
	o := NewOrchestrator(nil, nil, nil, newTestStructure(), nil)

	report, err := o.Evaluate(context.Background(), EvaluationJob{
		Example:   simpleExample(),
		Mode:      m.ModeSimulated,
		CodeModel: m.SimulatedModel,
		Threshold: DefaultSimilarityThreshold,
	})
	require.NoError(t, err)

	assert.Equal(t, 42, report.ExampleID)
	assert.Equal(t, m.SimulatedModel, report.CodeModel)
	assert.True(t, report.Scored())
	assert.Equal(t, "def foo():\n    return 2\n", report.Candidate)
	assert.Equal(t, report.TargetFile, report.AppliedFile)
	assert.Equal(t, &m.FunctionSpan{StartLine: 2, EndLine: 4, BaseIndent: 0}, report.Span)
	assert.True(t, report.Metrics.ExactMatch)
	assert.True(t, report.Verdict.OverallSuccess)
	assert.True(t, report.OutcomeAsExpected)
	assert.Empty(t, report.FailureReason)
	assert.Nil(t, report.Judges)
}

func TestOrchestrator_SimulatedFallsBackToTargetFunction(t *testing.T) {
	ex := simpleExample()
	ex.ModelOutput = ""

	report, err := NewOrchestrator(nil, nil, nil, newTestStructure(), nil).Evaluate(context.Background(), EvaluationJob{
		Example: ex, Mode: m.ModeSimulated, CodeModel: m.SimulatedModel, Threshold: DefaultSimilarityThreshold,
	})
	require.NoError(t, err)

	assert.Equal(t, "def foo():\n    return 2\n", report.Candidate)
	assert.True(t, report.Metrics.ExactMatch)
}

func TestOrchestrator_SimulatedWithoutAnyCandidate(t *testing.T) {
	ex := simpleExample()
	ex.ModelOutput = ""
	ex.FunctionName = "missing"

	report, err := NewOrchestrator(nil, nil, nil, newTestStructure(), nil).Evaluate(context.Background(), EvaluationJob{
		Example: ex, Mode: m.ModeSimulated, CodeModel: m.SimulatedModel, Threshold: DefaultSimilarityThreshold,
	})
	require.NoError(t, err)

	assert.False(t, report.Scored())
	assert.Equal(t, "no model output available", report.ModelError)
	assert.Equal(t, "No model output available", report.FailureReason)
	assert.Empty(t, report.AppliedFile)
}

func TestOrchestrator_NotExactCopiesFailureReason(t *testing.T) {
	ex := simpleExample()
	ex.ModelOutput = "def foo():\n    return 3\n"
	ex.ExpectedSuccess = false

	report, err := NewOrchestrator(nil, nil, nil, newTestStructure(), nil).Evaluate(context.Background(), EvaluationJob{
		Example: ex, Mode: m.ModeSimulated, CodeModel: m.SimulatedModel, Threshold: DefaultSimilarityThreshold,
	})
	require.NoError(t, err)

	assert.False(t, report.Metrics.ExactMatch)
	assert.True(t, report.OutcomeAsExpected)
	assert.Equal(t, "should not be copied", report.FailureReason)
}

func TestOrchestrator_RealModeUsesCodeModel(t *testing.T) {
	ex := simpleExample()

	codeModel := mocks.NewMockCodeModel(t)
	codeModel.EXPECT().
		Generate(mock.Anything, ex.OriginalFile, ex.UserPrompt, "openai/gpt-4o").
		Return("def foo():\n    return 2\n", nil).
		Once()

	report, err := NewOrchestrator(codeModel, nil, nil, newTestStructure(), nil).Evaluate(context.Background(), EvaluationJob{
		Example: ex, Mode: m.ModeReal, CodeModel: "openai/gpt-4o", Threshold: DefaultSimilarityThreshold,
	})
	require.NoError(t, err)

	assert.Equal(t, "openai/gpt-4o", report.CodeModel)
	assert.True(t, report.Verdict.OverallSuccess)
}

func TestOrchestrator_RealModeErrors(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		err     error
		wantErr string
	}{
		{name: "provider error", err: errors.New("rate limited"), wantErr: "rate limited"},
		{name: "empty output", output: "  \n", wantErr: adapter.ErrEmptyOutput.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codeModel := mocks.NewMockCodeModel(t)
			codeModel.EXPECT().
				Generate(mock.Anything, mock.Anything, mock.Anything, "model").
				Return(tt.output, tt.err)

			report, err := NewOrchestrator(codeModel, nil, nil, newTestStructure(), nil).Evaluate(context.Background(), EvaluationJob{
				Example: simpleExample(), Mode: m.ModeReal, CodeModel: "model", Threshold: DefaultSimilarityThreshold,
			})
			require.NoError(t, err)

			assert.False(t, report.Scored())
			assert.Contains(t, report.ModelError, tt.wantErr)
			assert.False(t, report.Verdict.OverallSuccess)
		})
	}
}

func TestOrchestrator_RealModeWithoutProvider(t *testing.T) {
	report, err := NewOrchestrator(nil, nil, nil, newTestStructure(), nil).Evaluate(context.Background(), EvaluationJob{
		Example: simpleExample(), Mode: m.ModeReal, CodeModel: "model", Threshold: DefaultSimilarityThreshold,
	})
	require.NoError(t, err)

	assert.Contains(t, report.ModelError, adapter.ErrProviderNotConfigured.Error())
}

func TestOrchestrator_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	codeModel := mocks.NewMockCodeModel(t)
	codeModel.EXPECT().
		Generate(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _, _, _ string) (string, error) {
			return "", ctx.Err()
		})

	_, err := NewOrchestrator(codeModel, nil, nil, newTestStructure(), nil).Evaluate(ctx, EvaluationJob{
		Example: simpleExample(), Mode: m.ModeReal, CodeModel: "model", Threshold: DefaultSimilarityThreshold,
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestOrchestrator_CollectsJudgeOpinions(t *testing.T) {
	ex := simpleExample()

	judge := mocks.NewMockJudge(t)
	judge.EXPECT().
		Judge(mock.Anything, mock.MatchedBy(func(req adapter.JudgeRequest) bool {
			return req.Model == "judge-ok"
		})).
		RunAndReturn(func(_ context.Context, req adapter.JudgeRequest) (m.JudgeOpinion, error) {
			assert.Equal(t, ex.OriginalFile, req.Original)
			assert.Equal(t, ex.UserPrompt, req.Prompt)
			assert.Equal(t, ex.TargetFile, req.Applied)
			assert.Equal(t, ex.TargetFile, req.Target)

			return m.JudgeOpinion{IsCorrect: true, Score: 4, Reason: "close"}, nil
		})
	judge.EXPECT().
		Judge(mock.Anything, mock.MatchedBy(func(req adapter.JudgeRequest) bool {
			return req.Model == "judge-down"
		})).
		Return(m.JudgeOpinion{}, errors.New("unavailable"))

	report, err := NewOrchestrator(nil, judge, nil, newTestStructure(), nil).Evaluate(context.Background(), EvaluationJob{
		Example:     ex,
		Mode:        m.ModeSimulated,
		CodeModel:   m.SimulatedModel,
		JudgeModels: []string{"judge-ok", "judge-down"},
		Threshold:   DefaultSimilarityThreshold,
	})
	require.NoError(t, err)

	require.Len(t, report.Judges, 2)
	assert.Equal(t, m.JudgeOpinion{Model: "judge-ok", IsCorrect: true, Score: 4, Reason: "close"}, report.Judges["judge-ok"])
	assert.True(t, report.Judges["judge-down"].Failed())
	assert.Equal(t, "judge-down", report.Judges["judge-down"].Model)
	assert.True(t, report.Verdict.OverallSuccess, "judges never change the verdict")
}

func TestOrchestrator_JudgeWithoutProvider(t *testing.T) {
	report, err := NewOrchestrator(nil, nil, nil, newTestStructure(), nil).Evaluate(context.Background(), EvaluationJob{
		Example:     simpleExample(),
		Mode:        m.ModeSimulated,
		CodeModel:   m.SimulatedModel,
		JudgeModels: []string{"judge"},
		Threshold:   DefaultSimilarityThreshold,
	})
	require.NoError(t, err)

	assert.Contains(t, report.Judges["judge"].Err, adapter.ErrProviderNotConfigured.Error())
}

func TestOrchestrator_RecordsSpans(t *testing.T) {
	tracer, rec := newRecordingTracer(t)

	judge := mocks.NewMockJudge(t)
	judge.EXPECT().Judge(mock.Anything, mock.Anything).Return(m.JudgeOpinion{IsCorrect: true, Score: 5}, nil)

	_, err := NewOrchestrator(nil, judge, tracer, newTestStructure(), nil).Evaluate(context.Background(), EvaluationJob{
		Example:     simpleExample(),
		Mode:        m.ModeSimulated,
		CodeModel:   m.SimulatedModel,
		JudgeModels: []string{"judge"},
		Threshold:   DefaultSimilarityThreshold,
	})
	require.NoError(t, err)

	require.Len(t, rec.Ended(), 3)

	root := endedSpan(t, rec, TraceApplyEvaluation)
	apply := endedSpan(t, rec, SpanApplyChange)
	judged := endedSpan(t, rec, SpanLLMJudge)

	assert.Equal(t, root.SpanContext().SpanID(), apply.Parent().SpanID())
	assert.Equal(t, root.SpanContext().SpanID(), judged.Parent().SpanID())

	v, ok := spanAttr(root, "metadata.difficulty")
	require.True(t, ok)
	assert.Equal(t, "easy", v.AsString())

	v, ok = spanAttr(root, "score."+m.MetricOverallSuccess)
	require.True(t, ok)
	assert.InDelta(t, 1.0, v.AsFloat64(), 1e-9)

	for _, name := range append([]string{m.MetricApplySucceeded}, metricOrder...) {
		v, ok = spanAttr(apply, "score."+name)
		require.True(t, ok, name)
		assert.InDelta(t, 1.0, v.AsFloat64(), 1e-9, name)
	}

	v, ok = spanAttr(judged, "score."+m.MetricJudgeScore)
	require.True(t, ok)
	assert.InDelta(t, 5.0, v.AsFloat64(), 1e-9)
}

func TestOrchestrator_ModelErrorFailsRootSpan(t *testing.T) {
	tracer, rec := newRecordingTracer(t)

	codeModel := mocks.NewMockCodeModel(t)
	codeModel.EXPECT().Generate(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("boom"))

	_, err := NewOrchestrator(codeModel, nil, tracer, newTestStructure(), nil).Evaluate(context.Background(), EvaluationJob{
		Example: simpleExample(), Mode: m.ModeReal, CodeModel: "model", Threshold: DefaultSimilarityThreshold,
	})
	require.NoError(t, err)

	require.Len(t, rec.Ended(), 1)

	root := endedSpan(t, rec, TraceApplyEvaluation)
	assert.Equal(t, codes.Error, root.Status().Code)
	assert.Equal(t, "boom", root.Status().Description)
}
