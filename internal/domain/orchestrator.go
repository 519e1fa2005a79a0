package domain

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/mouse-blink/applyeval/internal/adapter"
	m "github.com/mouse-blink/applyeval/internal/model"
)

// Trace and span names emitted for every example.
const (
	TraceApplyEvaluation = "apply_evaluation"
	SpanApplyChange      = "apply_change"
	SpanLLMJudge         = "llm_judge"
)

// ErrNoModelOutput marks a simulated example with neither a model output nor
// an extractable target function.
var ErrNoModelOutput = errors.New("no model output available")

// noModelOutputReason is the failure reason reports carry for ErrNoModelOutput.
const noModelOutputReason = "No model output available"

// metricOrder fixes the order scores are attached to the apply span.
var metricOrder = []string{
	m.MetricExactMatch,
	m.MetricLineOverlap,
	m.MetricNormalizedOverlap,
	m.MetricSemanticSimilarity,
	m.MetricSyntaxValid,
	m.MetricFunctionPreserved,
}

// EvaluationJob is one example evaluated against one code model.
type EvaluationJob struct {
	Example     m.Example
	Mode        m.Mode
	CodeModel   string
	JudgeModels []string
	Threshold   float64
}

// Orchestrator coordinates obtaining a candidate for an example, applying it
// to the original file, scoring the result and collecting judge opinions.
type Orchestrator interface {
	Evaluate(ctx context.Context, job EvaluationJob) (m.Report, error)
}

type orchestrator struct {
	codeModel adapter.CodeModel
	judge     adapter.Judge
	tracer    adapter.Tracer
	structure Structure
	log       *zap.Logger
}

// NewOrchestrator constructs an Orchestrator. codeModel is only consulted in
// real mode and judge only when a job names judge models.
func NewOrchestrator(codeModel adapter.CodeModel, judge adapter.Judge, tracer adapter.Tracer,
	structure Structure, log *zap.Logger) Orchestrator {
	if tracer == nil {
		tracer = adapter.NoopTracer{}
	}

	if log == nil {
		log = zap.NewNop()
	}

	return &orchestrator{
		codeModel: codeModel,
		judge:     judge,
		tracer:    tracer,
		structure: structure,
		log:       log,
	}
}

// Evaluate never fails on collaborator errors; those are recorded on the
// report. It returns an error only for a cancelled context or a broken
// apply invariant.
func (o *orchestrator) Evaluate(ctx context.Context, job EvaluationJob) (m.Report, error) {
	ex := job.Example

	report := m.Report{
		ExampleID:       ex.ID,
		CodeModel:       job.CodeModel,
		Difficulty:      ex.Difficulty,
		FunctionName:    ex.FunctionName,
		Tags:            ex.Tags,
		ExpectedSuccess: ex.ExpectedSuccess,
	}

	ctx, root := o.tracer.StartExample(ctx, adapter.TraceInput{
		Name: TraceApplyEvaluation,
		Input: map[string]string{
			"example_id":    strconv.Itoa(ex.ID),
			"user_prompt":   ex.UserPrompt,
			"original_file": ex.OriginalFile,
		},
		Metadata: map[string]string{
			"difficulty":       string(ex.Difficulty),
			"tags":             strings.Join(ex.Tags, ","),
			"code_model":       job.CodeModel,
			"mode":             string(job.Mode),
			"expected_success": strconv.FormatBool(ex.ExpectedSuccess),
		},
	})
	defer root.End()

	candidate, err := o.candidate(ctx, job)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			root.Fail(ctxErr)
			return m.Report{}, ctxErr
		}

		o.log.Warn("no candidate for example",
			zap.Int("example_id", ex.ID),
			zap.String("code_model", job.CodeModel),
			zap.Error(err))
		root.Fail(err)

		report.ModelError = err.Error()
		if errors.Is(err, ErrNoModelOutput) {
			report.FailureReason = noModelOutputReason
		}

		return report, nil
	}

	report.Candidate = candidate

	eval, err := o.applyAndScore(ctx, root, job, candidate)
	if err != nil {
		root.Fail(err)
		return m.Report{}, err
	}

	report.AppliedFile = eval.Apply.Applied.String()
	report.TargetFile = ex.TargetFile
	report.Span = eval.Apply.Span
	report.Metrics = eval.Metrics
	report.Verdict = eval.Verdict
	report.OutcomeAsExpected = ex.ExpectedSuccess == eval.Metrics.ExactMatch

	if !eval.Metrics.ExactMatch {
		report.FailureReason = ex.FailureReason
	}

	root.SetOutput("applied_file", report.AppliedFile)
	root.Score(m.MetricOverallSuccess, scoreValue(eval.Verdict.OverallSuccess), "")

	if len(job.JudgeModels) > 0 {
		report.Judges = o.collectOpinions(ctx, root, job, report.AppliedFile)
	}

	return report, nil
}

func (o *orchestrator) candidate(ctx context.Context, job EvaluationJob) (string, error) {
	ex := job.Example

	if job.Mode == m.ModeSimulated {
		if ex.ModelOutput != "" {
			return ex.ModelOutput, nil
		}

		if extracted := ExtractFunction(ex.TargetFile, ex.FunctionName); extracted != "" {
			return extracted, nil
		}

		return "", ErrNoModelOutput
	}

	if o.codeModel == nil {
		return "", fmt.Errorf("code model %s: %w", job.CodeModel, adapter.ErrProviderNotConfigured)
	}

	out, err := o.codeModel.Generate(ctx, ex.OriginalFile, ex.UserPrompt, job.CodeModel)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(out) == "" {
		return "", fmt.Errorf("code model %s: %w", job.CodeModel, adapter.ErrEmptyOutput)
	}

	return out, nil
}

func (o *orchestrator) applyAndScore(ctx context.Context, root adapter.Span, job EvaluationJob, candidate string) (Evaluation, error) {
	ex := job.Example

	_, span := root.StartChild(ctx, SpanApplyChange, map[string]string{
		"function_name": ex.FunctionName,
		"candidate":     candidate,
	})
	defer span.End()

	eval, err := NewScorer(o.structure, job.Threshold).Score(ex.OriginalFile, candidate, ex.TargetFile, ex.FunctionName)
	if err != nil {
		span.Fail(err)
		return Evaluation{}, fmt.Errorf("example %d: %w", ex.ID, err)
	}

	span.SetOutput("applied_file", eval.Apply.Applied.String())

	values := eval.Metrics.Values()
	for _, name := range metricOrder {
		comment := ""
		if name == m.MetricSyntaxValid {
			comment = eval.Metrics.SyntaxError
		}

		span.Score(name, values[name], comment)
	}

	span.Score(m.MetricApplySucceeded, scoreValue(eval.Apply.Found), "")

	return eval, nil
}

func (o *orchestrator) collectOpinions(ctx context.Context, root adapter.Span, job EvaluationJob, applied string) map[string]m.JudgeOpinion {
	ex := job.Example
	opinions := make(map[string]m.JudgeOpinion, len(job.JudgeModels))

	for _, judgeModel := range job.JudgeModels {
		opinions[judgeModel] = o.opinion(ctx, root, judgeModel, adapter.JudgeRequest{
			Model:    judgeModel,
			Original: ex.OriginalFile,
			Prompt:   ex.UserPrompt,
			Applied:  applied,
			Target:   ex.TargetFile,
		})
	}

	return opinions
}

func (o *orchestrator) opinion(ctx context.Context, root adapter.Span, judgeModel string, req adapter.JudgeRequest) m.JudgeOpinion {
	ctx, span := root.StartChild(ctx, SpanLLMJudge, map[string]string{"judge_model": judgeModel})
	defer span.End()

	if o.judge == nil {
		err := fmt.Errorf("judge %s: %w", judgeModel, adapter.ErrProviderNotConfigured)
		span.Fail(err)

		return m.JudgeOpinion{Model: judgeModel, Err: err.Error()}
	}

	op, err := o.judge.Judge(ctx, req)
	if err != nil {
		o.log.Warn("judge failed",
			zap.String("judge_model", judgeModel),
			zap.Error(err))
		span.Fail(err)

		return m.JudgeOpinion{Model: judgeModel, Err: err.Error()}
	}

	op.Model = judgeModel

	span.Score(m.MetricJudgeScore, op.Score, op.Reason)
	span.Score(m.MetricJudgeIsCorrect, scoreValue(op.IsCorrect), "")

	return op
}

func scoreValue(b bool) float64 {
	if b {
		return 1
	}

	return 0
}
