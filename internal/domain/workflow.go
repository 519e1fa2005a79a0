// Package domain contains the apply mechanism, the metric engine and the
// evaluation workflow.
package domain

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/applyeval/internal/adapter"
	"github.com/mouse-blink/applyeval/internal/controller"
	m "github.com/mouse-blink/applyeval/internal/model"
)

// Workflow errors.
var (
	ErrUnknownMode      = errors.New("unknown mode")
	ErrInvalidThreshold = errors.New("threshold must be within [0, 1]")
	ErrNoCodeModel      = errors.New("real mode needs at least one code model")
	ErrNoRuns           = errors.New("no saved runs")
	ErrMissingFunction  = errors.New("function name is required")
)

// RunArgs configures an evaluation run.
type RunArgs struct {
	Mode        m.Mode
	CodeModels  []string
	JudgeModels []string
	Difficulty  m.Difficulty
	Tags        []string
	Limit       int
	Threads     int
	Threshold   float64
	// Dataset is a YAML dataset file; empty selects the built-in dataset.
	Dataset m.Path
	// Reports is the directory for the YAML run archive; empty skips it.
	Reports m.Path
	// Output is the JSON results file; empty skips it.
	Output  m.Path
	Verbose bool
}

// ListArgs selects the examples summarized by List.
type ListArgs struct {
	Dataset          m.Path
	Difficulty       m.Difficulty
	Tags             []string
	Limit            int
	ExpectedFailures bool
}

// ViewArgs points at a saved run file or a reports directory.
type ViewArgs struct {
	Path     m.Path
	ShowDiff bool
}

// ApplyArgs replaces a function in a file on disk.
type ApplyArgs struct {
	File        m.Path
	Function    string
	Replacement m.Path
	Write       bool
}

// ScoreArgs compares an applied file with a target file.
type ScoreArgs struct {
	Applied   m.Path
	Target    m.Path
	Function  string
	Threshold float64
}

// Workflow defines the operations exposed by the command line.
type Workflow interface {
	Run(ctx context.Context, args RunArgs) (m.RunReport, error)
	List(args ListArgs) error
	View(args ViewArgs) error
	Apply(args ApplyArgs) error
	Score(args ScoreArgs) error
}

// Dependencies are the collaborators of a Workflow.
type Dependencies struct {
	Datasets     adapter.DatasetStore
	Reports      adapter.ReportStore
	FS           adapter.SourceFSAdapter
	Structure    Structure
	Orchestrator Orchestrator
	UI           controller.UI
	Log          *zap.Logger
	// NewID and Now default to uuid.NewString and time.Now.
	NewID func() string
	Now   func() time.Time
}

type workflow struct {
	Dependencies
}

// NewWorkflow creates a new Workflow instance with the provided collaborators.
func NewWorkflow(deps Dependencies) Workflow {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}

	if deps.NewID == nil {
		deps.NewID = uuid.NewString
	}

	if deps.Now == nil {
		deps.Now = time.Now
	}

	return &workflow{Dependencies: deps}
}

// Run evaluates the selected examples against every code model. Code models
// run one after another; examples of one model run on args.Threads workers.
func (w *workflow) Run(ctx context.Context, args RunArgs) (m.RunReport, error) {
	args, err := normalizeRunArgs(args)
	if err != nil {
		return m.RunReport{}, err
	}

	examples, err := w.selectExamples(args.Dataset, args.Difficulty, args.Tags, args.Limit, false)
	if err != nil {
		return m.RunReport{}, err
	}

	run := m.RunReport{
		ID:        w.NewID(),
		Timestamp: w.Now(),
		Config: m.RunConfig{
			Mode:        args.Mode,
			CodeModels:  args.CodeModels,
			JudgeModels: args.JudgeModels,
			Difficulty:  string(args.Difficulty),
			Tags:        args.Tags,
			Limit:       args.Limit,
			Threads:     args.Threads,
			Threshold:   args.Threshold,
		},
	}

	if err := w.UI.Start(controller.WithRunMode()); err != nil {
		return m.RunReport{}, fmt.Errorf("start ui: %w", err)
	}

	defer func() {
		w.UI.Close()
		w.UI.Wait()
	}()

	w.UI.DisplayRunInfo(controller.RunInfo{
		RunID:       run.ID,
		Mode:        args.Mode,
		CodeModels:  args.CodeModels,
		JudgeModels: args.JudgeModels,
		Examples:    len(examples),
		Threads:     args.Threads,
		Threshold:   args.Threshold,
	})

	w.Log.Info("run started",
		zap.String("run_id", run.ID),
		zap.String("mode", string(args.Mode)),
		zap.Strings("code_models", args.CodeModels),
		zap.Int("examples", len(examples)),
		zap.Int("threads", args.Threads))

	for _, codeModel := range args.CodeModels {
		reports, err := w.runModel(ctx, args, codeModel, examples)
		run.Reports = append(run.Reports, reports...)

		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return run, ctxErr
			}

			return run, err
		}

		summary := Summarize(codeModel, reports)
		run.Summaries = append(run.Summaries, summary)
		w.UI.DisplayModelSummary(summary)
	}

	if err := w.persist(args, run); err != nil {
		return run, err
	}

	w.Log.Info("run finished", zap.String("run_id", run.ID), zap.Int("reports", len(run.Reports)))

	return run, nil
}

// runModel evaluates examples for one code model. Reports keep dataset
// order; after a failure only the completed ones are returned.
func (w *workflow) runModel(ctx context.Context, args RunArgs, codeModel string, examples []m.Example) ([]m.Report, error) {
	reports := make([]m.Report, len(examples))
	completed := make([]bool, len(examples))

	workers := make(chan int, args.Threads)
	for i := range args.Threads {
		workers <- i
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(args.Threads)

	for i, ex := range examples {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			worker := <-workers
			defer func() { workers <- worker }()

			w.UI.DisplayExampleStarted(ex, codeModel, worker)

			report, err := w.Orchestrator.Evaluate(gctx, EvaluationJob{
				Example:     ex,
				Mode:        args.Mode,
				CodeModel:   codeModel,
				JudgeModels: args.JudgeModels,
				Threshold:   args.Threshold,
			})
			if err != nil {
				return err
			}

			reports[i] = report
			completed[i] = true

			w.logReport(args.Verbose, report)
			w.UI.DisplayExampleCompleted(report)

			return nil
		})
	}

	err := g.Wait()

	out := make([]m.Report, 0, len(examples))
	for i, ok := range completed {
		if ok {
			out = append(out, reports[i])
		}
	}

	return out, err
}

func (w *workflow) logReport(verbose bool, r m.Report) {
	level := zap.DebugLevel
	if verbose {
		level = zap.InfoLevel
	}

	if ce := w.Log.Check(level, "example evaluated"); ce != nil {
		ce.Write(
			zap.Int("example_id", r.ExampleID),
			zap.String("code_model", r.CodeModel),
			zap.Bool("exact_match", r.Metrics.ExactMatch),
			zap.Bool("overall_success", r.Verdict.OverallSuccess),
			zap.Float64("semantic_similarity", r.Metrics.SemanticSimilarity),
			zap.String("model_error", r.ModelError))
	}
}

func (w *workflow) persist(args RunArgs, run m.RunReport) error {
	if args.Reports != "" {
		path, err := w.Reports.SaveRun(args.Reports, run)
		if err != nil {
			return fmt.Errorf("save run: %w", err)
		}

		w.UI.DisplayRunSaved(path)
	}

	if args.Output != "" {
		if err := w.Reports.ExportJSON(args.Output, run); err != nil {
			return fmt.Errorf("export results: %w", err)
		}

		w.Log.Info("results exported", zap.String("path", string(args.Output)))
	}

	return nil
}

// List shows a summary of the selected dataset examples.
func (w *workflow) List(args ListArgs) error {
	examples, err := w.selectExamples(args.Dataset, args.Difficulty, args.Tags, args.Limit, args.ExpectedFailures)
	if err != nil {
		return err
	}

	if err := w.UI.Start(controller.WithStaticMode()); err != nil {
		return err
	}
	defer w.UI.Close()

	return w.UI.DisplayDataset(DescribeDataset(examples))
}

// View renders a saved run. A directory resolves to its newest run.
func (w *workflow) View(args ViewArgs) error {
	path := args.Path

	info, err := w.FS.FileInfo(path)
	if err != nil {
		return fmt.Errorf("view %s: %w", path, err)
	}

	if info.IsDir() {
		runs, err := w.Reports.ListRuns(path)
		if err != nil {
			return err
		}

		if len(runs) == 0 {
			return fmt.Errorf("%s: %w", path, ErrNoRuns)
		}

		path = runs[0]
	}

	run, err := w.Reports.LoadRun(path)
	if err != nil {
		return err
	}

	if err := w.UI.Start(controller.WithStaticMode()); err != nil {
		return err
	}
	defer w.UI.Close()

	return w.UI.DisplayRun(run, args.ShowDiff)
}

// Apply replaces a function of a file on disk with the content of another
// file. Without Write the result is only displayed.
func (w *workflow) Apply(args ApplyArgs) error {
	if args.Function == "" {
		return ErrMissingFunction
	}

	file, src, err := w.FS.Open(args.File)
	if err != nil {
		return err
	}

	replacement, err := w.FS.ReadFile(args.Replacement)
	if err != nil {
		return fmt.Errorf("read replacement: %w", err)
	}

	result, err := Apply(src.String(), args.Function, string(replacement))
	if err != nil {
		return err
	}

	written := false

	if args.Write && result.Found {
		info, err := w.FS.FileInfo(file.Path)
		if err != nil {
			return err
		}

		if err := w.FS.WriteFile(file.Path, []byte(result.Applied.String()), info.Mode().Perm()); err != nil {
			return fmt.Errorf("write %s: %w", file.Path, err)
		}

		written = true

		w.Log.Info("function replaced",
			zap.String("path", string(file.Path)),
			zap.String("function", args.Function),
			zap.Int("start_line", result.Span.StartLine),
			zap.Int("end_line", result.Span.EndLine))
	}

	if err := w.UI.Start(controller.WithStaticMode()); err != nil {
		return err
	}
	defer w.UI.Close()

	return w.UI.DisplayApply(controller.ApplyOutcome{
		File:     file,
		Function: args.Function,
		Result:   result,
		Written:  written,
	})
}

// Score runs the metric engine on an applied file and a target file.
func (w *workflow) Score(args ScoreArgs) error {
	if args.Function == "" {
		return ErrMissingFunction
	}

	threshold, err := normalizeThreshold(args.Threshold)
	if err != nil {
		return err
	}

	applied, err := w.FS.ReadFile(args.Applied)
	if err != nil {
		return fmt.Errorf("read applied file: %w", err)
	}

	target, err := w.FS.ReadFile(args.Target)
	if err != nil {
		return fmt.Errorf("read target file: %w", err)
	}

	metrics := NewScorer(w.Structure, threshold).Measure(string(applied), string(target), args.Function)
	_, found := Locate(m.NewSourceText(string(applied)), args.Function)

	if err := w.UI.Start(controller.WithStaticMode()); err != nil {
		return err
	}
	defer w.UI.Close()

	return w.UI.DisplayScore(controller.ScoreResult{
		Applied:  args.Applied,
		Target:   args.Target,
		Function: args.Function,
		Metrics:  metrics,
		Verdict:  Decide(found, metrics.SyntaxValid, metrics.ExactMatch, metrics.SemanticSimilarity, threshold),
	})
}

func (w *workflow) selectExamples(dataset m.Path, difficulty m.Difficulty, tags []string, limit int, onlyFailures bool) ([]m.Example, error) {
	examples, err := w.Datasets.Load(dataset)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	examples, err = FilterByDifficulty(examples, difficulty)
	if err != nil {
		return nil, err
	}

	examples = FilterByTags(examples, tags)

	if onlyFailures {
		examples = ExpectedFailures(examples)
	}

	return Limit(examples, limit), nil
}

func normalizeRunArgs(args RunArgs) (RunArgs, error) {
	switch args.Mode {
	case "":
		args.Mode = m.ModeSimulated
	case m.ModeSimulated, m.ModeReal:
	default:
		return args, fmt.Errorf("%w: %q", ErrUnknownMode, args.Mode)
	}

	threshold, err := normalizeThreshold(args.Threshold)
	if err != nil {
		return args, err
	}

	args.Threshold = threshold

	if args.Threads <= 0 {
		args.Threads = 1
	}

	if args.Mode == m.ModeSimulated {
		args.CodeModels = []string{m.SimulatedModel}
	} else if len(args.CodeModels) == 0 {
		return args, ErrNoCodeModel
	}

	return args, nil
}

func normalizeThreshold(threshold float64) (float64, error) {
	if threshold == 0 {
		return DefaultSimilarityThreshold, nil
	}

	if math.IsNaN(threshold) || threshold < 0 || threshold > 1 {
		return 0, fmt.Errorf("%w: %g", ErrInvalidThreshold, threshold)
	}

	return threshold, nil
}
