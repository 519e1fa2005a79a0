package controller

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	m "github.com/mouse-blink/applyeval/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI with plain text and tables. It is safe for use by
// concurrent workers; each call writes whole lines.
type SimpleUI struct {
	mu  sync.Mutex
	out io.Writer
}

// NewSimpleUI creates a new SimpleUI writing to the command output.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{out: cmd.OutOrStdout()}
}

func newSimpleUIWriter(out io.Writer) *SimpleUI {
	return &SimpleUI{out: out}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {
}

// Wait returns immediately; plain output needs no user interaction.
func (s *SimpleUI) Wait() {
}

// DisplayRunInfo prints the run header.
func (s *SimpleUI) DisplayRunInfo(info RunInfo) {
	s.printf("Run %s\n", info.RunID)
	s.printf("Mode: %s  •  Examples: %d  •  Workers: %d  •  Threshold: %.2f\n",
		info.Mode, info.Examples, info.Threads, info.Threshold)
	s.printf("Code models: %s\n", joinOrDash(info.CodeModels))
	s.printf("Judge models: %s\n", joinOrDash(info.JudgeModels))
}

// DisplayExampleStarted is silent; completed examples are printed instead.
func (s *SimpleUI) DisplayExampleStarted(_ m.Example, _ string, _ int) {
}

// DisplayExampleCompleted prints a one-line result followed by judge lines.
func (s *SimpleUI) DisplayExampleCompleted(r m.Report) {
	if !r.Scored() {
		s.printf("[%s] %-24s %-12s error: %s\n", r.CodeModel, exampleLabel(r), r.Difficulty, r.ModelError)
		return
	}

	var block bytes.Buffer

	fmt.Fprintf(&block, "[%s] %-24s %-12s exact %s | %-7s | sim %.2f | %s\n",
		r.CodeModel,
		exampleLabel(r),
		r.Difficulty,
		mark(r.Metrics.ExactMatch),
		successLabel(r.Verdict.OverallSuccess),
		r.Metrics.SemanticSimilarity,
		expectedLabel(r.OutcomeAsExpected),
	)

	for _, name := range sortedKeys(r.Judges) {
		op := r.Judges[name]
		if op.Failed() {
			fmt.Fprintf(&block, "    judge %s: error: %s\n", name, op.Err)
			continue
		}

		fmt.Fprintf(&block, "    judge %s: score %.2f | correct %t\n", name, op.Score, op.IsCorrect)
	}

	s.printf("%s", block.String())
}

// DisplayModelSummary prints the aggregate tables of one code model.
func (s *SimpleUI) DisplayModelSummary(summary m.ModelSummary) {
	s.printf("\nSummary for %s\n", summary.CodeModel)

	if summary.Total == 0 {
		s.printf("No examples processed (%d model failures).\n", summary.ModelFailures)
		return
	}

	s.render([]string{"Metric", "Value"}, [][]string{
		{"Exact matches", countWithRate(summary.ExactMatches, summary.Total)},
		{"Overall success", countWithRate(summary.OverallSuccess, summary.Total)},
		{"Apply succeeded", countWithRate(summary.ApplySucceeded, summary.Total)},
		{"Syntax valid", countWithRate(summary.SyntaxValid, summary.Total)},
		{"Function preserved", countWithRate(summary.FunctionPreserved, summary.Total)},
		{"Outcome as expected", countWithRate(summary.OutcomeAsExpected, summary.Total)},
		{"Avg line overlap", fmt.Sprintf("%.3f", summary.Mean(summary.LineOverlapSum))},
		{"Avg normalized overlap", fmt.Sprintf("%.3f", summary.Mean(summary.NormalizedOverlapSum))},
		{"Avg semantic similarity", fmt.Sprintf("%.3f", summary.Mean(summary.SemanticSimilaritySum))},
		{"Model failures", fmt.Sprintf("%d", summary.ModelFailures)},
	}, []string{"Examples", fmt.Sprintf("%d", summary.Total)})

	rows := make([][]string, 0, len(summary.ByDifficulty))
	for _, d := range sortedDifficulties(summary.ByDifficulty) {
		b := summary.ByDifficulty[d]
		rows = append(rows, []string{string(d), fmt.Sprintf("%d", b.Total), countWithRate(b.Exact, b.Total),
			countWithRate(b.SyntaxValid, b.Total), countWithRate(b.Success, b.Total)})
	}

	s.render([]string{"Difficulty", "Total", "Exact", "Syntax", "Success"}, rows, nil)

	rows = make([][]string, 0, len(summary.ByTag))
	for _, tag := range sortedKeys(summary.ByTag) {
		b := summary.ByTag[tag]
		rows = append(rows, []string{tag, fmt.Sprintf("%d", b.Total), countWithRate(b.Exact, b.Total),
			countWithRate(b.Success, b.Total)})
	}

	s.render([]string{"Tag", "Total", "Exact", "Success"}, rows, nil)

	if len(summary.Judges) == 0 {
		return
	}

	rows = make([][]string, 0, len(summary.Judges))
	for _, name := range sortedKeys(summary.Judges) {
		j := summary.Judges[name]
		rows = append(rows, []string{name, fmt.Sprintf("%.2f", j.Average()),
			fmt.Sprintf("%d/%d", j.Correct, j.Count), fmt.Sprintf("%d", j.Failed)})
	}

	s.render([]string{"Judge", "Avg score", "Correct", "Failed"}, rows, nil)
}

// DisplayRunSaved prints where the run archive was written.
func (s *SimpleUI) DisplayRunSaved(path m.Path) {
	s.printf("\nRun saved to %s\n", path)
}

// DisplayDataset prints the dataset summary tables.
func (s *SimpleUI) DisplayDataset(summary m.DatasetSummary) error {
	s.printf("Total examples: %d\n", summary.Total)

	rows := make([][]string, 0, len(summary.ByDifficulty))
	for _, d := range sortedDifficulties(summary.ByDifficulty) {
		rows = append(rows, []string{string(d), fmt.Sprintf("%d", summary.ByDifficulty[d])})
	}

	s.render([]string{"Difficulty", "Examples"}, rows, nil)

	s.render([]string{"Expected outcome", "Examples"}, [][]string{
		{"success", fmt.Sprintf("%d", summary.ExpectedSuccess)},
		{"failure", fmt.Sprintf("%d", summary.ExpectedFailure)},
	}, nil)

	rows = make([][]string, 0, len(summary.Tags))
	for _, tc := range summary.Tags {
		rows = append(rows, []string{tc.Tag, fmt.Sprintf("%d", tc.Count)})
	}

	s.render([]string{"Tag", "Examples"}, rows, []string{fmt.Sprintf("Total Tags %d", len(summary.Tags)), ""})

	return nil
}

// DisplayRun prints a saved run.
func (s *SimpleUI) DisplayRun(run m.RunReport, showDiff bool) error {
	s.printf("Run %s (%s)\n", run.ID, run.Timestamp.Format("2006-01-02 15:04:05"))
	s.printf("Mode: %s  •  Code models: %s  •  Judges: %s\n",
		run.Config.Mode, joinOrDash(run.Config.CodeModels), joinOrDash(run.Config.JudgeModels))

	rows := make([][]string, 0, len(run.Reports))
	for _, r := range run.Reports {
		if !r.Scored() {
			rows = append(rows, []string{fmt.Sprintf("%d", r.ExampleID), r.CodeModel, string(r.Difficulty),
				r.FunctionName, "-", "-", "-", "error", "-"})

			continue
		}

		rows = append(rows, []string{
			fmt.Sprintf("%d", r.ExampleID),
			r.CodeModel,
			string(r.Difficulty),
			r.FunctionName,
			mark(r.Metrics.ExactMatch),
			mark(r.Metrics.SyntaxValid),
			fmt.Sprintf("%.2f", r.Metrics.SemanticSimilarity),
			reportStatus(r),
			expectedLabel(r.OutcomeAsExpected),
		})
	}

	s.render([]string{"ID", "Model", "Difficulty", "Function", "Exact", "Syntax", "Sim", "Status", "Outcome"}, rows, nil)

	for _, summary := range run.Summaries {
		s.DisplayModelSummary(summary)
	}

	if !showDiff {
		return nil
	}

	for _, r := range run.Reports {
		if !r.Scored() || r.Metrics.ExactMatch {
			continue
		}

		if diff := unifiedDiff(r.AppliedFile, r.TargetFile, exampleLabel(r)); diff != "" {
			s.printf("\n%s", diff)
		}
	}

	return nil
}

// DisplayApply prints where the function was found and the resulting text.
func (s *SimpleUI) DisplayApply(outcome ApplyOutcome) error {
	if !outcome.Result.Found || outcome.Result.Span == nil {
		s.printf("Function %s not found in %s; file unchanged\n", outcome.Function, outcome.File.Path)
		return nil
	}

	span := outcome.Result.Span
	s.printf("Function %s found in %s at lines %d-%d (indent %d)\n",
		outcome.Function, outcome.File.Path, span.StartLine+1, span.EndLine, span.BaseIndent)

	if outcome.Written {
		s.printf("Wrote %s\n", outcome.File.Path)
		return nil
	}

	s.printf("\n%s", outcome.Result.Applied.String())

	return nil
}

// DisplayScore prints the metric table and the verdict.
func (s *SimpleUI) DisplayScore(result ScoreResult) error {
	s.printf("Scoring %s against %s (function %s)\n", result.Applied, result.Target, result.Function)

	syntax := mark(result.Metrics.SyntaxValid)
	if result.Metrics.SyntaxError != "" {
		syntax += " " + result.Metrics.SyntaxError
	}

	s.render([]string{"Metric", "Value"}, [][]string{
		{m.MetricExactMatch, mark(result.Metrics.ExactMatch)},
		{m.MetricLineOverlap, fmt.Sprintf("%.3f", result.Metrics.LineOverlap)},
		{m.MetricNormalizedOverlap, fmt.Sprintf("%.3f", result.Metrics.NormalizedOverlap)},
		{m.MetricSyntaxValid, syntax},
		{m.MetricFunctionPreserved, mark(result.Metrics.FunctionPreserved)},
		{m.MetricSemanticSimilarity, fmt.Sprintf("%.3f", result.Metrics.SemanticSimilarity)},
	}, []string{m.MetricOverallSuccess, successLabel(result.Verdict.OverallSuccess)})

	return nil
}

func (s *SimpleUI) render(header []string, rows [][]string, footer []string) {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	alignment := make([]int, len(header))
	for i := range alignment {
		alignment[i] = tablewriter.ALIGN_LEFT
	}

	table.SetColumnAlignment(alignment)
	table.AppendBulk(rows)

	if footer != nil {
		table.SetFooter(footer)
	}

	table.Render()
	s.printf("\n%s", tableBuffer.String())
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.out, format, args...)
}
