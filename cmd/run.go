package cmd

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/applyeval/internal/config"
	"github.com/mouse-blink/applyeval/internal/domain"
	m "github.com/mouse-blink/applyeval/internal/model"
)

const runLongDescription = `Run the evaluation over the dataset.

In simulated mode (the default) every example's recorded model output is
applied. In real mode each --code-model is asked for a candidate; models are
evaluated one after another and examples of one model run on --parallel
workers.

Judge models give an advisory opinion on every applied file and never change
the verdict. They are enabled by --use-llm-judge, --judge-model or
--all-judge-models.`

var runModeFlag string
var runCodeModelFlags []string
var runJudgeModelFlags []string
var runUseJudgeFlag bool
var runAllJudgesFlag bool
var runDifficultyFlag string
var runTagFlags []string
var runLimitFlag int
var runParallelFlag int
var runThresholdFlag float64
var runDatasetFlag string
var runOutputFlag string
var runNoSaveFlag bool

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Evaluate the apply mechanism on the dataset",
		Long:  runLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			_, err := workflow.Run(ctx, buildRunArgs(cfg))

			return err
		},
	}
	cmd.Flags().StringVarP(&runModeFlag, "mode", "m", string(m.ModeSimulated), "where candidates come from: simulated or real")
	cmd.Flags().StringArrayVar(&runCodeModelFlags, "code-model", nil, "code model to evaluate in real mode (can be repeated)")
	cmd.Flags().StringArrayVar(&runJudgeModelFlags, "judge-model", nil, "judge model to consult (can be repeated)")
	cmd.Flags().BoolVar(&runUseJudgeFlag, "use-llm-judge", false, "consult judge models (configured ones when none are given)")
	cmd.Flags().BoolVar(&runAllJudgesFlag, "all-judge-models", false, "consult every configured judge model")
	cmd.Flags().StringVarP(&runDifficultyFlag, "difficulty", "d", "", "only examples of this difficulty: easy, medium, hard or adversarial")
	cmd.Flags().StringArrayVarP(&runTagFlags, "tag", "t", nil, "only examples carrying this tag (can be repeated)")
	cmd.Flags().IntVarP(&runLimitFlag, "limit", "n", 0, "evaluate at most this many examples (0 for all)")
	cmd.Flags().IntVarP(&runParallelFlag, "parallel", "p", 1, "number of parallel workers per code model")
	cmd.Flags().Float64Var(&runThresholdFlag, "threshold", domain.DefaultSimilarityThreshold, "semantic similarity needed to pass without an exact match")
	cmd.Flags().StringVar(&runDatasetFlag, "dataset", "", "YAML dataset file (built-in dataset when empty)")
	cmd.Flags().StringVarP(&runOutputFlag, "output", "o", "", "write results as JSON to this file")
	cmd.Flags().BoolVar(&runNoSaveFlag, "no-save", false, "do not archive the run under the reports directory")

	return cmd
}

func buildRunArgs(cfg config.Config) domain.RunArgs {
	mode := m.Mode(runModeFlag)

	codeModels := runCodeModelFlags
	if mode == m.ModeReal && len(codeModels) == 0 && cfg.CodeModelDefault != "" {
		codeModels = []string{cfg.CodeModelDefault}
	}

	reports := reportsDir()
	if runNoSaveFlag {
		reports = ""
	}

	return domain.RunArgs{
		Mode:        mode,
		CodeModels:  codeModels,
		JudgeModels: selectJudges(cfg, runJudgeModelFlags, runUseJudgeFlag, runAllJudgesFlag),
		Difficulty:  m.Difficulty(runDifficultyFlag),
		Tags:        runTagFlags,
		Limit:       runLimitFlag,
		Threads:     runParallelFlag,
		Threshold:   runThresholdFlag,
		Dataset:     m.Path(runDatasetFlag),
		Reports:     reports,
		Output:      m.Path(runOutputFlag),
		Verbose:     verboseFlag,
	}
}

// selectJudges resolves the judge models of a run. Naming a judge or asking
// for all of them implies judging; an enabled judge with no models falls back
// to the configured list and then to the default code model.
func selectJudges(cfg config.Config, named []string, useJudge, all bool) []string {
	var judges []string

	switch {
	case all:
		judges = cfg.JudgeModels
	case len(named) > 0:
		judges = named
	}

	if !useJudge && !all && len(named) == 0 {
		return nil
	}

	if len(judges) == 0 {
		judges = cfg.JudgeModels
	}

	if len(judges) == 0 && cfg.CodeModelDefault != "" {
		judges = []string{cfg.CodeModelDefault}
	}

	return judges
}

func init() {
	rootCmd.AddCommand(runCmd)
}
