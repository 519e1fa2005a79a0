package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/applyeval/internal/domain"
	m "github.com/mouse-blink/applyeval/internal/model"
)

var scoreAppliedFlag string
var scoreTargetFlag string
var scoreFunctionFlag string
var scoreThresholdFlag float64

// scoreCmd represents the score command.
var scoreCmd = newScoreCmd()

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score an applied file against a target file",
		Long: `Run every metric on an already applied file and print the verdict. The
apply step counts as successful when the function is present in the
applied file.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Score(domain.ScoreArgs{
				Applied:   m.Path(scoreAppliedFlag),
				Target:    m.Path(scoreTargetFlag),
				Function:  scoreFunctionFlag,
				Threshold: scoreThresholdFlag,
			})
		},
	}
	cmd.Flags().StringVar(&scoreAppliedFlag, "applied", "", "file after the apply step")
	cmd.Flags().StringVar(&scoreTargetFlag, "target", "", "expected file")
	cmd.Flags().StringVarP(&scoreFunctionFlag, "function", "f", "", "name of the replaced function")
	cmd.Flags().Float64Var(&scoreThresholdFlag, "threshold", domain.DefaultSimilarityThreshold, "semantic similarity needed to pass without an exact match")

	_ = cmd.MarkFlagRequired("applied")
	_ = cmd.MarkFlagRequired("target")
	_ = cmd.MarkFlagRequired("function")

	return cmd
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}
