package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/applyeval/internal/domain"
	m "github.com/mouse-blink/applyeval/internal/model"
)

const listLongDescription = `Summarize the dataset: example counts by difficulty and expected
outcome, and the most common tags. The same filters as run apply.`

// listCmd represents the list command.
var listCmd = newListCmd()

var listDatasetFlag string
var listDifficultyFlag string
var listTagFlags []string
var listLimitFlag int
var listFailuresFlag bool

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Summarize the evaluation dataset",
		Long:  listLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.List(domain.ListArgs{
				Dataset:          m.Path(listDatasetFlag),
				Difficulty:       m.Difficulty(listDifficultyFlag),
				Tags:             listTagFlags,
				Limit:            listLimitFlag,
				ExpectedFailures: listFailuresFlag,
			})
		},
	}
	cmd.Flags().StringVar(&listDatasetFlag, "dataset", "", "YAML dataset file (built-in dataset when empty)")
	cmd.Flags().StringVarP(&listDifficultyFlag, "difficulty", "d", "", "only examples of this difficulty")
	cmd.Flags().StringArrayVarP(&listTagFlags, "tag", "t", nil, "only examples carrying this tag (can be repeated)")
	cmd.Flags().IntVarP(&listLimitFlag, "limit", "n", 0, "consider at most this many examples (0 for all)")
	cmd.Flags().BoolVar(&listFailuresFlag, "expected-failures", false, "only examples the apply step is expected to fail on")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
