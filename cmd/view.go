package cmd

import (
	"github.com/mouse-blink/applyeval/internal/domain"
	m "github.com/mouse-blink/applyeval/internal/model"
	"github.com/spf13/cobra"
)

var viewDiffFlag bool

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [report.yaml]",
		Short: "View a saved evaluation run",
		Long: `View a saved evaluation run. Without an argument the newest run in the
reports directory is shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := reportsDir()
			if len(args) == 1 {
				path = m.Path(args[0])
			}

			return workflow.View(domain.ViewArgs{Path: path, ShowDiff: viewDiffFlag})
		},
	}
	cmd.Flags().BoolVar(&viewDiffFlag, "diff", false, "show a unified diff of applied against target for failed examples")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
