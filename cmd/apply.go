package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/applyeval/internal/domain"
	m "github.com/mouse-blink/applyeval/internal/model"
)

var applyFunctionFlag string
var applyReplacementFlag string
var applyWriteFlag bool

// applyCmd represents the apply command.
var applyCmd = newApplyCmd()

func newApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply <file>",
		Short: "Replace one function of a Python file",
		Long: `Locate a function in a Python file by indentation and replace it with the
content of --replacement. The result is printed; --write saves it in place.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Apply(domain.ApplyArgs{
				File:        m.Path(args[0]),
				Function:    applyFunctionFlag,
				Replacement: m.Path(applyReplacementFlag),
				Write:       applyWriteFlag,
			})
		},
	}
	cmd.Flags().StringVarP(&applyFunctionFlag, "function", "f", "", "name of the function to replace")
	cmd.Flags().StringVar(&applyReplacementFlag, "replacement", "", "file holding the new function")
	cmd.Flags().BoolVarP(&applyWriteFlag, "write", "w", false, "write the result back to the file")

	_ = cmd.MarkFlagRequired("function")
	_ = cmd.MarkFlagRequired("replacement")

	return cmd
}

func init() {
	rootCmd.AddCommand(applyCmd)
}
