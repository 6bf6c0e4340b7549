package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gridkit/sudoku/internal/samples"
)

var samplesCmd = &cobra.Command{
	Use:   "samples",
	Short: "List the built-in sample puzzles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, s := range samples.List() {
			fmt.Fprintf(out, "%-12s %s\n", s.Name, s.Format)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(samplesCmd)
}
