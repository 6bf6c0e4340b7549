package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gridkit/sudoku/internal/config"
	"github.com/gridkit/sudoku/internal/format"
	"github.com/gridkit/sudoku/internal/infrastructure/storage"
	"github.com/gridkit/sudoku/internal/usecase"
	"github.com/gridkit/sudoku/internal/validator"
)

var checkFormat string

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate a puzzle against the Sudoku rules without solving it",
	Long: `Validate a puzzle against the Sudoku rules without solving it.

Every repeated digit in a row, column, or box is listed. With no file
argument (or with "-") the puzzle is read from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkFormat, "format", "f", config.DefaultConfig().Format, "Input layout: grid or flat")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	f, err := format.ParseFormat(stringSetting(cmd, "format", checkFormat, cfg.Format))
	if err != nil {
		return err
	}
	svc := usecase.NewService(nil, validator.New(), storage.NewFS(logger), logger)

	var text string
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		text = string(data)
	} else {
		if text, err = svc.Storage.ReadPuzzle(ctx, args[0]); err != nil {
			return err
		}
	}

	outcome, err := svc.CheckText(ctx, text, f)
	if err != nil {
		return err
	}
	for _, a := range outcome.Advisories {
		logger.Warn().Str("code", a.Code).Msg(a.Message)
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, outcome.Grid)
	if outcome.OK {
		fmt.Fprintln(out, "\nBoard is valid.")
		return nil
	}
	fmt.Fprintf(out, "\nBoard is invalid, %d conflicting cell(s):\n", len(outcome.Conflicts))
	for _, c := range outcome.Conflicts {
		fmt.Fprintf(out, "  row %d, col %d\n", c.Row+1, c.Col+1)
	}
	return fmt.Errorf("board has %d conflict(s)", len(outcome.Conflicts))
}
