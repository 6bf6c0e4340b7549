package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/gridkit/sudoku/internal/config"
	"github.com/gridkit/sudoku/internal/domain"
	"github.com/gridkit/sudoku/internal/format"
	"github.com/gridkit/sudoku/internal/samples"
	"github.com/gridkit/sudoku/internal/solver"
	"github.com/gridkit/sudoku/internal/usecase"
)

var (
	solveFormat    string
	solveStrategy  string
	solveTimeout   time.Duration
	solveOutput    string
	solveOutFormat string
	solveSample    string
)

var solveCmd = &cobra.Command{
	Use:   "solve [file]",
	Short: "Solve a puzzle from a file, stdin, or a built-in sample",
	Long: `Solve a puzzle from a file, stdin, or a built-in sample.

With no file argument (or with "-") the puzzle is read from stdin.

Examples:
  sudoku solve puzzle.txt
  sudoku solve --sample classic --strategy most-constrained
  cat puzzle.txt | sudoku solve --format flat --timeout 5s
  sudoku solve puzzle.txt -o solution.txt --output-format flat`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	defaults := config.DefaultConfig()
	solveCmd.Flags().StringVarP(&solveFormat, "format", "f", defaults.Format, "Input layout: grid or flat")
	solveCmd.Flags().StringVarP(&solveStrategy, "strategy", "s", defaults.Strategy, "Cell order: basic or most-constrained")
	solveCmd.Flags().DurationVarP(&solveTimeout, "timeout", "t", defaults.Timeout, "Wall-clock limit; negative disables it")
	solveCmd.Flags().StringVarP(&solveOutput, "output", "o", "", "Write the solution to this file")
	solveCmd.Flags().StringVar(&solveOutFormat, "output-format", "", "Solution layout; defaults to the input layout")
	solveCmd.Flags().StringVar(&solveSample, "sample", "", "Solve a built-in sample (see: sudoku samples)")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	strategy, err := solver.ParseStrategy(stringSetting(cmd, "strategy", solveStrategy, cfg.Strategy))
	if err != nil {
		return err
	}
	f, err := format.ParseFormat(stringSetting(cmd, "format", solveFormat, cfg.Format))
	if err != nil {
		return err
	}
	timeout := durationSetting(cmd, "timeout", solveTimeout, cfg.Timeout)
	svc := newService(strategy, timeout)

	var outcome *usecase.SolveOutcome
	switch {
	case solveSample != "":
		if len(args) > 0 {
			return errors.New("pass either a file or --sample, not both")
		}
		text, sampleFormat, err := samples.Load(solveSample)
		if err != nil {
			return err
		}
		f = sampleFormat
		outcome, err = svc.SolveText(ctx, text, f)
		if err != nil {
			return err
		}
	case len(args) == 0 || args[0] == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		outcome, err = svc.SolveText(ctx, string(data), f)
		if err != nil {
			return err
		}
	default:
		outcome, err = svc.SolveFile(ctx, args[0], f)
		if err != nil {
			return err
		}
	}

	for _, a := range outcome.Advisories {
		logger.Warn().Str("code", a.Code).Msg(a.Message)
	}
	logger.Info().
		Stringer("strategy", strategy).
		Int("nodes", outcome.Stats.Nodes).
		Dur("duration", outcome.Stats.Duration).
		Msg("search finished")

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Input:")
	fmt.Fprint(out, outcome.Input)
	fmt.Fprintf(out, "\nStatus: %s\n", outcome.Status)
	if outcome.Status != domain.StatusSolved {
		// A no-solution or timed-out search is a reported result, not a
		// command failure.
		return nil
	}
	fmt.Fprintln(out)
	fmt.Fprint(out, outcome.Solution)

	if solveOutput != "" {
		outFormat := f
		if solveOutFormat != "" {
			if outFormat, err = format.ParseFormat(solveOutFormat); err != nil {
				return err
			}
		}
		if err := svc.Storage.WriteSolution(ctx, solveOutput, format.Render(*outcome.Solution, outFormat)); err != nil {
			return err
		}
		logger.Info().Str("path", solveOutput).Msg("solution written")
	}
	return nil
}
