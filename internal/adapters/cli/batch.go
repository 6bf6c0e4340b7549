package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gridkit/sudoku/internal/config"
	"github.com/gridkit/sudoku/internal/format"
	"github.com/gridkit/sudoku/internal/solver"
	"github.com/gridkit/sudoku/internal/usecase"
)

var (
	batchGlob       string
	batchFormat     string
	batchStrategy   string
	batchTimeout    time.Duration
	batchOutputDir  string
	batchReportPath string
	batchConfigPath string
)

var batchCmd = &cobra.Command{
	Use:   "batch DIR",
	Short: "Solve every matching puzzle file in a directory",
	Long: `Solve every matching puzzle file in a directory.

Files that fail to read or parse are skipped and recorded; the run carries
on. Settings may also come from a YAML config file, with flags taking
precedence over it.

Examples:
  sudoku batch ./puzzles
  sudoku batch ./puzzles --glob "*.sudoku" --format flat --output-dir ./solved
  sudoku batch ./puzzles --config batch.yaml --report report.json`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	defaults := config.DefaultConfig()
	batchCmd.Flags().StringVarP(&batchGlob, "glob", "g", "*.txt", "Filename pattern to match")
	batchCmd.Flags().StringVarP(&batchFormat, "format", "f", defaults.Format, "Input layout: grid or flat")
	batchCmd.Flags().StringVarP(&batchStrategy, "strategy", "s", defaults.Strategy, "Cell order: basic or most-constrained")
	batchCmd.Flags().DurationVarP(&batchTimeout, "timeout", "t", defaults.Timeout, "Wall-clock limit per puzzle; negative disables it")
	batchCmd.Flags().StringVarP(&batchOutputDir, "output-dir", "o", "", "Write solution files into this directory")
	batchCmd.Flags().StringVarP(&batchReportPath, "report", "r", "", "Write a JSON report to this file")
	batchCmd.Flags().StringVarP(&batchConfigPath, "config", "c", "", "YAML file with batch settings")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	glob := batchGlob
	strategyName := stringSetting(cmd, "strategy", batchStrategy, cfg.Strategy)
	formatName := stringSetting(cmd, "format", batchFormat, cfg.Format)
	timeout := durationSetting(cmd, "timeout", batchTimeout, cfg.Timeout)
	outputDir := batchOutputDir
	reportPath := batchReportPath

	if batchConfigPath != "" {
		fileCfg, err := config.LoadBatch(batchConfigPath)
		if err != nil {
			return err
		}
		changed := cmd.Flags().Changed
		if !changed("glob") && fileCfg.Glob != "" {
			glob = fileCfg.Glob
		}
		if !changed("strategy") && fileCfg.Strategy != "" {
			strategyName = fileCfg.Strategy
		}
		if !changed("format") && fileCfg.Format != "" {
			formatName = fileCfg.Format
		}
		if !changed("output-dir") && fileCfg.OutputDir != "" {
			outputDir = fileCfg.OutputDir
		}
		if !changed("report") && fileCfg.Report != "" {
			reportPath = fileCfg.Report
		}
		if !changed("timeout") && fileCfg.Timeout != "" {
			d, err := time.ParseDuration(fileCfg.Timeout)
			if err != nil {
				return fmt.Errorf("bad timeout in %s: %w", batchConfigPath, err)
			}
			timeout = d
		}
	}

	strategy, err := solver.ParseStrategy(strategyName)
	if err != nil {
		return err
	}
	f, err := format.ParseFormat(formatName)
	if err != nil {
		return err
	}

	svc := newService(strategy, timeout)
	report, err := svc.RunBatch(cmd.Context(), usecase.BatchSpec{
		Dir:        args[0],
		Glob:       glob,
		Format:     f,
		Strategy:   strategy.String(),
		Timeout:    timeout,
		OutputDir:  outputDir,
		ReportPath: reportPath,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	s := report.Stats
	fmt.Fprintf(out, "Processed %d puzzle(s): %d solved, %d without solution, %d timed out, %d skipped\n",
		s.Total, s.Solved, s.NoSolution, s.TimedOut, s.ParseFailed)
	if attempted := s.Solved + s.NoSolution + s.TimedOut; attempted > 0 {
		fmt.Fprintf(out, "Search totals: %d node(s); per puzzle %d/%d/%d ms min/avg/max\n",
			s.Nodes, s.MinDurationMs, s.AvgDurationMs, s.MaxDurationMs)
	}
	if reportPath != "" {
		fmt.Fprintf(out, "Report written to %s\n", reportPath)
	}
	return nil
}
