// Package usecase wires the solving, validation, and storage ports into the
// operations exposed to adapters.
package usecase

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/gridkit/sudoku/internal/board"
	"github.com/gridkit/sudoku/internal/domain"
	"github.com/gridkit/sudoku/internal/format"
	"github.com/gridkit/sudoku/internal/ports"
)

type Service struct {
	Solver    ports.Solver
	Validator ports.Validator
	Storage   ports.Storage

	logger zerolog.Logger
}

func NewService(s ports.Solver, v ports.Validator, st ports.Storage, logger zerolog.Logger) *Service {
	return &Service{
		Solver:    s,
		Validator: v,
		Storage:   st,
		logger:    logger.With().Str("component", "usecase").Logger(),
	}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// SolveOutcome bundles everything a caller needs to present a solve attempt.
// Solution is nil unless Status is StatusSolved.
type SolveOutcome struct {
	Input      domain.Grid
	Solution   *domain.Grid
	Status     domain.Status
	Stats      ports.Stats
	Advisories []domain.Advisory
}

// SolveGrid runs the solver against an in-memory grid.
func (u *Service) SolveGrid(ctx context.Context, g domain.Grid) (*SolveOutcome, error) {
	if u.Solver == nil {
		return nil, errNotConfigured
	}
	b, advisories, err := board.New(g)
	if err != nil {
		return nil, err
	}
	solution, status, stats := u.Solver.Solve(ctx, b)
	return &SolveOutcome{
		Input:      g,
		Solution:   solution,
		Status:     status,
		Stats:      stats,
		Advisories: advisories,
	}, nil
}

// SolveText parses puzzle text in the given layout and solves it. Parse and
// board advisories are merged in that order.
func (u *Service) SolveText(ctx context.Context, text string, f format.Format) (*SolveOutcome, error) {
	g, advisories, err := format.Parse(text, f)
	if err != nil {
		return nil, err
	}
	outcome, err := u.SolveGrid(ctx, g)
	if err != nil {
		return nil, err
	}
	outcome.Advisories = append(advisories, outcome.Advisories...)
	return outcome, nil
}

// SolveFile reads a puzzle file and solves it.
func (u *Service) SolveFile(ctx context.Context, path string, f format.Format) (*SolveOutcome, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	text, err := u.Storage.ReadPuzzle(ctx, path)
	if err != nil {
		return nil, err
	}
	return u.SolveText(ctx, text, f)
}

// CheckOutcome reports rule conflicts in a grid as data. Unlike SolveGrid,
// duplicate digits are not an error here; they are the finding.
type CheckOutcome struct {
	Grid       domain.Grid
	OK         bool
	Conflicts  []domain.CellCoord
	Advisories []domain.Advisory
}

// CheckText parses puzzle text and validates it against the row, column, and
// box rules without solving.
func (u *Service) CheckText(ctx context.Context, text string, f format.Format) (*CheckOutcome, error) {
	if u.Validator == nil {
		return nil, errNotConfigured
	}
	g, advisories, err := format.Parse(text, f)
	if err != nil {
		return nil, err
	}
	ok, conflicts, err := u.Validator.Validate(ctx, g)
	if err != nil {
		return nil, err
	}
	if filled := g.FilledCount(); filled < board.MinUniqueClues {
		advisories = append(advisories, board.FewCluesAdvisory(filled))
	}
	return &CheckOutcome{Grid: g, OK: ok, Conflicts: conflicts, Advisories: advisories}, nil
}

// BatchSpec describes one batch run. Strategy and Timeout are recorded in
// the report header; the solve itself uses the injected Solver, which the
// caller builds from the same settings. OutputDir and ReportPath are
// optional; empty means skip that output.
type BatchSpec struct {
	Dir        string
	Glob       string
	Format     format.Format
	Strategy   string
	Timeout    time.Duration
	OutputDir  string
	ReportPath string
}

// RunBatch solves every matching puzzle file under spec.Dir, skipping files
// that fail to read or parse. It stops early only when ctx is cancelled.
func (u *Service) RunBatch(ctx context.Context, spec BatchSpec) (*domain.BatchReport, error) {
	if u.Solver == nil || u.Storage == nil {
		return nil, errNotConfigured
	}
	paths, err := u.Storage.Discover(ctx, spec.Dir, spec.Glob)
	if err != nil {
		return nil, err
	}
	report := &domain.BatchReport{
		Dir:       spec.Dir,
		Glob:      spec.Glob,
		Strategy:  spec.Strategy,
		TimeoutMs: spec.Timeout.Milliseconds(),
		StartedAt: time.Now().Unix(),
		Results:   make([]domain.FileResult, 0, len(paths)),
	}
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		report.Results = append(report.Results, u.batchOne(ctx, path, spec))
	}
	report.Stats = summarize(report.Results)

	if spec.ReportPath != "" {
		if err := u.Storage.WriteReport(ctx, spec.ReportPath, report); err != nil {
			return nil, err
		}
	}
	return report, nil
}

func (u *Service) batchOne(ctx context.Context, path string, spec BatchSpec) domain.FileResult {
	res := domain.FileResult{Path: path}
	text, err := u.Storage.ReadPuzzle(ctx, path)
	if err != nil {
		res.Error = err.Error()
		u.logger.Warn().Str("path", path).Str("error", res.Error).Msg("puzzle skipped")
		return res
	}
	outcome, err := u.SolveText(ctx, text, spec.Format)
	if err != nil {
		res.Error = err.Error()
		u.logger.Warn().Str("path", path).Str("error", res.Error).Msg("puzzle skipped")
		return res
	}
	for _, a := range outcome.Advisories {
		u.logger.Warn().Str("path", path).Str("code", a.Code).Msg(a.Message)
	}
	res.Status = outcome.Status
	res.Nodes = outcome.Stats.Nodes
	res.DurationMs = outcome.Stats.Duration.Milliseconds()

	if outcome.Status == domain.StatusSolved && spec.OutputDir != "" {
		target := solutionPath(spec.OutputDir, path)
		if err := u.Storage.WriteSolution(ctx, target, format.Render(*outcome.Solution, spec.Format)); err != nil {
			res.Error = err.Error()
		} else {
			res.SolutionPath = target
		}
	}
	u.logger.Info().
		Str("path", path).
		Str("status", string(res.Status)).
		Int("nodes", res.Nodes).
		Int64("durationMs", res.DurationMs).
		Msg("puzzle finished")
	return res
}

// solutionPath maps puzzles/easy.txt to outDir/easy_solution.txt.
func solutionPath(outDir, puzzlePath string) string {
	base := filepath.Base(puzzlePath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outDir, stem+"_solution.txt")
}

// summarize folds per-file results into aggregate counts. Duration figures
// cover only files whose solve ran to a terminal status.
func summarize(results []domain.FileResult) domain.BatchStats {
	stats := domain.BatchStats{Total: len(results)}
	var attempted, sum int64
	for _, r := range results {
		switch r.Status {
		case domain.StatusSolved:
			stats.Solved++
		case domain.StatusNoSolution:
			stats.NoSolution++
		case domain.StatusTimeout:
			stats.TimedOut++
		default:
			stats.ParseFailed++
			continue
		}
		stats.Nodes += r.Nodes
		if attempted == 0 || r.DurationMs < stats.MinDurationMs {
			stats.MinDurationMs = r.DurationMs
		}
		if r.DurationMs > stats.MaxDurationMs {
			stats.MaxDurationMs = r.DurationMs
		}
		sum += r.DurationMs
		attempted++
	}
	if attempted > 0 {
		stats.AvgDurationMs = sum / attempted
	}
	return stats
}
