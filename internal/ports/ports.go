package ports

import (
	"context"
	"time"

	"github.com/gridkit/sudoku/internal/board"
	"github.com/gridkit/sudoku/internal/domain"
)

// Stats captures performance characteristics of a solve attempt.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver runs a constraint search over a board until one terminal outcome is
// reached. The returned grid is nil unless the status is StatusSolved.
type Solver interface {
	Solve(ctx context.Context, b *board.Board) (*domain.Grid, domain.Status, Stats)
}

// Validator performs fast constraint checks (row/col/box) on a raw grid.
type Validator interface {
	Validate(ctx context.Context, g domain.Grid) (ok bool, conflicts []domain.CellCoord, err error)
}

// Storage reads puzzle files and persists solutions and batch reports.
type Storage interface {
	ReadPuzzle(ctx context.Context, path string) (string, error)
	Discover(ctx context.Context, dir, glob string) ([]string, error)
	WriteSolution(ctx context.Context, path, content string) error
	WriteReport(ctx context.Context, path string, r *domain.BatchReport) error
}
