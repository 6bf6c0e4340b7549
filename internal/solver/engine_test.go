package solver

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridkit/sudoku/internal/board"
	"github.com/gridkit/sudoku/internal/domain"
	"github.com/gridkit/sudoku/internal/validator"
)

// A classic, solvable puzzle with a unique solution (0 = empty).
var classic = domain.Grid{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

// contradiction is a valid grid with no solution: the row, column, and box
// of cell (0,0) jointly rule out all nine digits.
var contradiction = domain.Grid{
	{0, 1, 2, 3, 4, 0, 0, 0, 0},
	{5, 9, 0, 0, 0, 0, 0, 0, 0},
	{6, 0, 0, 0, 0, 0, 0, 0, 0},
	{7, 0, 0, 0, 0, 0, 0, 0, 0},
	{8, 0, 0, 0, 0, 0, 0, 0, 0},
}

func mustBoard(t *testing.T, g domain.Grid) *board.Board {
	t.Helper()
	b, _, err := board.New(g)
	require.NoError(t, err)
	return b
}

func TestSolveBothStrategies(t *testing.T) {
	ctx := context.Background()
	var solutions []domain.Grid
	for _, strategy := range []Strategy{Basic, MostConstrained} {
		t.Run(strategy.String(), func(t *testing.T) {
			b := mustBoard(t, classic)
			out, status, stats := New(strategy, time.Minute, zerolog.Nop()).Solve(ctx, b)

			require.Equal(t, domain.StatusSolved, status)
			require.NotNil(t, out)
			require.Equal(t, 81, out.FilledCount())
			ok, conflicts, err := validator.New().Validate(ctx, *out)
			require.NoError(t, err)
			require.True(t, ok, "invalid solution: conflicts=%v", conflicts)
			assert.Positive(t, stats.Nodes)
			t.Logf("solved in %v, nodes=%d", stats.Duration, stats.Nodes)

			solutions = append(solutions, *out)
		})
	}
	require.Len(t, solutions, 2)
	assert.Equal(t, solutions[0], solutions[1], "strategies disagree on a unique-solution puzzle")
}

func TestSolveAlreadyComplete(t *testing.T) {
	var full domain.Grid
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			full[r][c] = (r*3+r/3+c)%9 + 1
		}
	}
	b := mustBoard(t, full)

	out, status, stats := New(Basic, time.Second, zerolog.Nop()).Solve(context.Background(), b)
	require.Equal(t, domain.StatusSolved, status)
	require.NotNil(t, out)
	assert.Equal(t, full, *out)
	assert.Zero(t, stats.Nodes)
}

func TestSolveNoSolution(t *testing.T) {
	for _, strategy := range []Strategy{Basic, MostConstrained} {
		t.Run(strategy.String(), func(t *testing.T) {
			b := mustBoard(t, contradiction)
			out, status, _ := New(strategy, time.Minute, zerolog.Nop()).Solve(context.Background(), b)

			assert.Equal(t, domain.StatusNoSolution, status)
			assert.Nil(t, out)
			// The exhausted unwind must leave the board as given.
			assert.Equal(t, contradiction, b.Grid())
			assert.False(t, b.Modified())
		})
	}
}

func TestSolveZeroTimeout(t *testing.T) {
	b := mustBoard(t, classic)
	out, status, stats := New(Basic, 0, zerolog.Nop()).Solve(context.Background(), b)

	assert.Equal(t, domain.StatusTimeout, status)
	assert.Nil(t, out)
	assert.Zero(t, stats.Nodes)
}

func TestSolveCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := mustBoard(t, classic)
	out, status, _ := New(Basic, -1, zerolog.Nop()).Solve(ctx, b)
	assert.Equal(t, domain.StatusTimeout, status)
	assert.Nil(t, out)
}

func TestSolveDisabledTimeout(t *testing.T) {
	b := mustBoard(t, classic)
	out, status, _ := New(MostConstrained, -1, zerolog.Nop()).Solve(context.Background(), b)
	require.Equal(t, domain.StatusSolved, status)
	require.NotNil(t, out)
}

func TestSolveResetsModifiedBoard(t *testing.T) {
	ctx := context.Background()
	engine := New(Basic, time.Minute, zerolog.Nop())

	want, status, _ := engine.Solve(ctx, mustBoard(t, classic))
	require.Equal(t, domain.StatusSolved, status)

	b := mustBoard(t, classic)
	b.Place(0, 2, 1)
	require.True(t, b.Modified())

	got, status, _ := engine.Solve(ctx, b)
	require.Equal(t, domain.StatusSolved, status)
	assert.Equal(t, want, got, "stray placement should be discarded before the search")
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in      string
		want    Strategy
		wantErr bool
	}{
		{in: "basic", want: Basic},
		{in: "most-constrained", want: MostConstrained},
		{in: "mrv", want: MostConstrained},
		{in: "MRV", want: MostConstrained},
		{in: "  Basic  ", want: Basic},
		{in: "dlx", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStrategy(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStrategyString(t *testing.T) {
	assert.Equal(t, "basic", Basic.String())
	assert.Equal(t, "most-constrained", MostConstrained.String())
	assert.Equal(t, "strategy(7)", Strategy(7).String())
}
