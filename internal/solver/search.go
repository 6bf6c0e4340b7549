package solver

import (
	"context"
	"math/bits"

	"github.com/gridkit/sudoku/internal/board"
)

// searchResult is the outcome of one recursive descent.
type searchResult int

const (
	// exhausted means every branch below this point failed; the unwind has
	// removed all placements made on the way down.
	exhausted searchResult = iota
	// found means a complete assignment was reached; placements stay on the
	// board so the caller can read the solution off it.
	found
	// timedOut means the deadline fired mid-search; placements stay in place
	// and the board needs a Reset before reuse.
	timedOut
)

// searchBasic fills the first empty cell in row-major order, trying digits
// in ascending order.
func (e *Engine) searchBasic(ctx context.Context, b *board.Board, nodes *int) searchResult {
	if ctx.Err() != nil {
		return timedOut
	}
	row, col, ok := b.FirstEmpty()
	if !ok {
		return found
	}
	for digit := 1; digit <= 9; digit++ {
		if !b.IsLegal(row, col, digit) {
			continue
		}
		b.Place(row, col, digit)
		*nodes++
		res := e.searchBasic(ctx, b, nodes)
		if res != exhausted {
			return res
		}
		b.Remove(row, col, digit)
	}
	return exhausted
}

// searchMostConstrained fills the empty cell with the fewest candidates
// first. A cell with an empty candidate mask prunes the branch immediately,
// since its digit loop runs zero times.
func (e *Engine) searchMostConstrained(ctx context.Context, b *board.Board, nodes *int) searchResult {
	if ctx.Err() != nil {
		return timedOut
	}
	row, col, mask, ok := mostConstrainedCell(b)
	if !ok {
		return found
	}
	for mask != 0 {
		digit := bits.TrailingZeros16(mask) + 1
		mask &= mask - 1
		b.Place(row, col, digit)
		*nodes++
		res := e.searchMostConstrained(ctx, b, nodes)
		if res != exhausted {
			return res
		}
		b.Remove(row, col, digit)
	}
	return exhausted
}

// mostConstrainedCell scans the empty cells in row-major order and returns
// the first one with the fewest candidates, along with its candidate mask.
// ok is false when the board is full. The scan stops early at a cell with
// one candidate or none, which no later cell can beat.
func mostConstrainedCell(b *board.Board) (row, col int, mask uint16, ok bool) {
	best := 10
	for _, cell := range b.EmptyCells() {
		m := b.CandidateMask(cell.Row, cell.Col)
		if n := bits.OnesCount16(m); n < best {
			row, col, mask, ok = cell.Row, cell.Col, m, true
			best = n
			if best <= 1 {
				break
			}
		}
	}
	return row, col, mask, ok
}
