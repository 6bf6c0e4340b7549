// Package board implements the constraint-tracking Sudoku board model.
//
// A Board owns a 9x9 grid plus three families of digit bitmasks (rows,
// columns, 3x3 boxes) that are kept consistent with the grid on every
// mutation, so legality checks and candidate computation are O(1) instead
// of rescanning units.
package board

import (
	"fmt"
	"math/bits"

	"github.com/gridkit/sudoku/internal/domain"
)

// allNine has bits 0-8 set, one per digit 1-9.
const allNine = 0x1ff

// Board tracks a Sudoku grid together with per-unit constraint sets.
//
// Bit i of a mask represents digit i+1 (bit 0 = digit 1, bit 8 = digit 9).
// The masks and the filled counter are maintained incrementally by Place
// and Remove; the invariant is that a bit is set iff some cell of the unit
// holds that digit.
type Board struct {
	grid     domain.Grid
	original domain.Grid

	rowMasks [9]uint16
	colMasks [9]uint16
	boxMasks [9]uint16

	filled int
}

// New constructs a Board from g, validating value ranges and the absence of
// duplicate digits in any row, column, or box. A board with fewer than 17
// clues constructs fine but returns an advisory: such puzzles cannot have a
// unique solution, which is a property of the input, not a search error.
func New(g domain.Grid) (*Board, []domain.Advisory, error) {
	b := &Board{grid: g, original: g}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := g[r][c]
			if v == 0 {
				continue
			}
			if v < 0 || v > 9 {
				return nil, nil, fmt.Errorf("%w: got %d at row %d col %d", ErrValueRange, v, r, c)
			}
			bx := boxIndex(r, c)
			m := digitMask(v)
			switch {
			case b.rowMasks[r]&m != 0:
				return nil, nil, fmt.Errorf("%w: digit %d appears twice in row %d", ErrDuplicateDigit, v, r)
			case b.colMasks[c]&m != 0:
				return nil, nil, fmt.Errorf("%w: digit %d appears twice in column %d", ErrDuplicateDigit, v, c)
			case b.boxMasks[bx]&m != 0:
				return nil, nil, fmt.Errorf("%w: digit %d appears twice in box %d", ErrDuplicateDigit, v, bx)
			}
			b.rowMasks[r] |= m
			b.colMasks[c] |= m
			b.boxMasks[bx] |= m
			b.filled++
		}
	}
	var advisories []domain.Advisory
	if b.filled < MinUniqueClues {
		advisories = append(advisories, FewCluesAdvisory(b.filled))
	}
	return b, advisories, nil
}

// IsLegal reports whether d can be placed at (r, c) without repeating in the
// cell's row, column, or box. The digit must be in 1-9; anything else is a
// caller bug and panics.
func (b *Board) IsLegal(r, c, d int) bool {
	if d < 1 || d > 9 {
		panic(fmt.Sprintf("board: IsLegal digit %d out of range 1-9", d))
	}
	m := digitMask(d)
	return b.rowMasks[r]&m == 0 && b.colMasks[c]&m == 0 && b.boxMasks[boxIndex(r, c)]&m == 0
}

// Place writes d into (r, c) and adds it to the three unit masks. The caller
// must have established legality first; placing into an occupied cell or
// against a unit constraint would corrupt the invariant, so Place panics.
func (b *Board) Place(r, c, d int) {
	if b.grid[r][c] != 0 {
		panic(fmt.Sprintf("board: Place on occupied cell row %d col %d", r, c))
	}
	if !b.IsLegal(r, c, d) {
		panic(fmt.Sprintf("board: Place of illegal digit %d at row %d col %d", d, r, c))
	}
	m := digitMask(d)
	b.grid[r][c] = d
	b.rowMasks[r] |= m
	b.colMasks[c] |= m
	b.boxMasks[boxIndex(r, c)] |= m
	b.filled++
}

// Remove is the inverse of Place: it clears (r, c) and drops d from the three
// unit masks. The cell must currently hold d; anything else panics.
func (b *Board) Remove(r, c, d int) {
	if b.grid[r][c] != d {
		panic(fmt.Sprintf("board: Remove of digit %d at row %d col %d holding %d", d, r, c, b.grid[r][c]))
	}
	m := digitMask(d)
	b.grid[r][c] = 0
	b.rowMasks[r] &^= m
	b.colMasks[c] &^= m
	b.boxMasks[boxIndex(r, c)] &^= m
	b.filled--
}

// CandidateMask returns the bitmask of digits that can legally fill the empty
// cell (r, c). A zero mask marks a dead end. Calling it on a filled cell is a
// caller bug and panics.
func (b *Board) CandidateMask(r, c int) uint16 {
	if b.grid[r][c] != 0 {
		panic(fmt.Sprintf("board: CandidateMask on filled cell row %d col %d", r, c))
	}
	return allNine &^ b.rowMasks[r] &^ b.colMasks[c] &^ b.boxMasks[boxIndex(r, c)]
}

// Candidates returns the legal digits for the empty cell (r, c) in ascending
// order.
func (b *Board) Candidates(r, c int) []int {
	mask := b.CandidateMask(r, c)
	out := make([]int, 0, bits.OnesCount16(mask))
	for d := 1; d <= 9; d++ {
		if mask&digitMask(d) != 0 {
			out = append(out, d)
		}
	}
	return out
}

// EmptyCells returns the coordinates of all empty cells in row-major order.
// An empty slice means the board is fully filled, the search's terminal
// condition.
func (b *Board) EmptyCells() []domain.CellCoord {
	cells := make([]domain.CellCoord, 0, 81-b.filled)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.grid[r][c] == 0 {
				cells = append(cells, domain.CellCoord{Row: r, Col: c})
			}
		}
	}
	return cells
}

// FirstEmpty returns the first empty cell in row-major order, or ok=false
// when the board is fully filled.
func (b *Board) FirstEmpty() (r, c int, ok bool) {
	for r = 0; r < 9; r++ {
		for c = 0; c < 9; c++ {
			if b.grid[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// Reset restores the grid to its original state and rebuilds the unit masks
// from scratch. The original was validated at construction, so Reset does not
// re-validate.
func (b *Board) Reset() {
	b.grid = b.original
	b.rowMasks = [9]uint16{}
	b.colMasks = [9]uint16{}
	b.boxMasks = [9]uint16{}
	b.filled = 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := b.grid[r][c]; v != 0 {
				m := digitMask(v)
				b.rowMasks[r] |= m
				b.colMasks[c] |= m
				b.boxMasks[boxIndex(r, c)] |= m
				b.filled++
			}
		}
	}
}

// Value returns the digit at (r, c), 0 for an empty cell.
func (b *Board) Value(r, c int) int { return b.grid[r][c] }

// Grid returns a copy of the current grid.
func (b *Board) Grid() domain.Grid { return b.grid }

// Original returns a copy of the grid the board was constructed from.
func (b *Board) Original() domain.Grid { return b.original }

// FilledCount returns the number of non-zero cells.
func (b *Board) FilledCount() int { return b.filled }

// Modified reports whether the current grid differs from the original.
func (b *Board) Modified() bool { return b.grid != b.original }

func (b *Board) String() string { return b.grid.String() }

func digitMask(d int) uint16 { return 1 << (d - 1) }

func boxIndex(r, c int) int { return (r/3)*3 + c/3 }
