package domain

import "strings"

// Grid is a 9x9 Sudoku grid. Values are 0-9 where 0 marks an empty cell.
// It is a value type, so grids compare with == and copy on assignment.
type Grid [9][9]int

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Status classifies the terminal outcome of a solve attempt.
type Status string

const (
	StatusSolved     Status = "Solved"
	StatusNoSolution Status = "Board has no solution"
	StatusTimeout    Status = "Timeout occurred"
)

// Advisory is a non-fatal diagnostic raised while parsing or constructing a
// board. The core never prints; callers decide how to surface these.
type Advisory struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Advisory codes.
const (
	AdvisoryFewClues       = "few-clues"
	AdvisoryCleanedInput   = "cleaned-input"
	AdvisoryCorrectedLines = "corrected-lines"
)

// FilledCount returns the number of non-zero cells.
func (g Grid) FilledCount() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// String renders the grid for console display. Empty cells print as dots and
// the 3x3 boxes are separated by rules:
//
//	9 1 . | . . . | 4 2 7
//	. . . | . . 3 | 9 1 5
//	2 5 4 | 7 . . | 6 8 .
//	------+-------+------
//	...
func (g Grid) String() string {
	var sb strings.Builder
	sb.Grow(9*22 + 2*22)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + byte(g[r][c]))
			}
			if (c+1)%3 == 0 && c < 8 {
				sb.WriteString(" | ")
			} else if c < 8 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
		if (r+1)%3 == 0 && r < 8 {
			sb.WriteString("------+-------+------\n")
		}
	}
	return sb.String()
}
