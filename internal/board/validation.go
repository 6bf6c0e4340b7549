package board

import (
	"errors"
	"fmt"

	"github.com/gridkit/sudoku/internal/domain"
)

var (
	ErrValueRange     = errors.New("cell value must be between 0 and 9")
	ErrDuplicateDigit = errors.New("duplicate digit violates Sudoku constraints")
)

// MinUniqueClues is the smallest clue count for which a 9x9 Sudoku can have a
// unique solution (arXiv:1201.0749).
const MinUniqueClues = 17

// FewCluesAdvisory describes an under-constrained input with fewer than 17
// clues.
func FewCluesAdvisory(filled int) domain.Advisory {
	return domain.Advisory{
		Code: domain.AdvisoryFewClues,
		Message: fmt.Sprintf("board has %d clues; puzzles with fewer than %d cannot have a unique solution",
			filled, MinUniqueClues),
	}
}
