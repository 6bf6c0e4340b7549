package format

import (
	"fmt"
	"strings"

	"github.com/gridkit/sudoku/internal/domain"
)

type flatHandler struct{}

func (flatHandler) parse(lines []string) (domain.Grid, []domain.Advisory, error) {
	var g domain.Grid
	if len(lines) != 1 {
		return g, nil, fmt.Errorf("%w: flat puzzles are a single line, got %d", ErrMalformed, len(lines))
	}
	line := lines[0]
	if len(line) != 81 {
		return g, nil, fmt.Errorf("%w: flat puzzles have 81 digits, got %d", ErrMalformed, len(line))
	}
	for i := 0; i < 81; i++ {
		ch := line[i]
		if ch < '0' || ch > '9' {
			return g, nil, fmt.Errorf("%w: flat puzzle has non-digit %q at offset %d", ErrMalformed, ch, i)
		}
		g[i/9][i%9] = int(ch - '0')
	}
	return g, nil, nil
}

func (flatHandler) render(g domain.Grid) string {
	var b strings.Builder
	b.Grow(81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			b.WriteByte(byte('0' + g[r][c]))
		}
	}
	return b.String()
}
