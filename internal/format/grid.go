package format

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gridkit/sudoku/internal/domain"
)

const separatorLine = "---+---+---"

var (
	numberRow    = regexp.MustCompile(`^\d{3}\|\d{3}\|\d{3}$`)
	separatorRow = regexp.MustCompile(`^---\+---\+---$`)
	// looseNumberRow tolerates wrong or missing group delimiters, as long
	// as the three digit groups themselves are intact.
	looseNumberRow = regexp.MustCompile(`^\D?(\d{3})\D(\d{3})\D(\d{3})\D?$`)
	anyDigit       = regexp.MustCompile(`\d`)
)

type gridHandler struct{}

func (gridHandler) parse(lines []string) (domain.Grid, []domain.Advisory, error) {
	var g domain.Grid
	if len(lines) != 11 {
		return g, nil, fmt.Errorf("%w: grid puzzles have 11 lines, got %d", ErrMalformed, len(lines))
	}
	var fixed []int
	row := 0
	for i, line := range lines {
		if i == 3 || i == 7 {
			if !separatorRow.MatchString(line) {
				// Any digit-free line passes as a separator.
				if anyDigit.MatchString(line) {
					return g, nil, fmt.Errorf("%w: line %d %q is not a separator", ErrMalformed, i+1, line)
				}
				fixed = append(fixed, i+1)
			}
			continue
		}
		if !numberRow.MatchString(line) {
			m := looseNumberRow.FindStringSubmatch(line)
			if m == nil {
				return g, nil, fmt.Errorf("%w: line %d %q is not a number row", ErrMalformed, i+1, line)
			}
			line = m[1] + "|" + m[2] + "|" + m[3]
			fixed = append(fixed, i+1)
		}
		digits := line[:3] + line[4:7] + line[8:]
		for c := 0; c < 9; c++ {
			g[row][c] = int(digits[c] - '0')
		}
		row++
	}
	var advisories []domain.Advisory
	if len(fixed) > 0 {
		advisories = append(advisories, domain.Advisory{
			Code:    domain.AdvisoryCorrectedLines,
			Message: fmt.Sprintf("auto-corrected malformed lines %v", fixed),
		})
	}
	return g, advisories, nil
}

func (gridHandler) render(g domain.Grid) string {
	var b strings.Builder
	for r := 0; r < 9; r++ {
		if r == 3 || r == 6 {
			b.WriteString(separatorLine)
			b.WriteByte('\n')
		}
		for c := 0; c < 9; c++ {
			if c == 3 || c == 6 {
				b.WriteByte('|')
			}
			b.WriteByte(byte('0' + g[r][c]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
