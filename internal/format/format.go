// Package format parses and renders puzzle text in the supported layouts.
//
// Input is normalized before layout checks: whitespace inside lines is
// stripped, blank lines are dropped, and '.' placeholders become '0'. Both
// steps are reported through advisories rather than errors, as is the
// auto-correction of slightly malformed grid lines.
package format

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gridkit/sudoku/internal/domain"
)

// ErrMalformed is wrapped by every parse error, with line detail attached.
var ErrMalformed = errors.New("malformed puzzle text")

// Format identifies a puzzle text layout.
type Format int

const (
	// Grid is the 11-line layout: nine rows of three-digit groups joined
	// by pipes, with a ---+---+--- rule after the third and sixth row.
	Grid Format = iota
	// Flat is a single line of 81 digits in row-major order.
	Flat
)

func (f Format) String() string {
	switch f {
	case Grid:
		return "grid"
	case Flat:
		return "flat"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// ParseFormat maps a user-supplied name to a Format, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "grid":
		return Grid, nil
	case "flat":
		return Flat, nil
	default:
		return Grid, fmt.Errorf("unknown format %q (supported: grid, flat)", s)
	}
}

type handler interface {
	parse(lines []string) (domain.Grid, []domain.Advisory, error)
	render(g domain.Grid) string
}

func handlerFor(f Format) handler {
	if f == Flat {
		return flatHandler{}
	}
	return gridHandler{}
}

// Parse extracts a grid from puzzle text in the given layout. The returned
// advisories describe any normalization or line correction that was applied;
// the grid itself is not checked against Sudoku rules here.
func Parse(input string, f Format) (domain.Grid, []domain.Advisory, error) {
	lines, cleaned := preprocess(input)
	g, advisories, err := handlerFor(f).parse(lines)
	if err != nil {
		return domain.Grid{}, nil, err
	}
	if cleaned {
		advisories = append([]domain.Advisory{{
			Code:    domain.AdvisoryCleanedInput,
			Message: "stripped whitespace, blank lines, or '.' placeholders from the input",
		}}, advisories...)
	}
	return g, advisories, nil
}

// Render writes a grid in the given layout. Grid output ends with a newline;
// Flat output is the bare 81-digit line.
func Render(g domain.Grid, f Format) string {
	return handlerFor(f).render(g)
}

// preprocess splits raw text into lines, removes whitespace inside each
// line, drops lines that end up empty, and maps '.' to '0'. cleaned reports
// whether any line changed; silently dropped all-empty lines (such as the
// one after a trailing newline) do not count.
func preprocess(input string) (lines []string, cleaned bool) {
	for _, raw := range strings.Split(input, "\n") {
		line := strings.Join(strings.Fields(raw), "")
		if line != raw {
			cleaned = true
		}
		if line == "" {
			continue
		}
		if strings.ContainsRune(line, '.') {
			line = strings.ReplaceAll(line, ".", "0")
			cleaned = true
		}
		lines = append(lines, line)
	}
	return lines, cleaned
}
