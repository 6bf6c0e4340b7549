package solver

import (
	"fmt"
	"strings"
)

// Strategy selects the cell-ordering policy used by the search. Both
// strategies accept and solve the same set of well-posed puzzles; the choice
// only affects the size of the search tree.
type Strategy int

const (
	// Basic always branches on the first empty cell in row-major order and
	// tries digits 1-9 gated by a legality check per candidate.
	Basic Strategy = iota
	// MostConstrained branches on the empty cell with the fewest legal
	// candidates, iterating only over that precomputed candidate set.
	MostConstrained
)

func (s Strategy) String() string {
	switch s {
	case Basic:
		return "basic"
	case MostConstrained:
		return "most-constrained"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy maps a strategy name to its Strategy value. It accepts
// "mrv" as a shorthand for most-constrained.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "basic":
		return Basic, nil
	case "most-constrained", "mrv":
		return MostConstrained, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q (supported: basic, most-constrained)", s)
	}
}
