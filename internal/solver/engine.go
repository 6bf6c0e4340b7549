// Package solver implements depth-first backtracking search over a
// constraint board, with selectable cell-ordering strategies and a
// wall-clock timeout.
package solver

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/gridkit/sudoku/internal/board"
	"github.com/gridkit/sudoku/internal/domain"
	"github.com/gridkit/sudoku/internal/ports"
)

// Engine is a single-threaded backtracking solver. It keeps no state between
// Solve calls; the board reference, timer, and node counter are fresh per
// call. An Engine must not be shared by concurrent Solve calls.
type Engine struct {
	strategy Strategy
	timeout  time.Duration
	logger   zerolog.Logger
}

// New creates an engine with the given strategy and wall-clock timeout.
// A negative timeout disables the limit; a zero timeout expires immediately.
func New(strategy Strategy, timeout time.Duration, logger zerolog.Logger) *Engine {
	return &Engine{
		strategy: strategy,
		timeout:  timeout,
		logger:   logger.With().Str("component", "solver").Logger(),
	}
}

// Strategy returns the engine's cell-ordering strategy.
func (e *Engine) Strategy() Strategy { return e.strategy }

// Timeout returns the engine's configured wall-clock timeout.
func (e *Engine) Timeout() time.Duration { return e.timeout }

// Solve searches b for a solution and classifies the outcome.
//
// On StatusSolved the returned grid is fully filled; on StatusNoSolution the
// search exhausted every branch and the unwind has restored b to its original
// state; on StatusTimeout b is left mid-search and must be Reset before any
// further use. Cancellation of ctx is reported as a timeout.
func (e *Engine) Solve(ctx context.Context, b *board.Board) (*domain.Grid, domain.Status, ports.Stats) {
	start := time.Now()
	if b.Modified() {
		b.Reset()
	}
	if e.timeout >= 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	e.logger.Debug().
		Stringer("strategy", e.strategy).
		Dur("timeout", e.timeout).
		Int("clues", b.FilledCount()).
		Msg("search started")

	nodes := 0
	var res searchResult
	switch e.strategy {
	case MostConstrained:
		res = e.searchMostConstrained(ctx, b, &nodes)
	default:
		res = e.searchBasic(ctx, b, &nodes)
	}
	stats := ports.Stats{Nodes: nodes, Duration: time.Since(start)}

	var status domain.Status
	var out *domain.Grid
	switch res {
	case found:
		g := b.Grid()
		out, status = &g, domain.StatusSolved
	case timedOut:
		status = domain.StatusTimeout
	default:
		status = domain.StatusNoSolution
	}

	e.logger.Debug().
		Str("status", string(status)).
		Int("nodes", stats.Nodes).
		Dur("duration", stats.Duration).
		Msg("search finished")
	return out, status, stats
}
