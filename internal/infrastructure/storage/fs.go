// Package storage adapts the local filesystem to the ports.Storage
// interface: puzzle files in, solution files and JSON reports out.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"

	"github.com/gridkit/sudoku/internal/domain"
)

type FS struct {
	logger zerolog.Logger
}

func NewFS(logger zerolog.Logger) *FS {
	return &FS{logger: logger.With().Str("component", "storage").Logger()}
}

// ReadPuzzle returns the raw text of a puzzle file.
func (s *FS) ReadPuzzle(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read puzzle: %w", err)
	}
	s.logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("puzzle read")
	return string(data), nil
}

// Discover lists the regular files under dir matching glob, sorted by name.
func (s *FS) Discover(ctx context.Context, dir, glob string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open puzzle directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}
	matches, err := filepath.Glob(filepath.Join(dir, glob))
	if err != nil {
		return nil, fmt.Errorf("bad glob %q: %w", glob, err)
	}
	paths := matches[:0]
	for _, p := range matches {
		if fi, statErr := os.Stat(p); statErr == nil && fi.Mode().IsRegular() {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)
	s.logger.Debug().Str("dir", dir).Str("glob", glob).Int("count", len(paths)).Msg("puzzles discovered")
	return paths, nil
}

// WriteSolution writes rendered solution text, creating parent directories
// as needed.
func (s *FS) WriteSolution(ctx context.Context, path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write solution: %w", err)
	}
	s.logger.Debug().Str("path", path).Msg("solution written")
	return nil
}

// WriteReport writes a batch report as indented JSON.
func (s *FS) WriteReport(ctx context.Context, path string, report *domain.BatchReport) error {
	if report == nil {
		return errors.New("nil report")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	s.logger.Debug().Str("path", path).Int("results", len(report.Results)).Msg("report written")
	return nil
}
