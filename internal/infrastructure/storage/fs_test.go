package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridkit/sudoku/internal/domain"
)

func TestReadPuzzle(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "puzzle.txt")
	require.NoError(t, os.WriteFile(path, []byte("123\n"), 0o644))

	fs := NewFS(zerolog.Nop())
	got, err := fs.ReadPuzzle(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "123\n", got)

	_, err = fs.ReadPuzzle(context.Background(), filepath.Join(dir, "absent.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.txt", "a.txt", "notes.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	// A directory matching the glob must not be listed.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive.txt"), 0o755))

	fs := NewFS(zerolog.Nop())
	paths, err := fs.Discover(context.Background(), dir, "*.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "b.txt"),
	}, paths)
}

func TestDiscoverErrors(t *testing.T) {
	fs := NewFS(zerolog.Nop())

	_, err := fs.Discover(context.Background(), filepath.Join(t.TempDir(), "absent"), "*.txt")
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "plain.txt")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	_, err = fs.Discover(context.Background(), file, "*.txt")
	assert.Error(t, err)

	_, err = fs.Discover(context.Background(), t.TempDir(), "[")
	assert.ErrorIs(t, err, filepath.ErrBadPattern)
}

func TestWriteSolution(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "nested", "puzzle_solution.txt")

	fs := NewFS(zerolog.Nop())
	require.NoError(t, fs.WriteSolution(context.Background(), path, "456\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "456\n", string(data))
}

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	report := &domain.BatchReport{
		Dir:      "puzzles",
		Glob:     "*.txt",
		Strategy: "basic",
		Results: []domain.FileResult{
			{Path: "puzzles/a.txt", Status: domain.StatusSolved, Nodes: 42},
		},
		Stats: domain.BatchStats{Total: 1, Solved: 1, Nodes: 42},
	}

	fs := NewFS(zerolog.Nop())
	require.NoError(t, fs.WriteReport(context.Background(), path, report))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got domain.BatchReport
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, *report, got)

	assert.Error(t, fs.WriteReport(context.Background(), path, nil))
}
