// Package samples embeds a few ready-to-solve puzzles so the CLI works out
// of the box. Files follow the name.format.txt convention.
package samples

import (
	"embed"
	"fmt"
	"strings"

	"github.com/gridkit/sudoku/internal/format"
)

//go:embed puzzles/*.txt
var puzzleFS embed.FS

// Sample describes one embedded puzzle.
type Sample struct {
	Name   string
	Format format.Format
}

// List returns the embedded puzzles in name order.
func List() []Sample {
	entries, err := puzzleFS.ReadDir("puzzles")
	if err != nil {
		panic(fmt.Sprintf("embedded puzzles unreadable: %v", err))
	}
	out := make([]Sample, 0, len(entries))
	for _, e := range entries {
		name, f, ok := splitName(e.Name())
		if !ok {
			continue
		}
		out = append(out, Sample{Name: name, Format: f})
	}
	return out
}

// Load returns the text and layout of a named sample.
func Load(name string) (string, format.Format, error) {
	for _, s := range List() {
		if s.Name != name {
			continue
		}
		data, err := puzzleFS.ReadFile(fmt.Sprintf("puzzles/%s.%s.txt", s.Name, s.Format))
		if err != nil {
			return "", s.Format, err
		}
		return string(data), s.Format, nil
	}
	return "", 0, fmt.Errorf("unknown sample %q (available: %s)", name, strings.Join(names(), ", "))
}

func names() []string {
	list := List()
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = s.Name
	}
	return out
}

func splitName(file string) (string, format.Format, bool) {
	parts := strings.Split(strings.TrimSuffix(file, ".txt"), ".")
	if len(parts) != 2 {
		return "", 0, false
	}
	f, err := format.ParseFormat(parts[1])
	if err != nil {
		return "", 0, false
	}
	return parts[0], f, true
}
