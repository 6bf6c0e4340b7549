package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridkit/sudoku/internal/domain"
)

func TestValidateCleanGrids(t *testing.T) {
	partial := domain.Grid{
		{5, 3, 0, 0, 7, 0, 0, 0, 0},
		{6, 0, 0, 1, 9, 5, 0, 0, 0},
		{0, 9, 8, 0, 0, 0, 0, 6, 0},
	}
	var full domain.Grid
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			full[r][c] = (r*3+r/3+c)%9 + 1
		}
	}

	for name, g := range map[string]domain.Grid{
		"empty":   {},
		"partial": partial,
		"full":    full,
	} {
		t.Run(name, func(t *testing.T) {
			ok, conflicts, err := New().Validate(context.Background(), g)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Empty(t, conflicts)
		})
	}
}

func TestValidateConflicts(t *testing.T) {
	tests := []struct {
		name string
		grid domain.Grid
		want []domain.CellCoord
	}{
		{
			name: "row duplicate",
			grid: domain.Grid{{5, 0, 0, 0, 0, 0, 0, 0, 5}},
			want: []domain.CellCoord{{Row: 0, Col: 8}},
		},
		{
			name: "column duplicate",
			grid: domain.Grid{0: {7}, 8: {7}},
			want: []domain.CellCoord{{Row: 8, Col: 0}},
		},
		{
			name: "box duplicate",
			grid: domain.Grid{0: {4}, 1: {0, 4}},
			want: []domain.CellCoord{{Row: 1, Col: 1}},
		},
		{
			name: "triple in one row",
			grid: domain.Grid{{9, 0, 0, 0, 9, 0, 0, 0, 9}},
			want: []domain.CellCoord{{Row: 0, Col: 4}, {Row: 0, Col: 8}},
		},
		{
			name: "row and box report separately",
			grid: domain.Grid{{2, 2}},
			want: []domain.CellCoord{{Row: 0, Col: 1}, {Row: 0, Col: 1}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, conflicts, err := New().Validate(context.Background(), tt.grid)
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Equal(t, tt.want, conflicts)
		})
	}
}
