package samples

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridkit/sudoku/internal/board"
	"github.com/gridkit/sudoku/internal/format"
)

func TestListKnownSamples(t *testing.T) {
	list := List()
	require.Len(t, list, 4)
	assert.Equal(t, []Sample{
		{Name: "classic", Format: format.Grid},
		{Name: "easy", Format: format.Grid},
		{Name: "hard", Format: format.Flat},
		{Name: "impossible", Format: format.Grid},
	}, list)
}

func TestAllSamplesParse(t *testing.T) {
	for _, s := range List() {
		t.Run(s.Name, func(t *testing.T) {
			text, f, err := Load(s.Name)
			require.NoError(t, err)
			assert.Equal(t, s.Format, f)

			g, _, err := format.Parse(text, f)
			require.NoError(t, err)
			_, _, err = board.New(g)
			require.NoError(t, err, "sample breaks Sudoku rules")
		})
	}
}

func TestLoadUnknown(t *testing.T) {
	_, _, err := Load("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "available: classic, easy, hard, impossible")
}
