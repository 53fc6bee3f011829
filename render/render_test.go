package render

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crossfill/crossfill/grid"
)

func crossFixture(t *testing.T) (*grid.Grid, map[grid.Slot]string) {
	t.Helper()
	g, err := grid.ParseLines([]string{
		"#_#",
		"___",
		"#_#",
	})
	require.NoError(t, err)
	asg := map[grid.Slot]string{
		{Row: 0, Col: 1, Dir: grid.Down, Length: 3}:   "CAT",
		{Row: 1, Col: 0, Dir: grid.Across, Length: 3}: "CAR",
	}
	return g, asg
}

func TestText(t *testing.T) {
	g, asg := crossFixture(t)
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, g, asg))
	assert.Equal(t, "█C█\nCAR\n█T█\n", buf.String())
}

func TestTextUnfilledCellsBlank(t *testing.T) {
	g, _ := crossFixture(t)
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, g, nil))
	assert.Equal(t, "█ █\n   \n█ █\n", buf.String())
}

func TestSavePNG(t *testing.T) {
	g, asg := crossFixture(t)
	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, SavePNG(path, g, asg))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 3*cellSize, img.Bounds().Dx())
	assert.Equal(t, 3*cellSize, img.Bounds().Dy())
}
