package grid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCross(t *testing.T) {
	g, err := ParseLines([]string{
		"#_#",
		"___",
		"#_#",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, g.Height())
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, []Slot{
		{Row: 0, Col: 1, Dir: Down, Length: 3},
		{Row: 1, Col: 0, Dir: Across, Length: 3},
	}, g.Slots())
}

func TestOverlapSymmetric(t *testing.T) {
	g, err := ParseLines([]string{
		"#_#",
		"___",
		"#_#",
	})
	require.NoError(t, err)

	down := Slot{Row: 0, Col: 1, Dir: Down, Length: 3}
	across := Slot{Row: 1, Col: 0, Dir: Across, Length: 3}

	ov, ok := g.Overlap(across, down)
	require.True(t, ok)
	assert.Equal(t, Overlap{I: 1, J: 1}, ov)

	rev, ok := g.Overlap(down, across)
	require.True(t, ok)
	assert.Equal(t, Overlap{I: ov.J, J: ov.I}, rev)
}

func TestRingOverlaps(t *testing.T) {
	g, err := ParseLines([]string{
		"____",
		"_##_",
		"_##_",
		"____",
	})
	require.NoError(t, err)
	require.Len(t, g.Slots(), 4)

	acrossTop := Slot{Row: 0, Col: 0, Dir: Across, Length: 4}
	acrossBottom := Slot{Row: 3, Col: 0, Dir: Across, Length: 4}
	downLeft := Slot{Row: 0, Col: 0, Dir: Down, Length: 4}
	downRight := Slot{Row: 0, Col: 3, Dir: Down, Length: 4}

	cases := []struct {
		a, b Slot
		want Overlap
	}{
		{acrossTop, downLeft, Overlap{I: 0, J: 0}},
		{acrossTop, downRight, Overlap{I: 3, J: 0}},
		{acrossBottom, downLeft, Overlap{I: 0, J: 3}},
		{acrossBottom, downRight, Overlap{I: 3, J: 3}},
	}
	for _, tc := range cases {
		ov, ok := g.Overlap(tc.a, tc.b)
		require.True(t, ok, "overlap %v / %v", tc.a, tc.b)
		assert.Equal(t, tc.want, ov)
	}

	// Parallel slots never cross.
	_, ok := g.Overlap(acrossTop, acrossBottom)
	assert.False(t, ok)

	assert.Equal(t, 2, g.Degree(acrossTop))
	assert.Equal(t, []Slot{downLeft, downRight}, g.Neighbors(acrossTop))
}

func TestParsePadsShortRows(t *testing.T) {
	g, err := ParseLines([]string{
		"___",
		"_",
		"___",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width())
	assert.False(t, g.Fillable(1, 1))
	assert.False(t, g.Fillable(1, 2))
	assert.True(t, g.Fillable(1, 0))
}

func TestParseReader(t *testing.T) {
	g, err := Parse(strings.NewReader("#_#\r\n___\r\n#_#\r\n\r\n"))
	require.NoError(t, err)
	assert.Len(t, g.Slots(), 2)
}

func TestParseMalformed(t *testing.T) {
	_, err := ParseLines(nil)
	assert.ErrorIs(t, err, ErrEmptyStructure)

	_, err = ParseLines([]string{"", ""})
	assert.ErrorIs(t, err, ErrEmptyStructure)

	// All blocked, and a lone fillable cell: neither defines a slot.
	_, err = ParseLines([]string{"###", "###"})
	assert.ErrorIs(t, err, ErrNoSlots)

	_, err = ParseLines([]string{"###", "#_#", "###"})
	assert.ErrorIs(t, err, ErrNoSlots)
}

func TestFillableOutOfBounds(t *testing.T) {
	g, err := ParseLines([]string{"__"})
	require.NoError(t, err)
	assert.False(t, g.Fillable(-1, 0))
	assert.False(t, g.Fillable(0, 2))
	assert.True(t, g.Fillable(0, 1))
}

func TestSlotCompareAndCell(t *testing.T) {
	a := Slot{Row: 0, Col: 1, Dir: Down, Length: 3}
	b := Slot{Row: 1, Col: 0, Dir: Across, Length: 3}
	assert.Negative(t, a.Compare(b))
	assert.Positive(t, b.Compare(a))
	assert.Zero(t, a.Compare(a))

	row, col := a.Cell(2)
	assert.Equal(t, 2, row)
	assert.Equal(t, 1, col)
	row, col = b.Cell(2)
	assert.Equal(t, 1, row)
	assert.Equal(t, 2, col)
}
