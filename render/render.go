// Package render draws solved puzzles, either as a text grid for the
// terminal or as a PNG image.
package render

import (
	"bufio"
	"io"

	"github.com/crossfill/crossfill/grid"
)

const blockedRune = '█'

// Letters lays an assignment out as a height×width rune matrix. Cells
// covered by no assigned slot are zero.
func Letters(g *grid.Grid, asg map[grid.Slot]string) [][]rune {
	letters := make([][]rune, g.Height())
	for i := range letters {
		letters[i] = make([]rune, g.Width())
	}
	for sl, word := range asg {
		for k := 0; k < len(word); k++ {
			row, col := sl.Cell(k)
			letters[row][col] = rune(word[k])
		}
	}
	return letters
}

// Text writes the filled grid to w, one row per line. Blocked cells are
// drawn solid, unfilled fillable cells as spaces.
func Text(w io.Writer, g *grid.Grid, asg map[grid.Slot]string) error {
	letters := Letters(g, asg)
	bw := bufio.NewWriter(w)
	for i := 0; i < g.Height(); i++ {
		for j := 0; j < g.Width(); j++ {
			switch {
			case !g.Fillable(i, j):
				bw.WriteRune(blockedRune)
			case letters[i][j] == 0:
				bw.WriteRune(' ')
			default:
				bw.WriteRune(letters[i][j])
			}
		}
		bw.WriteRune('\n')
	}
	return bw.Flush()
}
