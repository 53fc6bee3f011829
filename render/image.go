package render

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/crossfill/crossfill/grid"
)

const (
	cellSize   = 40
	cellBorder = 2
)

// SavePNG writes the filled grid as a PNG: black canvas, white letter
// cells, letters centered in their cells.
func SavePNG(path string, g *grid.Grid, asg map[grid.Slot]string) error {
	img := image.NewRGBA(image.Rect(0, 0, g.Width()*cellSize, g.Height()*cellSize))
	draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)

	face := basicfont.Face7x13
	letters := Letters(g, asg)
	for i := 0; i < g.Height(); i++ {
		for j := 0; j < g.Width(); j++ {
			if !g.Fillable(i, j) {
				continue
			}
			cell := image.Rect(
				j*cellSize+cellBorder, i*cellSize+cellBorder,
				(j+1)*cellSize-cellBorder, (i+1)*cellSize-cellBorder,
			)
			draw.Draw(img, cell, image.White, image.Point{}, draw.Src)
			if letters[i][j] == 0 {
				continue
			}
			d := &font.Drawer{Dst: img, Src: image.Black, Face: face}
			text := string(letters[i][j])
			width := d.MeasureString(text).Ceil()
			d.Dot = fixed.P(
				j*cellSize+(cellSize-width)/2,
				i*cellSize+(cellSize+face.Ascent)/2,
			)
			d.DrawString(text)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating image file: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
