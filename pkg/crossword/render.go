package crossword

// render.go: text and image output for solved (or partial) grids.

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// LetterGrid lays the assignment out as a Height x Width rune matrix. Open
// cells not covered by any assigned slot hold 0; blocked cells hold 0 as
// well (distinguish them with the structure itself).
func (c *Crossword) LetterGrid(a Assignment) [][]rune {
	letters := make([][]rune, c.Height)
	for i := range letters {
		letters[i] = make([]rune, c.Width)
	}
	for v, w := range a {
		for k, cell := range v.Cells() {
			letters[cell[0]][cell[1]] = rune(w[k])
		}
	}
	return letters
}

// WriteText prints the filled grid to w, one row per line: letters in open
// cells, a space for open-but-unfilled cells, and a full block for blocked
// cells.
func (c *Crossword) WriteText(w io.Writer, a Assignment) error {
	letters := c.LetterGrid(a)
	for i := 0; i < c.Height; i++ {
		for j := 0; j < c.Width; j++ {
			var err error
			switch {
			case !c.open[i][j]:
				_, err = fmt.Fprint(w, "█")
			case letters[i][j] != 0:
				_, err = fmt.Fprintf(w, "%c", letters[i][j])
			default:
				_, err = fmt.Fprint(w, " ")
			}
			if err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

const (
	cellSize   = 100
	cellBorder = 2
)

// SaveImage renders the filled grid as a PNG: white squares for open cells
// on a black canvas, with the assigned letter centered in each cell.
func (c *Crossword) SaveImage(a Assignment, path string) error {
	letters := c.LetterGrid(a)

	img := image.NewRGBA(image.Rect(0, 0, c.Width*cellSize, c.Height*cellSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: face,
	}

	for i := 0; i < c.Height; i++ {
		for j := 0; j < c.Width; j++ {
			if !c.open[i][j] {
				continue
			}
			cell := image.Rect(
				j*cellSize+cellBorder,
				i*cellSize+cellBorder,
				(j+1)*cellSize-cellBorder,
				(i+1)*cellSize-cellBorder,
			)
			draw.Draw(img, cell, image.NewUniform(color.White), image.Point{}, draw.Src)

			if letters[i][j] == 0 {
				continue
			}
			s := string(letters[i][j])
			width := drawer.MeasureString(s)
			metrics := face.Metrics()
			drawer.Dot = fixed.Point26_6{
				X: fixed.I(j*cellSize+cellSize/2) - width/2,
				Y: fixed.I(i*cellSize+cellSize/2) + (metrics.Ascent-metrics.Descent)/2,
			}
			drawer.DrawString(s)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
