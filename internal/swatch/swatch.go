// Package swatch renders colour collections as image grids for previewing a
// palette outside the terminal.
package swatch

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/jmylchreest/luma/internal/colour"
)

const (
	// DefaultColumns lays the curated palette out as its eight themed rows.
	DefaultColumns = 32

	// DefaultCellSize is the edge of one square cell in pixels.
	DefaultCellSize = 16
)

// Render draws the colours as a grid of solid square cells, row-major on a
// white ground. A final partial row is left white after the last colour.
func Render(colours []colour.RGB, columns, cellSize int) (*image.RGBA, error) {
	if len(colours) == 0 {
		return nil, fmt.Errorf("no colours to render")
	}
	if columns <= 0 || cellSize <= 0 {
		return nil, fmt.Errorf("columns and cell size must be positive")
	}

	rows := (len(colours) + columns - 1) / columns
	img := image.NewRGBA(image.Rect(0, 0, columns*cellSize, rows*cellSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	for i, c := range colours {
		row := i / columns
		col := i % columns
		cell := image.Rect(col*cellSize, row*cellSize, (col+1)*cellSize, (row+1)*cellSize)
		fill := color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
		draw.Draw(img, cell, image.NewUniform(fill), image.Point{}, draw.Src)
	}

	return img, nil
}

// Scale resizes an image to the requested width, preserving the aspect
// ratio. Catmull-Rom resampling keeps cell edges crisp enough for preview
// use while avoiding the blockiness of nearest-neighbour.
func Scale(img image.Image, width int) (*image.RGBA, error) {
	if width <= 0 {
		return nil, fmt.Errorf("width must be positive")
	}

	bounds := img.Bounds()
	if bounds.Dx() == 0 {
		return nil, fmt.Errorf("cannot scale an empty image")
	}
	height := int(float64(width) * float64(bounds.Dy()) / float64(bounds.Dx()))
	if height <= 0 {
		return nil, fmt.Errorf("scaled height rounds to zero at width %d", width)
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst, nil
}
