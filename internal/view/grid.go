// Package view draws the game board, the player stats and the shop onto
// toolkit independent surfaces.
package view

import (
	"fmt"

	"github.com/sjiamnocna/fancysokoban/internal/maps"
)

type Point struct {
	X float32
	Y float32
}

type Size struct {
	Width  float32
	Height float32
}

// Grid is the fixed geometry of a view: rows x cols cells spread over a
// width x height area.
type Grid struct {
	rows int
	cols int
	size Size
}

func NewGrid(rows, cols int, size Size) (Grid, error) {
	if rows <= 0 || cols <= 0 {
		return Grid{}, fmt.Errorf("invalid grid dimensions %dx%d", rows, cols)
	}
	if size.Width <= 0 || size.Height <= 0 {
		return Grid{}, fmt.Errorf("invalid grid size %.0fx%.0f", size.Width, size.Height)
	}
	return Grid{rows: rows, cols: cols, size: size}, nil
}

func (g Grid) Rows() int  { return g.rows }
func (g Grid) Cols() int  { return g.cols }
func (g Grid) Size() Size { return g.size }

func (g Grid) CellSize() Size {
	return Size{
		Width:  g.size.Width / float32(g.cols),
		Height: g.size.Height / float32(g.rows),
	}
}

// Midpoint returns the centre of the cell at p in surface coordinates.
func (g Grid) Midpoint(p maps.Position) Point {
	cell := g.CellSize()
	return Point{
		X: float32(p.Col)*cell.Width + cell.Width/2,
		Y: float32(p.Row)*cell.Height + cell.Height/2,
	}
}
