/*
Package maze solves text-encoded rectangular mazes.

A maze is a grid of single byte cells: ' ' is open floor, 'X' the start, 'O' the exit
and '#' a wall. Any other byte is an invalid cell and fails the solve as soon as it is
examined.

Grid holds the cells and classifies them, Adjacent resolves the legal one-step moves
from a cell, and ShortestPath runs a layer by layer breadth-first search that returns
one minimum-length path. Render draws a path back onto the grid with '+'.

Positions are always (row, column).
*/
package maze

import (
	"bytes"
	"fmt"
)

// Grid is an immutable rectangular maze.
type Grid struct {
	width  int      // Number of columns
	height int      // Number of rows
	cells  [][]byte // Raw cell content indexed by [row][col]
}

// NewGrid builds a grid from raw rows. All rows must have the same length.
func NewGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyInput
	}

	width := len(rows[0])
	cells := make([][]byte, len(rows))
	for row, line := range rows {
		if len(line) != width {
			return nil, ErrRaggedGrid
		}
		cells[row] = []byte(line)
	}

	return &Grid{
		width:  width,
		height: len(rows),
		cells:  cells,
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Rows returns a copy of the raw rows.
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	for row := range g.cells {
		rows[row] = string(g.cells[row])
	}
	return rows
}

// InBounds reports whether pos lies inside the grid.
func (g *Grid) InBounds(pos CellPosition) bool {
	return pos.Row >= 0 && pos.Row < g.height && pos.Col >= 0 && pos.Col < g.width
}

// Classify returns the classification of the cell at pos.
func (g *Grid) Classify(pos CellPosition) (Classification, error) {
	if !g.InBounds(pos) {
		return Invalid, &CellError{Pos: pos, Err: ErrOutOfBounds}
	}

	symbol := g.cells[pos.Row][pos.Col]
	class := classify(symbol)
	if class == Invalid {
		return Invalid, &CellError{Pos: pos, Symbol: symbol, Err: ErrInvalidCell}
	}
	return class, nil
}

// Locate scans the grid in row-major order and returns the first cell with the
// given classification.
func (g *Grid) Locate(class Classification) (CellPosition, error) {
	symbol, ok := symbolOf(class)
	if ok {
		for row := range g.cells {
			if col := bytes.IndexByte(g.cells[row], symbol); col >= 0 {
				return CellPosition{Row: row, Col: col}, nil
			}
		}
	}
	return CellPosition{}, fmt.Errorf("%w: %s", ErrMarkerNotFound, class)
}

// Count returns how many cells carry the given classification.
func (g *Grid) Count(class Classification) int {
	count := 0
	for row := range g.cells {
		for _, symbol := range g.cells[row] {
			if classify(symbol) == class {
				count++
			}
		}
	}
	return count
}
