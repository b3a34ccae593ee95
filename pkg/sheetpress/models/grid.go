package models

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidGridBounds indicates a coordinate outside the declared grid extent.
var ErrInvalidGridBounds = errors.New("coordinate outside grid bounds")

// Grid is a sparse 2D mapping from coordinates to cells with a fixed extent.
// Unaddressed coordinates are implicitly empty. Cells are immutable once set.
type Grid struct {
	rows  int
	cols  int
	cells map[Coord]Cell
}

// NewGrid creates an empty grid with the given extent.
func NewGrid(rows, cols int) *Grid {
	return &Grid{rows: rows, cols: cols, cells: make(map[Coord]Cell)}
}

// Rows returns the declared row count.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the declared column count.
func (g *Grid) Cols() int { return g.cols }

// Set stores a cell at (row, col).
func (g *Grid) Set(row, col int, cell Cell) error {
	if row < 0 || col < 0 || row >= g.rows || col >= g.cols {
		return fmt.Errorf("%w: (%d,%d) not in %dx%d", ErrInvalidGridBounds, row, col, g.rows, g.cols)
	}
	g.cells[Coord{Row: row, Col: col}] = cell
	return nil
}

// Cell returns the cell at (row, col). Unaddressed coordinates yield a zero Cell.
func (g *Grid) Cell(row, col int) Cell {
	return g.cells[Coord{Row: row, Col: col}]
}

// Value returns the raw value at (row, col), "" when empty.
func (g *Grid) Value(row, col int) string {
	return g.Cell(row, col).Value
}

// IsEmpty reports whether the cell at (row, col) holds no value.
func (g *Grid) IsEmpty(row, col int) bool {
	return g.Value(row, col) == ""
}

// NonEmpty returns the coordinates of all non-empty cells in row-major order.
func (g *Grid) NonEmpty() []Coord {
	var coords []Coord
	for c, cell := range g.cells {
		if cell.Value != "" {
			coords = append(coords, c)
		}
	}
	sort.Slice(coords, func(i, j int) bool { return coords[i].Before(coords[j]) })
	return coords
}

// CountNonEmpty returns the number of non-empty cells.
func (g *Grid) CountNonEmpty() int {
	n := 0
	for _, cell := range g.cells {
		if cell.Value != "" {
			n++
		}
	}
	return n
}

// Validate checks the declared extent and every addressed coordinate.
func (g *Grid) Validate() error {
	if g.rows < 0 || g.cols < 0 {
		return fmt.Errorf("%w: negative extent %dx%d", ErrInvalidGridBounds, g.rows, g.cols)
	}
	for c := range g.cells {
		if c.Row < 0 || c.Col < 0 || c.Row >= g.rows || c.Col >= g.cols {
			return fmt.Errorf("%w: (%d,%d) not in %dx%d", ErrInvalidGridBounds, c.Row, c.Col, g.rows, g.cols)
		}
	}
	return nil
}
