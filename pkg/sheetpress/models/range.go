package models

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// AddressRange is a contiguous rectangular span of coordinates, inclusive on
// both ends. A single-row range doubles as a run-length span.
type AddressRange struct {
	// R1 is the first row of the range.
	R1 int `json:"r1"`
	// C1 is the first column of the range.
	C1 int `json:"c1"`
	// R2 is the last row of the range (inclusive).
	R2 int `json:"r2"`
	// C2 is the last column of the range (inclusive).
	C2 int `json:"c2"`
}

// RangeAt returns the 1x1 range covering a single coordinate.
func RangeAt(c Coord) AddressRange {
	return AddressRange{R1: c.Row, C1: c.Col, R2: c.Row, C2: c.Col}
}

// Contains reports whether the coordinate lies inside the range.
func (r AddressRange) Contains(c Coord) bool {
	return c.Row >= r.R1 && c.Row <= r.R2 && c.Col >= r.C1 && c.Col <= r.C2
}

// Cells returns the number of coordinates covered.
func (r AddressRange) Cells() int {
	return (r.R2 - r.R1 + 1) * (r.C2 - r.C1 + 1)
}

// Coords returns every covered coordinate in row-major order.
func (r AddressRange) Coords() []Coord {
	coords := make([]Coord, 0, r.Cells())
	for row := r.R1; row <= r.R2; row++ {
		for col := r.C1; col <= r.C2; col++ {
			coords = append(coords, Coord{Row: row, Col: col})
		}
	}
	return coords
}

// String renders the range in A1 notation ("B2" for a single cell,
// "B2:B40" otherwise).
func (r AddressRange) String() string {
	start, _ := excelize.CoordinatesToCellName(r.C1+1, r.R1+1)
	if r.R1 == r.R2 && r.C1 == r.C2 {
		return start
	}
	end, _ := excelize.CoordinatesToCellName(r.C2+1, r.R2+1)
	return start + ":" + end
}

// ParseRange parses the A1 notation produced by String.
func ParseRange(s string) (AddressRange, error) {
	parts := strings.Split(s, ":")
	if len(parts) > 2 {
		return AddressRange{}, fmt.Errorf("invalid range %q", s)
	}
	col, row, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return AddressRange{}, fmt.Errorf("invalid range %q: %w", s, err)
	}
	r := AddressRange{R1: row - 1, C1: col - 1, R2: row - 1, C2: col - 1}
	if len(parts) == 2 {
		col, row, err = excelize.CellNameToCoordinates(parts[1])
		if err != nil {
			return AddressRange{}, fmt.Errorf("invalid range %q: %w", s, err)
		}
		r.R2, r.C2 = row-1, col-1
	}
	if r.R2 < r.R1 || r.C2 < r.C1 {
		return AddressRange{}, fmt.Errorf("invalid range %q: end precedes start", s)
	}
	return r, nil
}
