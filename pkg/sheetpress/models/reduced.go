package models

// Span is an inclusive run of row or column indices.
type Span struct {
	// Start is the first index of the run.
	Start int `json:"start"`
	// End is the last index of the run (inclusive).
	End int `json:"end"`
}

// Len returns the number of indices covered by the span.
func (s Span) Len() int { return s.End - s.Start + 1 }

// ReducedGrid is the anchor-pruned view of a source grid. Kept coordinates
// retain their original indices; elided spans are recorded explicitly so the
// pruned shape stays addressable.
type ReducedGrid struct {
	// Source is the grid the reduction was computed from.
	Source *Grid
	// KeptRows lists retained row indices in ascending order.
	KeptRows []int
	// KeptCols lists retained column indices in ascending order.
	KeptCols []int
	// AnchorRows lists the detected structural anchor rows.
	AnchorRows []int
	// AnchorCols lists the detected structural anchor columns.
	AnchorCols []int
	// OmittedRows lists the elided homogeneous row spans.
	OmittedRows []Span
	// OmittedCols lists the elided homogeneous column spans.
	OmittedCols []Span
}

// Cell returns the source cell at an original coordinate.
func (rg *ReducedGrid) Cell(row, col int) Cell {
	if rg.Source == nil {
		return Cell{}
	}
	return rg.Source.Cell(row, col)
}

// KeptCoords returns the kept (row, col) intersection in row-major order.
// Empty kept cells are included.
func (rg *ReducedGrid) KeptCoords() []Coord {
	coords := make([]Coord, 0, len(rg.KeptRows)*len(rg.KeptCols))
	for _, r := range rg.KeptRows {
		for _, c := range rg.KeptCols {
			coords = append(coords, Coord{Row: r, Col: c})
		}
	}
	return coords
}

// Unreduced returns a view of g with every row and column kept and nothing
// elided. It lets the later pipeline stages run without anchor pruning.
func Unreduced(g *Grid) *ReducedGrid {
	rg := &ReducedGrid{Source: g}
	for r := 0; r < g.Rows(); r++ {
		rg.KeptRows = append(rg.KeptRows, r)
	}
	for c := 0; c < g.Cols(); c++ {
		rg.KeptCols = append(rg.KeptCols, c)
	}
	return rg
}
