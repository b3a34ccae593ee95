package models

// IndexEntry maps one distinct cell value to the address ranges holding it.
// The union of the ranges reconstructs the value's coordinate set exactly.
type IndexEntry struct {
	// Value is the raw cell value ("" is the empty-cell sentinel).
	Value string `json:"value"`
	// Ranges lists the covering address ranges in row-major seed order.
	Ranges []AddressRange `json:"ranges"`
}

// FormatRegion is a maximal contiguous span of cells sharing one data type.
type FormatRegion struct {
	// Type is the data type every cell in the region classifies to.
	Type DataType `json:"type"`
	// Range is the covered span.
	Range AddressRange `json:"range"`
	// Format is the representative format string, taken from the first
	// (row-major) member cell.
	Format string `json:"fmt,omitempty"`
}

// LayoutCell is one kept non-empty cell within a layout row.
type LayoutCell struct {
	// Col is the zero-based column index.
	Col int `json:"c"`
	// Value is the raw cell value.
	Value string `json:"v"`
}

// LayoutRow is one kept row of the anchor-reduced layout. A kept row whose
// values all fall in elided columns carries no cells but still appears, so
// the pruned shape survives serialization.
type LayoutRow struct {
	// Row is the zero-based row index.
	Row int `json:"r"`
	// Cells lists the kept non-empty cells in column order.
	Cells []LayoutCell `json:"cells,omitempty"`
}

// Encoding is the final compressed artifact combining the anchor-pruned
// layout, the inverted value index and the aggregated format regions.
type Encoding struct {
	// Sheet is the originating sheet name, if any.
	Sheet string `json:"sheet,omitempty"`
	// Rows is the original grid row count.
	Rows int `json:"rows"`
	// Cols is the original grid column count.
	Cols int `json:"cols"`
	// AnchorRows lists the detected structural anchor rows.
	AnchorRows []int `json:"anchor_rows,omitempty"`
	// AnchorCols lists the detected structural anchor columns.
	AnchorCols []int `json:"anchor_cols,omitempty"`
	// OmittedRows lists the elided homogeneous row spans.
	OmittedRows []Span `json:"omitted_rows,omitempty"`
	// OmittedCols lists the elided homogeneous column spans.
	OmittedCols []Span `json:"omitted_cols,omitempty"`
	// Layout is the anchor-reduced cell layout.
	Layout []LayoutRow `json:"layout,omitempty"`
	// Index is the inverted value index.
	Index []IndexEntry `json:"index,omitempty"`
	// Regions is the ordered format region list.
	Regions []FormatRegion `json:"regions,omitempty"`
}

// Empty reports whether the encoding carries no content, as produced from a
// grid with zero non-empty cells.
func (e *Encoding) Empty() bool {
	return len(e.Layout) == 0 && len(e.Index) == 0 && len(e.Regions) == 0
}
