// Package models defines data structures for spreadsheet compression.
package models

// Cell holds a raw scalar value and its display format.
type Cell struct {
	// Value is the raw cell content as a string ("" for empty).
	Value string `json:"v"`
	// Format is the number format string (e.g. "yyyy-mm-dd"), empty if absent.
	Format string `json:"fmt,omitempty"`
}

// Coord identifies a cell position. Row and Col are zero-indexed.
type Coord struct {
	// Row is the zero-based row index.
	Row int `json:"r"`
	// Col is the zero-based column index.
	Col int `json:"c"`
}

// Before reports whether c precedes o in row-major order.
func (c Coord) Before(o Coord) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}
