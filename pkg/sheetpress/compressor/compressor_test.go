package compressor

import (
	"testing"

	"github.com/sheetpress/sheetpress-go/pkg/sheetpress/models"
)

// mustGrid builds a grid from row-major string values; "" leaves a cell empty.
func mustGrid(t *testing.T, rows [][]string) *models.Grid {
	t.Helper()
	cols := 0
	for _, r := range rows {
		if len(r) > cols {
			cols = len(r)
		}
	}
	g := models.NewGrid(len(rows), cols)
	for ri, r := range rows {
		for ci, v := range r {
			if v == "" {
				continue
			}
			if err := g.Set(ri, ci, models.Cell{Value: v}); err != nil {
				t.Fatalf("Set(%d,%d) failed: %v", ri, ci, err)
			}
		}
	}
	return g
}

// uniformColumn builds an n x 1 grid filled with the same value.
func uniformColumn(t *testing.T, n int, value string) *models.Grid {
	t.Helper()
	g := models.NewGrid(n, 1)
	for r := 0; r < n; r++ {
		if err := g.Set(r, 0, models.Cell{Value: value}); err != nil {
			t.Fatalf("Set(%d,0) failed: %v", r, err)
		}
	}
	return g
}

// compact materializes a reduced grid as a dense grid of its kept cells.
func compact(t *testing.T, rg *models.ReducedGrid) *models.Grid {
	t.Helper()
	g := models.NewGrid(len(rg.KeptRows), len(rg.KeptCols))
	for ri, r := range rg.KeptRows {
		for ci, c := range rg.KeptCols {
			cell := rg.Cell(r, c)
			if cell.Value == "" {
				continue
			}
			if err := g.Set(ri, ci, cell); err != nil {
				t.Fatalf("Set(%d,%d) failed: %v", ri, ci, err)
			}
		}
	}
	return g
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalSpans(a, b []models.Span) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
