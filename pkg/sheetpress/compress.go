package sheetpress

import (
	"fmt"

	"github.com/sheetpress/sheetpress-go/pkg/sheetpress/compressor"
	"github.com/sheetpress/sheetpress-go/pkg/sheetpress/models"
)

// Compress runs the three-stage pipeline over the grid: structural anchor
// pruning, inverted-index translation and data-format aggregation. The index
// and the regions are both computed over the anchor-reduced grid. The input
// is validated before any stage runs; any stage error aborts the run and no
// partial encoding is produced. A grid with zero non-empty cells yields an
// empty encoding without error.
func Compress(grid *models.Grid, opts Options) (*models.Encoding, error) {
	if grid == nil {
		return nil, fmt.Errorf("%w: nil grid", models.ErrInvalidGridBounds)
	}
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	reduced := compressor.DetectAnchors(grid, opts.anchorParams())

	index, err := compressor.Translate(reduced, opts.emptyPolicy())
	if err != nil {
		return nil, &StageError{Stage: StageIndex, Err: err}
	}

	regions, err := compressor.Aggregate(reduced, opts.emptyPolicy())
	if err != nil {
		return nil, &StageError{Stage: StageAggregate, Err: err}
	}

	return &models.Encoding{
		Sheet:       opts.Sheet,
		Rows:        grid.Rows(),
		Cols:        grid.Cols(),
		AnchorRows:  reduced.AnchorRows,
		AnchorCols:  reduced.AnchorCols,
		OmittedRows: reduced.OmittedRows,
		OmittedCols: reduced.OmittedCols,
		Layout:      layoutRows(reduced),
		Index:       index,
		Regions:     regions,
	}, nil
}

// layoutRows materializes the kept cells as ordered layout rows. A kept row
// whose values all fall in elided columns still appears, carrying no cells.
func layoutRows(rg *models.ReducedGrid) []models.LayoutRow {
	g := rg.Source
	if g == nil {
		return nil
	}
	var rows []models.LayoutRow
	for _, r := range rg.KeptRows {
		lr := models.LayoutRow{Row: r}
		for _, c := range rg.KeptCols {
			if v := g.Value(r, c); v != "" {
				lr.Cells = append(lr.Cells, models.LayoutCell{Col: c, Value: v})
			}
		}
		rows = append(rows, lr)
	}
	return rows
}
