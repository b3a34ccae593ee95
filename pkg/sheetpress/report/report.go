// Package report computes compression-ratio metrics for encodings.
package report

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/sheetpress/sheetpress-go/pkg/sheetpress/models"
)

// SheetReport summarizes one compression run.
type SheetReport struct {
	// Sheet is the originating sheet name, if any.
	Sheet string `json:"sheet,omitempty"`
	// GridCells is the full extent of the source grid.
	GridCells int `json:"grid_cells"`
	// NonEmpty is the number of non-empty source cells.
	NonEmpty int `json:"non_empty_cells"`
	// KeptCells is the extent of the anchor-reduced grid.
	KeptCells int `json:"kept_cells"`
	// LayoutCells is the number of cells surviving into the layout.
	LayoutCells int `json:"layout_cells"`
	// IndexEntries is the number of distinct indexed values.
	IndexEntries int `json:"index_entries"`
	// Regions is the number of format regions.
	Regions int `json:"regions"`
	// LayoutRatio is full extent over kept extent.
	LayoutRatio float64 `json:"layout_ratio"`
	// IndexRatio is non-empty cells over index entries.
	IndexRatio float64 `json:"index_ratio"`
	// Ratio is non-empty cells over total encoded descriptors.
	Ratio float64 `json:"ratio"`
}

// ForEncoding derives the report for an encoding produced from grid.
func ForEncoding(g *models.Grid, e *models.Encoding) SheetReport {
	r := SheetReport{
		Sheet:        e.Sheet,
		GridCells:    g.Rows() * g.Cols(),
		NonEmpty:     g.CountNonEmpty(),
		IndexEntries: len(e.Index),
		Regions:      len(e.Regions),
	}

	keptRows, keptCols := e.Rows, e.Cols
	for _, s := range e.OmittedRows {
		keptRows -= s.Len()
	}
	for _, s := range e.OmittedCols {
		keptCols -= s.Len()
	}
	r.KeptCells = keptRows * keptCols

	for _, row := range e.Layout {
		r.LayoutCells += len(row.Cells)
	}

	r.LayoutRatio = ratio(r.GridCells, r.KeptCells)
	r.IndexRatio = ratio(r.NonEmpty, r.IndexEntries)
	r.Ratio = ratio(r.NonEmpty, r.IndexEntries+r.Regions)
	return r
}

// ratio guards against empty encodings, reporting 1 (no compression).
func ratio(original, compressed int) float64 {
	if original <= 0 || compressed <= 0 {
		return 1
	}
	return float64(original) / float64(compressed)
}

// Summary aggregates overall ratios across sheet reports.
type Summary struct {
	Sheets      int     `json:"sheets"`
	MeanRatio   float64 `json:"mean_ratio"`
	MedianRatio float64 `json:"median_ratio"`
	MinRatio    float64 `json:"min_ratio"`
	MaxRatio    float64 `json:"max_ratio"`
}

// Summarize aggregates the overall ratio across reports.
func Summarize(reports []SheetReport) (Summary, error) {
	if len(reports) == 0 {
		return Summary{}, fmt.Errorf("no reports to summarize")
	}
	ratios := make([]float64, len(reports))
	for i, r := range reports {
		ratios[i] = r.Ratio
	}

	s := Summary{Sheets: len(reports)}
	var err error
	if s.MeanRatio, err = stats.Mean(ratios); err != nil {
		return Summary{}, err
	}
	if s.MedianRatio, err = stats.Median(ratios); err != nil {
		return Summary{}, err
	}
	if s.MinRatio, err = stats.Min(ratios); err != nil {
		return Summary{}, err
	}
	if s.MaxRatio, err = stats.Max(ratios); err != nil {
		return Summary{}, err
	}
	return s, nil
}
