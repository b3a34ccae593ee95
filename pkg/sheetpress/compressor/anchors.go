package compressor

import (
	"sort"

	"github.com/sheetpress/sheetpress-go/pkg/sheetpress/models"
)

// AnchorParams configures structural anchor detection.
type AnchorParams struct {
	// K is the number of leading/trailing rows (columns) kept from each
	// homogeneous non-anchor run; the run interior is elided.
	K int
	// BoundaryDistance is the maximum distance from an empty/non-empty
	// transition at which a row (column) still counts as an anchor.
	BoundaryDistance int
	// SimilarityThreshold is the minimum fraction of positions whose
	// signatures must match for two adjacent rows (columns) to count as
	// similar. A row dissimilar to its predecessor is an anchor.
	SimilarityThreshold float64
}

// DefaultAnchorParams returns the default detection parameters.
func DefaultAnchorParams() AnchorParams {
	return AnchorParams{K: 1, BoundaryDistance: 0, SimilarityThreshold: 0.8}
}

// DetectAnchors scans the grid for structural boundary rows and columns and
// returns the reduced view keeping anchors plus K rows/columns at each edge
// of every elided run. Rows and columns are processed independently; the
// kept cell set is their intersection. A grid with zero non-empty cells
// reduces to nothing.
func DetectAnchors(g *models.Grid, p AnchorParams) *models.ReducedGrid {
	rg := &models.ReducedGrid{Source: g}
	if g.Rows() == 0 || g.Cols() == 0 || g.CountNonEmpty() == 0 {
		return rg
	}

	rowAnchors := anchorLines(g, p, true)
	colAnchors := anchorLines(g, p, false)
	rg.AnchorRows = sortedKeys(rowAnchors)
	rg.AnchorCols = sortedKeys(colAnchors)
	rg.KeptRows, rg.OmittedRows = keepLines(g.Rows(), rowAnchors, p.K)
	rg.KeptCols, rg.OmittedCols = keepLines(g.Cols(), colAnchors, p.K)
	return rg
}

// anchorLines finds the anchor rows (rowWise) or columns of the grid. A line
// is an anchor when it holds at least one non-empty cell and either sits
// within BoundaryDistance of an empty/non-empty transition or its signature
// differs from the immediately preceding line.
func anchorLines(g *models.Grid, p AnchorParams, rowWise bool) map[int]bool {
	n, m := g.Rows(), g.Cols()
	if !rowWise {
		n, m = m, n
	}

	sigs := make([][]string, n)
	nonEmpty := make([]bool, n)
	for i := 0; i < n; i++ {
		sigs[i] = make([]string, m)
		for j := 0; j < m; j++ {
			var cell models.Cell
			if rowWise {
				cell = g.Cell(i, j)
			} else {
				cell = g.Cell(j, i)
			}
			sigs[i][j] = cellSignature(cell)
			if cell.Value != "" {
				nonEmpty[i] = true
			}
		}
	}

	anchors := make(map[int]bool)
	for i := 0; i < n; i++ {
		if !nonEmpty[i] {
			continue
		}
		if nearTransition(nonEmpty, i, p.BoundaryDistance) {
			anchors[i] = true
			continue
		}
		if i > 0 && similarity(sigs[i-1], sigs[i]) < p.SimilarityThreshold {
			anchors[i] = true
		}
	}
	return anchors
}

// cellSignature is the per-position token compared between adjacent lines.
// Typed cells compare by data type and format, so data rows holding
// different numbers still look alike; text cells compare by their value,
// so header and label transitions register as structural changes.
func cellSignature(c models.Cell) string {
	if c.Value == "" {
		return ""
	}
	t := Classify(c)
	if t == models.TypeOther {
		return "other|" + c.Value
	}
	return string(t) + "|" + c.Format
}

// nearTransition reports whether line i lies within distance d of a boundary
// between an empty run and a non-empty run.
func nearTransition(nonEmpty []bool, i, d int) bool {
	lo := i - d - 1
	if lo < 0 {
		lo = 0
	}
	hi := i + d
	if hi > len(nonEmpty)-2 {
		hi = len(nonEmpty) - 2
	}
	for j := lo; j <= hi; j++ {
		if nonEmpty[j] != nonEmpty[j+1] {
			return true
		}
	}
	return false
}

// similarity is the fraction of positions where the two signatures agree.
func similarity(a, b []string) float64 {
	if len(a) == 0 {
		return 1
	}
	matches := 0
	for i := range a {
		if a[i] == b[i] {
			matches++
		}
	}
	return float64(matches) / float64(len(a))
}

// keepLines resolves the kept line set: every anchor, plus the first and
// last k lines of each maximal non-anchor run. Run interiors longer than
// that are recorded as omitted spans.
func keepLines(n int, anchors map[int]bool, k int) ([]int, []models.Span) {
	var kept []int
	var omitted []models.Span

	i := 0
	for i < n {
		if anchors[i] {
			kept = append(kept, i)
			i++
			continue
		}
		// Maximal run of non-anchor lines starting at i.
		end := i
		for end+1 < n && !anchors[end+1] {
			end++
		}
		runLen := end - i + 1
		if runLen <= 2*k {
			for j := i; j <= end; j++ {
				kept = append(kept, j)
			}
		} else {
			for j := i; j < i+k; j++ {
				kept = append(kept, j)
			}
			omitted = append(omitted, models.Span{Start: i + k, End: end - k})
			for j := end - k + 1; j <= end; j++ {
				kept = append(kept, j)
			}
		}
		i = end + 1
	}
	return kept, omitted
}

func sortedKeys(set map[int]bool) []int {
	if len(set) == 0 {
		return nil
	}
	keys := make([]int, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
