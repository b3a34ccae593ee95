package compressor

import (
	"sort"

	"github.com/sheetpress/sheetpress-go/pkg/sheetpress/models"
)

// EmptyPolicy selects how empty cells are handled by the translator and the
// aggregator. One policy applies uniformly to a compression run.
type EmptyPolicy string

const (
	// SkipEmpty omits empty cells from the index and the region partition.
	SkipEmpty EmptyPolicy = "skip"
	// IndexEmpty indexes empty cells under an explicit "" sentinel and
	// aggregates them as Other-typed regions.
	IndexEmpty EmptyPolicy = "index"
)

// Translate builds the inverted value index for the reduced grid. A value is
// indexed when it occurs in at least one kept cell; its ranges then cover
// every source occurrence, so homogeneous spans elided by anchor pruning stay
// addressable through the index. Values seen only inside elided regions are
// dropped. Entries are sorted by value; ranges for one value reconstruct its
// source coordinate set exactly and never overlap.
func Translate(rg *models.ReducedGrid, policy EmptyPolicy) ([]models.IndexEntry, error) {
	g := rg.Source
	if g == nil || g.Rows() == 0 || g.Cols() == 0 {
		return nil, nil
	}

	indexed := make(map[string]bool)
	for _, c := range rg.KeptCoords() {
		v := g.Value(c.Row, c.Col)
		if v == "" && policy != IndexEmpty {
			continue
		}
		indexed[v] = true
	}
	if len(indexed) == 0 {
		return nil, nil
	}

	occurrences := make(map[string][]models.Coord)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			v := g.Value(r, c)
			if !indexed[v] {
				continue
			}
			occurrences[v] = append(occurrences[v], models.Coord{Row: r, Col: c})
		}
	}

	values := make([]string, 0, len(occurrences))
	for v := range occurrences {
		values = append(values, v)
	}
	sort.Strings(values)

	entries := make([]models.IndexEntry, 0, len(values))
	for _, v := range values {
		coords := occurrences[v]
		ranges := carveRanges(coords)
		if err := verifyCover(coords, ranges); err != nil {
			return nil, err
		}
		entries = append(entries, models.IndexEntry{Value: v, Ranges: ranges})
	}
	return entries, nil
}
