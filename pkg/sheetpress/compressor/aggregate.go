package compressor

import (
	"sort"

	"github.com/sheetpress/sheetpress-go/pkg/sheetpress/models"
)

// Aggregate partitions the kept cells of the reduced grid into contiguous
// regions of uniform data type, maximal under row-major greedy growth.
// Contiguity is judged in original grid coordinates, so regions never bridge
// elided spans. Under SkipEmpty only non-empty kept cells are covered; under
// IndexEmpty empty kept cells form Other-typed regions, making the partition
// span every kept coordinate. Regions are ordered by their top-left corner.
func Aggregate(rg *models.ReducedGrid, policy EmptyPolicy) ([]models.FormatRegion, error) {
	g := rg.Source
	if g == nil || g.Rows() == 0 || g.Cols() == 0 {
		return nil, nil
	}

	byType := make(map[models.DataType][]models.Coord)
	var considered []models.Coord
	for _, c := range rg.KeptCoords() {
		cell := g.Cell(c.Row, c.Col)
		if cell.Value == "" && policy != IndexEmpty {
			continue
		}
		t := Classify(cell)
		byType[t] = append(byType[t], c)
		considered = append(considered, c)
	}
	if len(considered) == 0 {
		return nil, nil
	}

	var regions []models.FormatRegion
	var allRanges []models.AddressRange
	for _, t := range sortedTypes(byType) {
		for _, r := range carveRanges(byType[t]) {
			regions = append(regions, models.FormatRegion{
				Type:   t,
				Range:  r,
				Format: g.Cell(r.R1, r.C1).Format,
			})
			allRanges = append(allRanges, r)
		}
	}
	if err := verifyCover(considered, allRanges); err != nil {
		return nil, err
	}

	sort.Slice(regions, func(i, j int) bool {
		a, b := regions[i].Range, regions[j].Range
		if a.R1 != b.R1 {
			return a.R1 < b.R1
		}
		return a.C1 < b.C1
	})
	return regions, nil
}

func sortedTypes(byType map[models.DataType][]models.Coord) []models.DataType {
	types := make([]models.DataType, 0, len(byType))
	for t := range byType {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
