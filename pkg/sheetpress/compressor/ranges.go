package compressor

import (
	"fmt"

	"github.com/sheetpress/sheetpress-go/pkg/sheetpress/models"
)

// carveRanges covers a row-major sorted coordinate set with disjoint
// rectangles. Seeds are taken in row-major order (lowest row, then lowest
// column); each rectangle extends right along the seed row, then down while
// the full column span keeps matching. The greedy order makes the output
// deterministic; single-row leftovers come out as run-length spans.
func carveRanges(coords []models.Coord) []models.AddressRange {
	if len(coords) == 0 {
		return nil
	}
	in := make(map[models.Coord]bool, len(coords))
	for _, c := range coords {
		in[c] = true
	}
	used := make(map[models.Coord]bool, len(coords))

	var out []models.AddressRange
	for _, seed := range coords {
		if used[seed] {
			continue
		}
		width := 1
		for free(in, used, seed.Row, seed.Col+width) {
			width++
		}
		height := 1
		for rowFree(in, used, seed.Row+height, seed.Col, width) {
			height++
		}
		r := models.AddressRange{
			R1: seed.Row, C1: seed.Col,
			R2: seed.Row + height - 1, C2: seed.Col + width - 1,
		}
		for _, c := range r.Coords() {
			used[c] = true
		}
		out = append(out, r)
	}
	return out
}

func free(in, used map[models.Coord]bool, row, col int) bool {
	c := models.Coord{Row: row, Col: col}
	return in[c] && !used[c]
}

func rowFree(in, used map[models.Coord]bool, row, col, width int) bool {
	for i := 0; i < width; i++ {
		if !free(in, used, row, col+i) {
			return false
		}
	}
	return true
}

// verifyCover checks the no-loss/no-duplication invariant: the ranges cover
// each input coordinate exactly once and nothing else.
func verifyCover(coords []models.Coord, ranges []models.AddressRange) error {
	seen := make(map[models.Coord]int, len(coords))
	total := 0
	for _, r := range ranges {
		for _, c := range r.Coords() {
			seen[c]++
			total++
		}
	}
	if total != len(coords) {
		return fmt.Errorf("range cover mismatch: %d cells covered, %d expected", total, len(coords))
	}
	for _, c := range coords {
		if seen[c] != 1 {
			return fmt.Errorf("coordinate (%d,%d) covered %d times", c.Row, c.Col, seen[c])
		}
	}
	return nil
}
