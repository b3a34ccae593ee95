package compressor

import (
	"testing"

	"github.com/sheetpress/sheetpress-go/pkg/sheetpress/models"
)

func rangeStrings(ranges []models.AddressRange) []string {
	out := make([]string, len(ranges))
	for i, r := range ranges {
		out[i] = r.String()
	}
	return out
}

func equalStrings(a, b []string) bool {
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

func TestTranslateBlockMergesToRectangle(t *testing.T) {
	g := mustGrid(t, [][]string{
		{"100", "100"},
		{"100", "100"},
	})

	entries, err := Translate(models.Unreduced(g), SkipEmpty)
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, expected 1", len(entries))
	}
	if entries[0].Value != "100" {
		t.Errorf("entry value = %q, expected %q", entries[0].Value, "100")
	}
	if !equalStrings(rangeStrings(entries[0].Ranges), []string{"A1:B2"}) {
		t.Errorf("ranges = %v, expected [A1:B2]", rangeStrings(entries[0].Ranges))
	}
}

func TestTranslateColumnRuns(t *testing.T) {
	g := mustGrid(t, [][]string{
		{"Quarter", "Product"},
		{"Q1", "Laptop"},
		{"Q1", "Laptop"},
		{"Q1", "Desktop"},
	})

	entries, err := Translate(models.Unreduced(g), SkipEmpty)
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}

	expected := map[string][]string{
		"Desktop": {"B4"},
		"Laptop":  {"B2:B3"},
		"Product": {"B1"},
		"Q1":      {"A2:A4"},
		"Quarter": {"A1"},
	}
	if len(entries) != len(expected) {
		t.Fatalf("got %d entries, expected %d", len(entries), len(expected))
	}
	for _, ent := range entries {
		want, ok := expected[ent.Value]
		if !ok {
			t.Errorf("unexpected entry %q", ent.Value)
			continue
		}
		if !equalStrings(rangeStrings(ent.Ranges), want) {
			t.Errorf("ranges for %q = %v, expected %v", ent.Value, rangeStrings(ent.Ranges), want)
		}
	}
}

func TestTranslateRunLengthFallback(t *testing.T) {
	// L-shaped occurrence: a rectangle cannot cover it without including
	// the differently-valued corner.
	g := mustGrid(t, [][]string{
		{"X", "X"},
		{"X", ""},
	})

	entries, err := Translate(models.Unreduced(g), SkipEmpty)
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, expected 1", len(entries))
	}
	if !equalStrings(rangeStrings(entries[0].Ranges), []string{"A1:B1", "A2"}) {
		t.Errorf("ranges = %v, expected [A1:B1 A2]", rangeStrings(entries[0].Ranges))
	}
}

func TestTranslateEmptyPolicy(t *testing.T) {
	g := mustGrid(t, [][]string{{"a"}, {""}})

	entries, err := Translate(models.Unreduced(g), SkipEmpty)
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Value != "a" {
		t.Fatalf("SkipEmpty entries = %v, expected only %q", entries, "a")
	}

	entries, err = Translate(models.Unreduced(g), IndexEmpty)
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("IndexEmpty produced %d entries, expected 2", len(entries))
	}
	if entries[0].Value != "" {
		t.Errorf("first entry = %q, expected empty sentinel", entries[0].Value)
	}
	if !equalStrings(rangeStrings(entries[0].Ranges), []string{"A2"}) {
		t.Errorf("empty ranges = %v, expected [A2]", rangeStrings(entries[0].Ranges))
	}
}

// A value seen in the kept cells is indexed over its full source coordinate
// set, so elided homogeneous spans stay addressable through the index.
func TestTranslateCoversElidedSpans(t *testing.T) {
	g := uniformColumn(t, 100, "N/A")
	rg := DetectAnchors(g, DefaultAnchorParams())

	entries, err := Translate(rg, SkipEmpty)
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, expected 1", len(entries))
	}
	if !equalStrings(rangeStrings(entries[0].Ranges), []string{"A1:A100"}) {
		t.Errorf("ranges = %v, expected [A1:A100]", rangeStrings(entries[0].Ranges))
	}
}

// Coverage invariant: without reduction, the union of all ranges is exactly
// the non-empty coordinate set, with no coordinate counted twice.
func TestTranslateCoverage(t *testing.T) {
	g := mustGrid(t, [][]string{
		{"a", "b", "a", ""},
		{"a", "b", "", "c"},
		{"", "b", "a", "a"},
	})

	entries, err := Translate(models.Unreduced(g), SkipEmpty)
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}

	covered := make(map[models.Coord]int)
	for _, ent := range entries {
		for _, r := range ent.Ranges {
			for _, c := range r.Coords() {
				covered[c]++
			}
		}
	}

	nonEmpty := g.NonEmpty()
	if len(covered) != len(nonEmpty) {
		t.Fatalf("covered %d coords, expected %d", len(covered), len(nonEmpty))
	}
	for _, c := range nonEmpty {
		if covered[c] != 1 {
			t.Errorf("coordinate %v covered %d times, expected once", c, covered[c])
		}
	}
}

func TestTranslateEmptyGrid(t *testing.T) {
	entries, err := Translate(models.Unreduced(models.NewGrid(0, 0)), SkipEmpty)
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries, expected none", len(entries))
	}
}
