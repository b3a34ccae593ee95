package models

import (
	"errors"
	"testing"
)

func TestGridSetBounds(t *testing.T) {
	g := NewGrid(2, 3)

	if err := g.Set(1, 2, Cell{Value: "x"}); err != nil {
		t.Fatalf("Set(1,2) failed: %v", err)
	}
	if got := g.Value(1, 2); got != "x" {
		t.Errorf("Value(1,2) = %q, expected %q", got, "x")
	}

	tests := []struct {
		row, col int
	}{
		{-1, 0},
		{0, -1},
		{2, 0},
		{0, 3},
	}
	for _, tt := range tests {
		err := g.Set(tt.row, tt.col, Cell{Value: "y"})
		if !errors.Is(err, ErrInvalidGridBounds) {
			t.Errorf("Set(%d,%d) = %v, expected ErrInvalidGridBounds", tt.row, tt.col, err)
		}
	}
}

func TestGridEmptyCells(t *testing.T) {
	g := NewGrid(2, 2)
	if err := g.Set(0, 1, Cell{Value: "a"}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if !g.IsEmpty(0, 0) {
		t.Error("expected (0,0) to be empty")
	}
	if g.IsEmpty(0, 1) {
		t.Error("expected (0,1) to be non-empty")
	}
	if got := g.CountNonEmpty(); got != 1 {
		t.Errorf("CountNonEmpty = %d, expected 1", got)
	}
}

func TestGridNonEmptyOrder(t *testing.T) {
	g := NewGrid(3, 3)
	for _, c := range []Coord{{2, 0}, {0, 2}, {1, 1}, {0, 0}} {
		if err := g.Set(c.Row, c.Col, Cell{Value: "v"}); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
	}

	got := g.NonEmpty()
	expected := []Coord{{0, 0}, {0, 2}, {1, 1}, {2, 0}}
	if len(got) != len(expected) {
		t.Fatalf("NonEmpty returned %d coords, expected %d", len(got), len(expected))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("NonEmpty[%d] = %v, expected %v", i, got[i], expected[i])
		}
	}
}

func TestGridValidate(t *testing.T) {
	if err := NewGrid(3, 3).Validate(); err != nil {
		t.Errorf("Validate on valid grid = %v, expected nil", err)
	}
	if err := NewGrid(-1, 3).Validate(); !errors.Is(err, ErrInvalidGridBounds) {
		t.Errorf("Validate on negative extent = %v, expected ErrInvalidGridBounds", err)
	}
}
