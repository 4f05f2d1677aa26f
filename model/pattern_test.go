package model

import (
	"testing"

	"github.com/pkg/errors"
)

func TestHeartBitmap(t *testing.T) {
	heart := Heart()
	if heart.Rows() != 6 || heart.Cols() != 7 {
		t.Fatalf("heart bitmap is %dx%d, expected 6x7", heart.Rows(), heart.Cols())
	}

	count := 0
	for _, row := range heart.Cells {
		for _, alive := range row {
			if alive {
				count++
			}
		}
	}
	if count != 27 {
		t.Fatalf("heart bitmap has %d live cells, expected 27", count)
	}

	// The tip is the single live cell of the last row, the notch splits
	// the first row into two lobes.
	if !heart.Cells[5][3] {
		t.Fatal("heart tip (5,3) is dead")
	}
	if heart.Cells[0][0] || heart.Cells[0][3] || heart.Cells[0][6] {
		t.Fatal("heart notch and shoulders must be dead")
	}
}

func TestPlacePatternCentersOnAnchor(t *testing.T) {
	g := mustGrid(t, 9, 9)
	if err := g.PlacePattern(Blinker(), Cell{Row: 4, Col: 4}); err != nil {
		t.Fatalf("PlacePattern failed: %v", err)
	}

	for _, cell := range []Cell{{4, 3}, {4, 4}, {4, 5}} {
		alive, err := g.Get(cell.Row, cell.Col)
		if err != nil {
			t.Fatalf("Get(%d,%d) failed: %v", cell.Row, cell.Col, err)
		}
		if !alive {
			t.Fatalf("cell (%d,%d) dead, expected alive", cell.Row, cell.Col)
		}
	}
	if got := g.CountLivingCells(); got != 3 {
		t.Fatalf("blinker placement produced %d live cells, expected 3", got)
	}
}

func TestPlacePatternWritesTheWholeRectangle(t *testing.T) {
	g := mustGrid(t, 9, 9)
	// Pre-set a cell the bitmap marks dead; placement must overwrite it.
	g.Set(3, 3, true)

	if err := g.PlacePattern(Glider(), Cell{Row: 4, Col: 4}); err != nil {
		t.Fatalf("PlacePattern failed: %v", err)
	}
	if g.Alive(3, 3) {
		t.Fatal("placement left a stale live cell inside the bitmap rectangle")
	}
	if got := g.CountLivingCells(); got != 5 {
		t.Fatalf("glider placement produced %d live cells, expected 5", got)
	}
}

func TestPlacePatternOutOfBounds(t *testing.T) {
	g := mustGrid(t, 5, 5)

	err := g.PlacePattern(Heart(), Cell{Row: 2, Col: 2})
	if !errors.Is(err, ErrBounds) {
		t.Fatalf("expected ErrBounds, got %v", err)
	}
	if got := g.CountLivingCells(); got != 0 {
		t.Fatalf("failed placement wrote %d cells", got)
	}

	// Anchors that push the bitmap over any edge fail the same way.
	big := mustGrid(t, 20, 20)
	for _, center := range []Cell{{0, 10}, {10, 0}, {19, 10}, {10, 19}} {
		if err = big.PlacePattern(Heart(), center); !errors.Is(err, ErrBounds) {
			t.Fatalf("anchor (%d,%d) expected ErrBounds, got %v", center.Row, center.Col, err)
		}
	}
}

func TestNewPatternGridCentersTheHeart(t *testing.T) {
	g, err := NewPatternGrid(40, 40, Heart())
	if err != nil {
		t.Fatalf("NewPatternGrid failed: %v", err)
	}
	if got := g.CountLivingCells(); got != 27 {
		t.Fatalf("heart seed has %d live cells, expected 27", got)
	}

	// Center (20,20) puts the bitmap's top-left corner at (17,17).
	checks := []struct {
		cell Cell
		want bool
	}{
		{Cell{17, 17}, false},
		{Cell{17, 18}, true},
		{Cell{18, 17}, true},
		{Cell{22, 20}, true}, // tip
		{Cell{22, 19}, false},
		{Cell{16, 17}, false}, // above the bitmap
	}
	for _, tc := range checks {
		alive, err := g.Get(tc.cell.Row, tc.cell.Col)
		if err != nil {
			t.Fatalf("Get(%d,%d) failed: %v", tc.cell.Row, tc.cell.Col, err)
		}
		if alive != tc.want {
			t.Fatalf("cell (%d,%d) alive=%v, expected %v", tc.cell.Row, tc.cell.Col, alive, tc.want)
		}
	}
}

func TestNewPatternGridTooSmall(t *testing.T) {
	if _, err := NewPatternGrid(5, 5, Heart()); !errors.Is(err, ErrBounds) {
		t.Fatalf("expected ErrBounds, got %v", err)
	}
	if _, err := NewPatternGrid(0, 5, Heart()); !errors.Is(err, ErrDimension) {
		t.Fatalf("expected ErrDimension, got %v", err)
	}
}

func TestQuadrantCenters(t *testing.T) {
	got := QuadrantCenters(50, 50)
	want := []Cell{{12, 12}, {12, 37}, {37, 12}, {37, 37}}
	if len(got) != 4 {
		t.Fatalf("QuadrantCenters returned %d anchors, expected 4", len(got))
	}
	for i, cell := range want {
		if got[i] != cell {
			t.Fatalf("anchor %d = (%d,%d), expected (%d,%d)",
				i, got[i].Row, got[i].Col, cell.Row, cell.Col)
		}
	}
}

func TestFourHeartsFitTheQuadrants(t *testing.T) {
	g := mustGrid(t, 50, 50)
	for _, center := range QuadrantCenters(50, 50) {
		if err := g.PlacePattern(Heart(), center); err != nil {
			t.Fatalf("placing heart at (%d,%d) failed: %v", center.Row, center.Col, err)
		}
	}
	if got := g.CountLivingCells(); got != 4*27 {
		t.Fatalf("four hearts produced %d live cells, expected %d", got, 4*27)
	}
}
