package model

import (
	"errors"
	"testing"
)

func TestNewGridIsZeroFilled(t *testing.T) {
	g := NewGrid(3)
	if g.Size() != 3 {
		t.Fatalf("size=%d want 3", g.Size())
	}
	for home := 0; home < 3; home++ {
		for away := 0; away < 3; away++ {
			v, ok := g.Payoff(home, away)
			if !ok || v != 0 {
				t.Fatalf("cell (%d,%d)=%v ok=%v want 0 true", home, away, v, ok)
			}
		}
	}
}

func TestNewGridNegativeSizeIsEmpty(t *testing.T) {
	g := NewGrid(-2)
	if g.Size() != 0 {
		t.Fatalf("size=%d want 0", g.Size())
	}
	if len(g.Rows()) != 0 {
		t.Fatalf("rows=%d want 0", len(g.Rows()))
	}
}

func TestSetPayoffOutOfBounds(t *testing.T) {
	g := NewGrid(2)
	for _, c := range [][2]int{{2, 0}, {0, 2}, {-1, 0}, {0, -1}} {
		err := g.SetPayoff(c[0], c[1], 1)
		if !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("SetPayoff(%d,%d) err=%v want ErrOutOfBounds", c[0], c[1], err)
		}
	}
	if _, ok := g.Payoff(2, 2); ok {
		t.Fatalf("Payoff outside grid should report ok=false")
	}
}

func TestRowsAndDocumentAgree(t *testing.T) {
	g := NewGrid(2)
	_ = g.SetPayoff(0, 1, -0.5)
	_ = g.SetPayoff(1, 0, 1)

	rows := g.Rows()
	doc := g.Document()
	if doc.GridSize != 2 || len(doc.PayoffGrid) != 2 {
		t.Fatalf("doc=%+v", doc)
	}
	for home := range rows {
		for away := range rows[home] {
			if rows[home][away] != doc.PayoffGrid[home][away] {
				t.Fatalf("(%d,%d) rows=%v doc=%v", home, away, rows[home][away], doc.PayoffGrid[home][away])
			}
		}
	}

	// views are copies
	rows[0][1] = 99
	if v, _ := g.Payoff(0, 1); v != -0.5 {
		t.Fatalf("mutating Rows() changed the grid: %v", v)
	}
}

func TestFromDocument(t *testing.T) {
	g := NewGrid(3)
	_ = g.SetPayoff(2, 1, 0.5)
	back, err := FromDocument(g.Document())
	if err != nil {
		t.Fatalf("FromDocument: %v", err)
	}
	if !back.Equal(g) {
		t.Fatalf("round trip differs")
	}

	bad := []Document{
		{GridSize: -1},
		{GridSize: 2, PayoffGrid: map[int]map[int]float64{0: {0: 1, 1: 1}}},
		{GridSize: 1, PayoffGrid: map[int]map[int]float64{0: {0: 1, 1: 1}}},
		{GridSize: 1, PayoffGrid: map[int]map[int]float64{3: {0: 1}}},
	}
	for i, doc := range bad {
		if _, err := FromDocument(doc); err == nil {
			t.Fatalf("case %d: expected error", i)
		}
	}
}

func TestEqual(t *testing.T) {
	a, b := NewGrid(2), NewGrid(2)
	if !a.Equal(b) {
		t.Fatalf("empty grids should be equal")
	}
	_ = b.SetPayoff(1, 1, -1)
	if a.Equal(b) {
		t.Fatalf("grids differ at (1,1)")
	}
	if a.Equal(NewGrid(3)) {
		t.Fatalf("sizes differ")
	}
	var nilGrid *Grid
	if a.Equal(nilGrid) || !nilGrid.Equal(nil) {
		t.Fatalf("nil handling")
	}
}
