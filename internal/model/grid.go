package model

import (
	"fmt"
)

// Grid is a square payoff matrix indexed by [homeGoals][awayGoals].
//
// A grid is created empty (all zeros), filled cell by cell by a single
// calculation and then treated as read-only: the views below return copies.
type Grid struct {
	size  int
	cells [][]float64
}

// Document is the structured (keyed) view of a grid. Map keys serialize as
// strings in JSON: {"grid_size": 2, "payoff_grid": {"0": {"0": 1, "1": -1}, ...}}.
type Document struct {
	GridSize   int                     `json:"grid_size"`
	PayoffGrid map[int]map[int]float64 `json:"payoff_grid"`
}

// NewGrid allocates a size x size grid of zeros. Sizes <= 0 give an empty grid.
func NewGrid(size int) *Grid {
	if size < 0 {
		size = 0
	}
	cells := make([][]float64, size)
	for i := range cells {
		cells[i] = make([]float64, size)
	}
	return &Grid{size: size, cells: cells}
}

func (g *Grid) Size() int { return g.size }

func (g *Grid) inBounds(home, away int) bool {
	return home >= 0 && away >= 0 && home < g.size && away < g.size
}

// SetPayoff writes one cell.
func (g *Grid) SetPayoff(home, away int, payoff float64) error {
	if !g.inBounds(home, away) {
		return fmt.Errorf("%w: got (%d, %d), both must be in [0, %d)", ErrOutOfBounds, home, away, g.size)
	}
	g.cells[home][away] = payoff
	return nil
}

// Payoff reads one cell. ok is false outside the grid.
func (g *Grid) Payoff(home, away int) (payoff float64, ok bool) {
	if !g.inBounds(home, away) {
		return 0, false
	}
	return g.cells[home][away], true
}

// Rows is the tabular view: one row per home goal count, one column per away goal count.
func (g *Grid) Rows() [][]float64 {
	out := make([][]float64, g.size)
	for i, row := range g.cells {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

// Document is the structured view used for JSON output and comparisons.
func (g *Grid) Document() Document {
	doc := Document{
		GridSize:   g.size,
		PayoffGrid: make(map[int]map[int]float64, g.size),
	}
	for home := 0; home < g.size; home++ {
		row := make(map[int]float64, g.size)
		for away := 0; away < g.size; away++ {
			row[away] = g.cells[home][away]
		}
		doc.PayoffGrid[home] = row
	}
	return doc
}

// FromDocument rebuilds a grid from its structured view. Every cell in
// [0, grid_size)^2 must be present and no key may fall outside it.
func FromDocument(doc Document) (*Grid, error) {
	if doc.GridSize < 0 {
		return nil, fmt.Errorf("grid_size must be >= 0, got %d", doc.GridSize)
	}
	if len(doc.PayoffGrid) != doc.GridSize {
		return nil, fmt.Errorf("payoff_grid has %d rows, want %d", len(doc.PayoffGrid), doc.GridSize)
	}
	g := NewGrid(doc.GridSize)
	for home, row := range doc.PayoffGrid {
		if len(row) != doc.GridSize {
			return nil, fmt.Errorf("payoff_grid row %d has %d cells, want %d", home, len(row), doc.GridSize)
		}
		for away, payoff := range row {
			if err := g.SetPayoff(home, away, payoff); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// Equal reports whether both grids have the same size and cell values.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.size != other.size {
		return false
	}
	for home := range g.cells {
		for away := range g.cells[home] {
			if g.cells[home][away] != other.cells[home][away] {
				return false
			}
		}
	}
	return true
}
