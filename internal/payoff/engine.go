// Package payoff populates payoff grids from market rules.
package payoff

import (
	"fmt"

	"payoff-grid/internal/market"
	"payoff-grid/internal/model"
)

type Engine struct{}

func New() *Engine { return &Engine{} }

// Run builds a size x size grid and assigns every cell from rule.
// On failure the partially filled grid is discarded.
func (e *Engine) Run(rule market.Rule, size int) (*model.Grid, error) {
	if rule == nil {
		return nil, fmt.Errorf("rule is nil")
	}
	if size < 0 {
		return nil, fmt.Errorf("%w: grid size must be >= 0, got %d", model.ErrInvalidNumericParameter, size)
	}

	grid := model.NewGrid(size)
	for home := 0; home < size; home++ {
		for away := 0; away < size; away++ {
			payoff := rule.Payoff(market.Cell{HomeGoals: home, AwayGoals: away})
			if err := grid.SetPayoff(home, away, payoff); err != nil {
				return nil, fmt.Errorf("%s cell (%d, %d): %w", rule.Name(), home, away, err)
			}
		}
	}
	return grid, nil
}

// WinDrawWin returns the payoff grid for backing side in the 1X2 market.
func WinDrawWin(side model.ResultSide, size int) (*model.Grid, error) {
	return New().Run(market.WinDrawWin{Side: side}, size)
}

// AsianHandicap returns the payoff grid for backing side at handicap.
func AsianHandicap(side model.HandicapSide, handicap model.Line, size int) (*model.Grid, error) {
	return New().Run(market.AsianHandicap{Side: side, Handicap: handicap}, size)
}

// OverUnder returns the payoff grid for backing side of the goals line.
func OverUnder(side model.TotalSide, goals model.Line, size int) (*model.Grid, error) {
	return New().Run(market.OverUnder{Side: side, Goals: goals}, size)
}
