package market

import "payoff-grid/internal/model"

// WinDrawWin is the three-way full time result market.
type WinDrawWin struct {
	Side model.ResultSide
}

func (r WinDrawWin) Name() string { return "win-draw-win" }

func (r WinDrawWin) Payoff(c Cell) float64 {
	var winner model.ResultSide
	switch {
	case c.HomeGoals > c.AwayGoals:
		winner = model.ResultHome
	case c.AwayGoals > c.HomeGoals:
		winner = model.ResultAway
	default:
		winner = model.ResultDraw
	}
	if r.Side == winner {
		return 1
	}
	return -1
}
