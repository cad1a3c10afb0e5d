package market

import (
	"payoff-grid/internal/model"

	"github.com/shopspring/decimal"
)

// OverUnder is the total goals market. Goal lines are not range checked:
// a negative line is accepted and simply makes Over always win.
type OverUnder struct {
	Side  model.TotalSide
	Goals model.Line
}

func (r OverUnder) Name() string { return "over-under" }

func (r OverUnder) Payoff(c Cell) float64 {
	total := decimal.NewFromInt(int64(c.HomeGoals + c.AwayGoals))
	return settleLine(r.Goals, func(line model.Line) decimal.Decimal {
		if r.Side == model.TotalUnder {
			return line.Decimal().Sub(total)
		}
		return total.Sub(line.Decimal())
	})
}
