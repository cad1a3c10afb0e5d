package market

import (
	"payoff-grid/internal/model"

	"github.com/shopspring/decimal"
)

// AsianHandicap is the two-way handicap market. Handicap is applied to the
// backed side's goal difference.
type AsianHandicap struct {
	Side     model.HandicapSide
	Handicap model.Line
}

func (r AsianHandicap) Name() string { return "asian-handicap" }

func (r AsianHandicap) Payoff(c Cell) float64 {
	diff := decimal.NewFromInt(int64(c.HomeGoals - c.AwayGoals))
	if r.Side == model.HandicapAway {
		diff = diff.Neg()
	}
	return settleLine(r.Handicap, func(h model.Line) decimal.Decimal {
		return diff.Add(h.Decimal())
	})
}
