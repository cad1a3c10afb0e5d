// Package market holds the per-cell payoff rules for each supported bet type.
package market

import (
	"payoff-grid/internal/model"

	"github.com/shopspring/decimal"
)

// Cell is one final score.
type Cell struct {
	HomeGoals int
	AwayGoals int
}

// Rule maps a final score to the payoff of a one-unit stake.
type Rule interface {
	Name() string
	Payoff(c Cell) float64
}

// Settle is the tri-state comparator shared by every line-based market:
// a positive margin wins (+1), zero pushes (0), a negative margin loses (-1).
func Settle(margin decimal.Decimal) float64 {
	return float64(margin.Sign())
}

// settleLine applies Settle to a whole or half line directly and, for a quarter
// line, averages the settlements of its two legs.
func settleLine(line model.Line, margin func(model.Line) decimal.Decimal) float64 {
	if line.Tier() != model.TierQuarter {
		return Settle(margin(line))
	}
	lower, upper := line.Split()
	return Settle(margin(lower))*0.5 + Settle(margin(upper))*0.5
}
