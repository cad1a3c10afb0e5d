package model

// Outcome is a human-friendly settlement label for a payoff value.
// Keep these values stable; they are used for CSV and colored output.
type Outcome string

const (
	OutcomeWin      Outcome = "WIN"
	OutcomeHalfWin  Outcome = "HALF_WIN"
	OutcomePush     Outcome = "PUSH"
	OutcomeHalfLoss Outcome = "HALF_LOSS"
	OutcomeLoss     Outcome = "LOSS"
)

func OutcomeFromPayoff(payoff float64) Outcome {
	switch {
	case payoff >= 1:
		return OutcomeWin
	case payoff > 0:
		return OutcomeHalfWin
	case payoff <= -1:
		return OutcomeLoss
	case payoff < 0:
		return OutcomeHalfLoss
	default:
		return OutcomePush
	}
}

// Positive reports whether the outcome returns more than the stake.
func (o Outcome) Positive() bool { return o == OutcomeWin || o == OutcomeHalfWin }

// Negative reports whether the outcome loses some or all of the stake.
func (o Outcome) Negative() bool { return o == OutcomeLoss || o == OutcomeHalfLoss }
