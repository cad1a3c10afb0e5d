package model

import "testing"

func TestOutcomeFromPayoff(t *testing.T) {
	cases := map[float64]Outcome{
		1:    OutcomeWin,
		0.5:  OutcomeHalfWin,
		0:    OutcomePush,
		-0.5: OutcomeHalfLoss,
		-1:   OutcomeLoss,
	}
	for p, want := range cases {
		if got := OutcomeFromPayoff(p); got != want {
			t.Fatalf("OutcomeFromPayoff(%v)=%s want %s", p, got, want)
		}
	}
	if !OutcomeHalfWin.Positive() || OutcomePush.Positive() || !OutcomeLoss.Negative() || OutcomePush.Negative() {
		t.Fatalf("Positive/Negative mismatch")
	}
}
