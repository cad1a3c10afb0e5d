package main

import (
	"flag"
	"fmt"
	"os"

	"payoff-grid/internal/market"
	"payoff-grid/internal/model"
	"payoff-grid/internal/payoff"
	"payoff-grid/internal/render"
)

// Demo:
// - Build one rule per market
// - Populate a small grid for each
// - Print the grids and a few settled cells to show how quarter lines split
func main() {
	size := flag.Int("n", 5, "Goal counts per axis")
	color := flag.Bool("color", true, "Colored output")
	flag.Parse()

	rules := []market.Rule{
		market.WinDrawWin{Side: model.ResultDraw},
		market.AsianHandicap{Side: model.HandicapHome, Handicap: model.NewLine(-0.25)},
		market.AsianHandicap{Side: model.HandicapAway, Handicap: model.NewLine(1)},
		market.OverUnder{Side: model.TotalOver, Goals: model.NewLine(2.25)},
		market.OverUnder{Side: model.TotalUnder, Goals: model.NewLine(1.5)},
	}

	engine := payoff.New()
	for _, r := range rules {
		grid, err := engine.Run(r, *size)
		if err != nil {
			panic(err)
		}
		fmt.Printf("\n== %s %s ==\n", r.Name(), describe(r))
		if err := render.Text(os.Stdout, grid, render.Options{Color: *color}); err != nil {
			panic(err)
		}
	}

	fmt.Println("\nSample settlements:")
	samples := []struct {
		rule market.Rule
		cell market.Cell
	}{
		{market.AsianHandicap{Side: model.HandicapHome, Handicap: model.NewLine(-0.25)}, market.Cell{HomeGoals: 1, AwayGoals: 1}},
		{market.AsianHandicap{Side: model.HandicapHome, Handicap: model.NewLine(0.25)}, market.Cell{HomeGoals: 0, AwayGoals: 0}},
		{market.OverUnder{Side: model.TotalOver, Goals: model.NewLine(2.25)}, market.Cell{HomeGoals: 1, AwayGoals: 1}},
		{market.OverUnder{Side: model.TotalUnder, Goals: model.NewLine(2)}, market.Cell{HomeGoals: 2, AwayGoals: 0}},
	}
	for _, s := range samples {
		p := s.rule.Payoff(s.cell)
		fmt.Printf("  %-16s %-12s at %d-%d => %+5.2f %s\n",
			s.rule.Name(), describe(s.rule), s.cell.HomeGoals, s.cell.AwayGoals, p, model.OutcomeFromPayoff(p))
	}
}

func describe(r market.Rule) string {
	switch x := r.(type) {
	case market.WinDrawWin:
		return x.Side.String()
	case market.AsianHandicap:
		return fmt.Sprintf("%s %s", x.Side, x.Handicap)
	case market.OverUnder:
		return fmt.Sprintf("%s %s", x.Side, x.Goals)
	default:
		return ""
	}
}
