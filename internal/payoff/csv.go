package payoff

import (
	"encoding/csv"
	"os"
	"strconv"

	"payoff-grid/internal/model"
)

// WriteGridCSV writes the tabular view: a header of away goal counts, then one
// row per home goal count.
func WriteGridCSV(path string, grid *model.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := make([]string, 0, grid.Size()+1)
	header = append(header, "home_goals")
	for away := 0; away < grid.Size(); away++ {
		header = append(header, "away_"+strconv.Itoa(away))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for home, cells := range grid.Rows() {
		row := make([]string, 0, len(cells)+1)
		row = append(row, strconv.Itoa(home))
		for _, payoff := range cells {
			row = append(row, fmtFloat(payoff))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
