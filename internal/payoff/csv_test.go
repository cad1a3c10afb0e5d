package payoff

import (
	"os"
	"path/filepath"
	"testing"

	"payoff-grid/internal/model"
)

func TestWriteGridCSV(t *testing.T) {
	g, err := WinDrawWin(model.ResultHome, 2)
	if err != nil {
		t.Fatal(err)
	}
	_ = g.SetPayoff(0, 0, 0.5)

	path := filepath.Join(t.TempDir(), "grid.csv")
	if err := WriteGridCSV(path, g); err != nil {
		t.Fatalf("WriteGridCSV: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "home_goals,away_0,away_1\n0,0.5,-1\n1,1,-1\n"
	if string(raw) != want {
		t.Fatalf("csv=%q want %q", raw, want)
	}
}
