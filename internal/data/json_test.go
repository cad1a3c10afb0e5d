package data

import (
	"os"
	"path/filepath"
	"testing"

	"payoff-grid/internal/model"
)

func TestDecodeGrid(t *testing.T) {
	raw := []byte(`{"grid_size": 2, "payoff_grid": {"0": {"0": 0, "1": -0.5}, "1": {"0": 1, "1": 0.5}}}`)
	g, err := DecodeGrid(raw)
	if err != nil {
		t.Fatalf("DecodeGrid: %v", err)
	}
	if v, _ := g.Payoff(0, 1); v != -0.5 {
		t.Fatalf("(0,1)=%v", v)
	}
	if v, _ := g.Payoff(1, 1); v != 0.5 {
		t.Fatalf("(1,1)=%v", v)
	}
}

func TestDecodeGridErrors(t *testing.T) {
	cases := []string{
		`not json`,
		`{"grid_size": 2, "payoff_grid": {"0": {"0": 1, "1": 1}}}`,
		`{"grid_size": 1, "payoff_grid": {"0": {"5": 1}}}`,
	}
	for _, raw := range cases {
		if _, err := DecodeGrid([]byte(raw)); err == nil {
			t.Fatalf("expected error for %s", raw)
		}
	}
}

func TestLoadGridJSON(t *testing.T) {
	g := model.NewGrid(1)
	_ = g.SetPayoff(0, 0, 1)
	path := filepath.Join(t.TempDir(), "grid.json")
	if err := os.WriteFile(path, []byte(`{"grid_size":1,"payoff_grid":{"0":{"0":1}}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	back, err := LoadGridJSON(path)
	if err != nil {
		t.Fatalf("LoadGridJSON: %v", err)
	}
	if !back.Equal(g) {
		t.Fatalf("loaded grid differs")
	}
	if _, err := LoadGridJSON(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
