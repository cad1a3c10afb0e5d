package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func runCLI(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestUsage(t *testing.T) {
	if code, _, stderr := runCLI(); code != 2 || !strings.Contains(stderr, "usage:") {
		t.Fatalf("code=%d stderr=%q", code, stderr)
	}
	if code, _, _ := runCLI("simulate"); code != 2 {
		t.Fatalf("unknown subcommand code=%d", code)
	}
}

func TestGridText(t *testing.T) {
	code, stdout, stderr := runCLI("grid", "--bet-type", "win-draw-win", "--side", "home", "--grid_size", "2", "--no-color")
	if code != 0 {
		t.Fatalf("code=%d stderr=%q", code, stderr)
	}
	want := "      AWAY      \n" +
		"     ||  0 |  1 |\n" +
		"-----------------\n" +
		"O  0 || -1 | -1 |\n" +
		"M  1 ||  1 | -1 |\n"
	if stdout != want {
		t.Fatalf("stdout:\n%s\nwant:\n%s", stdout, want)
	}
}

func TestGridJSONAndCSV(t *testing.T) {
	csvPath := filepath.Join(t.TempDir(), "out", "grid.csv")
	code, stdout, stderr := runCLI("grid", "--bet-type", "asian-handicap", "--side", "a", "--handicap", "0.5",
		"--grid_size", "2", "--output", "json", "--csv", csvPath)
	if code != 0 {
		t.Fatalf("code=%d stderr=%q", code, stderr)
	}
	var doc struct {
		GridSize   int                           `json:"grid_size"`
		PayoffGrid map[string]map[string]float64 `json:"payoff_grid"`
	}
	if err := json.Unmarshal([]byte(stdout), &doc); err != nil {
		t.Fatalf("unmarshal %q: %v", stdout, err)
	}
	if doc.GridSize != 2 || doc.PayoffGrid["1"]["0"] != -1 || doc.PayoffGrid["1"]["1"] != 1 {
		t.Fatalf("doc=%+v", doc)
	}
	raw, err := os.ReadFile(csvPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(raw), "home_goals,away_0,away_1\n") {
		t.Fatalf("csv=%q", raw)
	}
}

func TestGridErrorModes(t *testing.T) {
	code, stdout, stderr := runCLI("grid", "--bet-type", "win-draw-win", "--side", "x")
	if code != 1 || stdout != "" {
		t.Fatalf("code=%d stdout=%q", code, stdout)
	}
	if !strings.HasPrefix(stderr, "Invalid value 'x' for argument 'side' of win-draw-win bet type.") {
		t.Fatalf("stderr=%q", stderr)
	}

	code, stdout, _ = runCLI("grid", "--output", "json", "--side", "home")
	if code != 1 {
		t.Fatalf("code=%d", code)
	}
	var doc struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal([]byte(stdout), &doc); err != nil {
		t.Fatalf("unmarshal %q: %v", stdout, err)
	}
	if !strings.HasPrefix(doc.Error, "Couldn't find required argument 'bet_type'.") {
		t.Fatalf("error=%q", doc.Error)
	}
}

func TestRender(t *testing.T) {
	in := filepath.Join(t.TempDir(), "grid.json")
	if err := os.WriteFile(in, []byte(`{"grid_size":2,"payoff_grid":{"0":{"0":-1,"1":-1},"1":{"0":1,"1":-1}}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	code, stdout, stderr := runCLI("render", "--in", in, "--no-color")
	if code != 0 {
		t.Fatalf("code=%d stderr=%q", code, stderr)
	}
	if !strings.Contains(stdout, "M  1 ||  1 | -1 |") {
		t.Fatalf("stdout=%q", stdout)
	}

	if code, _, _ := runCLI("render"); code != 2 {
		t.Fatalf("missing --in code=%d", code)
	}
}

func TestMarkets(t *testing.T) {
	code, stdout, _ := runCLI("markets")
	if code != 0 || !strings.Contains(stdout, "asian-handicap") || !strings.Contains(stdout, "--handicap") {
		t.Fatalf("code=%d stdout=%q", code, stdout)
	}
	code, stdout, _ = runCLI("markets", "--output", "json")
	if code != 0 {
		t.Fatalf("code=%d", code)
	}
	var resp struct {
		Markets []struct {
			BetType string `json:"bet_type"`
		} `json:"markets"`
	}
	if err := json.Unmarshal([]byte(stdout), &resp); err != nil || len(resp.Markets) != 3 {
		t.Fatalf("resp=%+v err=%v", resp, err)
	}
}
