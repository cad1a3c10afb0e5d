package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"payoff-grid/internal/betgrid"
	"payoff-grid/internal/config"
	"payoff-grid/internal/data"
	"payoff-grid/internal/logging"
	"payoff-grid/internal/payoff"
	"payoff-grid/internal/render"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return 2
	}

	switch args[0] {
	case "grid":
		return cmdGrid(args[1:], stdout, stderr)
	case "render":
		return cmdRender(args[1:], stdout, stderr)
	case "markets":
		return cmdMarkets(args[1:], stdout, stderr)
	default:
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage:")
	fmt.Fprintln(w, "  cli grid --bet-type asian-handicap --side home --handicap -0.25 [--grid_size 10] [--output text|json] [--csv out.csv]")
	fmt.Fprintln(w, "  cli grid --bet-type over-under --side over --goals 2.5")
	fmt.Fprintln(w, "  cli grid --bet-type win-draw-win --side draw")
	fmt.Fprintln(w, "  cli render --in grid.json [--output text|json]")
	fmt.Fprintln(w, "  cli markets [--output text|json]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "notes:")
	fmt.Fprintln(w, "  - rows are home goals, columns are away goals, cells are payoffs per unit stake")
	fmt.Fprintln(w, "  - quarter lines (e.g. 0.25, 1.75) settle as two half stakes")
}

// env is what every subcommand needs before it does real work.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	mode   render.Mode
	opts   render.Options
}

func setup(cfgPath, output string, noColor bool, stderr io.Writer) (*env, bool) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return nil, false
	}
	logger, err := logging.New(cfg.Log.Level, true)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return nil, false
	}
	mode := cfg.Grid.OutputMode()
	if output != "" {
		mode = render.ParseMode(output)
	}
	return &env{
		cfg:    cfg,
		logger: logger,
		mode:   mode,
		opts:   render.Options{Color: cfg.Grid.Color && !noColor},
	}, true
}

// fail reports err in the selected mode: JSON documents go to stdout, text to stderr.
func (e *env) fail(err error, stdout, stderr io.Writer) int {
	w := stderr
	if e.mode == render.ModeJSON {
		w = stdout
	}
	_ = render.Error(w, e.mode, err)
	return 1
}

func cmdGrid(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("grid", flag.ContinueOnError)
	fs.SetOutput(stderr)
	betType := fs.String("bet-type", "", "Bet type: win-draw-win, asian-handicap or over-under")
	side := fs.String("side", "", "Side backed (home/away/draw, over/under)")
	handicap := fs.String("handicap", "", "Asian handicap line (e.g. -0.25)")
	goals := fs.String("goals", "", "Over/under goal line (e.g. 2.5)")
	gridSize := fs.String("grid_size", "", "Goal counts per axis (default from config)")
	output := fs.String("output", "", "Output mode: text or json (default from config)")
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	csvPath := fs.String("csv", "", "Optional path to also write the grid as CSV")
	noColor := fs.Bool("no-color", false, "Disable colored text output")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	e, ok := setup(*cfgPath, *output, *noColor, stderr)
	if !ok {
		return 1
	}
	defer func() { _ = e.logger.Sync() }()

	req, err := betgrid.Parse(betgrid.Params{
		betgrid.ParamBetType:  *betType,
		betgrid.ParamSide:     *side,
		betgrid.ParamHandicap: *handicap,
		betgrid.ParamGoals:    *goals,
		betgrid.ParamGridSize: *gridSize,
	}, e.cfg.Grid.Size)
	if err != nil {
		return e.fail(err, stdout, stderr)
	}
	grid, err := req.Compute()
	if err != nil {
		return e.fail(err, stdout, stderr)
	}
	e.logger.Debug("grid computed", zap.String("key", req.Key))

	if *csvPath != "" {
		if err := os.MkdirAll(filepath.Dir(*csvPath), 0o755); err != nil {
			return e.fail(err, stdout, stderr)
		}
		if err := payoff.WriteGridCSV(*csvPath, grid); err != nil {
			return e.fail(err, stdout, stderr)
		}
		e.logger.Info("wrote csv", zap.String("path", *csvPath), zap.Int("rows", grid.Size()))
	}

	if err := render.Grid(stdout, grid, e.mode, e.opts); err != nil {
		return e.fail(err, stdout, stderr)
	}
	return 0
}

func cmdRender(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(stderr)
	in := fs.String("in", "", "Path to a grid JSON document")
	output := fs.String("output", "", "Output mode: text or json (default from config)")
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	noColor := fs.Bool("no-color", false, "Disable colored text output")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *in == "" {
		fmt.Fprintln(stderr, "--in is required")
		return 2
	}

	e, ok := setup(*cfgPath, *output, *noColor, stderr)
	if !ok {
		return 1
	}
	defer func() { _ = e.logger.Sync() }()

	grid, err := data.LoadGridJSON(*in)
	if err != nil {
		return e.fail(err, stdout, stderr)
	}
	if err := render.Grid(stdout, grid, e.mode, e.opts); err != nil {
		return e.fail(err, stdout, stderr)
	}
	return 0
}

func cmdMarkets(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("markets", flag.ContinueOnError)
	fs.SetOutput(stderr)
	output := fs.String("output", "", "Output mode: text or json (default from config)")
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	e, ok := setup(*cfgPath, *output, true, stderr)
	if !ok {
		return 1
	}
	defer func() { _ = e.logger.Sync() }()

	catalog := betgrid.Catalog(e.cfg.Grid.Size)
	if e.mode == render.ModeJSON {
		enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(map[string]any{"markets": catalog}); err != nil {
			return e.fail(err, stdout, stderr)
		}
		return 0
	}

	for _, m := range catalog {
		fmt.Fprintf(stdout, "%s\n  %s\n", m.BetType, m.Description)
		for _, p := range m.Parameters {
			req := "optional"
			if p.Required {
				req = "required"
			}
			fmt.Fprintf(stdout, "  --%-10s %-6s %-8s %s", p.Name, p.Type, req, p.Description)
			if len(p.Values) > 0 {
				fmt.Fprintf(stdout, " %v", p.Values)
			}
			if p.Default != nil {
				fmt.Fprintf(stdout, " (default %v)", p.Default)
			}
			fmt.Fprintln(stdout)
		}
	}
	return 0
}
