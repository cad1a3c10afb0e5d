// Package betgrid resolves a bet type and its named string parameters into a
// payoff rule, computes the grid and hands it to a renderer.
package betgrid

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"payoff-grid/internal/market"
	"payoff-grid/internal/model"
	"payoff-grid/internal/payoff"
	"payoff-grid/internal/render"
)

// BetType is the tag that selects a calculator.
type BetType string

const (
	WinDrawWin    BetType = "win-draw-win"
	AsianHandicap BetType = "asian-handicap"
	OverUnder     BetType = "over-under"
)

var BetTypes = []BetType{WinDrawWin, AsianHandicap, OverUnder}

// Parameter names, shared by CLI flags, query strings and request bodies.
const (
	ParamBetType  = "bet_type"
	ParamSide     = "side"
	ParamHandicap = "handicap"
	ParamGoals    = "goals"
	ParamGridSize = "grid_size"
)

// DefaultGridSize covers scores 0..9 for each team.
const DefaultGridSize = 10

// Params are raw named parameters. Empty values count as missing; anything
// else is taken verbatim, so side codes must match exactly.
type Params map[string]string

func (p Params) lookup(name string) (string, bool) {
	v, ok := p[name]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Request is a fully validated calculation.
type Request struct {
	BetType  BetType
	Rule     market.Rule
	GridSize int
	// Key identifies equivalent requests (same market, side, line and size).
	Key string
}

// Parse validates every parameter before anything is computed. defaultSize is
// used when grid_size is absent.
func Parse(p Params, defaultSize int) (*Request, error) {
	size, err := GridSize(p, defaultSize)
	if err != nil {
		return nil, err
	}
	tag, ok := p.lookup(ParamBetType)
	if !ok {
		return nil, missing(ParamBetType, "Must be one of 'win-draw-win', 'asian-handicap' or 'over-under'.", "")
	}
	betType, err := ParseBetType(tag)
	if err != nil {
		return nil, err
	}

	var (
		rule market.Rule
		key  string
	)
	switch betType {
	case WinDrawWin:
		side, err := parseSide(p, betType, model.ParseResultSide)
		if err != nil {
			return nil, err
		}
		rule = market.WinDrawWin{Side: side}
		key = side.String()
	case AsianHandicap:
		side, err := parseSide(p, betType, model.ParseHandicapSide)
		if err != nil {
			return nil, err
		}
		handicap, err := parseLine(p, ParamHandicap, betType)
		if err != nil {
			return nil, err
		}
		rule = market.AsianHandicap{Side: side, Handicap: handicap}
		key = side.String() + ":" + handicap.String()
	case OverUnder:
		side, err := parseSide(p, betType, model.ParseTotalSide)
		if err != nil {
			return nil, err
		}
		goals, err := parseLine(p, ParamGoals, betType)
		if err != nil {
			return nil, err
		}
		rule = market.OverUnder{Side: side, Goals: goals}
		key = side.String() + ":" + goals.String()
	}

	return &Request{
		BetType:  betType,
		Rule:     rule,
		GridSize: size,
		Key:      fmt.Sprintf("%s:%s:%d", betType, key, size),
	}, nil
}

// CheckMaxSize rejects requests whose grid is larger than maxSize per axis.
func (r *Request) CheckMaxSize(maxSize int) error {
	if r.GridSize <= maxSize {
		return nil
	}
	raw := strconv.Itoa(r.GridSize)
	return &ParamError{
		Field: ParamGridSize,
		Value: raw,
		Msg:   fmt.Sprintf("Invalid value '%s' for argument 'grid_size'. It must be at most %d.", raw, maxSize),
		Err:   model.ErrInvalidNumericParameter,
	}
}

// Compute populates the grid for a parsed request.
func (r *Request) Compute() (*model.Grid, error) {
	return payoff.New().Run(r.Rule, r.GridSize)
}

// Run parses p, computes the grid and renders it to w. Nothing is written on
// error; render the returned error with render.Error in the same mode.
func Run(w io.Writer, p Params, defaultSize int, mode render.Mode, opts render.Options) error {
	req, err := Parse(p, defaultSize)
	if err != nil {
		return err
	}
	grid, err := req.Compute()
	if err != nil {
		return err
	}
	return render.Grid(w, grid, mode, opts)
}

// ParseBetType resolves a bet type tag.
func ParseBetType(tag string) (BetType, error) {
	for _, bt := range BetTypes {
		if string(bt) == tag {
			return bt, nil
		}
	}
	return "", &ParamError{
		Field: ParamBetType,
		Value: tag,
		Msg:   fmt.Sprintf("Unsupported bet type '%s'", tag),
		Err:   model.ErrUnsupportedBetType,
	}
}

// GridSize reads grid_size, falling back to def when absent.
func GridSize(p Params, def int) (int, error) {
	raw, ok := p.lookup(ParamGridSize)
	if !ok {
		return def, nil
	}
	size, err := strconv.Atoi(raw)
	if err != nil || size < 0 {
		return 0, &ParamError{
			Field: ParamGridSize,
			Value: raw,
			Msg:   fmt.Sprintf("Invalid value '%s' for argument 'grid_size'. It must be a non-negative integer.", raw),
			Err:   model.ErrInvalidNumericParameter,
		}
	}
	return size, nil
}

func parseSide[S any](p Params, betType BetType, parse func(string) (S, error)) (S, error) {
	var zero S
	hint := sideHint(betType)
	code, ok := p.lookup(ParamSide)
	if !ok {
		return zero, missing(ParamSide, hint, betType)
	}
	side, err := parse(code)
	if err != nil {
		return zero, &ParamError{
			Field: ParamSide,
			Value: code,
			Msg:   fmt.Sprintf("Invalid value '%s' for argument 'side' of %s bet type. %s", code, betType, hint),
			Err:   model.ErrInvalidSideCode,
		}
	}
	return side, nil
}

func parseLine(p Params, name string, betType BetType) (model.Line, error) {
	hint := lineHint(name)
	raw, ok := p.lookup(name)
	if !ok {
		return model.Line{}, missing(name, hint, betType)
	}
	line, err := model.ParseLine(raw)
	if errors.Is(err, model.ErrLineOutOfRange) {
		return model.Line{}, &ParamError{
			Field: name,
			Value: raw,
			Msg:   fmt.Sprintf("Invalid value '%s' for argument '%s' of %s bet type. It has too many digits or decimal places. %s", raw, name, betType, hint),
			Err:   model.ErrLineOutOfRange,
		}
	}
	if err != nil {
		return model.Line{}, &ParamError{
			Field: name,
			Value: raw,
			Msg:   fmt.Sprintf("Invalid value '%s' for argument '%s' of %s bet type. It must be a number. %s", raw, name, betType, hint),
			Err:   model.ErrInvalidNumericParameter,
		}
	}
	return line, nil
}

func sideHint(betType BetType) string {
	switch betType {
	case WinDrawWin:
		return "Should be one of: 'home', 'away', 'draw' (or 'h', 'a', 'd')."
	case AsianHandicap:
		return "Should be one of: 'home' or 'away' ('h' or 'a')."
	default:
		return "Should be one of: 'over' or 'under' ('o' or 'u')."
	}
}

func lineHint(name string) string {
	if name == ParamHandicap {
		return "For example, -0.25, 1, 1.5."
	}
	return "For example, 1, 1.5, 2."
}
