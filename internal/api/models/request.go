package models

import (
	"encoding/json"

	"payoff-grid/internal/betgrid"
)

// GridRequest is accepted as query parameters (GET) or a JSON body (POST).
// Numeric fields accept JSON numbers or numeric strings.
type GridRequest struct {
	BetType  string      `json:"bet_type" form:"bet_type"`
	Side     string      `json:"side" form:"side"`
	Handicap json.Number `json:"handicap,omitempty" form:"handicap"`
	Goals    json.Number `json:"goals,omitempty" form:"goals"`
	GridSize json.Number `json:"grid_size,omitempty" form:"grid_size"`
	Output   string      `json:"output,omitempty" form:"output"` // json (default) | text
}

// Params converts the request into the dispatcher's named parameters.
func (r GridRequest) Params() betgrid.Params {
	return betgrid.Params{
		betgrid.ParamBetType:  r.BetType,
		betgrid.ParamSide:     r.Side,
		betgrid.ParamHandicap: string(r.Handicap),
		betgrid.ParamGoals:    string(r.Goals),
		betgrid.ParamGridSize: string(r.GridSize),
	}
}
