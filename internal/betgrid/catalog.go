package betgrid

import "payoff-grid/internal/model"

// ParamInfo describes one parameter of a bet type.
type ParamInfo struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"` // "string", "float", "int"
	Description string      `json:"description"`
	Required    bool        `json:"required"`
	Values      []string    `json:"values,omitempty"`
	Default     interface{} `json:"default,omitempty"`
}

// MarketInfo describes a supported bet type.
type MarketInfo struct {
	BetType     BetType     `json:"bet_type"`
	Description string      `json:"description"`
	Parameters  []ParamInfo `json:"parameters"`
}

func gridSizeParam(def int) ParamInfo {
	return ParamInfo{
		Name:        ParamGridSize,
		Type:        "int",
		Description: "Number of goal counts per axis, starting from 0",
		Default:     def,
	}
}

// Catalog lists every bet type with its parameters. def is the grid size used
// when grid_size is omitted.
func Catalog(def int) []MarketInfo {
	return []MarketInfo{
		{
			BetType:     WinDrawWin,
			Description: "Full time result. Exactly one of home, away or draw wins.",
			Parameters: []ParamInfo{
				{
					Name:        ParamSide,
					Type:        "string",
					Description: "Side backed",
					Required:    true,
					Values:      model.ResultSideCodes,
				},
				gridSizeParam(def),
			},
		},
		{
			BetType:     AsianHandicap,
			Description: "Handicap added to the backed team's goal difference. Whole lines can push, quarter lines settle as two half stakes.",
			Parameters: []ParamInfo{
				{
					Name:        ParamSide,
					Type:        "string",
					Description: "Team backed",
					Required:    true,
					Values:      model.HandicapSideCodes,
				},
				{
					Name:        ParamHandicap,
					Type:        "float",
					Description: "Handicap line, a multiple of 0.25 (e.g. -0.25, 1, 1.5)",
					Required:    true,
				},
				gridSizeParam(def),
			},
		},
		{
			BetType:     OverUnder,
			Description: "Total goals against a line. Whole lines can push, quarter lines settle as two half stakes.",
			Parameters: []ParamInfo{
				{
					Name:        ParamSide,
					Type:        "string",
					Description: "Over or under the line",
					Required:    true,
					Values:      model.TotalSideCodes,
				},
				{
					Name:        ParamGoals,
					Type:        "float",
					Description: "Goal line, a multiple of 0.25 (e.g. 1, 1.5, 2.25)",
					Required:    true,
				},
				gridSizeParam(def),
			},
		},
	}
}
