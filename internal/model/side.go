package model

import "fmt"

// ResultSide selects an outcome of a three-way (1X2) market.
type ResultSide uint8

const (
	ResultHome ResultSide = iota + 1
	ResultAway
	ResultDraw
)

// ResultSideCodes lists the accepted codes, full word first.
var ResultSideCodes = []string{"home", "h", "away", "a", "draw", "d"}

// ParseResultSide parses a case-sensitive side code.
func ParseResultSide(code string) (ResultSide, error) {
	switch code {
	case "home", "h":
		return ResultHome, nil
	case "away", "a":
		return ResultAway, nil
	case "draw", "d":
		return ResultDraw, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidSideCode, code)
	}
}

func (s ResultSide) String() string {
	switch s {
	case ResultHome:
		return "Home"
	case ResultAway:
		return "Away"
	case ResultDraw:
		return "Draw"
	default:
		return "unknown"
	}
}

// HandicapSide selects a team in a two-way handicap market.
type HandicapSide uint8

const (
	HandicapHome HandicapSide = iota + 1
	HandicapAway
)

var HandicapSideCodes = []string{"home", "h", "away", "a"}

func ParseHandicapSide(code string) (HandicapSide, error) {
	switch code {
	case "home", "h":
		return HandicapHome, nil
	case "away", "a":
		return HandicapAway, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidSideCode, code)
	}
}

func (s HandicapSide) String() string {
	switch s {
	case HandicapHome:
		return "Home"
	case HandicapAway:
		return "Away"
	default:
		return "unknown"
	}
}

// TotalSide selects over or under in a total-goals market.
type TotalSide uint8

const (
	TotalOver TotalSide = iota + 1
	TotalUnder
)

var TotalSideCodes = []string{"over", "o", "under", "u"}

func ParseTotalSide(code string) (TotalSide, error) {
	switch code {
	case "over", "o":
		return TotalOver, nil
	case "under", "u":
		return TotalUnder, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidSideCode, code)
	}
}

func (s TotalSide) String() string {
	switch s {
	case TotalOver:
		return "Over"
	case TotalUnder:
		return "Under"
	default:
		return "unknown"
	}
}
