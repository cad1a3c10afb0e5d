// Package render turns payoff grids and errors into text tables or JSON documents.
package render

import (
	"io"

	"payoff-grid/internal/model"
)

// Mode selects human-readable or machine-readable output.
type Mode string

const (
	ModeText Mode = "text"
	ModeJSON Mode = "json"
)

// ParseMode maps "json" or "j" to ModeJSON. Anything else, including "", is text.
func ParseMode(s string) Mode {
	switch s {
	case "json", "j":
		return ModeJSON
	default:
		return ModeText
	}
}

// KnownMode reports whether s is one of the spellings ParseMode understands
// explicitly (empty selects the default).
func KnownMode(s string) bool {
	switch s {
	case "", "text", "t", "json", "j":
		return true
	default:
		return false
	}
}

// Options tunes text output. JSON output ignores it.
type Options struct {
	Color bool
}

// Grid writes grid in the given mode.
func Grid(w io.Writer, grid *model.Grid, mode Mode, opts Options) error {
	if mode == ModeJSON {
		return JSON(w, grid)
	}
	return Text(w, grid, opts)
}
