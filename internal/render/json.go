package render

import (
	"errors"
	"io"

	"payoff-grid/internal/model"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrorDocument is the single-field error shape used in JSON mode.
type ErrorDocument struct {
	Error string `json:"error"`
}

// JSON writes the structured view, pretty printed, followed by a newline.
func JSON(w io.Writer, grid *model.Grid) error {
	return writeIndented(w, grid.Document())
}

// Error renders err as plain text or as {"error": "..."}.
func Error(w io.Writer, mode Mode, err error) error {
	if err == nil {
		return errors.New("render: nil error")
	}
	if mode != ModeJSON {
		_, werr := io.WriteString(w, err.Error()+"\n")
		return werr
	}
	return writeIndented(w, ErrorDocument{Error: err.Error()})
}

func writeIndented(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}
