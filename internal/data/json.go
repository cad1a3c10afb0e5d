package data

import (
	"fmt"
	"os"

	"payoff-grid/internal/model"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// LoadGridJSON reads a grid previously written in JSON output mode.
func LoadGridJSON(path string) (*model.Grid, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeGrid(raw)
}

// DecodeGrid parses a {"grid_size": N, "payoff_grid": {...}} document.
func DecodeGrid(raw []byte) (*model.Grid, error) {
	var doc model.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode grid document: %w", err)
	}
	grid, err := model.FromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("invalid grid document: %w", err)
	}
	return grid, nil
}
