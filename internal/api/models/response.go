package models

import "payoff-grid/internal/betgrid"

// MarketsResponse lists supported bet types.
type MarketsResponse struct {
	Markets []betgrid.MarketInfo `json:"markets"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeMissingParameter   = "MISSING_PARAMETER"
	CodeInvalidSide        = "INVALID_SIDE"
	CodeInvalidParameter   = "INVALID_PARAMETER"
	CodeUnsupportedBetType = "UNSUPPORTED_BET_TYPE"
	CodeInternal           = "INTERNAL_ERROR"
	CodeNotFound           = "NOT_FOUND"
)
