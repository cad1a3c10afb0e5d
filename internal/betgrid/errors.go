package betgrid

import (
	"fmt"

	"payoff-grid/internal/model"
)

// ParamError describes a missing or unusable parameter. Error() is meant for
// end users; Unwrap exposes the model.Err* kind.
type ParamError struct {
	Field string
	Value string
	Msg   string
	Err   error
}

func (e *ParamError) Error() string { return e.Msg }

func (e *ParamError) Unwrap() error { return e.Err }

func missing(field, hint string, betType BetType) *ParamError {
	msg := fmt.Sprintf("Couldn't find required argument '%s'. %s", field, hint)
	if betType != "" {
		msg = fmt.Sprintf("Couldn't find required argument '%s' for %s bet type. %s", field, betType, hint)
	}
	return &ParamError{
		Field: field,
		Msg:   msg,
		Err:   model.ErrMissingRequiredParameter,
	}
}
