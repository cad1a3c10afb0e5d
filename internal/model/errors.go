package model

import (
	"errors"
	"fmt"
)

// Error kinds surfaced to callers. Wrap them with context; match with errors.Is.
var (
	ErrInvalidSideCode          = errors.New("invalid side code")
	ErrInvalidNumericParameter  = errors.New("invalid numeric parameter")
	ErrMissingRequiredParameter = errors.New("missing required parameter")
	ErrOutOfBounds              = errors.New("grid index out of bounds")
	ErrUnsupportedBetType       = errors.New("unsupported bet type")
)

// ErrLineOutOfRange is an ErrInvalidNumericParameter for lines with too many
// digits or decimal places.
var ErrLineOutOfRange = fmt.Errorf("%w: line out of range", ErrInvalidNumericParameter)
