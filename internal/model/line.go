package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Tier is the settlement regime of a handicap or goal line.
type Tier uint8

const (
	// TierWhole lines (0, -1, 2) can push.
	TierWhole Tier = iota + 1
	// TierHalf lines (0.5, -1.5) never land on the margin.
	TierHalf
	// TierQuarter lines (0.25, -1.75) settle as two half-stakes at line-0.25 and line+0.25.
	TierQuarter
)

func (t Tier) String() string {
	switch t {
	case TierWhole:
		return "whole"
	case TierHalf:
		return "half"
	case TierQuarter:
		return "quarter"
	default:
		return "unknown"
	}
}

var (
	half    = decimal.New(5, -1)
	quarter = decimal.New(25, -2)
)

// Line is a handicap or goal line.
//
// Lines are held as exact decimals so that tier classification of inputs such as
// "-0.25" or "2.75" is not subject to binary floating point rounding. The
// settlement tiers assume multiples of 0.25; anything that is neither whole nor
// half is treated as a quarter line.
type Line struct {
	d decimal.Decimal
}

// ParseLine only accepts decimals inside this exponent and digit window, so
// Floor and Add never rescale through large powers of ten.
const (
	minLineExponent = -10
	maxLineExponent = 6
	maxLineDigits   = 20
)

// ParseLine parses a free-form decimal number (sign and fraction allowed).
func ParseLine(s string) (Line, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Line{}, fmt.Errorf("%w: %q is not a number", ErrInvalidNumericParameter, s)
	}
	if exp := d.Exponent(); exp < minLineExponent || exp > maxLineExponent || d.NumDigits() > maxLineDigits {
		return Line{}, fmt.Errorf("%w: %q", ErrLineOutOfRange, s)
	}
	return Line{d: d}, nil
}

// NewLine converts a float using its shortest decimal representation.
func NewLine(f float64) Line {
	return Line{d: decimal.NewFromFloat(f)}
}

func (l Line) Decimal() decimal.Decimal { return l.d }

func (l Line) String() string { return l.d.String() }

// Neg returns the line with its sign flipped.
func (l Line) Neg() Line { return Line{d: l.d.Neg()} }

// Tier classifies the line. Whole takes precedence over half.
func (l Line) Tier() Tier {
	if l.d.Equal(l.d.Floor()) {
		return TierWhole
	}
	if l.d.Abs().Mod(half).IsZero() {
		return TierHalf
	}
	return TierQuarter
}

// Split returns the two legs of a quarter line: line-0.25 and line+0.25.
func (l Line) Split() (lower, upper Line) {
	return Line{d: l.d.Sub(quarter)}, Line{d: l.d.Add(quarter)}
}
