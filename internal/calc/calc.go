// Package calc computes product weights and prices for the catalog.
// Every calculation is a pure function of its input; invalid input yields
// no result rather than an error.
package calc

import "math"

type Kind string

const (
	Sheet      Kind = "sheet"
	Rebar      Kind = "rebar"
	Beam       Kind = "beam"
	Billet     Kind = "billet"
	Pipe       Kind = "pipe"
	Stud       Kind = "stud"
	Angle      Kind = "angle"
	SquareTube Kind = "square-tube"
)

// Dims holds user-entered dimensions keyed by name. Piece length is meters
// (sheet width too); all cross-section dimensions are millimeters.
type Dims map[string]float64

const (
	DimLength          = "length"
	DimWidth           = "width"
	DimThickness       = "thickness"
	DimDiameter        = "diameter"
	DimWallThickness   = "wall_thickness"
	DimHeight          = "height"
	DimSide            = "side"
	DimFlangeWidth     = "flange_width"
	DimFlangeThickness = "flange_thickness"
	DimWebThickness    = "web_thickness"
)

type Input struct {
	Kind      Kind      `json:"kind"`
	Dims      Dims      `json:"dims"`
	SheetType SheetType `json:"sheet_type,omitempty"`
	Density   float64   `json:"density,omitempty"`
	Quantity  int       `json:"quantity,omitempty"`
}

type Weight struct {
	WeightKg float64 `json:"weight_kg"`
	Formula  string  `json:"formula"`
}

// CalculateWeight applies the formula for in.Kind and returns the rounded
// weight together with the expression actually used. A missing, zero or
// negative required dimension returns nil; the engine never raises for bad
// domain input.
func CalculateWeight(in Input) *Weight {
	f, ok := formulas[in.Kind]
	if !ok {
		return nil
	}
	for _, key := range f.required {
		v, ok := in.Dims[key]
		if !ok || !positive(v) {
			return nil
		}
	}
	kg, expr, ok := f.weight(in)
	if !ok {
		return nil
	}
	return &Weight{WeightKg: round2(kg), Formula: expr}
}

// Kinds lists the supported shape families.
func Kinds() []Kind {
	return []Kind{Sheet, Rebar, Beam, Billet, Pipe, Stud, Angle, SquareTube}
}

func quantity(in Input) int {
	if in.Quantity < 1 {
		return 1
	}
	return in.Quantity
}

// positive reports whether v is usable as a dimension or price: finite and
// strictly greater than zero. NaN and ±Inf compare false against <= 0 and
// would otherwise ride through the formulas as a NaN "success".
func positive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// round2 rounds half away from zero to two decimals.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
