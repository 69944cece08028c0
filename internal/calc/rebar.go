package calc

import "fmt"

// RebarCoeff is the collapsed steel coefficient π/4 × 7.85 / 1e6, in kg per
// meter per mm² of cross-section. The trade uses the published constant, not
// a recomputation from density.
const RebarCoeff = 0.00617

var rebarFormula = formula{
	required: []string{DimDiameter, DimLength},
	weight: func(in Input) (float64, string, bool) {
		d := in.Dims[DimDiameter]
		l := in.Dims[DimLength]
		q := quantity(in)
		kg := d * d * l * RebarCoeff * float64(q)
		return kg, fmt.Sprintf("%g² × %g × 0.00617 × %d", d, l, q), true
	},
}
