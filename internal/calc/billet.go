package calc

import "fmt"

// billetFormula: square bar of side a mm weighs a²·ρ/1000 kg per meter.
var billetFormula = formula{
	required: []string{DimSide, DimLength},
	weight: func(in Input) (float64, string, bool) {
		a := in.Dims[DimSide]
		l := in.Dims[DimLength]
		d := densityOr(in.Density, DensitySteel)
		q := quantity(in)
		kg := a * a * l * d / 1000 * float64(q)
		return kg, fmt.Sprintf("%g² × %g × %g / 1000 × %d", a, l, d, q), true
	},
}
