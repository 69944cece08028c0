package calc

import "fmt"

// angleFormula: equal-leg angle, area = t·(2a − t) mm² for leg a and
// thickness t. A thickness reaching the leg length is not a rolled angle.
var angleFormula = formula{
	required: []string{DimSide, DimThickness, DimLength},
	weight: func(in Input) (float64, string, bool) {
		a := in.Dims[DimSide]
		t := in.Dims[DimThickness]
		if t >= a {
			return 0, "", false
		}
		l := in.Dims[DimLength]
		rho := densityOr(in.Density, DensitySteel)
		q := quantity(in)
		kg := t * (2*a - t) * l * rho / 1000 * float64(q)
		return kg, fmt.Sprintf("%g × (2 × %g − %g) × %g × %g / 1000 × %d", t, a, t, l, rho, q), true
	},
}
