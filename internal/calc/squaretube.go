package calc

import "fmt"

// squareTubeFormula: box section of width w, height h, wall t,
// area = 2t·(w + h − 2t) mm². Square tube is the w == h case.
var squareTubeFormula = formula{
	required: []string{DimWidth, DimHeight, DimWallThickness, DimLength},
	weight: func(in Input) (float64, string, bool) {
		w := in.Dims[DimWidth]
		h := in.Dims[DimHeight]
		t := in.Dims[DimWallThickness]
		if 2*t >= w || 2*t >= h {
			return 0, "", false
		}
		l := in.Dims[DimLength]
		rho := densityOr(in.Density, DensitySteel)
		q := quantity(in)
		kg := 2 * t * (w + h - 2*t) * l * rho / 1000 * float64(q)
		return kg, fmt.Sprintf("2 × %g × (%g + %g − 2 × %g) × %g × %g / 1000 × %d", t, w, h, t, l, rho, q), true
	},
}
