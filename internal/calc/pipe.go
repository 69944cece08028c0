package calc

import (
	"fmt"
	"math"
)

// pipeFormula: annular section, (D−t)·t·π·ρ/1000 kg per meter (D outer
// diameter, t wall, mm). A wall of D/2 or more leaves no bore.
var pipeFormula = formula{
	required: []string{DimDiameter, DimWallThickness, DimLength},
	weight: func(in Input) (float64, string, bool) {
		d := in.Dims[DimDiameter]
		t := in.Dims[DimWallThickness]
		if 2*t >= d {
			return 0, "", false
		}
		l := in.Dims[DimLength]
		rho := densityOr(in.Density, DensitySteel)
		q := quantity(in)
		kg := (d - t) * t * math.Pi * rho / 1000 * l * float64(q)
		return kg, fmt.Sprintf("(%g − %g) × %g × π × %g / 1000 × %g × %d", d, t, t, rho, l, q), true
	},
}
