package calc

import "fmt"

// studFormula: open channel section, web plus two flanges,
// area = h·tw + 2·b·tf in mm².
var studFormula = formula{
	required: []string{DimHeight, DimWebThickness, DimFlangeWidth, DimFlangeThickness, DimLength},
	weight: func(in Input) (float64, string, bool) {
		h := in.Dims[DimHeight]
		tw := in.Dims[DimWebThickness]
		b := in.Dims[DimFlangeWidth]
		tf := in.Dims[DimFlangeThickness]
		l := in.Dims[DimLength]
		rho := densityOr(in.Density, DensitySteel)
		q := quantity(in)
		area := h*tw + 2*b*tf
		kg := area * l * rho / 1000 * float64(q)
		return kg, fmt.Sprintf("(%g × %g + 2 × %g × %g) × %g × %g / 1000 × %d", h, tw, b, tf, l, rho, q), true
	},
}
