package calc

import "fmt"

type SheetType string

const (
	SheetBlack      SheetType = "black"
	SheetGalvanized SheetType = "galvanized"
	SheetColored    SheetType = "colored"
	SheetOiled      SheetType = "oiled"
	SheetAcidWashed SheetType = "acid-washed"
	SheetAluminum   SheetType = "aluminum"
	SheetRibbed     SheetType = "ribbed"
	SheetHardox     SheetType = "hardox"
)

// sheetFormula computes the mass of a single plate: length and width in
// meters, thickness in millimeters, density in g/cm³. Quantity is ignored.
//
// Ribbed plate has two documented bands, thickness <= 3 and thickness >= 4;
// the open interval between them has no defined formula and produces no
// result, like any other invalid input.
var sheetFormula = formula{
	required: []string{DimLength, DimWidth, DimThickness},
	weight: func(in Input) (float64, string, bool) {
		l := in.Dims[DimLength]
		w := in.Dims[DimWidth]
		t := in.Dims[DimThickness]

		switch in.SheetType {
		case SheetAluminum:
			// Density is fixed for aluminum regardless of the selection.
			kg := l * w * t * DensityAluminum
			return kg, fmt.Sprintf("%g × %g × %g × %g", l, w, t, DensityAluminum), true
		case SheetRibbed:
			if !positive(in.Density) {
				return 0, "", false
			}
			switch {
			case t <= 3:
				kg := (0.3 + t) * l * w * in.Density
				return kg, fmt.Sprintf("(0.3 + %g) × %g × %g × %g", t, l, w, in.Density), true
			case t >= 4:
				kg := (0.4 + t) * l * w * in.Density
				return kg, fmt.Sprintf("(0.4 + %g) × %g × %g × %g", t, l, w, in.Density), true
			default:
				return 0, "", false
			}
		case SheetHardox:
			if !positive(in.Density) {
				return 0, "", false
			}
			kg := (0.3 + t) * l * w * in.Density
			return kg, fmt.Sprintf("(0.3 + %g) × %g × %g × %g", t, l, w, in.Density), true
		case SheetBlack, SheetGalvanized, SheetColored, SheetOiled, SheetAcidWashed:
			if !positive(in.Density) {
				return 0, "", false
			}
			kg := l * w * t * in.Density
			return kg, fmt.Sprintf("%g × %g × %g × %g", l, w, t, in.Density), true
		default:
			return 0, "", false
		}
	},
}

// SheetTypes lists the supported plate finishes.
func SheetTypes() []SheetType {
	return []SheetType{
		SheetBlack, SheetGalvanized, SheetColored, SheetOiled,
		SheetAcidWashed, SheetAluminum, SheetRibbed, SheetHardox,
	}
}
