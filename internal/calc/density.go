package calc

// Densities in g/cm³ (numerically t/m³), matching the values offered in the
// catalog forms.
const (
	DensitySteel    = 7.85
	DensityAluminum = 2.73
)

// Densities is the closed set a user may pick from. The engine only checks
// positivity; the set is for form builders.
var Densities = []float64{8, 7.85, 7.86, 7.84, 2.73}

// DimBound is an advisory plausibility range for one dimension key. The
// engine does not enforce these; callers may use them for form validation.
type DimBound struct {
	Min, Max float64
}

var Bounds = map[string]DimBound{
	DimLength:          {0.1, 24},   // m
	DimWidth:           {0.1, 3},    // m
	DimThickness:       {0.1, 200},  // mm
	DimDiameter:        {3, 1200},   // mm
	DimWallThickness:   {0.5, 60},   // mm
	DimHeight:          {20, 1000},  // mm
	DimSide:            {5, 400},    // mm
	DimFlangeWidth:     {20, 400},   // mm
	DimFlangeThickness: {2, 40},     // mm
	DimWebThickness:    {2, 40},     // mm
}

// densityOr returns d when it is a usable density, fallback otherwise.
// Unset density is the zero value, same defaulting convention as the rest
// of the inputs; NaN and ±Inf count as unset too.
func densityOr(d, fallback float64) float64 {
	if !positive(d) {
		return fallback
	}
	return d
}
