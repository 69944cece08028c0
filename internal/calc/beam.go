package calc

import (
	"fmt"
	"math"
	"sort"
)

// ipeKgPerM maps IPE section height (mm) to mass per meter, per the standard
// profile tables.
var ipeKgPerM = map[int]float64{
	80:  6.0,
	100: 8.1,
	120: 10.4,
	140: 12.9,
	160: 15.8,
	180: 18.8,
	200: 22.4,
	220: 26.2,
	240: 30.7,
	270: 36.1,
	300: 42.2,
	330: 49.1,
	360: 57.1,
	400: 66.3,
	450: 77.6,
	500: 90.7,
	550: 106,
	600: 122,
}

// beamFormula looks the section up by height; a height that is not an IPE
// designation produces no result.
var beamFormula = formula{
	required: []string{DimHeight, DimLength},
	weight: func(in Input) (float64, string, bool) {
		h := in.Dims[DimHeight]
		if h != math.Trunc(h) {
			return 0, "", false
		}
		kgm, ok := ipeKgPerM[int(h)]
		if !ok {
			return 0, "", false
		}
		l := in.Dims[DimLength]
		q := quantity(in)
		kg := kgm * l * float64(q)
		return kg, fmt.Sprintf("IPE%d: %g kg/m × %g × %d", int(h), kgm, l, q), true
	},
}

// BeamHeights lists the available IPE designations in ascending order.
func BeamHeights() []int {
	hs := make([]int, 0, len(ipeKgPerM))
	for h := range ipeKgPerM {
		hs = append(hs, h)
	}
	sort.Ints(hs)
	return hs
}
