package calc

import (
	"math"
	"testing"
)

// validInputs returns a known-good input per shape family.
func validInputs() map[Kind]Input {
	return map[Kind]Input{
		Sheet:  sheetInput(SheetBlack, 6, 1.5, 3, 8),
		Rebar:  {Kind: Rebar, Dims: Dims{DimDiameter: 12, DimLength: 12}},
		Beam:   {Kind: Beam, Dims: Dims{DimHeight: 200, DimLength: 12}},
		Billet: {Kind: Billet, Dims: Dims{DimSide: 100, DimLength: 6}},
		Pipe:   {Kind: Pipe, Dims: Dims{DimDiameter: 60, DimWallThickness: 3, DimLength: 6}},
		Stud: {Kind: Stud, Dims: Dims{
			DimHeight: 200, DimWebThickness: 5, DimFlangeWidth: 75, DimFlangeThickness: 8, DimLength: 6,
		}},
		Angle:      {Kind: Angle, Dims: Dims{DimSide: 50, DimThickness: 5, DimLength: 6}},
		SquareTube: {Kind: SquareTube, Dims: Dims{DimWidth: 40, DimHeight: 40, DimWallThickness: 2, DimLength: 6}},
	}
}

func TestRebarReferenceFormula(t *testing.T) {
	res := CalculateWeight(Input{Kind: Rebar, Dims: Dims{DimDiameter: 12, DimLength: 12}})
	if res == nil {
		t.Fatal("no result")
	}
	// 12² × 12 × 0.00617 = 10.66176
	nearlyEqual(t, "weight", res.WeightKg, 10.66)
}

func TestRebarQuantity(t *testing.T) {
	res := CalculateWeight(Input{Kind: Rebar, Dims: Dims{DimDiameter: 12, DimLength: 12}, Quantity: 5})
	if res == nil {
		t.Fatal("no result")
	}
	nearlyEqual(t, "weight", res.WeightKg, 53.31) // 53.3088 rounded
}

func TestBeamTableLookup(t *testing.T) {
	res := CalculateWeight(Input{Kind: Beam, Dims: Dims{DimHeight: 200, DimLength: 12}, Quantity: 2})
	if res == nil {
		t.Fatal("no result")
	}
	nearlyEqual(t, "weight", res.WeightKg, 537.60) // IPE200 is 22.4 kg/m

	if res := CalculateWeight(Input{Kind: Beam, Dims: Dims{DimHeight: 210, DimLength: 12}}); res != nil {
		t.Fatalf("IPE210 does not exist, got %v", res.WeightKg)
	}
}

func TestBilletDefaultsToSteelDensity(t *testing.T) {
	res := CalculateWeight(Input{Kind: Billet, Dims: Dims{DimSide: 100, DimLength: 6}})
	if res == nil {
		t.Fatal("no result")
	}
	nearlyEqual(t, "weight", res.WeightKg, 471.00) // 100² × 6 × 7.85 / 1000
}

func TestPipeAnnularSection(t *testing.T) {
	res := CalculateWeight(Input{Kind: Pipe, Dims: Dims{DimDiameter: 60, DimWallThickness: 3, DimLength: 6}})
	if res == nil {
		t.Fatal("no result")
	}
	// (60−3) × 3 × π × 7.85 / 1000 × 6
	nearlyEqual(t, "weight", res.WeightKg, 25.30)

	// A wall of half the diameter or more leaves no bore.
	if res := CalculateWeight(Input{Kind: Pipe, Dims: Dims{DimDiameter: 60, DimWallThickness: 30, DimLength: 6}}); res != nil {
		t.Fatalf("degenerate pipe section accepted: %v", res.WeightKg)
	}
}

func TestStudChannelSection(t *testing.T) {
	in := Input{Kind: Stud, Dims: Dims{
		DimHeight: 200, DimWebThickness: 5, DimFlangeWidth: 75, DimFlangeThickness: 8, DimLength: 6,
	}}
	res := CalculateWeight(in)
	if res == nil {
		t.Fatal("no result")
	}
	// (200×5 + 2×75×8) = 2200 mm² → 2200 × 6 × 7.85 / 1000
	nearlyEqual(t, "weight", res.WeightKg, 103.62)
}

func TestAngleSection(t *testing.T) {
	res := CalculateWeight(Input{Kind: Angle, Dims: Dims{DimSide: 50, DimThickness: 5, DimLength: 6}})
	if res == nil {
		t.Fatal("no result")
	}
	// 5 × (2×50 − 5) = 475 mm² → 475 × 6 × 7.85 / 1000 = 22.3725
	nearlyEqual(t, "weight", res.WeightKg, 22.37)

	if res := CalculateWeight(Input{Kind: Angle, Dims: Dims{DimSide: 50, DimThickness: 50, DimLength: 6}}); res != nil {
		t.Fatalf("degenerate angle accepted: %v", res.WeightKg)
	}
}

func TestSquareTubeSection(t *testing.T) {
	res := CalculateWeight(Input{Kind: SquareTube, Dims: Dims{
		DimWidth: 40, DimHeight: 40, DimWallThickness: 2, DimLength: 6,
	}})
	if res == nil {
		t.Fatal("no result")
	}
	// 2×2 × (40+40−4) = 304 mm² → 304 × 6 × 7.85 / 1000 = 14.3184
	nearlyEqual(t, "weight", res.WeightKg, 14.32)

	if res := CalculateWeight(Input{Kind: SquareTube, Dims: Dims{
		DimWidth: 40, DimHeight: 40, DimWallThickness: 20, DimLength: 6,
	}}); res != nil {
		t.Fatalf("degenerate tube accepted: %v", res.WeightKg)
	}
}

func TestUnknownKind(t *testing.T) {
	if res := CalculateWeight(Input{Kind: "girder", Dims: Dims{DimLength: 6}}); res != nil {
		t.Fatalf("unknown kind accepted: %v", res.WeightKg)
	}
}

// Every shape must withhold the result when any required dimension is zero,
// negative or missing.
func TestNoResultGuardAllShapes(t *testing.T) {
	for kind, in := range validInputs() {
		for _, key := range RequiredDims(kind) {
			for _, bad := range []float64{0, -1} {
				mutated := in
				mutated.Dims = Dims{}
				for k, v := range in.Dims {
					mutated.Dims[k] = v
				}
				mutated.Dims[key] = bad
				if res := CalculateWeight(mutated); res != nil {
					t.Errorf("%s with %s=%g: got %v, want no result", kind, key, bad, res.WeightKg)
				}
			}
			mutated := in
			mutated.Dims = Dims{}
			for k, v := range in.Dims {
				if k != key {
					mutated.Dims[k] = v
				}
			}
			if res := CalculateWeight(mutated); res != nil {
				t.Errorf("%s without %s: got %v, want no result", kind, key, res.WeightKg)
			}
		}
	}
}

// NaN and ±Inf are not positive numbers; they must be withheld at the gate,
// never surfaced as a NaN weight.
func TestNonFiniteDimensionsRejected(t *testing.T) {
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		for kind, in := range validInputs() {
			for _, key := range RequiredDims(kind) {
				mutated := in
				mutated.Dims = Dims{}
				for k, v := range in.Dims {
					mutated.Dims[k] = v
				}
				mutated.Dims[key] = bad
				if res := CalculateWeight(mutated); res != nil {
					t.Errorf("%s with %s=%v: got %v, want no result", kind, key, bad, res.WeightKg)
				}
			}
		}
	}
}

func TestNonFiniteSheetDensityRejected(t *testing.T) {
	for _, bad := range []float64{math.NaN(), math.Inf(1)} {
		if res := CalculateWeight(sheetInput(SheetBlack, 6, 1.5, 3, bad)); res != nil {
			t.Errorf("density %v accepted: %v", bad, res.WeightKg)
		}
	}
}

func TestNonFiniteDensityFallsBackToSteel(t *testing.T) {
	in := Input{Kind: Billet, Dims: Dims{DimSide: 100, DimLength: 6}, Density: math.NaN()}
	res := CalculateWeight(in)
	if res == nil {
		t.Fatal("no result")
	}
	nearlyEqual(t, "weight", res.WeightKg, 471.00)
}

// weight_kg must carry exactly two decimals for any valid input.
func TestRoundingInvariant(t *testing.T) {
	for kind, in := range validInputs() {
		res := CalculateWeight(in)
		if res == nil {
			t.Fatalf("%s: no result for valid input", kind)
		}
		scaled := res.WeightKg * 100
		if math.Abs(scaled-math.Round(scaled)) > 1e-9 {
			t.Errorf("%s: weight %v is not rounded to 2 decimals", kind, res.WeightKg)
		}
	}
}

func TestIdempotence(t *testing.T) {
	for kind, in := range validInputs() {
		first := CalculateWeight(in)
		second := CalculateWeight(in)
		if first == nil || second == nil {
			t.Fatalf("%s: no result", kind)
		}
		if first.WeightKg != second.WeightKg || first.Formula != second.Formula {
			t.Errorf("%s: repeated calculation differs: %v vs %v", kind, first, second)
		}
	}
}

func TestRequiredDims(t *testing.T) {
	if dims := RequiredDims(Kind("girder")); dims != nil {
		t.Fatalf("unknown kind reported dims %v", dims)
	}
	dims := RequiredDims(Pipe)
	want := map[string]bool{DimDiameter: true, DimWallThickness: true, DimLength: true}
	if len(dims) != len(want) {
		t.Fatalf("pipe dims = %v", dims)
	}
	for _, d := range dims {
		if !want[d] {
			t.Errorf("unexpected pipe dim %q", d)
		}
	}
}
