package calc

// formula binds one shape family to its mass computation. required lists the
// dimension keys that must be present and strictly positive before weight
// runs; weight reports ok=false when a branch-specific precondition fails
// (degenerate section, unknown table row, undefined thickness band).
type formula struct {
	required []string
	weight   func(in Input) (kg float64, expr string, ok bool)
}

var formulas = map[Kind]formula{
	Sheet:      sheetFormula,
	Rebar:      rebarFormula,
	Beam:       beamFormula,
	Billet:     billetFormula,
	Pipe:       pipeFormula,
	Stud:       studFormula,
	Angle:      angleFormula,
	SquareTube: squareTubeFormula,
}

// RequiredDims reports the dimension keys a shape family needs, for form
// builders and importers. Unknown kinds return nil.
func RequiredDims(kind Kind) []string {
	f, ok := formulas[kind]
	if !ok {
		return nil
	}
	out := make([]string, len(f.required))
	copy(out, f.required)
	return out
}
