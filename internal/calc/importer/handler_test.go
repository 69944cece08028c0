package importer

import (
	"testing"

	calc "Ferrum/internal/calc"
)

func TestParseSheetRow(t *testing.T) {
	in, err := parseSheetRow([]string{"black", "6", "1.5", "3", "8"})
	if err != nil {
		t.Fatal(err)
	}
	if in.Kind != calc.Sheet || in.SheetType != calc.SheetBlack {
		t.Fatalf("parsed %+v", in)
	}
	if in.Dims[calc.DimLength] != 6 || in.Dims[calc.DimWidth] != 1.5 || in.Dims[calc.DimThickness] != 3 {
		t.Fatalf("dims %v", in.Dims)
	}
	if in.Density != 8 {
		t.Fatalf("density = %v", in.Density)
	}

	res := calc.CalculateWeight(in)
	if res == nil || res.WeightKg != 216.00 {
		t.Fatalf("weight = %v, want 216", res)
	}
}

func TestParseSheetRowWithoutDensity(t *testing.T) {
	in, err := parseSheetRow([]string{"aluminum", "2", "1", "2"})
	if err != nil {
		t.Fatal(err)
	}
	res := calc.CalculateWeight(in)
	if res == nil || res.WeightKg != 10.92 {
		t.Fatalf("weight = %v, want 10.92", res)
	}
}

func TestParseSheetRowRejectsGarbage(t *testing.T) {
	if _, err := parseSheetRow([]string{"black", "six", "1.5", "3", "8"}); err == nil {
		t.Fatal("non-numeric length accepted")
	}
	if _, err := parseSheetRow([]string{"black", "6"}); err == nil {
		t.Fatal("short row accepted")
	}
}
