package calc

import (
	"math"
	"testing"
)

func TestConvertToPricePerKg(t *testing.T) {
	p := ConvertToPrice(100, Quote{UnitPrice: 50000, Unit: UnitKg})
	if p == nil {
		t.Fatal("no price")
	}
	if p.Total != 5_000_000 {
		t.Fatalf("total = %d, want 5000000", p.Total)
	}
}

func TestConvertToPricePerTon(t *testing.T) {
	p := ConvertToPrice(100, Quote{UnitPrice: 50000, Unit: UnitTon})
	if p == nil {
		t.Fatal("no price")
	}
	if p.Total != 5000 {
		t.Fatalf("total = %d, want 5000", p.Total)
	}
}

func TestConvertToPriceWithVAT(t *testing.T) {
	p := ConvertToPrice(100, Quote{UnitPrice: 50000, Unit: UnitTon, IncludeVAT: true})
	if p == nil {
		t.Fatal("no price")
	}
	if p.Total != 5500 {
		t.Fatalf("total = %d, want 5500", p.Total)
	}
}

func TestConvertToPriceRoundsToWholeCurrency(t *testing.T) {
	// 10.66 × 1000 × 1.1 = 11726.0 exactly; use a case with a fraction.
	p := ConvertToPrice(0.5, Quote{UnitPrice: 101, Unit: UnitKg, IncludeVAT: true})
	if p == nil {
		t.Fatal("no price")
	}
	// 0.5 × 101 × 1.1 = 55.55 → 56
	if p.Total != 56 {
		t.Fatalf("total = %d, want 56", p.Total)
	}
}

func TestNoPriceWithoutUnitPrice(t *testing.T) {
	if p := ConvertToPrice(100, Quote{Unit: UnitKg}); p != nil {
		t.Fatalf("got price %d without a unit price", p.Total)
	}
	if p := ConvertToPrice(100, Quote{UnitPrice: -5, Unit: UnitKg}); p != nil {
		t.Fatalf("got price %d for a negative unit price", p.Total)
	}
}

func TestNoPriceForNonFiniteInputs(t *testing.T) {
	for _, bad := range []float64{math.NaN(), math.Inf(1)} {
		if p := ConvertToPrice(100, Quote{UnitPrice: bad, Unit: UnitKg}); p != nil {
			t.Fatalf("got price %d for unit price %v", p.Total, bad)
		}
		if p := ConvertToPrice(bad, Quote{UnitPrice: 50000, Unit: UnitKg}); p != nil {
			t.Fatalf("got price %d for weight %v", p.Total, bad)
		}
	}
}

func TestNoPriceForNonPositiveWeight(t *testing.T) {
	if p := ConvertToPrice(0, Quote{UnitPrice: 50000, Unit: UnitKg}); p != nil {
		t.Fatalf("got price %d for zero weight", p.Total)
	}
}
