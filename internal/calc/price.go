package calc

import "math"

// Unit is the unit-of-measure a unit price applies to.
type Unit string

const (
	UnitKg  Unit = "kg"
	UnitTon Unit = "ton"
)

// vatFactor is the flat 10% tax applied when a quote includes VAT.
const vatFactor = 1.1

// Quote is an externally supplied unit price, typically from the product
// catalog.
type Quote struct {
	UnitPrice  float64 `json:"unit_price"`
	Unit       Unit    `json:"unit"`
	IncludeVAT bool    `json:"include_vat"`
}

// Price is a total in whole currency units; the domain has no fractional
// currency.
type Price struct {
	Total int64 `json:"total_price"`
}

// ConvertToPrice turns a computed weight into a total. A quote without a
// unit price (UnitPrice <= 0) yields nil: the weight-only result stands on
// its own.
func ConvertToPrice(weightKg float64, q Quote) *Price {
	if !positive(q.UnitPrice) || !positive(weightKg) {
		return nil
	}
	base := weightKg * q.UnitPrice
	if q.Unit == UnitTon {
		base = weightKg / 1000 * q.UnitPrice
	}
	if q.IncludeVAT {
		base *= vatFactor
	}
	return &Price{Total: int64(math.Round(base))}
}
