package calc

// Calculator is the per-widget session wrapper around the pure functions:
// it accumulates a draft input, remembers the last successful result, and
// supports an explicit reset. Invalid inputs leave the previous result in
// place; only Reset clears it.
type Calculator struct {
	in     Input
	weight *Weight
	price  *Price
}

func NewCalculator(kind Kind) *Calculator {
	return &Calculator{in: Input{Kind: kind, Dims: Dims{}}}
}

func (c *Calculator) SetDim(key string, v float64) {
	c.in.Dims[key] = v
}

func (c *Calculator) SetSheetType(t SheetType) {
	c.in.SheetType = t
}

func (c *Calculator) SetDensity(d float64) {
	c.in.Density = d
}

func (c *Calculator) SetQuantity(n int) {
	c.in.Quantity = n
}

// Recalculate runs the formula over the current draft. On success the stored
// weight is replaced and, when a quote is given, the price recomputed; on
// invalid input it returns nil and the stored result is untouched.
func (c *Calculator) Recalculate(q *Quote) *Weight {
	w := CalculateWeight(c.in)
	if w == nil {
		return nil
	}
	c.weight = w
	if q != nil {
		c.price = ConvertToPrice(w.WeightKg, *q)
	} else {
		c.price = nil
	}
	return w
}

// Weight returns the last successful result, nil if none.
func (c *Calculator) Weight() *Weight { return c.weight }

// Price returns the price from the last successful priced recalculation.
func (c *Calculator) Price() *Price { return c.price }

// Reset clears all geometric fields, density, quantity and any computed
// result. The shape kind and material selection are kept.
func (c *Calculator) Reset() {
	c.in.Dims = Dims{}
	c.in.Density = 0
	c.in.Quantity = 0
	c.weight = nil
	c.price = nil
}
