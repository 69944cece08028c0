package catalog

import (
	"context"

	calc "Ferrum/internal/calc"
)

// Prices adapts the product repository to the calculator's PriceSource.
type Prices struct {
	Repo Repository
}

func (p *Prices) Quote(ctx context.Context, productID int) (calc.Quote, error) {
	prod, err := p.Repo.GetByID(ctx, productID)
	if err != nil {
		return calc.Quote{}, err
	}
	return calc.Quote{UnitPrice: prod.UnitPrice, Unit: calc.Unit(prod.PriceUnit)}, nil
}
