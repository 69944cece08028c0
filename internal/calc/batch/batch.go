package batch

import (
	"fmt"

	calc "Ferrum/internal/calc"
)

type Request struct {
	Items []calc.Input `json:"items"`
	// Quote, when present, prices every successful item.
	Quote *calc.Quote `json:"quote,omitempty"`
}

type Item struct {
	Index  int          `json:"index"`
	Weight *calc.Weight `json:"weight,omitempty"`
	Price  *calc.Price  `json:"price,omitempty"`
	Error  string       `json:"error,omitempty"`
}

type Result struct {
	Count int    `json:"count"`
	Items []Item `json:"items"`
}

// Calculate runs every item independently. Invalid items are reported by
// index instead of aborting the batch, matching the engine's no-result
// policy for single calculations.
func Calculate(req Request) (Result, error) {
	if len(req.Items) == 0 {
		return Result{}, fmt.Errorf("no items")
	}
	out := Result{Items: make([]Item, 0, len(req.Items))}
	for i, in := range req.Items {
		item := Item{Index: i}
		w := calc.CalculateWeight(in)
		if w == nil {
			item.Error = "invalid dimensions"
			out.Items = append(out.Items, item)
			continue
		}
		item.Weight = w
		if req.Quote != nil {
			item.Price = calc.ConvertToPrice(w.WeightKg, *req.Quote)
		}
		out.Count++
		out.Items = append(out.Items, item)
	}
	return out, nil
}
