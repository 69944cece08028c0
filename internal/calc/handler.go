package calc

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

// PriceSource supplies the unit price and unit-of-measure for a catalog
// product.
type PriceSource interface {
	Quote(ctx context.Context, productID int) (Quote, error)
}

type Handler struct {
	Prices PriceSource
}

type CalcRequest struct {
	Input
	ProductID  int     `json:"product_id,omitempty"`
	UnitPrice  float64 `json:"unit_price,omitempty"`
	Unit       Unit    `json:"unit,omitempty"`
	IncludeVAT bool    `json:"include_vat,omitempty"`
}

type CalcResponse struct {
	*Weight
	Price *Price `json:"price,omitempty"`
}

// Calc handles POST /tools/{shape}/calc. The shape comes from the path, the
// dimensions from the body. When a product id is given the unit price is
// fetched from the catalog, otherwise an inline unit price may be supplied;
// with neither, the response is weight-only.
func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var req CalcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	req.Input.Kind = Kind(mux.Vars(r)["shape"])

	res := CalculateWeight(req.Input)
	if res == nil {
		http.Error(w, "Invalid dimensions", http.StatusBadRequest)
		return
	}

	quote := Quote{UnitPrice: req.UnitPrice, Unit: req.Unit, IncludeVAT: req.IncludeVAT}
	if req.ProductID != 0 && h.Prices != nil {
		q, err := h.Prices.Quote(r.Context(), req.ProductID)
		if err != nil {
			http.Error(w, "Product not found", http.StatusNotFound)
			return
		}
		q.IncludeVAT = req.IncludeVAT
		quote = q
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(CalcResponse{Weight: res, Price: ConvertToPrice(res.WeightKg, quote)})
}
