package catalog

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	calc "Ferrum/internal/calc"
	"github.com/gorilla/mux"
)

type Handler struct {
	Repo Repository
}

type UpdatePriceRequest struct {
	UnitPrice float64 `json:"unit_price"`
	PriceUnit string  `json:"price_unit"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.Repo.List(r.Context())
	if err != nil {
		log.Printf("List products error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(products)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}
	p, err := h.Repo.GetByID(r.Context(), id)
	if err != nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}

// UpdatePrice is the admin price/unit update. The unit must be kg or ton and
// the price non-negative; zero removes the price so calculations fall back
// to weight-only results.
func (h *Handler) UpdatePrice(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}
	var req UpdatePriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.UnitPrice < 0 {
		http.Error(w, "Price must be non-negative", http.StatusBadRequest)
		return
	}
	if req.PriceUnit != string(calc.UnitKg) && req.PriceUnit != string(calc.UnitTon) {
		http.Error(w, "Unit must be kg or ton", http.StatusBadRequest)
		return
	}
	if err := h.Repo.UpdatePrice(r.Context(), id, req.UnitPrice, req.PriceUnit); err != nil {
		if err == sql.ErrNoRows {
			http.Error(w, "Product not found", http.StatusNotFound)
			return
		}
		log.Printf("UpdatePrice error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
